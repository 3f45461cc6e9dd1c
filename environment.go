package runenv

import "fmt"

// Environment represents the logical running environment of a process.
type Environment string

const (
	// Development for development machines.
	Development Environment = "development"
	// Staging for staging machines.
	Staging Environment = "staging"
	// Production is the safe default when no other signal is present.
	Production Environment = "production"
)

// Valid reports whether e is one of the three known environments.
func (e Environment) Valid() bool {
	switch e {
	case Development, Staging, Production:
		return true
	}
	return false
}

// IsDevelopment reports whether e is the development environment. The short
// alias "dev" is accepted for values that arrived from outside the package,
// e.g. through a context or a raw environment variable.
func (e Environment) IsDevelopment() bool { return e == Development || e == "dev" }

// IsStaging reports whether e is the staging environment ("stage" alias
// accepted).
func (e Environment) IsStaging() bool { return e == Staging || e == "stage" }

// IsProduction reports whether e is the production environment ("prod" alias
// accepted).
func (e Environment) IsProduction() bool { return e == Production || e == "prod" }

// Current returns the running environment detected at construction time, or
// the last value installed with Set.
func (c *Context) Current() Environment {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.env
}

// IsDevelopment reports whether the current running environment is development.
func (c *Context) IsDevelopment() bool { return c.Current() == Development }

// IsStaging reports whether the current running environment is staging.
func (c *Context) IsStaging() bool { return c.Current() == Staging }

// IsProduction reports whether the current running environment is production.
func (c *Context) IsProduction() bool { return c.Current() == Production }

// Set installs env as the current running environment and mirrors it under
// RUN_ENV_current so subprocesses inherit it. The name must match one of the
// three known environments exactly; anything else returns
// ErrInvalidEnvironment and leaves the state untouched.
func (c *Context) Set(env string) error {
	e := Environment(env)
	if !e.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidEnvironment, env)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.env = e
	c.mirror.Set(EnvKey, env)
	return nil
}

// SetDevelopment switches the current running environment to development.
func (c *Context) SetDevelopment() { _ = c.Set(string(Development)) }

// SetStaging switches the current running environment to staging.
func (c *Context) SetStaging() { _ = c.Set(string(Staging)) }

// SetProduction switches the current running environment to production.
func (c *Context) SetProduction() { _ = c.Set(string(Production)) }
