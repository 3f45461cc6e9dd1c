package runenv

import "fmt"

// ExecutionMode describes how the current process was invoked.
type ExecutionMode string

const (
	// Shell for processes started from a command line or another process.
	Shell ExecutionMode = "shell"
	// CGI for processes handling a CGI request.
	CGI ExecutionMode = "cgi"
	// EmbeddedServer for processes hosted inside a long-running server
	// runtime (the mod_perl-style embedding).
	EmbeddedServer ExecutionMode = "embedded"
)

// Valid reports whether m is one of the three known execution modes.
func (m ExecutionMode) Valid() bool {
	switch m {
	case Shell, CGI, EmbeddedServer:
		return true
	}
	return false
}

// Mode returns the execution mode detected at construction time, or the last
// value installed with SetMode.
func (c *Context) Mode() ExecutionMode {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.mode
}

// IsShell reports whether the process runs in shell mode.
func (c *Context) IsShell() bool { return c.Mode() == Shell }

// IsCGI reports whether the process runs in CGI mode.
func (c *Context) IsCGI() bool { return c.Mode() == CGI }

// IsEmbeddedServer reports whether the process runs inside an embedded server.
func (c *Context) IsEmbeddedServer() bool { return c.Mode() == EmbeddedServer }

// SetMode installs mode as the current execution mode. The name must match
// one of the three known modes exactly; anything else returns
// ErrInvalidExecutionMode and leaves the state untouched.
//
// Unlike the running environment and the boolean flags, execution mode is
// never mirrored into the environment table: it classifies how this process
// was invoked and carries no meaning for its children.
func (c *Context) SetMode(mode string) error {
	m := ExecutionMode(mode)
	if !m.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidExecutionMode, mode)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.mode = m
	return nil
}

// SetShell switches the execution mode to shell.
func (c *Context) SetShell() { _ = c.SetMode(string(Shell)) }

// SetCGI switches the execution mode to cgi.
func (c *Context) SetCGI() { _ = c.SetMode(string(CGI)) }

// SetEmbeddedServer switches the execution mode to embedded.
func (c *Context) SetEmbeddedServer() { _ = c.SetMode(string(EmbeddedServer)) }
