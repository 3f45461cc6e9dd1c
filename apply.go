package runenv

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overrideTable maps bulk-override tokens to the mutator they invoke. Every
// token names exactly one sub-state: the boolean flags use the bare name to
// set and a leading dash to clear, the enums use their literal values.
var overrideTable = map[string]func(*Context) error{
	"testing":  func(c *Context) error { c.SetTesting(); return nil },
	"-testing": func(c *Context) error { c.ClearTesting(); return nil },
	"debug":    func(c *Context) error { c.SetDebug(); return nil },
	"-debug":   func(c *Context) error { c.ClearDebug(); return nil },

	string(Development): func(c *Context) error { return c.Set(string(Development)) },
	string(Staging):     func(c *Context) error { return c.Set(string(Staging)) },
	string(Production):  func(c *Context) error { return c.Set(string(Production)) },

	string(Shell):          func(c *Context) error { return c.SetMode(string(Shell)) },
	string(CGI):            func(c *Context) error { return c.SetMode(string(CGI)) },
	string(EmbeddedServer): func(c *Context) error { return c.SetMode(string(EmbeddedServer)) },
}

// Apply applies the given override tokens left to right, so later tokens may
// override earlier ones within the same call. Empty tokens are ignored. The
// first unknown token stops processing with ErrUnknownToken; overrides
// applied before it stay applied — a misconfiguration surfaces immediately
// rather than half-applying silently.
func (c *Context) Apply(tokens ...string) error {
	for _, token := range tokens {
		if token == "" {
			continue
		}
		apply, ok := overrideTable[token]
		if !ok {
			return fmt.Errorf("%w: %q", ErrUnknownToken, token)
		}
		if err := apply(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyFile reads a YAML sequence of override tokens from path and applies it
// through Apply:
//
//	- -testing
//	- debug
//	- production
func (c *Context) ApplyFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read override file: %w", err)
	}
	var tokens []string
	if err := yaml.Unmarshal(data, &tokens); err != nil {
		return fmt.Errorf("parse override file %s: %w", path, err)
	}
	return c.Apply(tokens...)
}
