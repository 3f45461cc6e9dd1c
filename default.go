package runenv

import "sync"

// The process-wide Context. Mirroring to the inherited environment table is
// inherently process-wide, so a single shared instance is the honest
// representation; isolated state belongs in New.
var (
	defaultMu  sync.Mutex
	defaultCtx *Context
)

// Default returns the process-wide Context, detecting the runtime context on
// first call.
func Default() *Context {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultCtx == nil {
		defaultCtx = New()
	}
	return defaultCtx
}

// ResetDefault discards the process-wide Context and detects again with the
// given options. Intended for test fixtures that tamper with the environment
// table out-of-band and need detection to observe the change.
func ResetDefault(opts ...Option) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCtx = New(opts...)
}

// Package-level convenience wrappers over the process-wide Context.

// Current returns the process-wide running environment.
func Current() Environment { return Default().Current() }

// IsDevelopment reports whether the process-wide running environment is
// development.
func IsDevelopment() bool { return Default().IsDevelopment() }

// IsStaging reports whether the process-wide running environment is staging.
func IsStaging() bool { return Default().IsStaging() }

// IsProduction reports whether the process-wide running environment is
// production.
func IsProduction() bool { return Default().IsProduction() }

// Set installs the process-wide running environment.
func Set(env string) error { return Default().Set(env) }

// SetDevelopment switches the process-wide running environment to development.
func SetDevelopment() { Default().SetDevelopment() }

// SetStaging switches the process-wide running environment to staging.
func SetStaging() { Default().SetStaging() }

// SetProduction switches the process-wide running environment to production.
func SetProduction() { Default().SetProduction() }

// IsDebug reports the process-wide debug flag.
func IsDebug() bool { return Default().IsDebug() }

// SetDebug turns the process-wide debug flag on, or off when passed false.
func SetDebug(on ...bool) { Default().SetDebug(on...) }

// ClearDebug turns the process-wide debug flag off.
func ClearDebug() { Default().ClearDebug() }

// IsTesting reports the process-wide testing flag.
func IsTesting() bool { return Default().IsTesting() }

// SetTesting turns the process-wide testing flag on, or off when passed false.
func SetTesting(on ...bool) { Default().SetTesting(on...) }

// ClearTesting turns the process-wide testing flag off.
func ClearTesting() { Default().ClearTesting() }

// Mode returns the process-wide execution mode.
func Mode() ExecutionMode { return Default().Mode() }

// IsShell reports whether the process-wide execution mode is shell.
func IsShell() bool { return Default().IsShell() }

// IsCGI reports whether the process-wide execution mode is cgi.
func IsCGI() bool { return Default().IsCGI() }

// IsEmbeddedServer reports whether the process-wide execution mode is
// embedded.
func IsEmbeddedServer() bool { return Default().IsEmbeddedServer() }

// SetMode installs the process-wide execution mode.
func SetMode(mode string) error { return Default().SetMode(mode) }

// SetShell switches the process-wide execution mode to shell.
func SetShell() { Default().SetShell() }

// SetCGI switches the process-wide execution mode to cgi.
func SetCGI() { Default().SetCGI() }

// SetEmbeddedServer switches the process-wide execution mode to embedded.
func SetEmbeddedServer() { Default().SetEmbeddedServer() }

// Apply applies override tokens to the process-wide Context.
func Apply(tokens ...string) error { return Default().Apply(tokens...) }

// ApplyFile applies a YAML override file to the process-wide Context.
func ApplyFile(path string) error { return Default().ApplyFile(path) }
