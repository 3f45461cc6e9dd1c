package runenv

import "os"

// Mirror-table keys. The names are fixed: external scripts and subprocesses
// branch on them.
const (
	// EnvKey holds the current running environment.
	EnvKey = "RUN_ENV_current"
	// DebugKey holds the debug flag. Presence with a truthy value means on;
	// absence means off.
	DebugKey = "RUN_ENV_debug"
	// TestingKey holds the testing flag, same convention as DebugKey.
	TestingKey = "RUN_ENV_testing"
)

// Mirror is the key/value table a Context reads detection signals from and
// writes overrides to. The default implementation is the process environment
// table, which makes overrides visible to subprocesses spawned after the
// write. Writes never reach subprocesses that are already running, nor the
// parent.
type Mirror interface {
	// Lookup reports the value stored under key and whether the key is
	// present at all. Presence matters: for the boolean flags absence, not a
	// falsy value, is the canonical "off" representation.
	Lookup(key string) (string, bool)
	// Set stores value under key.
	Set(key, value string)
	// Unset removes key entirely.
	Unset(key string)
	// Environ returns the whole table in "key=value" form.
	Environ() []string
}

// osMirror is the real process environment table.
type osMirror struct{}

func (osMirror) Lookup(key string) (string, bool) { return os.LookupEnv(key) }
func (osMirror) Set(key, value string)            { _ = os.Setenv(key, value) }
func (osMirror) Unset(key string)                 { _ = os.Unsetenv(key) }
func (osMirror) Environ() []string                { return os.Environ() }

// MapMirror is an in-memory Mirror for tests that need isolated state without
// touching the process environment.
type MapMirror map[string]string

func (m MapMirror) Lookup(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapMirror) Set(key, value string) { m[key] = value }

func (m MapMirror) Unset(key string) { delete(m, key) }

func (m MapMirror) Environ() []string {
	environ := make([]string, 0, len(m))
	for k, v := range m {
		environ = append(environ, k+"="+v)
	}
	return environ
}

// truthy reports whether a mirror entry value counts as "on". Empty strings,
// "0" and "false" (any case) are off; anything else present is on.
func truthy(v string) bool {
	switch v {
	case "", "0", "false", "FALSE", "False":
		return false
	}
	return true
}
