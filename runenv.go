package runenv

import (
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/joho/godotenv"
)

// Marker files whose presence in the system configuration directory signals
// the running environment. Empty sentinel files; content is irrelevant.
const (
	developmentMarker = "development-machine"
	stagingMarker     = "staging-machine"
)

// Context holds the runtime classification of the current process. All four
// sub-states are detected once, in New, and are plain cached reads afterwards.
// A Context is safe for concurrent use.
type Context struct {
	mu      sync.RWMutex
	env     Environment
	debug   bool
	testing bool
	mode    ExecutionMode

	mirror Mirror
}

// New detects the runtime context and returns a Context holding the result.
// Detection consults, in order of precedence, explicit Option values, the
// Settings found in the mirror table, and built-in defaults. It never fails:
// unreadable files, unresolvable executable paths and malformed settings are
// all treated as absent signals.
func New(opts ...Option) *Context {
	o := detectOptions{
		mirror:     osMirror{},
		args:       os.Args,
		executable: os.Executable,
	}
	for _, opt := range opts {
		opt(&o)
	}

	if o.loadDotEnv {
		// The .env file might not exist and that's ok.
		_ = godotenv.Load(o.dotEnvFiles...)
	}

	settings, err := LoadSettings(o.mirror.Environ())
	if err != nil {
		settings = Settings{EmbeddedKey: "MOD_PERL", CGIKey: "REQUEST_METHOD"}
	}
	if o.confDir == "" {
		o.confDir = settings.ConfigDir
	}
	if o.confDir == "" {
		o.confDir = defaultConfigDir()
	}
	if o.embeddedKey == "" {
		o.embeddedKey = settings.EmbeddedKey
	}
	if o.cgiKey == "" {
		o.cgiKey = settings.CGIKey
	}

	return &Context{
		env:     detectEnvironment(o),
		debug:   detectDebug(o),
		testing: detectTesting(o),
		mode:    detectMode(o),
		mirror:  o.mirror,
	}
}

// detectEnvironment resolves the running environment. An existing mirror
// entry wins unconditionally and is trusted verbatim, without validating it
// against the three known names; only explicit Set validates. Then the marker
// files are checked, development before staging, and the fallback is
// production: the absence of any signal must never be mistaken for a
// non-production machine.
func detectEnvironment(o detectOptions) Environment {
	if v, ok := o.mirror.Lookup(EnvKey); ok && v != "" {
		return Environment(v)
	}
	if markerExists(o.confDir, developmentMarker) {
		return Development
	}
	if markerExists(o.confDir, stagingMarker) {
		return Staging
	}
	return Production
}

// detectDebug resolves the debug flag from the mirror entry or the literal
// --debug argument token.
func detectDebug(o detectOptions) bool {
	if v, ok := o.mirror.Lookup(DebugKey); ok && truthy(v) {
		return true
	}
	return slices.Contains(o.args, debugFlag)
}

// detectTesting resolves the testing flag from the mirror entry or from the
// running executable living in a directory named "t". The executable's own
// location on disk is what counts, not the working directory.
func detectTesting(o detectOptions) bool {
	if v, ok := o.mirror.Lookup(TestingKey); ok && truthy(v) {
		return true
	}
	exe, err := o.executable()
	if err != nil {
		return false
	}
	return filepath.Base(filepath.Dir(exe)) == testDirName
}

// detectMode resolves the execution mode from marker-key presence alone; the
// values are ignored. The embedded-server marker outranks the CGI one because
// embedded runtimes usually expose the request method too.
func detectMode(o detectOptions) ExecutionMode {
	if _, ok := o.mirror.Lookup(o.embeddedKey); ok {
		return EmbeddedServer
	}
	if _, ok := o.mirror.Lookup(o.cgiKey); ok {
		return CGI
	}
	return Shell
}

// markerExists reports whether the named marker file is present. A failed
// stat is treated identically to "file absent".
func markerExists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}
