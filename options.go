package runenv

// Option configures detection performed by New.
type Option func(*detectOptions)

// detectOptions collects everything detection needs. Zero values mean "use
// Settings from the mirror table, then the built-in default".
type detectOptions struct {
	mirror      Mirror
	args        []string
	confDir     string
	executable  func() (string, error)
	embeddedKey string
	cgiKey      string
	dotEnvFiles []string
	loadDotEnv  bool
}

// WithMirror replaces the process environment table with a custom Mirror.
// Tests typically pass a MapMirror to keep detection and overrides fully
// isolated from the real environment.
func WithMirror(m Mirror) Option {
	return func(o *detectOptions) {
		if m != nil {
			o.mirror = m
		}
	}
}

// WithArgs replaces the command-line arguments consulted by debug detection.
// Defaults to os.Args.
func WithArgs(args []string) Option {
	return func(o *detectOptions) { o.args = args }
}

// WithConfigDir replaces the system configuration directory scanned for the
// development-machine and staging-machine marker files. Defaults to the
// RUN_ENV_confdir setting, then /etc (resolved through the platform path
// separator).
func WithConfigDir(dir string) Option {
	return func(o *detectOptions) { o.confDir = dir }
}

// WithExecutable replaces the executable-location resolver used by testing
// detection. Defaults to os.Executable.
func WithExecutable(resolve func() (string, error)) Option {
	return func(o *detectOptions) {
		if resolve != nil {
			o.executable = resolve
		}
	}
}

// WithMarkerKeys replaces the environment keys whose presence signals the
// embedded-server and CGI execution modes. Empty strings keep the configured
// defaults (MOD_PERL and REQUEST_METHOD).
func WithMarkerKeys(embeddedKey, cgiKey string) Option {
	return func(o *detectOptions) {
		o.embeddedKey = embeddedKey
		o.cgiKey = cgiKey
	}
}

// WithDotEnv loads the named .env files into the process environment before
// detection runs. With no file names the default ./.env is attempted. Missing
// files are ignored; an existing variable is never overridden.
func WithDotEnv(files ...string) Option {
	return func(o *detectOptions) {
		o.loadDotEnv = true
		o.dotEnvFiles = append(o.dotEnvFiles, files...)
	}
}
