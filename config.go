package runenv

import (
	"path/filepath"
	"strings"

	"github.com/caarlos0/env/v11"
)

// Settings are the tunable parts of detection, parsed from the mirror table
// itself. They let a deployment relocate the marker-file directory or rename
// the execution-mode marker keys without rebuilding, and let test fixtures
// point a spawned subprocess at a scratch directory.
type Settings struct {
	// ConfigDir overrides the directory scanned for the environment marker
	// files. Empty means the platform default (/etc on POSIX).
	ConfigDir string `env:"RUN_ENV_confdir"`
	// EmbeddedKey is the environment key whose presence signals the
	// embedded-server execution mode.
	EmbeddedKey string `env:"RUN_ENV_embedded_key" envDefault:"MOD_PERL"`
	// CGIKey is the environment key whose presence signals the CGI execution
	// mode.
	CGIKey string `env:"RUN_ENV_cgi_key" envDefault:"REQUEST_METHOD"`
}

// LoadSettings parses Settings from a "key=value" environment listing, as
// returned by Mirror.Environ or os.Environ.
func LoadSettings(environ []string) (Settings, error) {
	table := make(map[string]string, len(environ))
	for _, kv := range environ {
		if k, v, ok := strings.Cut(kv, "="); ok {
			table[k] = v
		}
	}
	var s Settings
	if err := env.ParseWithOptions(&s, env.Options{Environment: table}); err != nil {
		return Settings{}, err
	}
	return s, nil
}

// defaultConfigDir resolves the system configuration directory through the
// platform path separator rather than hardcoding a POSIX path.
func defaultConfigDir() string {
	return filepath.Join(string(filepath.Separator), "etc")
}
