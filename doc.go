// Package runenv classifies the runtime context of the current process: which
// running environment it operates in (development, staging or production), how
// it was invoked (shell, CGI or an embedded server), and whether the debug and
// testing flags are on.
//
// Detection happens exactly once, when a Context is constructed with New. From
// that point on accessors are cheap cached reads and every explicit override
// is mirrored into the inherited process environment, so subprocesses spawned
// afterwards classify themselves the same way as the parent.
//
// # Detection
//
// Each of the four sub-states is detected independently, first match wins:
//
//   - Running environment: the RUN_ENV_current environment variable if set;
//     otherwise the presence of a development-machine or staging-machine
//     marker file in the system configuration directory (/etc on POSIX);
//     otherwise production. Absence of any signal is never mistaken for a
//     non-production environment.
//   - Debug: the RUN_ENV_debug environment variable, or the literal --debug
//     token anywhere in the process arguments.
//   - Testing: the RUN_ENV_testing environment variable, or the running
//     executable living in a directory named exactly "t" (the conventional
//     location of test scripts).
//   - Execution mode: presence of the embedded-server marker variable
//     (MOD_PERL by default), then the CGI request-method marker
//     (REQUEST_METHOD), then shell. Execution mode is never mirrored back
//     into the environment: it describes how this process was invoked, not a
//     fact meaningful to its children.
//
// Detection never fails: filesystem and environment lookups that error are
// treated as negative signals.
//
// # Usage
//
// Most applications use the process-wide default context:
//
//	import "github.com/dmitrymomot/runenv"
//
//	if runenv.IsProduction() {
//	    // production-specific behaviour
//	}
//
// Overrides update the cached state and the inherited environment table in one
// step, so child processes observe them too:
//
//	runenv.SetStaging()
//	runenv.SetDebug()
//	cmd := exec.Command("worker") // inherits RUN_ENV_current=staging, RUN_ENV_debug=1
//
// Batched declarative configuration is available through Apply and ApplyFile:
//
//	if err := runenv.Apply("-testing", "debug", "production"); err != nil {
//	    log.Fatal(err)
//	}
//
// Tests that need isolated state construct their own Context instead of
// mutating the process-wide one:
//
//	ctx := runenv.New(
//	    runenv.WithMirror(runenv.MapMirror{}),
//	    runenv.WithConfigDir(t.TempDir()),
//	)
//
// # Error Handling
//
// Only explicit overrides validate their input. Set returns
// ErrInvalidEnvironment, SetMode returns ErrInvalidExecutionMode, and Apply
// stops at the first unknown token with ErrUnknownToken, leaving earlier
// tokens already applied.
package runenv
