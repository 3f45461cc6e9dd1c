package runenv_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runenv"
)

// resetDefault rebuilds the process-wide context against an isolated mirror so
// the package-level wrappers can be exercised without touching the real
// process environment.
func resetDefault(t *testing.T, mirror runenv.MapMirror) {
	t.Helper()
	runenv.ResetDefault(
		runenv.WithMirror(mirror),
		runenv.WithConfigDir(t.TempDir()),
		runenv.WithArgs([]string{"app"}),
		runenv.WithExecutable(func() (string, error) { return "/opt/app/bin/app", nil }),
	)
}

func TestDefaultWrappers(t *testing.T) {
	// The default context is process-wide shared state, so no t.Parallel.

	t.Run("running environment", func(t *testing.T) {
		mirror := runenv.MapMirror{}
		resetDefault(t, mirror)

		assert.True(t, runenv.IsProduction())
		assert.Equal(t, runenv.Production, runenv.Current())

		runenv.SetDevelopment()
		assert.True(t, runenv.IsDevelopment())
		runenv.SetStaging()
		assert.True(t, runenv.IsStaging())
		runenv.SetProduction()
		assert.True(t, runenv.IsProduction())

		require.NoError(t, runenv.Set("staging"))
		assert.Equal(t, runenv.Staging, runenv.Current())
		assert.ErrorIs(t, runenv.Set("bogus"), runenv.ErrInvalidEnvironment)

		v, _ := mirror.Lookup(runenv.EnvKey)
		assert.Equal(t, "staging", v)
	})

	t.Run("flags", func(t *testing.T) {
		mirror := runenv.MapMirror{}
		resetDefault(t, mirror)

		runenv.SetDebug()
		assert.True(t, runenv.IsDebug())
		runenv.ClearDebug()
		assert.False(t, runenv.IsDebug())
		_, ok := mirror.Lookup(runenv.DebugKey)
		assert.False(t, ok)

		runenv.SetTesting()
		assert.True(t, runenv.IsTesting())
		runenv.SetTesting(false)
		assert.False(t, runenv.IsTesting())
	})

	t.Run("execution mode", func(t *testing.T) {
		resetDefault(t, runenv.MapMirror{})

		assert.True(t, runenv.IsShell())
		require.NoError(t, runenv.SetMode("cgi"))
		assert.True(t, runenv.IsCGI())
		runenv.SetEmbeddedServer()
		assert.Equal(t, runenv.EmbeddedServer, runenv.Mode())
		runenv.SetShell()
		assert.True(t, runenv.IsShell())
		runenv.SetCGI()
		assert.True(t, runenv.IsCGI())
		assert.ErrorIs(t, runenv.SetMode("fastcgi"), runenv.ErrInvalidExecutionMode)
	})

	t.Run("bulk overrides", func(t *testing.T) {
		resetDefault(t, runenv.MapMirror{})

		require.NoError(t, runenv.Apply("-testing", "debug", "production"))
		assert.False(t, runenv.IsTesting())
		assert.True(t, runenv.IsDebug())
		assert.True(t, runenv.IsProduction())
	})

	t.Run("reset rebuilds from the mirror", func(t *testing.T) {
		resetDefault(t, runenv.MapMirror{runenv.EnvKey: "development"})
		assert.True(t, runenv.IsDevelopment())

		resetDefault(t, runenv.MapMirror{})
		assert.True(t, runenv.IsProduction())
	})
}
