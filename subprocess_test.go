package runenv_test

import (
	"fmt"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/runenv"
)

// TestHelperProcess is not a real test: it is re-executed as a subprocess by
// TestSubprocessPropagation and reports its own freshly detected
// classification on stdout.
func TestHelperProcess(t *testing.T) {
	if os.Getenv("RUNENV_HELPER_PROCESS") != "1" {
		return
	}
	c := runenv.New()
	fmt.Printf("detected env=%s debug=%t testing=%t mode=%s\n",
		c.Current(), c.IsDebug(), c.IsTesting(), c.Mode())
}

// runHelper re-executes the test binary so the child performs detection with
// nothing but the environment table it inherited from this process.
func runHelper(t *testing.T) string {
	t.Helper()
	cmd := exec.Command(os.Args[0], "-test.run=^TestHelperProcess$", "-test.v")
	cmd.Env = append(os.Environ(), "RUNENV_HELPER_PROCESS=1")
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "helper process failed: %s", out)
	return string(out)
}

func TestSubprocessPropagation(t *testing.T) {
	// Writes through the real process environment on purpose: inheritance by
	// spawned children is the behavior under test. t.Setenv also blocks
	// accidental t.Parallel here.
	t.Setenv("RUN_ENV_confdir", t.TempDir())
	t.Cleanup(func() {
		_ = os.Unsetenv(runenv.EnvKey)
		_ = os.Unsetenv(runenv.DebugKey)
		_ = os.Unsetenv(runenv.TestingKey)
	})

	c := runenv.New()
	c.SetStaging()
	c.SetDebug()

	out := runHelper(t)
	assert.Contains(t, out, "detected env=staging debug=true")

	c.ClearDebug()
	// Clearing the running-environment override has no dedicated operation;
	// removing the mirror entry out-of-band is the accepted escape hatch.
	require.NoError(t, os.Unsetenv(runenv.EnvKey))

	out = runHelper(t)
	assert.Contains(t, out, "detected env=production debug=false")
}
