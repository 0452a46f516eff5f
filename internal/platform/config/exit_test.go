package config_test

import (
	"os"
	"os/exec"
	"strings"
	"testing"

	"github.com/okarvel/duskhaven/internal/platform/config"
)

// Exitf calls os.Exit, so the test re-runs itself in a subprocess and
// inspects the exit code and stderr from the outside.
func TestExitfWritesStderrAndExits(t *testing.T) {
	if os.Getenv("EXITF_SUBPROCESS") == "1" {
		config.Exitf("open store: %s", "disk full")
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestExitfWritesStderrAndExits$")
	cmd.Env = append(os.Environ(), "EXITF_SUBPROCESS=1")
	out, err := cmd.CombinedOutput()

	exitErr, ok := err.(*exec.ExitError)
	if !ok {
		t.Fatalf("err = %T (%v), want *exec.ExitError", err, err)
	}
	if exitErr.ExitCode() != 1 {
		t.Fatalf("exit code = %d, want 1", exitErr.ExitCode())
	}
	if !strings.Contains(string(out), "open store: disk full") {
		t.Fatalf("output = %q, want the formatted message", out)
	}
}
