package cli

import (
	"fmt"
	"strings"
	"testing"

	"remkit/internal/proc"
)

func TestDoctorReadyWhenBothProbesPass(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	helperPath := r.StageHelper()
	r.Responses["osascript"] = fakeResult("Reminders, Errands\n")
	r.Fallback = fakeResult("")

	stdout, stderr, code := r.Run("doctor")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0\nstderr: %s", code, stderr)
	}

	if !strings.Contains(stdout, helperPath) {
		t.Errorf("resolved helper path missing:\n%s", stdout)
	}

	if !strings.Contains(stdout, "data access: ok") {
		t.Errorf("stdout:\n%s", stdout)
	}

	if !strings.Contains(stdout, "automation: ok") {
		t.Errorf("stdout:\n%s", stdout)
	}

	if !strings.Contains(stdout, "ready") {
		t.Errorf("stdout:\n%s", stdout)
	}
}

func TestDoctorAutomationDenied(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.Responses["osascript"] = proc.Result{
		Stderr:   "execution error: Not authorized to send Apple events to Reminders. (-1743)",
		ExitCode: 1,
	}
	r.Errors = map[string]error{
		"osascript": fmt.Errorf("%w: exited 1", proc.ErrNonZeroExit),
	}
	r.Fallback = fakeResult("")

	stdout, stderr, code := r.Run("doctor")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	if !strings.Contains(stdout, "Not authorized") {
		t.Errorf("probe detail missing:\n%s", stdout)
	}

	if !strings.Contains(stderr, "Privacy & Security > Automation") {
		t.Errorf("guidance missing:\n%s", stderr)
	}

	if strings.Contains(stderr, "Privacy & Security > Reminders") {
		t.Errorf("guidance must not name the passing probe:\n%s", stderr)
	}
}

func TestDoctorReportsHelperValidationFailure(t *testing.T) {
	t.Parallel()

	// No helper binary exists under the temp dir, so validation of the
	// fallback path must fail and surface as a warning.
	r := NewCLI(t)
	r.Responses["osascript"] = fakeResult("Reminders\n")
	r.Fallback = fakeResult("")

	_, stderr, code := r.Run("doctor")
	if code != 1 {
		t.Fatalf("exit code = %d, want 1", code)
	}

	if !strings.Contains(stderr, "helper binary failed validation") {
		t.Errorf("stderr:\n%s", stderr)
	}
}
