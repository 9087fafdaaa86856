package permission_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"remkit/internal/permission"
	"remkit/internal/proc"
)

const fakeHelper = "/opt/remkit/helper/reminders-helper"

// fakeInvoker routes probe requests to per-probe responses.
func fakeInvoker(helper, automation func() (proc.Result, error)) proc.RunFunc {
	return func(_ context.Context, req proc.Request) (proc.Result, error) {
		if req.Name == fakeHelper {
			return helper()
		}

		return automation()
	}
}

func granted() (proc.Result, error) {
	return proc.Result{Stdout: "Reminders, Errands\n"}, nil
}

func deniedWithStderr(stderr string) func() (proc.Result, error) {
	return func() (proc.Result, error) {
		return proc.Result{Stderr: stderr, ExitCode: 1},
			fmt.Errorf("%w: exited 1: %s", proc.ErrNonZeroExit, stderr)
	}
}

func TestCheckBothGranted(t *testing.T) {
	t.Parallel()

	readiness := permission.CheckWith(context.Background(), fakeHelper,
		fakeInvoker(granted, granted))

	if !readiness.Ready() {
		t.Fatal("expected ready")
	}

	if readiness.Guidance() != "" {
		t.Errorf("guidance should be empty when ready, got %q", readiness.Guidance())
	}
}

func TestCheckAutomationDeniedNamesOnlyAutomation(t *testing.T) {
	t.Parallel()

	readiness := permission.CheckWith(context.Background(), fakeHelper,
		fakeInvoker(granted, deniedWithStderr("execution error: Not authorized to send Apple events to Reminders. (-1743)")))

	if readiness.Ready() {
		t.Fatal("expected not ready")
	}

	if !readiness.Helper.Granted {
		t.Error("helper probe should be granted")
	}

	if !readiness.Automation.NeedsUserAction {
		t.Error("keyword match should set NeedsUserAction")
	}

	guidance := readiness.Guidance()
	if !strings.Contains(guidance, "Automation") {
		t.Errorf("guidance should name the automation probe, got %q", guidance)
	}

	if strings.Contains(guidance, "Reminders data access") {
		t.Errorf("guidance must not name the passing helper probe, got %q", guidance)
	}
}

func TestCheckHelperDeniedNamesOnlyHelper(t *testing.T) {
	t.Parallel()

	readiness := permission.CheckWith(context.Background(), fakeHelper,
		fakeInvoker(deniedWithStderr("EventKit: access denied by user"), granted))

	if readiness.Ready() {
		t.Fatal("expected not ready")
	}

	if !readiness.Helper.NeedsUserAction {
		t.Error("keyword match should set NeedsUserAction")
	}

	guidance := readiness.Guidance()
	if !strings.Contains(guidance, "data access") {
		t.Errorf("guidance should name the helper probe, got %q", guidance)
	}

	if strings.Contains(guidance, "Automation of the Reminders app") {
		t.Errorf("guidance must not name the passing automation probe, got %q", guidance)
	}
}

func TestCheckGenericFailureCarriesStderr(t *testing.T) {
	t.Parallel()

	readiness := permission.CheckWith(context.Background(), fakeHelper,
		fakeInvoker(deniedWithStderr("dyld: library missing"), granted))

	if readiness.Helper.NeedsUserAction {
		t.Error("no keyword match must not claim user action is needed")
	}

	if !strings.Contains(readiness.Helper.Error, "dyld") {
		t.Errorf("raw stderr should be preserved, got %q", readiness.Helper.Error)
	}
}

func TestCheckSpawnFailure(t *testing.T) {
	t.Parallel()

	spawnFail := func() (proc.Result, error) {
		return proc.Result{}, fmt.Errorf("%w: %s", proc.ErrSpawn, fakeHelper)
	}

	readiness := permission.CheckWith(context.Background(), fakeHelper,
		fakeInvoker(spawnFail, granted))

	if readiness.Helper.Granted {
		t.Fatal("spawn failure must not be granted")
	}

	if readiness.Helper.Error == "" {
		t.Error("spawn failure should carry an error description")
	}
}

func TestCheckAutomationEmptyStdoutIsNotGranted(t *testing.T) {
	t.Parallel()

	emptySuccess := func() (proc.Result, error) {
		return proc.Result{Stdout: "  \n"}, nil
	}

	readiness := permission.CheckWith(context.Background(), fakeHelper,
		fakeInvoker(granted, emptySuccess))

	if readiness.Automation.Granted {
		t.Error("exit 0 with empty stdout must not count as granted")
	}
}
