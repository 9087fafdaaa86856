// Package permission runs two independent minimal probes to determine
// whether reminder operations can succeed before attempting them, so
// callers get actionable guidance instead of opaque failures.
package permission

import (
	"context"
	"strings"
	"sync"
	"time"

	"remkit/internal/proc"
)

// probeTimeout bounds each probe independently.
const probeTimeout = 10 * time.Second

// automationProbeScript is the trivial read-only statement used to
// test automation execution rights.
const automationProbeScript = `tell application "Reminders" to get name of every list`

// Keywords in stderr that indicate a permission problem rather than an
// environmental failure.
var permissionKeywords = []string{
	"permission",
	"denied",
	"access",
	"authorization",
	"not authorized",
}

// Status is the outcome of one probe.
type Status struct {
	Granted         bool
	Error           string
	NeedsUserAction bool
}

// Readiness aggregates both probes.
type Readiness struct {
	Helper     Status // direct data-store access via the native helper
	Automation Status // AppleScript automation execution
}

// Ready reports whether both probes were granted.
func (r Readiness) Ready() bool {
	return r.Helper.Granted && r.Automation.Granted
}

// Guidance returns remediation text naming only the failing probe(s).
// Empty when Ready.
func (r Readiness) Guidance() string {
	var steps []string

	if !r.Helper.Granted {
		steps = append(steps, helperGuidance)
	}

	if !r.Automation.Granted {
		steps = append(steps, automationGuidance)
	}

	return strings.Join(steps, "\n")
}

const (
	helperGuidance = "Reminders data access is not granted. Open System Settings > " +
		"Privacy & Security > Reminders and enable access for this application."
	automationGuidance = "Automation of the Reminders app is not granted. Open System Settings > " +
		"Privacy & Security > Automation and allow this application to control Reminders."
)

// Check runs both probes concurrently, each with its own timeout.
func Check(ctx context.Context, helperPath string) Readiness {
	return CheckWith(ctx, helperPath, proc.Run)
}

// CheckWith is Check with a substituted process invoker.
func CheckWith(ctx context.Context, helperPath string, invoke proc.RunFunc) Readiness {
	var (
		wg        sync.WaitGroup
		readiness Readiness
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		readiness.Helper = checkHelper(ctx, helperPath, invoke)
	}()

	go func() {
		defer wg.Done()
		readiness.Automation = checkAutomation(ctx, invoke)
	}()

	wg.Wait()

	return readiness
}

// checkHelper invokes the native helper's dedicated permission flag.
// Success is exit code zero.
func checkHelper(ctx context.Context, helperPath string, invoke proc.RunFunc) Status {
	result, err := invoke(ctx, proc.Request{
		Name:    helperPath,
		Args:    []string{"--check-permissions"},
		Timeout: probeTimeout,
	})
	if err != nil {
		return classify(err, result.Stderr)
	}

	return Status{Granted: true}
}

// checkAutomation executes a trivial read-only automation statement.
// Success is exit code zero and non-empty stdout: osascript can exit
// zero with empty output in some sandboxed states, which still means
// automation is not actually usable.
func checkAutomation(ctx context.Context, invoke proc.RunFunc) Status {
	result, err := invoke(ctx, proc.Request{
		Name:    "osascript",
		Args:    []string{"-"},
		Stdin:   automationProbeScript + "\n",
		Timeout: probeTimeout,
	})
	if err != nil {
		return classify(err, result.Stderr)
	}

	if strings.TrimSpace(result.Stdout) == "" {
		return Status{Granted: false, Error: "automation probe produced no output"}
	}

	return Status{Granted: true}
}

// classify scans stderr for the permission keyword set. A match means
// the user has to act (grant rights); no match is a generic failure
// carrying the raw detail.
func classify(err error, stderr string) Status {
	lowered := strings.ToLower(stderr)

	for _, keyword := range permissionKeywords {
		if strings.Contains(lowered, keyword) {
			return Status{
				Granted:         false,
				Error:           strings.TrimSpace(stderr),
				NeedsUserAction: true,
			}
		}
	}

	detail := strings.TrimSpace(stderr)
	if detail == "" {
		detail = err.Error()
	}

	return Status{Granted: false, Error: detail}
}
