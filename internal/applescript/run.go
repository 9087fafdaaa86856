package applescript

import (
	"context"
	"strings"
	"time"

	"remkit/internal/proc"
)

const osascriptBin = "osascript"

// Runner executes AppleScript programs via osascript. The zero value
// is not usable; construct with NewRunner.
type Runner struct {
	invoke  proc.RunFunc
	timeout time.Duration
}

// NewRunner returns a Runner with the given per-script timeout. A zero
// timeout falls back to proc.DefaultTimeout.
func NewRunner(timeout time.Duration) *Runner {
	return &Runner{invoke: proc.Run, timeout: timeout}
}

// NewRunnerWithInvoker is like NewRunner but substitutes the process
// invoker. Used by tests to avoid spawning osascript.
func NewRunnerWithInvoker(timeout time.Duration, invoke proc.RunFunc) *Runner {
	return &Runner{invoke: invoke, timeout: timeout}
}

// Run executes script and returns trimmed stdout. The script is passed
// on stdin ("osascript -" reads the program from standard input);
// AppleScript runtime errors surface as a nonzero exit with the error
// text on stderr, which proc.Run folds into a single descriptive
// failure.
func (r *Runner) Run(ctx context.Context, script string) (string, error) {
	result, err := r.invoke(ctx, proc.Request{
		Name:    osascriptBin,
		Args:    []string{"-"},
		Stdin:   script,
		Timeout: r.timeout,
	})
	if err != nil {
		return "", err
	}

	return strings.TrimSpace(result.Stdout), nil
}
