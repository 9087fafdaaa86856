// Package proc runs external programs with bounded timeouts and
// captured output. Commands are always executed with a discrete
// argument vector - never through a shell - so caller-supplied text
// can never be interpreted by shell metacharacter expansion.
package proc

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds an invocation when the request does not set one.
const DefaultTimeout = 30 * time.Second

// Request describes a single external invocation.
type Request struct {
	Name    string        // program to run, resolved via PATH if not absolute
	Args    []string      // discrete argument vector
	Stdin   string        // piped to the process, empty means no stdin
	Timeout time.Duration // zero means DefaultTimeout
}

// Result holds the captured output of a finished invocation.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

// RunFunc is the signature of Run. Callers hold a RunFunc so tests can
// substitute a fake invoker without spawning processes.
type RunFunc func(ctx context.Context, req Request) (Result, error)

// Run executes req and waits for completion or timeout.
//
// Error taxonomy:
//   - spawn failure (binary missing, not executable) wraps ErrSpawn
//   - timeout kills the process and wraps ErrTimeout; partial output
//     is discarded, never returned
//   - nonzero exit wraps ErrNonZeroExit and carries the exit code and
//     captured stderr in the message; Result is still populated
func Run(ctx context.Context, req Request) (Result, error) {
	timeout := req.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, req.Name, req.Args...)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if req.Stdin != "" {
		cmd.Stdin = strings.NewReader(req.Stdin)
	}

	startErr := cmd.Start()
	if startErr != nil {
		return Result{}, fmt.Errorf("%w: %s: %v", ErrSpawn, req.Name, startErr)
	}

	waitErr := cmd.Wait()

	if ctx.Err() == context.DeadlineExceeded {
		return Result{}, fmt.Errorf("%w: %s after %s", ErrTimeout, req.Name, timeout)
	}

	result := Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: cmd.ProcessState.ExitCode(),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if errors.As(waitErr, &exitErr) {
			return result, fmt.Errorf("%w: %s exited %d: %s",
				ErrNonZeroExit, req.Name, result.ExitCode, strings.TrimSpace(result.Stderr))
		}

		return result, fmt.Errorf("%w: %s: %v", ErrSpawn, req.Name, waitErr)
	}

	return result, nil
}
