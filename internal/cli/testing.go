package cli

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"remkit/internal/proc"
)

// CLI provides a clean interface for running commands in tests.
// It manages a temp directory, environment variables, and a fake
// process invoker so no test ever spawns osascript or the helper.
type CLI struct {
	t   *testing.T
	Dir string
	Env map[string]string

	// Requests collects every process invocation the commands made.
	Requests []proc.Request

	// Responses maps binary name to a canned result. Unknown names get
	// Fallback.
	Responses map[string]proc.Result
	Fallback  proc.Result

	// Errors maps binary name to a canned invocation error, returned
	// alongside the matching response.
	Errors map[string]error
}

// fakeResult wraps stdout in a successful process result.
func fakeResult(stdout string) proc.Result {
	return proc.Result{Stdout: stdout}
}

// NewCLI creates a new test CLI with a temp directory.
func NewCLI(t *testing.T) *CLI {
	t.Helper()

	return &CLI{
		t:         t,
		Dir:       t.TempDir(),
		Env:       map[string]string{},
		Responses: map[string]proc.Result{},
	}
}

func (r *CLI) invoke(_ context.Context, req proc.Request) (proc.Result, error) {
	r.Requests = append(r.Requests, req)

	err := r.Errors[req.Name]

	if result, ok := r.Responses[req.Name]; ok {
		return result, err
	}

	return r.Fallback, err
}

// StageHelper writes an executable fake helper binary at the
// conventional candidate path under the temp dir and returns its path.
func (r *CLI) StageHelper() string {
	r.t.Helper()

	path := filepath.Join(r.Dir, "helper", ".build", "release", "reminders-helper")
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		r.t.Fatal(err)
	}

	if err := os.WriteFile(path, []byte("#!/bin/sh\n"), 0o755); err != nil {
		r.t.Fatal(err)
	}

	return path
}

// Run executes the CLI with the given args and returns stdout, stderr, and exit code.
// Args should not include "remkit" or "--cwd" - those are added automatically.
func (r *CLI) Run(args ...string) (string, string, int) {
	return r.RunWithInput(nil, args...)
}

// RunWithInput executes the CLI with stdin and returns stdout, stderr, and exit code.
func (r *CLI) RunWithInput(stdin io.Reader, args ...string) (string, string, int) {
	var outBuf, errBuf bytes.Buffer

	fullArgs := append([]string{"remkit", "--cwd", r.Dir}, args...)
	code := run(stdin, &outBuf, &errBuf, fullArgs, r.Env, r.invoke)

	return outBuf.String(), errBuf.String(), code
}

// MustRun executes the CLI and fails the test if the command returns non-zero.
// Returns trimmed stdout on success.
func (r *CLI) MustRun(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code != 0 {
		r.t.Fatalf("command %v failed with exit code %d\nstderr: %s", args, code, stderr)
	}

	return strings.TrimSpace(stdout)
}

// MustFail executes the CLI and fails the test if the command succeeds.
// Returns trimmed stderr.
func (r *CLI) MustFail(args ...string) string {
	r.t.Helper()

	stdout, stderr, code := r.Run(args...)
	if code == 0 {
		r.t.Fatalf("command %v should have failed but succeeded\nstdout: %s", args, stdout)
	}

	return strings.TrimSpace(stderr)
}
