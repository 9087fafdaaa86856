package reminders

import (
	"context"
	"log/slog"
	"time"

	"remkit/internal/applescript"
	"remkit/internal/binsec"
	"remkit/internal/datenorm"
	"remkit/internal/permission"
	"remkit/internal/proc"
	"remkit/internal/transcript"
)

// showCompletedFlag asks the helper to include completed reminders in
// its transcript.
const showCompletedFlag = "--show-completed"

// Options configures a Client. Zero-value fields get working defaults.
type Options struct {
	// Resolver locates the native helper binary. Nil means a default
	// resolver with the production validation config rooted at the
	// current working directory.
	Resolver *binsec.Resolver

	// Clock supplies the host clock-format preference for date
	// synthesis. Nil means a probing clock.
	Clock *datenorm.Clock

	// Timeout bounds each external process invocation. Zero falls back
	// to proc.DefaultTimeout.
	Timeout time.Duration

	Logger *slog.Logger

	// Invoke substitutes the process invoker. Nil means proc.Run.
	Invoke proc.RunFunc
}

// Client is the boundary between callers and the Reminders store.
// Reads invoke the native helper and parse its transcript; writes
// synthesize AppleScript and run it through osascript.
type Client struct {
	resolver *binsec.Resolver
	clock    *datenorm.Clock
	runner   *applescript.Runner
	invoke   proc.RunFunc
	timeout  time.Duration
	logger   *slog.Logger
}

// NewClient builds a Client from opts.
func NewClient(opts Options) *Client {
	resolver := opts.Resolver
	if resolver == nil {
		resolver = &binsec.Resolver{Config: binsec.ProductionConfig("", ""), Logger: opts.Logger}
	}

	clock := opts.Clock
	if clock == nil {
		clock = datenorm.NewClock()
	}

	invoke := opts.Invoke
	if invoke == nil {
		invoke = proc.Run
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		resolver: resolver,
		clock:    clock,
		runner:   applescript.NewRunnerWithInvoker(opts.Timeout, invoke),
		invoke:   invoke,
		timeout:  opts.Timeout,
		logger:   logger,
	}
}

// Snapshot reads the full store state through the native helper.
// Parse warnings are logged and returned alongside the data; they
// never fail the read.
func (c *Client) Snapshot(ctx context.Context, showCompleted bool) (transcript.Result, error) {
	var args []string
	if showCompleted {
		args = append(args, showCompletedFlag)
	}

	result, err := c.invoke(ctx, proc.Request{
		Name:    c.resolver.HelperPath(),
		Args:    args,
		Timeout: c.timeout,
	})
	if err != nil {
		return transcript.Result{}, err
	}

	parsed := transcript.Parse(result.Stdout)
	for _, warning := range parsed.Warnings {
		c.logger.Warn("transcript recovery", "detail", warning)
	}

	return parsed, nil
}

// HelperPath returns the resolved native helper path.
func (c *Client) HelperPath() string {
	return c.resolver.HelperPath()
}

// CheckPermissions probes helper data access and automation rights.
func (c *Client) CheckPermissions(ctx context.Context) permission.Readiness {
	return permission.CheckWith(ctx, c.resolver.HelperPath(), c.invoke)
}

// Create adds a new reminder and returns the confirmation line.
func (c *Client) Create(ctx context.Context, req CreateRequest) (string, error) {
	script, err := BuildCreateScript(req, c.clock)
	if err != nil {
		return "", err
	}

	return c.runner.Run(ctx, script)
}

// Update mutates the supplied fields of an existing reminder.
func (c *Client) Update(ctx context.Context, req UpdateRequest) (string, error) {
	script, err := BuildUpdateScript(req, c.clock)
	if err != nil {
		return "", err
	}

	return c.runner.Run(ctx, script)
}

// Delete removes the first reminder matching the request.
func (c *Client) Delete(ctx context.Context, req DeleteRequest) (string, error) {
	script, err := BuildDeleteScript(req)
	if err != nil {
		return "", err
	}

	return c.runner.Run(ctx, script)
}

// Move relocates a reminder between lists.
func (c *Client) Move(ctx context.Context, req MoveRequest) (string, error) {
	script, err := BuildMoveScript(req)
	if err != nil {
		return "", err
	}

	return c.runner.Run(ctx, script)
}

// CreateList adds a new named list.
func (c *Client) CreateList(ctx context.Context, name string) (string, error) {
	script, err := BuildListCreateScript(name)
	if err != nil {
		return "", err
	}

	return c.runner.Run(ctx, script)
}

// RenameList renames an existing list.
func (c *Client) RenameList(ctx context.Context, oldName, newName string) (string, error) {
	script, err := BuildListRenameScript(oldName, newName)
	if err != nil {
		return "", err
	}

	return c.runner.Run(ctx, script)
}

// DeleteList removes an existing list.
func (c *Client) DeleteList(ctx context.Context, name string) (string, error) {
	script, err := BuildListDeleteScript(name)
	if err != nil {
		return "", err
	}

	return c.runner.Run(ctx, script)
}
