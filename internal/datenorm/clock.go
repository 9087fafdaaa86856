// Package datenorm validates and reformats due-date strings for
// embedding in AppleScript date literals.
package datenorm

import (
	"context"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"remkit/internal/proc"
)

// clockProbeTimeout bounds the defaults(1) read. The probe is advisory;
// a slow or failing probe just leaves the 12-hour default in place.
const clockProbeTimeout = 5 * time.Second

// Clock holds the process-wide clock-format preference. The flag is
// computed at most once, asynchronously, on first use; callers are
// never blocked waiting for it. Until the probe completes (or if it
// fails) Use24Hour reports false, the 12-hour default.
//
// Construct once at startup and pass by reference to every component
// that formats date-times.
type Clock struct {
	once  sync.Once
	use24 atomic.Bool

	// probe reads the host preference. Overridable in tests.
	probe func(ctx context.Context) (bool, error)
}

// NewClock returns a Clock backed by the macOS global preference
// AppleICUForce24HourTime.
func NewClock() *Clock {
	return NewClockWith(proc.Run)
}

// NewClockWith is NewClock with a substituted process invoker.
func NewClockWith(invoke proc.RunFunc) *Clock {
	return &Clock{probe: func(ctx context.Context) (bool, error) {
		return probeClockFormat(ctx, invoke)
	}}
}

// StaticClock returns a Clock pinned to the given format. No probe is
// ever run. Intended for tests and for --dry-run determinism.
func StaticClock(use24 bool) *Clock {
	c := &Clock{probe: nil}
	c.once.Do(func() {})
	c.use24.Store(use24)

	return c
}

// Use24Hour reports the current preference, kicking off the background
// refresh on first call.
func (c *Clock) Use24Hour() bool {
	c.once.Do(func() {
		probe := c.probe
		if probe == nil {
			return
		}

		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), clockProbeTimeout)
			defer cancel()

			use24, err := probe(ctx)
			if err != nil {
				return // keep the 12-hour default
			}

			c.use24.Store(use24)
		}()
	})

	return c.use24.Load()
}

// probeClockFormat runs `defaults read -g AppleICUForce24HourTime`.
// The key is absent on hosts that never toggled the setting; defaults
// exits nonzero then, which callers treat as "keep the default".
func probeClockFormat(ctx context.Context, invoke proc.RunFunc) (bool, error) {
	result, err := invoke(ctx, proc.Request{
		Name:    "defaults",
		Args:    []string{"read", "-g", "AppleICUForce24HourTime"},
		Timeout: clockProbeTimeout,
	})
	if err != nil {
		return false, err
	}

	return strings.TrimSpace(result.Stdout) == "1", nil
}
