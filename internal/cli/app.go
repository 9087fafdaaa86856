package cli

import (
	"context"
	"log/slog"

	"remkit/internal/binsec"
	"remkit/internal/config"
	"remkit/internal/datenorm"
	"remkit/internal/proc"
	"remkit/internal/reminders"
)

// app carries the wired dependencies every command handler needs.
type app struct {
	io     *IO
	cfg    config.Config
	clock  *datenorm.Clock
	client *reminders.Client
	dryRun bool
}

// newApp wires config into a ready client. The invoker is injectable
// so tests never spawn osascript or the helper.
func newApp(ioCtx *IO, cfg config.Config, dryRun bool, invoke proc.RunFunc, logger *slog.Logger) *app {
	root := binsec.ProjectRoot(cfg.EffectiveCwd)

	resolver := &binsec.Resolver{
		StartDir: cfg.EffectiveCwd,
		Override: cfg.HelperPath,
		Config:   binsec.ConfigForPosture(cfg.Posture, root, ""),
		Logger:   logger,
	}

	clock := datenorm.NewClockWith(invoke)

	client := reminders.NewClient(reminders.Options{
		Resolver: resolver,
		Clock:    clock,
		Timeout:  cfg.Timeout(),
		Logger:   logger,
		Invoke:   invoke,
	})

	return &app{
		io:     ioCtx,
		cfg:    cfg,
		clock:  clock,
		client: client,
		dryRun: dryRun,
	}
}

// list resolves the effective list name: the flag value when set,
// otherwise the configured default.
func (a *app) list(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}

	return a.cfg.DefaultList
}

// write runs one store mutation. In dry-run mode the synthesized
// script is printed instead of executed, so the exact osascript input
// can be inspected on any platform.
func (a *app) write(ctx context.Context, build func() (string, error), run func(context.Context) (string, error)) error {
	if a.dryRun {
		script, err := build()
		if err != nil {
			return err
		}

		a.io.Println(script)

		return nil
	}

	out, err := run(ctx)
	if err != nil {
		return err
	}

	if out != "" {
		a.io.Println(out)
	}

	return nil
}
