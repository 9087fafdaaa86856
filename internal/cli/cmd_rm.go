package cli

import (
	"context"
	"io"

	flag "github.com/spf13/pflag"

	"remkit/internal/reminders"
)

func cmdRm(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		a.io.Println("Usage: remkit rm <title> [--list=<name>]")
		a.io.Println("")
		a.io.Println("Delete the first reminder matching <title>. Without --list")
		a.io.Println("every list is searched.")

		return nil
	}

	flagSet := flag.NewFlagSet("rm", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	list := flagSet.String("list", "", "Search only this list")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() == 0 {
		return errTitleArgRequired
	}

	req := reminders.DeleteRequest{Title: flagSet.Arg(0), List: *list}

	return a.write(ctx,
		func() (string, error) { return reminders.BuildDeleteScript(req) },
		func(ctx context.Context) (string, error) { return a.client.Delete(ctx, req) },
	)
}

func cmdMv(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		a.io.Println("Usage: remkit mv <title> <from> <to>")
		a.io.Println("")
		a.io.Println("Move the first reminder matching <title> from list <from>")
		a.io.Println("to list <to>.")

		return nil
	}

	if len(args) != 3 {
		return errMvArgs
	}

	req := reminders.MoveRequest{Title: args[0], From: args[1], To: args[2]}

	return a.write(ctx,
		func() (string, error) { return reminders.BuildMoveScript(req) },
		func(ctx context.Context) (string, error) { return a.client.Move(ctx, req) },
	)
}
