package cli

import (
	"context"
	"errors"

	"remkit/internal/reminders"
)

var errMvlistArgs = errors.New("mvlist requires <old> <new>")

func cmdMklist(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		a.io.Println("Usage: remkit mklist <name>")

		return nil
	}

	if len(args) != 1 {
		return errNameArgRequired
	}

	name := args[0]

	return a.write(ctx,
		func() (string, error) { return reminders.BuildListCreateScript(name) },
		func(ctx context.Context) (string, error) { return a.client.CreateList(ctx, name) },
	)
}

func cmdMvlist(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		a.io.Println("Usage: remkit mvlist <old> <new>")

		return nil
	}

	if len(args) != 2 {
		return errMvlistArgs
	}

	oldName, newName := args[0], args[1]

	return a.write(ctx,
		func() (string, error) { return reminders.BuildListRenameScript(oldName, newName) },
		func(ctx context.Context) (string, error) { return a.client.RenameList(ctx, oldName, newName) },
	)
}

func cmdRmlist(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		a.io.Println("Usage: remkit rmlist <name>")
		a.io.Println("")
		a.io.Println("Delete a list. Reminders in it are removed by the app.")

		return nil
	}

	if len(args) != 1 {
		return errNameArgRequired
	}

	name := args[0]

	return a.write(ctx,
		func() (string, error) { return reminders.BuildListDeleteScript(name) },
		func(ctx context.Context) (string, error) { return a.client.DeleteList(ctx, name) },
	)
}
