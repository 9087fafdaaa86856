package cli

import (
	"context"
	"io"

	flag "github.com/spf13/pflag"

	"remkit/internal/reminders"
)

func cmdAdd(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		printAddHelp(a.io)

		return nil
	}

	flagSet := flag.NewFlagSet("add", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	due := flagSet.String("due", "", "Due date")
	note := flagSet.String("note", "", "Note body")
	url := flagSet.String("url", "", "Associated URL")
	list := flagSet.String("list", "", "Target list")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() == 0 {
		return errTitleArgRequired
	}

	req := reminders.CreateRequest{
		Title: flagSet.Arg(0),
		Due:   *due,
		Note:  *note,
		URL:   *url,
		List:  a.list(*list),
	}

	return a.write(ctx,
		func() (string, error) { return reminders.BuildCreateScript(req, a.clock) },
		func(ctx context.Context) (string, error) { return a.client.Create(ctx, req) },
	)
}

func printAddHelp(o *IO) {
	o.Println("Usage: remkit add <title> [options]")
	o.Println("")
	o.Println("Add a reminder. Without --list the configured default list is")
	o.Println("used, or the account default when none is configured.")
	o.Println("")
	o.Println("Options:")
	o.Println("  --due=<date>     Due date: YYYY-MM-DD, 'YYYY-MM-DD HH:MM:SS', or ISO 8601")
	o.Println("  --note=<text>    Note body")
	o.Println("  --url=<url>      URL stored in the note body")
	o.Println("  --list=<name>    Target list")
}
