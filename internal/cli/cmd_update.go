package cli

import (
	"context"
	"errors"
	"io"

	flag "github.com/spf13/pflag"

	"remkit/internal/reminders"
)

var errCompleteExclusive = errors.New("--complete and --uncomplete are mutually exclusive")

func cmdUpdate(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		printUpdateHelp(a.io)

		return nil
	}

	flagSet := flag.NewFlagSet("update", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	newTitle := flagSet.String("title", "", "New title")
	due := flagSet.String("due", "", "New due date")
	note := flagSet.String("note", "", "New note body (replaces the existing one)")
	url := flagSet.String("url", "", "URL stored in the note body")
	list := flagSet.String("list", "", "Search only this list")
	complete := flagSet.Bool("complete", false, "Mark completed")
	uncomplete := flagSet.Bool("uncomplete", false, "Mark not completed")

	if err := flagSet.Parse(args); err != nil {
		return err
	}

	if flagSet.NArg() == 0 {
		return errTitleArgRequired
	}

	if *complete && *uncomplete {
		return errCompleteExclusive
	}

	// Only flags the user actually passed become mutation statements;
	// Changed distinguishes an explicit empty value from an absent flag.
	// The configured default list is deliberately not applied here: an
	// unscoped update searches every list.
	req := reminders.UpdateRequest{
		Title: flagSet.Arg(0),
		List:  *list,
	}

	if flagSet.Changed("title") {
		req.NewTitle = newTitle
	}

	if flagSet.Changed("due") {
		req.Due = due
	}

	if flagSet.Changed("note") {
		req.Note = note
	}

	if flagSet.Changed("url") {
		req.URL = url
	}

	if *complete {
		value := true
		req.Completed = &value
	}

	if *uncomplete {
		value := false
		req.Completed = &value
	}

	return a.write(ctx,
		func() (string, error) { return reminders.BuildUpdateScript(req, a.clock) },
		func(ctx context.Context) (string, error) { return a.client.Update(ctx, req) },
	)
}

func printUpdateHelp(o *IO) {
	o.Println("Usage: remkit update <title> [options]")
	o.Println("")
	o.Println("Update a reminder found by exact title. Only the supplied")
	o.Println("options change; everything else is left untouched.")
	o.Println("")
	o.Println("Options:")
	o.Println("  --title=<text>   Rename the reminder")
	o.Println("  --due=<date>     New due date")
	o.Println("  --note=<text>    Replace the note body")
	o.Println("  --url=<url>      Attach a URL to the note body")
	o.Println("  --list=<name>    Search only <name>")
	o.Println("  --complete       Mark completed")
	o.Println("  --uncomplete     Mark not completed")
}
