package cli

import (
	"context"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"remkit/internal/transcript"
)

// lsOptions holds parsed ls command options.
type lsOptions struct {
	completed bool
	list      string
}

func cmdLs(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		printLsHelp(a.io)

		return nil
	}

	opts, err := parseLsFlags(args)
	if err != nil {
		return err
	}

	snap, err := a.client.Snapshot(ctx, opts.completed)
	if err != nil {
		return err
	}

	for _, warning := range snap.Warnings {
		a.io.Warn(warning, "check the helper output format")
	}

	list := a.list(opts.list)

	for _, item := range snap.Items {
		if list != "" && item.List != list {
			continue
		}

		a.io.Println(formatItemLine(item))
	}

	return nil
}

func parseLsFlags(args []string) (lsOptions, error) {
	flagSet := flag.NewFlagSet("ls", flag.ContinueOnError)
	flagSet.SetOutput(io.Discard)

	completed := flagSet.Bool("completed", false, "Include completed reminders")
	list := flagSet.String("list", "", "Show only this list")

	if err := flagSet.Parse(args); err != nil {
		return lsOptions{}, err
	}

	return lsOptions{completed: *completed, list: *list}, nil
}

func printLsHelp(o *IO) {
	o.Println("Usage: remkit ls [options]")
	o.Println("")
	o.Println("List reminders. Completed reminders are hidden unless requested.")
	o.Println("")
	o.Println("Options:")
	o.Println("  --completed      Include completed reminders")
	o.Println("  --list=<name>    Show only reminders in <name>")
}

// formatItemLine renders one reminder as a single scannable line.
func formatItemLine(item transcript.Item) string {
	var builder strings.Builder

	if item.Completed {
		builder.WriteString("[x] ")
	} else {
		builder.WriteString("[ ] ")
	}

	builder.WriteString(item.Title)

	if item.DueDate != "" {
		builder.WriteString(" (due: ")
		builder.WriteString(item.DueDate)
		builder.WriteString(")")
	}

	builder.WriteString(" [")
	builder.WriteString(item.List)
	builder.WriteString("]")

	if item.Notes != "" {
		builder.WriteString(" - ")
		builder.WriteString(item.Notes)
	}

	return builder.String()
}

func cmdLists(ctx context.Context, a *app, args []string) error {
	if hasHelpFlag(args) {
		a.io.Println("Usage: remkit lists")
		a.io.Println("")
		a.io.Println("Print every reminder list, numbered.")

		return nil
	}

	snap, err := a.client.Snapshot(ctx, false)
	if err != nil {
		return err
	}

	for _, warning := range snap.Warnings {
		a.io.Warn(warning, "check the helper output format")
	}

	for _, collection := range snap.Collections {
		a.io.Printf("%d. %s\n", collection.ID, collection.Title)
	}

	return nil
}
