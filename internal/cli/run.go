package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"remkit/internal/config"
	"remkit/internal/proc"
)

const (
	minArgs      = 2
	consumedOne  = 1
	consumedTwo  = 2
	consumedNone = 0
	helpFlag     = "--help"
)

// Run is the main entry point. Returns exit code.
func Run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string) int {
	return run(stdin, out, errOut, args, env, proc.Run)
}

// run is the injectable core: tests substitute the process invoker so
// no command ever spawns osascript or the native helper.
func run(stdin io.Reader, out io.Writer, errOut io.Writer, args []string, env map[string]string, invoke proc.RunFunc) int {
	if len(args) < minArgs {
		printUsage(out)

		return 0
	}

	flags, err := parseGlobalFlags(args[1:])
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	if len(flags.remaining) == 0 {
		printUsage(out)

		return 0
	}

	cmd := flags.remaining[0]
	cmdArgs := flags.remaining[1:]

	if cmd == "-h" || cmd == helpFlag {
		printUsage(out)

		return 0
	}

	cfg, err := config.Load(config.LoadInput{
		WorkDirOverride: flags.workDir,
		ConfigPath:      flags.configPath,
		ListOverride:    flags.list,
		Env:             env,
	})
	if err != nil {
		fprintln(errOut, "error:", err)

		return 1
	}

	ioCtx := NewIO(out, errOut)
	logger := slog.New(slog.NewTextHandler(errOut, &slog.HandlerOptions{Level: slog.LevelWarn}))
	application := newApp(ioCtx, cfg, flags.dryRun, invoke, logger)
	ctx := context.Background()

	var cmdErr error

	switch cmd {
	case "ls":
		cmdErr = cmdLs(ctx, application, cmdArgs)
	case "lists":
		cmdErr = cmdLists(ctx, application, cmdArgs)
	case "add":
		cmdErr = cmdAdd(ctx, application, cmdArgs)
	case "update":
		cmdErr = cmdUpdate(ctx, application, cmdArgs)
	case "rm":
		cmdErr = cmdRm(ctx, application, cmdArgs)
	case "mv":
		cmdErr = cmdMv(ctx, application, cmdArgs)
	case "mklist":
		cmdErr = cmdMklist(ctx, application, cmdArgs)
	case "mvlist":
		cmdErr = cmdMvlist(ctx, application, cmdArgs)
	case "rmlist":
		cmdErr = cmdRmlist(ctx, application, cmdArgs)
	case "doctor":
		cmdErr = cmdDoctor(ctx, application, cmdArgs)
	case "init":
		cmdErr = cmdInit(application, cmdArgs)
	case "print-config":
		cmdErr = cmdPrintConfig(application)
	case "shell":
		cmdErr = cmdShell(ctx, application, stdin)
	default:
		fprintln(errOut, "error: unknown command:", cmd)
		printUsage(errOut)

		return 1
	}

	if cmdErr != nil {
		fprintln(errOut, "error:", cmdErr)

		return 1
	}

	return ioCtx.Finish()
}

type globalFlags struct {
	workDir    string
	configPath string
	list       string
	dryRun     bool
	remaining  []string
}

func parseGlobalFlags(args []string) (globalFlags, error) {
	var flags globalFlags

	idx := 0
	for idx < len(args) {
		consumed, err := parseFlag(args, idx, &flags)
		if err != nil {
			return globalFlags{}, err
		}

		if consumed == 0 {
			// Not a flag, this is the command
			flags.remaining = args[idx:]

			break
		}

		idx += consumed
	}

	return flags, nil
}

// parseFlag tries to parse a flag at args[idx]. Returns number of args consumed (0 if not a flag).
func parseFlag(args []string, idx int, flags *globalFlags) (int, error) {
	arg := args[idx]

	// -C/--cwd flag (work directory)
	if (arg == "-C" || arg == "--cwd") && idx+1 < len(args) {
		flags.workDir = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "-C"); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	if after, ok := strings.CutPrefix(arg, "--cwd="); ok {
		flags.workDir = after

		return consumedOne, nil
	}

	// -c/--config flag
	if arg == "-c" || arg == "--config" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.configPath = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--config="); ok {
		flags.configPath = after

		return consumedOne, nil
	}

	// --list flag (default list override)
	if arg == "--list" {
		if idx+1 >= len(args) {
			return consumedNone, fmt.Errorf("%w: %s", errFlagRequiresArg, arg)
		}

		flags.list = args[idx+1]

		return consumedTwo, nil
	}

	if after, ok := strings.CutPrefix(arg, "--list="); ok {
		flags.list = after

		return consumedOne, nil
	}

	// --dry-run flag
	if arg == "--dry-run" {
		flags.dryRun = true

		return consumedOne, nil
	}

	// -h/--help flags
	if arg == "-h" || arg == helpFlag {
		flags.remaining = []string{helpFlag}

		return len(args) - idx, nil
	}

	// Unknown flag
	if strings.HasPrefix(arg, "-") && arg != "-" {
		return consumedNone, fmt.Errorf("%w: %s", errUnknownFlag, arg)
	}

	// Not a flag
	return consumedNone, nil
}

func fprintln(w io.Writer, a ...any) {
	_, _ = fmt.Fprintln(w, a...)
}

func hasHelpFlag(args []string) bool {
	for _, arg := range args {
		if arg == "-h" || arg == helpFlag {
			return true
		}
	}

	return false
}

func printUsage(writer io.Writer) {
	fprintln(writer, `remkit - Apple Reminders from the command line

Usage: remkit [options] <command> [args]

Options:
  -C, --cwd <dir>    Run as if started in <dir>
  -c, --config       Use specified config file
      --list <name>  Target list (overrides config default_list)
      --dry-run      Print synthesized AppleScript instead of running it

Commands:
  ls [--completed]         List reminders
  lists                    List reminder lists
  add <title>              Add a reminder
  update <title>           Update fields of a reminder
  rm <title>               Delete a reminder
  mv <title> <from> <to>   Move a reminder between lists
  mklist <name>            Create a list
  mvlist <old> <new>       Rename a list
  rmlist <name>            Delete a list
  doctor                   Check helper and automation permissions
  init                     Write a starter .remkit.json
  print-config             Show resolved configuration
  shell                    Interactive session`)
}
