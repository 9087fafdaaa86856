package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"
)

// shellCommands is the completion set for the interactive session.
var shellCommands = []string{
	"ls", "lists", "add", "update", "rm", "mv",
	"mklist", "mvlist", "rmlist", "doctor", "print-config",
	"help", "exit", "quit", "q",
}

func cmdShell(ctx context.Context, a *app, stdin io.Reader) error {
	if f, ok := stdin.(*os.File); ok {
		if info, err := f.Stat(); err == nil && info.Mode()&os.ModeCharDevice != 0 {
			return shellInteractive(ctx, a)
		}
	}

	if stdin == nil {
		return shellInteractive(ctx, a)
	}

	return shellFromReader(ctx, a, stdin)
}

// shellFromReader runs the session over a plain line stream. Used when
// input is piped and by tests.
func shellFromReader(ctx context.Context, a *app, stdin io.Reader) error {
	scanner := bufio.NewScanner(stdin)

	for scanner.Scan() {
		if done := shellLine(ctx, a, scanner.Text()); done {
			return nil
		}
	}

	return scanner.Err()
}

func shellHistoryFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".remkit_history")
}

func shellInteractive(ctx context.Context, a *app) error {
	line := liner.NewLiner()
	defer line.Close()

	line.SetCtrlCAborts(true)
	line.SetCompleter(func(prefix string) []string {
		var completions []string

		lower := strings.ToLower(prefix)
		for _, cmd := range shellCommands {
			if strings.HasPrefix(cmd, lower) {
				completions = append(completions, cmd)
			}
		}

		return completions
	})

	if f, err := os.Open(shellHistoryFile()); err == nil {
		_, _ = line.ReadHistory(f)
		f.Close()
	}

	a.io.Println("remkit shell. Type 'help' for commands, 'exit' to leave.")

	for {
		input, err := line.Prompt("remkit> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				break
			}

			return err
		}

		if strings.TrimSpace(input) == "" {
			continue
		}

		line.AppendHistory(input)

		if done := shellLine(ctx, a, input); done {
			break
		}
	}

	if path := shellHistoryFile(); path != "" {
		if f, err := os.Create(path); err == nil {
			_, _ = line.WriteHistory(f)
			f.Close()
		}
	}

	return nil
}

// shellLine executes one session line. Returns true when the session
// should end. Command failures are reported and the session continues.
func shellLine(ctx context.Context, a *app, input string) bool {
	tokens := splitShellLine(input)
	if len(tokens) == 0 {
		return false
	}

	cmd := strings.ToLower(tokens[0])
	args := tokens[1:]

	var err error

	switch cmd {
	case "exit", "quit", "q":
		return true
	case "help", "?":
		a.io.Println("Commands: " + strings.Join(shellCommands, ", "))
	case "ls":
		err = cmdLs(ctx, a, args)
	case "lists":
		err = cmdLists(ctx, a, args)
	case "add":
		err = cmdAdd(ctx, a, args)
	case "update":
		err = cmdUpdate(ctx, a, args)
	case "rm":
		err = cmdRm(ctx, a, args)
	case "mv":
		err = cmdMv(ctx, a, args)
	case "mklist":
		err = cmdMklist(ctx, a, args)
	case "mvlist":
		err = cmdMvlist(ctx, a, args)
	case "rmlist":
		err = cmdRmlist(ctx, a, args)
	case "doctor":
		err = cmdDoctor(ctx, a, args)
	case "print-config":
		err = cmdPrintConfig(a)
	default:
		a.io.Println("unknown command:", cmd)
	}

	if err != nil {
		a.io.Println("error:", err)
	}

	return false
}

// splitShellLine tokenizes one input line. Double quotes group words,
// so multi-word reminder titles survive.
func splitShellLine(input string) []string {
	var (
		tokens   []string
		current  strings.Builder
		inQuotes bool
		started  bool
	)

	flush := func() {
		if started {
			tokens = append(tokens, current.String())
			current.Reset()

			started = false
		}
	}

	for _, r := range input {
		switch {
		case r == '"':
			inQuotes = !inQuotes
			started = true
		case !inQuotes && (r == ' ' || r == '\t'):
			flush()
		default:
			current.WriteRune(r)

			started = true
		}
	}

	flush()

	return tokens
}
