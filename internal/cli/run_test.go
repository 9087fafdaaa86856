package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRunNoArgsPrintsUsage(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stdout, _, code := r.Run()
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}

	if !strings.Contains(stdout, "Usage: remkit") {
		t.Errorf("usage missing from output:\n%s", stdout)
	}
}

func TestRunUnknownCommand(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("frobnicate")
	if !strings.Contains(stderr, "unknown command: frobnicate") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunUnknownGlobalFlag(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("--bogus", "ls")
	if !strings.Contains(stderr, "unknown flag") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunConfigFlagRequiresArgument(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("--config")
	if !strings.Contains(stderr, "flag requires an argument") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunExplicitConfigMustExist(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("-c", "missing.json", "ls")
	if !strings.Contains(stderr, "config file not found") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestRunInvalidConfigFileRejected(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	path := filepath.Join(r.Dir, ".remkit.json")
	if err := os.WriteFile(path, []byte(`{"posture": "yolo"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	stderr := r.MustFail("ls")
	if !strings.Contains(stderr, "invalid config file") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestSplitShellLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"plain words", `ls --completed`, []string{"ls", "--completed"}},
		{"quoted title", `add "Buy milk" --list=Errands`, []string{"add", "Buy milk", "--list=Errands"}},
		{"empty quotes", `rm ""`, []string{"rm", ""}},
		{"tabs", "lists\t--completed", []string{"lists", "--completed"}},
		{"empty", "   ", nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := splitShellLine(tt.input)
			if len(got) != len(tt.want) {
				t.Fatalf("splitShellLine(%q) = %v, want %v", tt.input, got, tt.want)
			}

			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("token %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}
