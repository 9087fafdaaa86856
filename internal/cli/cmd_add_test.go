package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestAddDryRunPrintsScript(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stdout := r.MustRun("--dry-run", "add", "Buy milk", "--due=2025-01-01", "--list=Errands")

	if !strings.Contains(stdout, `tell application "Reminders"`) {
		t.Errorf("missing tell block:\n%s", stdout)
	}

	if !strings.Contains(stdout, `set targetList to list "Errands"`) {
		t.Errorf("missing list targeting:\n%s", stdout)
	}

	if !strings.Contains(stdout, `allday due date:date "January 1, 2025"`) {
		t.Errorf("bare date should use the all-day property:\n%s", stdout)
	}

	if len(r.Requests) != 0 {
		t.Errorf("dry-run must not spawn anything, got %d invocations", len(r.Requests))
	}
}

func TestAddDryRunEscapesHostileInput(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stdout := r.MustRun("--dry-run", "add", `pwn" & (do shell script "id") & "`)

	if !strings.Contains(stdout, `\" & (do shell script \"id\") & \"`) {
		t.Errorf("quotes must be escaped:\n%s", stdout)
	}
}

func TestAddUsesConfiguredDefaultList(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	path := filepath.Join(r.Dir, ".remkit.json")
	if err := os.WriteFile(path, []byte(`{"default_list": "Inbox"}`), 0o644); err != nil {
		t.Fatal(err)
	}

	stdout := r.MustRun("--dry-run", "add", "Buy milk")
	if !strings.Contains(stdout, `set targetList to list "Inbox"`) {
		t.Errorf("configured default list not applied:\n%s", stdout)
	}

	// The global --list flag outranks the config file.
	stdout = r.MustRun("--dry-run", "--list", "Errands", "add", "Buy milk")
	if !strings.Contains(stdout, `set targetList to list "Errands"`) {
		t.Errorf("--list override not applied:\n%s", stdout)
	}
}

func TestAddWithoutListTargetsAccountDefault(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stdout := r.MustRun("--dry-run", "add", "Buy milk")
	if !strings.Contains(stdout, "set targetList to default list") {
		t.Errorf("expected account default list:\n%s", stdout)
	}
}

func TestAddRequiresTitle(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("add")
	if !strings.Contains(stderr, "title argument is required") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestAddRejectsMalformedDue(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)

	stderr := r.MustFail("--dry-run", "add", "x", "--due=eventually")
	if !strings.Contains(stderr, "invalid date") {
		t.Errorf("stderr = %q", stderr)
	}
}

func TestAddRunsScriptThroughOsascript(t *testing.T) {
	t.Parallel()

	r := NewCLI(t)
	r.Responses["osascript"] = fakeResult("Created reminder: Buy milk\n")

	stdout := r.MustRun("add", "Buy milk")
	if stdout != "Created reminder: Buy milk" {
		t.Errorf("stdout = %q", stdout)
	}

	if len(r.Requests) != 1 {
		t.Fatalf("got %d invocations, want 1", len(r.Requests))
	}

	req := r.Requests[0]
	if req.Name != "osascript" {
		t.Errorf("invoked %q, want osascript", req.Name)
	}

	if !strings.Contains(req.Stdin, `name:"Buy milk"`) {
		t.Errorf("script not delivered on stdin:\n%s", req.Stdin)
	}
}
