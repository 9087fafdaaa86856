package reminders_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"remkit/internal/binsec"
	"remkit/internal/proc"
	"remkit/internal/reminders"
)

// recordingInvoker captures every request and replies from a canned
// response table keyed by binary name. Unknown names get the fallback
// response.
type recordingInvoker struct {
	requests  []proc.Request
	responses map[string]proc.Result
	fallback  proc.Result
}

func (ri *recordingInvoker) run(_ context.Context, req proc.Request) (proc.Result, error) {
	ri.requests = append(ri.requests, req)

	if result, ok := ri.responses[req.Name]; ok {
		return result, nil
	}

	return ri.fallback, nil
}

func newTestClient(t *testing.T, invoker *recordingInvoker) *reminders.Client {
	t.Helper()

	return reminders.NewClient(reminders.Options{
		Resolver: &binsec.Resolver{
			StartDir: t.TempDir(),
			Config:   binsec.TestConfig(t.TempDir()),
		},
		Clock:  clock12h(),
		Invoke: invoker.run,
	})
}

const helperTranscript = `=== LISTS ===
1. Errands
2. Work
=== REMINDERS ===
Title: Buy milk
Due Date: January 1, 2025
Notes: 2% only
List: Errands
Status: Incomplete
-------------------
Title: Ship release
List: Work
Status: Completed
-------------------
`

func TestSnapshotInvokesHelperAndParses(t *testing.T) {
	t.Parallel()

	invoker := &recordingInvoker{fallback: proc.Result{Stdout: helperTranscript}}
	client := newTestClient(t, invoker)

	snap, err := client.Snapshot(context.Background(), true)
	require.NoError(t, err)

	require.Len(t, snap.Collections, 2)
	require.Equal(t, "Errands", snap.Collections[0].Title)
	require.Len(t, snap.Items, 2)
	require.False(t, snap.Items[0].Completed)
	require.True(t, snap.Items[1].Completed)
	require.Empty(t, snap.Warnings)

	require.Len(t, invoker.requests, 1)

	req := invoker.requests[0]
	require.True(t, strings.HasSuffix(req.Name, "reminders-helper"),
		"helper request name %q", req.Name)
	require.Equal(t, []string{"--show-completed"}, req.Args)
}

func TestSnapshotDefaultHidesCompleted(t *testing.T) {
	t.Parallel()

	invoker := &recordingInvoker{}
	client := newTestClient(t, invoker)

	_, err := client.Snapshot(context.Background(), false)
	require.NoError(t, err)
	require.Empty(t, invoker.requests[0].Args)
}

func TestCreateRunsSynthesizedScriptThroughOsascript(t *testing.T) {
	t.Parallel()

	invoker := &recordingInvoker{responses: map[string]proc.Result{
		"osascript": {Stdout: "Created reminder: Buy milk\n"},
	}}
	client := newTestClient(t, invoker)

	out, err := client.Create(context.Background(), reminders.CreateRequest{
		Title: "Buy milk",
		List:  "Errands",
	})
	require.NoError(t, err)
	require.Equal(t, "Created reminder: Buy milk", out)

	require.Len(t, invoker.requests, 1)

	req := invoker.requests[0]
	require.Equal(t, "osascript", req.Name)
	require.Equal(t, []string{"-"}, req.Args)
	require.Contains(t, req.Stdin, `tell application "Reminders"`)
	require.Contains(t, req.Stdin, `name:"Buy milk"`)
}

func TestCreateInvalidRequestNeverSpawns(t *testing.T) {
	t.Parallel()

	invoker := &recordingInvoker{}
	client := newTestClient(t, invoker)

	_, err := client.Create(context.Background(), reminders.CreateRequest{})
	require.ErrorIs(t, err, reminders.ErrTitleRequired)
	require.Empty(t, invoker.requests)
}

func TestDeleteListRunsGuardedScript(t *testing.T) {
	t.Parallel()

	invoker := &recordingInvoker{responses: map[string]proc.Result{
		"osascript": {Stdout: "Deleted list: Food\n"},
	}}
	client := newTestClient(t, invoker)

	out, err := client.DeleteList(context.Background(), "Food")
	require.NoError(t, err)
	require.Equal(t, "Deleted list: Food", out)
	require.Contains(t, invoker.requests[0].Stdin, `exists list "Food"`)
}
