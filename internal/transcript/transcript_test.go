package transcript_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"remkit/internal/transcript"
)

const wellFormed = `=== LISTS ===
1. Reminders
2. Errands
3. Home

=== REMINDERS ===
Title: Buy milk
Due Date: January 1, 2025
Notes: 2%
List: Errands
Status: Incomplete
Raw Completed Value: false
-------------------
Title: Call plumber
List: Home
Status: Completed
Raw Completed Value: true
-------------------
`

func TestParseWellFormedTranscript(t *testing.T) {
	t.Parallel()

	got := transcript.Parse(wellFormed)

	wantCollections := []transcript.Collection{
		{ID: 1, Title: "Reminders"},
		{ID: 2, Title: "Errands"},
		{ID: 3, Title: "Home"},
	}

	wantItems := []transcript.Item{
		{Title: "Buy milk", DueDate: "January 1, 2025", Notes: "2%", List: "Errands", Completed: false},
		{Title: "Call plumber", List: "Home", Completed: true},
	}

	if diff := cmp.Diff(wantCollections, got.Collections); diff != "" {
		t.Errorf("collections mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff(wantItems, got.Items); diff != "" {
		t.Errorf("items mismatch (-want +got):\n%s", diff)
	}

	require.Empty(t, got.Warnings)
}

// N well-formed blocks plus M malformed ones must yield exactly N
// items, in original order.
func TestParseDropsMalformedBlocksKeepsOrder(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"=== REMINDERS ===",
		"Title: first",
		"List: A",
		"Status: Incomplete",
		transcript.BlockSeparator,
		"Title: no list here", // malformed: missing List
		transcript.BlockSeparator,
		"List: B", // malformed: missing Title
		transcript.BlockSeparator,
		"Title: second",
		"List: A",
		"Status: Incomplete",
		transcript.BlockSeparator,
		"Title: third",
		"List: C",
		"Status: Incomplete",
		// no trailing separator: still collected
	}, "\n")

	got := transcript.Parse(text)

	var titles []string
	for _, item := range got.Items {
		titles = append(titles, item.Title)
	}

	require.Equal(t, []string{"first", "second", "third"}, titles)
	require.Len(t, got.Warnings, 2)
}

func TestParseDiscardsPreambleAndUnknownLines(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"helper v1.4 starting", // before any section header: discarded
		"=== LISTS ===",
		"not a collection line",
		"12. Groceries",
		"13.", // no title: skipped
		"=== REMINDERS ===",
		"Title: x",
		"Priority: high", // unrecognized prefix: ignored
		"List: Groceries",
	}, "\n")

	got := transcript.Parse(text)

	require.Equal(t, []transcript.Collection{{ID: 12, Title: "Groceries"}}, got.Collections)
	require.Len(t, got.Items, 1)
	require.Equal(t, "x", got.Items[0].Title)
}

func TestParseCRLFTranscript(t *testing.T) {
	t.Parallel()

	text := "=== LISTS ===\r\n1. Inbox\r\n=== REMINDERS ===\r\nTitle: a\r\nList: Inbox\r\n"

	got := transcript.Parse(text)

	require.Equal(t, []transcript.Collection{{ID: 1, Title: "Inbox"}}, got.Collections)
	require.Len(t, got.Items, 1)
}

func TestParseRawOverrideBeatsStatus(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"=== REMINDERS ===",
		"Title: a",
		"List: L",
		"Status: Completed",
		"Raw Completed Value: false",
	}, "\n")

	got := transcript.Parse(text)

	require.Len(t, got.Items, 1)
	require.False(t, got.Items[0].Completed)
	require.Empty(t, got.Warnings)
}

func TestParseCoercesGarbageCompletionWithWarning(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"=== REMINDERS ===",
		"Title: a",
		"List: L",
		"Raw Completed Value: TRUE",
	}, "\n")

	got := transcript.Parse(text)

	require.Len(t, got.Items, 1)
	require.True(t, got.Items[0].Completed)
	require.Len(t, got.Warnings, 1)
	require.Contains(t, got.Warnings[0], "coerced")
}

func TestNormalizeCompleted(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name        string
		raw         any
		want        bool
		wantCoerced bool
	}{
		{"bool true", true, true, false},
		{"bool false", false, false, false},
		{"string true", "true", true, true},
		{"string TRUE", "TRUE", true, true},
		{"string false", "false", false, true},
		{"string garbage", "yes", false, true},
		{"zero int", 0, false, true},
		{"nonzero int", 1, true, true},
		{"nil", nil, false, true},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, coerced := transcript.NormalizeCompleted(tt.raw)
			require.Equal(t, tt.want, got)
			require.Equal(t, tt.wantCoerced, coerced)
		})
	}
}
