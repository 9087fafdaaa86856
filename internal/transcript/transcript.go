// Package transcript parses the semi-structured text the native
// reminders helper prints on stdout.
//
// The line format is an undocumented contract shared with the helper's
// emitter: section headers, "<n>. <title>" collection lines, and item
// blocks of "Prefix: value" lines separated by a fixed separator line.
// Field order, prefix spelling, and the separator are all load-bearing.
// The parser compensates by recovering locally from anything malformed:
// bad lines and incomplete blocks are dropped with a warning, never
// fatal.
package transcript

import (
	"regexp"
	"strconv"
	"strings"
)

// Literal markers emitted by the helper.
const (
	SectionLists     = "=== LISTS ==="
	SectionReminders = "=== REMINDERS ==="
	BlockSeparator   = "-------------------"
)

// Line prefixes inside an item block.
const (
	prefixTitle    = "Title: "
	prefixDueDate  = "Due Date: "
	prefixNotes    = "Notes: "
	prefixList     = "List: "
	prefixStatus   = "Status: "
	prefixRawValue = "Raw Completed Value: "
)

// Collection is a reminder list.
type Collection struct {
	ID    int
	Title string
}

// Item is a single reminder. Completed is always a strict boolean in
// the returned record regardless of what the transcript carried.
type Item struct {
	Title     string
	DueDate   string
	Notes     string
	List      string
	Completed bool
}

// Result is the structured form of one helper transcript. Warnings
// describe recovered problems (dropped blocks, coerced completion
// flags); they accompany the data instead of failing the read.
type Result struct {
	Collections []Collection
	Items       []Item
	Warnings    []string
}

var collectionLine = regexp.MustCompile(`^(\d+)\.\s+(.+)$`)

type section int

const (
	sectionNone section = iota
	sectionCollections
	sectionItems
)

// partialItem accumulates one block before validation. completedRaw
// stays untyped until normalization: the Status line stores a bool,
// the raw-override line stores the raw string, mirroring the loosely
// typed transport.
type partialItem struct {
	title        string
	dueDate      string
	notes        string
	list         string
	completedRaw any
	sawAnyField  bool
}

// Parse runs the two-phase line-oriented state machine over a full
// helper transcript. It never returns an error: malformed input
// degrades to warnings.
func Parse(text string) Result {
	var (
		result  Result
		active  section
		current partialItem
	)

	flush := func() {
		if !current.sawAnyField {
			current = partialItem{}

			return
		}

		item, warnings, ok := current.finish()

		result.Warnings = append(result.Warnings, warnings...)
		if ok {
			result.Items = append(result.Items, item)
		}

		current = partialItem{}
	}

	for _, rawLine := range strings.Split(text, "\n") {
		line := strings.TrimRight(rawLine, "\r")

		switch strings.TrimSpace(line) {
		case SectionLists:
			active = sectionCollections

			continue
		case SectionReminders:
			active = sectionItems

			continue
		}

		switch active {
		case sectionNone:
			// Preamble before any section header is discarded.
		case sectionCollections:
			if c, ok := parseCollectionLine(line); ok {
				result.Collections = append(result.Collections, c)
			}
		case sectionItems:
			if strings.TrimSpace(line) == BlockSeparator {
				flush()

				continue
			}

			current.feed(line)
		}
	}

	// A final block with no trailing separator still counts.
	flush()

	return result
}

func parseCollectionLine(line string) (Collection, bool) {
	m := collectionLine.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return Collection{}, false
	}

	id, err := strconv.Atoi(m[1])
	if err != nil {
		return Collection{}, false
	}

	return Collection{ID: id, Title: m[2]}, true
}

// feed routes one line to the matching field setter. Unrecognized
// lines are ignored.
func (p *partialItem) feed(line string) {
	switch {
	case strings.HasPrefix(line, prefixTitle):
		p.title = strings.TrimPrefix(line, prefixTitle)
		p.sawAnyField = true
	case strings.HasPrefix(line, prefixDueDate):
		p.dueDate = strings.TrimPrefix(line, prefixDueDate)
		p.sawAnyField = true
	case strings.HasPrefix(line, prefixNotes):
		p.notes = strings.TrimPrefix(line, prefixNotes)
		p.sawAnyField = true
	case strings.HasPrefix(line, prefixList):
		p.list = strings.TrimPrefix(line, prefixList)
		p.sawAnyField = true
	case strings.HasPrefix(line, prefixStatus):
		p.completedRaw = strings.EqualFold(strings.TrimPrefix(line, prefixStatus), "Completed")
		p.sawAnyField = true
	case strings.HasPrefix(line, prefixRawValue):
		// The raw boolean override wins over the Status line. A
		// well-formed transcript carries exactly "true" or "false";
		// anything else stays raw and gets coerced with a warning.
		raw := strings.TrimPrefix(line, prefixRawValue)
		switch raw {
		case "true":
			p.completedRaw = true
		case "false":
			p.completedRaw = false
		default:
			p.completedRaw = raw
		}

		p.sawAnyField = true
	}
}

// finish validates the block and normalizes the completion flag. A
// block lacking both title and collection is dropped.
func (p *partialItem) finish() (Item, []string, bool) {
	var warnings []string

	if p.title == "" && p.list == "" {
		warnings = append(warnings,
			"dropped reminder block missing both title and list")

		return Item{}, warnings, false
	}

	if p.title == "" {
		warnings = append(warnings,
			"dropped reminder block with no title (list "+strconv.Quote(p.list)+")")

		return Item{}, warnings, false
	}

	if p.list == "" {
		warnings = append(warnings,
			"dropped reminder block with no list (title "+strconv.Quote(p.title)+")")

		return Item{}, warnings, false
	}

	completed, coerced := NormalizeCompleted(p.completedRaw)
	if coerced {
		warnings = append(warnings,
			"coerced non-boolean completion value for "+strconv.Quote(p.title))
	}

	return Item{
		Title:     p.title,
		DueDate:   p.dueDate,
		Notes:     p.notes,
		List:      p.list,
		Completed: completed,
	}, warnings, true
}

// NormalizeCompleted folds a loosely typed completion value to a
// strict boolean. A bool passes through; a string compares
// case-insensitively to "true"; anything else is coerced by
// truthiness. The second return reports whether the raw value was not
// already a boolean, which callers surface as a warning - the plain
// text transport makes this fragility expected.
func NormalizeCompleted(raw any) (value bool, coerced bool) {
	switch v := raw.(type) {
	case bool:
		return v, false
	case string:
		return strings.EqualFold(v, "true"), true
	case nil:
		return false, true
	case int:
		return v != 0, true
	case float64:
		return v != 0, true
	default:
		return true, true
	}
}
