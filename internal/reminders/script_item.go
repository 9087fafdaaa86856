package reminders

import (
	"fmt"
	"strings"

	"remkit/internal/applescript"
	"remkit/internal/datenorm"
)

// duePropertyName selects the AppleScript property for a due value:
// bare dates set the all-day property, timestamps the timed one.
func duePropertyName(d datenorm.ParsedDate) string {
	if d.DateOnly {
		return "allday due date"
	}

	return "due date"
}

// combineNote merges a note body and an optional URL into one body
// string. URLs travel inside the body as a structured trailing block;
// Reminders has no first-class URL field scriptable from AppleScript.
func combineNote(note, url string) string {
	switch {
	case note != "" && url != "":
		return note + "\n\nURL: " + url
	case url != "":
		return "URL: " + url
	default:
		return note
	}
}

// targetLines emits the shared targeting preamble for update, delete
// and move: resolve candidates by exact name, optionally scoped to a
// named list, and guard on cardinality. Zero matches raises an
// automation-level error with a descriptive message. Multiple matches
// resolve to the first; a known limitation of title-based addressing,
// preserved deliberately rather than silently reinterpreted.
func targetLines(title, list string) []string {
	var lines []string

	scope := ""

	if list != "" {
		lines = append(lines,
			`set targetList to list `+applescript.Quote(list),
			`set matchingReminders to (reminders of targetList whose name is `+applescript.Quote(title)+`)`,
		)
		scope = fmt.Sprintf(" in list %q", list)
	} else {
		lines = append(lines,
			`set matchingReminders to (reminders whose name is `+applescript.Quote(title)+`)`,
		)
	}

	notFound := fmt.Sprintf("No reminder found with title %q%s", title, scope)

	lines = append(lines,
		`if (count of matchingReminders) is 0 then error `+applescript.Quote(notFound),
		`set targetReminder to item 1 of matchingReminders`,
	)

	return lines
}

// BuildCreateScript synthesizes the creation script for req.
func BuildCreateScript(req CreateRequest, clock *datenorm.Clock) (string, error) {
	if req.Title == "" {
		return "", ErrTitleRequired
	}

	properties := []string{`name:` + applescript.Quote(req.Title)}

	if req.Due != "" {
		parsed, err := datenorm.Normalize(req.Due, clock)
		if err != nil {
			return "", err
		}

		properties = append(properties,
			duePropertyName(parsed)+`:date `+applescript.Quote(parsed.Formatted))
	}

	if body := combineNote(req.Note, req.URL); body != "" {
		properties = append(properties, `body:`+applescript.Quote(body))
	}

	lines := []string{resolveListLine(req.List)}

	lines = append(lines,
		`make new reminder at end of reminders of targetList with properties {`+strings.Join(properties, ", ")+`}`,
		`return `+applescript.Quote("Created reminder: "+req.Title),
	)

	return applescript.TellBlock(applescript.RemindersApp, lines), nil
}

// resolveListLine targets the named list, or the account default when
// none was given.
func resolveListLine(list string) string {
	if list == "" {
		return `set targetList to default list`
	}

	return `set targetList to list ` + applescript.Quote(list)
}

// BuildUpdateScript synthesizes one mutation statement per supplied
// field. Omitted (nil) fields produce nothing.
func BuildUpdateScript(req UpdateRequest, clock *datenorm.Clock) (string, error) {
	if req.Title == "" {
		return "", ErrTitleRequired
	}

	if req.NewTitle == nil && req.Due == nil && req.Note == nil && req.URL == nil && req.Completed == nil {
		return "", ErrNothingToUpdate
	}

	lines := targetLines(req.Title, req.List)

	if req.NewTitle != nil {
		lines = append(lines, `set name of targetReminder to `+applescript.Quote(*req.NewTitle))
	}

	if req.Due != nil {
		parsed, err := datenorm.Normalize(*req.Due, clock)
		if err != nil {
			return "", err
		}

		lines = append(lines,
			`set `+duePropertyName(parsed)+` of targetReminder to date `+applescript.Quote(parsed.Formatted))
	}

	switch {
	case req.Note != nil:
		// A supplied note replaces the body outright, with the URL (if
		// any) folded in.
		url := ""
		if req.URL != nil {
			url = *req.URL
		}

		lines = append(lines,
			`set body of targetReminder to `+applescript.Quote(combineNote(*req.Note, url)))
	case req.URL != nil:
		// URL without note: append a structured URL block to whatever
		// body exists. A missing body reads as the "missing value"
		// sentinel and is substituted with the empty string first.
		lines = append(lines,
			`set currentBody to body of targetReminder`,
			`if currentBody is missing value then set currentBody to ""`,
			`set body of targetReminder to currentBody & `+applescript.Quote("\n\nURL: "+*req.URL),
		)
	}

	if req.Completed != nil {
		value := "false"
		if *req.Completed {
			value = "true"
		}

		lines = append(lines, `set completed of targetReminder to `+value)
	}

	lines = append(lines, `return `+applescript.Quote("Updated reminder: "+req.Title))

	return applescript.TellBlock(applescript.RemindersApp, lines), nil
}

// BuildDeleteScript targets, guards, and deletes the first match.
func BuildDeleteScript(req DeleteRequest) (string, error) {
	if req.Title == "" {
		return "", ErrTitleRequired
	}

	lines := append(targetLines(req.Title, req.List),
		`delete targetReminder`,
		`return `+applescript.Quote("Deleted reminder: "+req.Title),
	)

	return applescript.TellBlock(applescript.RemindersApp, lines), nil
}

// BuildMoveScript relocates the first match from one named list to
// another.
func BuildMoveScript(req MoveRequest) (string, error) {
	if req.Title == "" {
		return "", ErrTitleRequired
	}

	if req.From == "" || req.To == "" {
		return "", ErrListNameRequired
	}

	notFound := fmt.Sprintf("No reminder found with title %q in list %q", req.Title, req.From)

	lines := []string{
		`set sourceList to list ` + applescript.Quote(req.From),
		`set destinationList to list ` + applescript.Quote(req.To),
		`set matchingReminders to (reminders of sourceList whose name is ` + applescript.Quote(req.Title) + `)`,
		`if (count of matchingReminders) is 0 then error ` + applescript.Quote(notFound),
		`set targetReminder to item 1 of matchingReminders`,
		`move targetReminder to destinationList`,
		`return ` + applescript.Quote(fmt.Sprintf("Moved reminder %q from %q to %q", req.Title, req.From, req.To)),
	}

	return applescript.TellBlock(applescript.RemindersApp, lines), nil
}
