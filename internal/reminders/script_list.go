package reminders

import (
	"fmt"

	"remkit/internal/applescript"
)

// BuildListCreateScript creates a new named list.
func BuildListCreateScript(name string) (string, error) {
	if name == "" {
		return "", ErrListNameRequired
	}

	lines := []string{
		`make new list with properties {name:` + applescript.Quote(name) + `}`,
		`return ` + applescript.Quote("Created list: " + name),
	}

	return applescript.TellBlock(applescript.RemindersApp, lines), nil
}

// BuildListRenameScript renames an existing list, raising a NotFound
// automation error when it is absent.
func BuildListRenameScript(oldName, newName string) (string, error) {
	if oldName == "" || newName == "" {
		return "", ErrListNameRequired
	}

	notFound := fmt.Sprintf("No list found with name %q", oldName)

	lines := []string{
		`if not (exists list ` + applescript.Quote(oldName) + `) then error ` + applescript.Quote(notFound),
		`set name of list ` + applescript.Quote(oldName) + ` to ` + applescript.Quote(newName),
		`return ` + applescript.Quote(fmt.Sprintf("Renamed list %q to %q", oldName, newName)),
	}

	return applescript.TellBlock(applescript.RemindersApp, lines), nil
}

// BuildListDeleteScript deletes an existing list, raising a NotFound
// automation error when it is absent.
func BuildListDeleteScript(name string) (string, error) {
	if name == "" {
		return "", ErrListNameRequired
	}

	notFound := fmt.Sprintf("No list found with name %q", name)

	lines := []string{
		`if not (exists list ` + applescript.Quote(name) + `) then error ` + applescript.Quote(notFound),
		`delete list ` + applescript.Quote(name),
		`return ` + applescript.Quote("Deleted list: " + name),
	}

	return applescript.TellBlock(applescript.RemindersApp, lines), nil
}
