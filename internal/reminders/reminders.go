// Package reminders is the boundary layer between callers and the
// Apple Reminders store. Write operations are synthesized as
// AppleScript command scripts; reads go through the native helper
// binary and its transcript parser. The package never mutates the
// store directly and never infers caller intent.
package reminders

import "errors"

var (
	ErrTitleRequired    = errors.New("reminder title is required")
	ErrListNameRequired = errors.New("list name is required")
	ErrNothingToUpdate  = errors.New("no fields supplied to update")
)

// CreateRequest describes a new reminder. All fields arrive
// pre-validated (typed, length-bounded) from the caller; this layer
// only guards the invariants it owns.
type CreateRequest struct {
	Title string
	Due   string // one of the accepted date shapes, empty for none
	Note  string
	URL   string
	List  string // empty means the default list
}

// UpdateRequest mutates an existing reminder found by exact title.
// Nil pointer fields are omitted entirely: no statement is emitted for
// them, so there is no implicit clearing.
type UpdateRequest struct {
	Title string
	List  string // empty means search across all lists

	NewTitle  *string
	Due       *string
	Note      *string
	URL       *string
	Completed *bool
}

// DeleteRequest removes the first reminder matching Title.
type DeleteRequest struct {
	Title string
	List  string
}

// MoveRequest relocates a reminder between two named lists.
type MoveRequest struct {
	Title string
	From  string
	To    string
}
