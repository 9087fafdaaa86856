package cli

import "errors"

var (
	errFlagRequiresArg  = errors.New("flag requires an argument")
	errUnknownFlag      = errors.New("unknown flag")
	errTitleArgRequired = errors.New("a reminder title argument is required")
	errNameArgRequired  = errors.New("a list name argument is required")
	errMvArgs           = errors.New("mv requires <title> <from> <to>")
)
