package proc

import "errors"

var (
	// ErrSpawn means the process never started (binary missing or not
	// executable). Distinct from a started process exiting nonzero.
	ErrSpawn = errors.New("cannot start process")

	// ErrTimeout means the bounded operation exceeded its limit and the
	// process was forcibly terminated.
	ErrTimeout = errors.New("process timed out")

	// ErrNonZeroExit means the process ran to completion with a nonzero
	// exit code.
	ErrNonZeroExit = errors.New("process failed")
)
