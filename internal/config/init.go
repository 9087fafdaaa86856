package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/natefinch/atomic"
)

// starterTemplate is the JSONC written by Init. Commented-out fields
// document the knobs without activating them.
const starterTemplate = `{
	// Deployment posture: production, development, or test.
	"posture": "production",

	// Absolute or project-relative path to the native helper binary.
	// Leave unset to locate it under the project root.
	// "helper_path": "helper/.build/release/reminders-helper",

	// List targeted when a command names none.
	// "default_list": "Reminders",

	// Per-invocation process timeout.
	"timeout_seconds": 30,
}
`

// Init writes a starter project config file into dir. Refuses to
// overwrite an existing file.
func Init(dir string) (string, error) {
	path := filepath.Join(dir, FileName)

	if _, err := os.Stat(path); err == nil {
		return "", fmt.Errorf("%w: %s", ErrFileExists, path)
	}

	if err := atomic.WriteFile(path, bytes.NewReader([]byte(starterTemplate))); err != nil {
		return "", fmt.Errorf("write %s: %w", path, err)
	}

	return path, nil
}
