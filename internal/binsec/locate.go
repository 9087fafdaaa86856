package binsec

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// HelperName is the conventional file name of the native helper.
const HelperName = "reminders-helper"

// projectMarkerModule identifies the project root: the nearest
// ancestor directory whose go.mod declares this module.
const projectMarkerModule = "module remkit"

// maxAscent bounds the upward walk for the project marker.
const maxAscent = 10

// candidateSubPaths are probed in order under the project root.
var candidateSubPaths = []string{
	filepath.Join("helper", ".build", "release", HelperName),
	filepath.Join("helper", "bin", HelperName),
	filepath.Join("bin", HelperName),
}

// fallbackSubPath is the conventional default returned when no
// candidate passes validation. Existence and executability are checked
// again at invocation time, where failure is fatal.
var fallbackSubPath = candidateSubPaths[0]

// Resolver memoizes the helper path for the lifetime of the process.
// Safe for concurrent first access.
type Resolver struct {
	once sync.Once
	path string

	// StartDir is where the upward marker search begins. Empty means
	// the current working directory.
	StartDir string

	// Override short-circuits location entirely (config file
	// helper_path). Still validated.
	Override string

	Config Config
	Logger *slog.Logger
}

// HelperPath resolves the helper binary path, computing it at most
// once.
func (r *Resolver) HelperPath() string {
	r.once.Do(func() {
		r.path = locate(r.StartDir, r.Override, r.Config, r.logger())
	})

	return r.path
}

func (r *Resolver) logger() *slog.Logger {
	if r.Logger != nil {
		return r.Logger
	}

	return slog.Default()
}

// locate finds the first fully-validated candidate. On total failure
// it falls back to the conventional path and logs a security warning
// instead of hard-failing; the invocation layer performs the final
// existence and executability check.
func locate(startDir, override string, cfg Config, logger *slog.Logger) string {
	if override != "" {
		if err := Validate(override, cfg); err != nil {
			logger.Warn("configured helper path failed validation, ignoring it",
				"path", override, "error", err)
		} else {
			return override
		}
	}

	root := findProjectRoot(startDir)
	if root == "" {
		root = startDir
	}

	for _, sub := range candidateSubPaths {
		candidate := filepath.Join(root, sub)

		err := Validate(candidate, cfg)
		if err == nil {
			return candidate
		}

		logger.Debug("helper candidate rejected", "path", candidate, "error", err)
	}

	fallback := filepath.Join(root, fallbackSubPath)
	logger.Warn("no helper binary passed security validation, falling back to conventional path",
		"path", fallback)

	return fallback
}

// ProjectRoot resolves the directory used to anchor candidate probing
// and the path allow list. Falls back to startDir itself when no
// marker is found.
func ProjectRoot(startDir string) string {
	if root := findProjectRoot(startDir); root != "" {
		return root
	}

	if startDir != "" {
		return startDir
	}

	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	return cwd
}

// findProjectRoot walks upward from startDir looking for a go.mod
// declaring this module. Returns empty when the marker is not found
// within maxAscent levels.
func findProjectRoot(startDir string) string {
	dir := startDir
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return ""
		}

		dir = cwd
	}

	for i := 0; i < maxAscent; i++ {
		if isProjectRoot(dir) {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}

		dir = parent
	}

	return ""
}

func isProjectRoot(dir string) bool {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		return false
	}

	for _, line := range strings.Split(string(data), "\n") {
		if strings.TrimSpace(line) == projectMarkerModule {
			return true
		}
	}

	return false
}
