// Package binsec resolves and security-checks the filesystem path to
// the native reminders helper before any invocation. Validation is
// all-or-nothing: a candidate failing any single check is rejected.
package binsec

import (
	"fmt"
	"strings"
)

// Validation failure codes, machine-readable. Carried on
// ValidationError so callers can branch without string matching.
const (
	CodeNotAbsolute      = "not-absolute"
	CodePathTraversal    = "path-traversal"
	CodeForbiddenPath    = "forbidden-path"
	CodeNotFound         = "not-found"
	CodeNotRegularFile   = "not-regular-file"
	CodeTooLarge         = "too-large"
	CodeNotExecutable    = "not-executable"
	CodeDigestUnreadable = "digest-unreadable"
	CodeDigestMismatch   = "digest-mismatch"
)

// ValidationError reports why a candidate helper path was rejected.
// Fatal at construction time; never retried.
type ValidationError struct {
	Code   string
	Path   string
	Detail string
}

func (e *ValidationError) Error() string {
	if e.Detail == "" {
		return fmt.Sprintf("helper binary rejected (%s): %s", e.Code, e.Path)
	}

	return fmt.Sprintf("helper binary rejected (%s): %s: %s", e.Code, e.Path, e.Detail)
}

// Config is the security posture applied to helper-path candidates.
type Config struct {
	// MaxSizeBytes rejects candidates above this size.
	MaxSizeBytes int64

	// AllowedPrefixes is the path-prefix allow list. A candidate must
	// sit under at least one prefix.
	AllowedPrefixes []string

	// RequireAbsolute rejects relative candidate paths.
	RequireAbsolute bool

	// ExpectedDigest, when non-empty, is the hex BLAKE3 digest the
	// binary content must match. Production posture sets it; test and
	// development leave it empty.
	ExpectedDigest string
}

// Preset sizes per deployment posture.
const (
	maxSizeProduction  = 10 << 20
	maxSizeDevelopment = 50 << 20
	maxSizeTest        = 100 << 20
)

// ProductionConfig is the strict posture: absolute path under the
// project root, tight size ceiling, digest enforced when configured.
func ProductionConfig(projectRoot, expectedDigest string) Config {
	return Config{
		MaxSizeBytes:    maxSizeProduction,
		AllowedPrefixes: []string{projectRoot},
		RequireAbsolute: true,
		ExpectedDigest:  expectedDigest,
	}
}

// DevelopmentConfig relaxes the size ceiling (debug builds are fat)
// and skips the digest check.
func DevelopmentConfig(projectRoot string) Config {
	return Config{
		MaxSizeBytes:    maxSizeDevelopment,
		AllowedPrefixes: []string{projectRoot},
		RequireAbsolute: true,
	}
}

// TestConfig additionally allows temp directories so harnesses can
// stage fake helpers.
func TestConfig(projectRoot string, tempDirs ...string) Config {
	return Config{
		MaxSizeBytes:    maxSizeTest,
		AllowedPrefixes: append([]string{projectRoot}, tempDirs...),
		RequireAbsolute: true,
	}
}

// ConfigForPosture maps a posture name from the config file to a
// preset. Unknown postures get production, the safe default.
func ConfigForPosture(posture, projectRoot, expectedDigest string) Config {
	switch strings.ToLower(posture) {
	case "test":
		return TestConfig(projectRoot)
	case "development":
		return DevelopmentConfig(projectRoot)
	default:
		return ProductionConfig(projectRoot, expectedDigest)
	}
}
