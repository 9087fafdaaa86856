package binsec

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/zeebo/blake3"
)

// Validate applies every check in Config to path, in fixed order:
// absolute, no parent-traversal segment, allow-listed prefix, exists,
// regular file, size ceiling, executable bit, content digest. The
// first failing check rejects the candidate.
func Validate(path string, cfg Config) error {
	if cfg.RequireAbsolute && !filepath.IsAbs(path) {
		return &ValidationError{Code: CodeNotAbsolute, Path: path}
	}

	if hasTraversalSegment(path) {
		return &ValidationError{Code: CodePathTraversal, Path: path}
	}

	if !underAllowedPrefix(path, cfg.AllowedPrefixes) {
		return &ValidationError{Code: CodeForbiddenPath, Path: path}
	}

	info, err := os.Stat(path)
	if err != nil {
		return &ValidationError{Code: CodeNotFound, Path: path, Detail: err.Error()}
	}

	if !info.Mode().IsRegular() {
		return &ValidationError{Code: CodeNotRegularFile, Path: path}
	}

	if info.Size() > cfg.MaxSizeBytes {
		return &ValidationError{
			Code:   CodeTooLarge,
			Path:   path,
			Detail: fmt.Sprintf("%d bytes exceeds limit %d", info.Size(), cfg.MaxSizeBytes),
		}
	}

	if info.Mode().Perm()&0o111 == 0 {
		return &ValidationError{Code: CodeNotExecutable, Path: path}
	}

	if cfg.ExpectedDigest != "" {
		digest, err := FileDigest(path)
		if err != nil {
			return &ValidationError{Code: CodeDigestUnreadable, Path: path, Detail: err.Error()}
		}

		if !strings.EqualFold(digest, cfg.ExpectedDigest) {
			return &ValidationError{
				Code:   CodeDigestMismatch,
				Path:   path,
				Detail: fmt.Sprintf("got %s, want %s", digest, cfg.ExpectedDigest),
			}
		}
	}

	return nil
}

// hasTraversalSegment reports whether any path segment is "..".
// Checked on the raw path, before any cleaning, so a crafted
// "/allowed/../else" never reaches the prefix check in sanitized form.
func hasTraversalSegment(path string) bool {
	for _, segment := range strings.Split(filepath.ToSlash(path), "/") {
		if segment == ".." {
			return true
		}
	}

	return false
}

func underAllowedPrefix(path string, prefixes []string) bool {
	for _, prefix := range prefixes {
		if prefix == "" {
			continue
		}

		rel, err := filepath.Rel(prefix, path)
		if err != nil {
			continue
		}

		if rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
			return true
		}
	}

	return false
}

// FileDigest returns the hex BLAKE3 digest of the file content.
func FileDigest(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	hasher := blake3.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return "", err
	}

	return hex.EncodeToString(hasher.Sum(nil)), nil
}
