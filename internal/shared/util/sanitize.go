package util

import (
	"errors"
	"strings"
	"unicode"
)

// Slugify turns arbitrary text into a filesystem-safe identifier: the input
// is lower-cased, runs of whitespace collapse to a single underscore, and
// every remaining character outside [a-z0-9_-] is dropped. An empty input
// yields an empty slug; callers combine slugs with a timestamp, so this is
// not an error.
func Slugify(text string) string {
	lowered := strings.ToLower(text)

	var b strings.Builder
	b.Grow(len(lowered))

	// Whitespace collapses before the character filter runs, so leading and
	// trailing runs also become underscores.
	inSpace := false
	for _, r := range lowered {
		if unicode.IsSpace(r) {
			if !inSpace {
				b.WriteByte('_')
			}
			inSpace = true
			continue
		}
		inSpace = false
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// SanitizeFileName removes path separators and rejects traversal patterns.
func SanitizeFileName(name string) (string, error) {
	if strings.Contains(name, "..") {
		return "", errors.New("invalid file name")
	}
	s := strings.TrimSpace(name)
	s = strings.ReplaceAll(s, "/", "_")
	s = strings.ReplaceAll(s, "\\", "_")
	if s == "" {
		return "", errors.New("invalid file name")
	}
	return s, nil
}
