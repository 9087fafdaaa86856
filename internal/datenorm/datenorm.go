package datenorm

import (
	"errors"
	"fmt"
	"regexp"
	"time"
)

// ErrInvalidDateFormat rejects every input that does not match one of
// the three accepted shapes. One uniform error for all rejects; no
// partial or ambiguous parsing.
var ErrInvalidDateFormat = errors.New(
	"invalid date format (use \"YYYY-MM-DD HH:mm:ss\", ISO-8601, or \"YYYY-MM-DD\")")

// ParsedDate is a due-value formatted for an AppleScript date literal.
type ParsedDate struct {
	Formatted string
	DateOnly  bool
}

// Output patterns. Exactly one of these three is ever produced.
const (
	layoutDateOnly   = "January 2, 2006"
	layoutDateTime12 = "January 2, 2006 3:04:05 PM"
	layoutDateTime24 = "January 2, 2006 15:04:05"
)

// Accepted input shapes. Shape matching is strict: a string that fails
// all three regexes is rejected before any parse attempt, so
// plausible-but-nonconforming inputs get the same uniform error as
// garbage.
var (
	reDateTime = regexp.MustCompile(`^\d{4}-\d{2}-\d{2} \d{2}:\d{2}:\d{2}$`)
	reISO      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}(?:\.\d+)?(?:Z|[+-]\d{2}:?\d{2})?$`)
	reDateOnly = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
)

var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04:05-0700",
}

// Normalize validates input against the accepted shapes and reformats
// it. A bare date is classified date-only; the two date-time shapes are
// formatted with the hour notation the clock preference selects.
func Normalize(input string, clock *Clock) (ParsedDate, error) {
	switch {
	case reDateOnly.MatchString(input):
		t, err := time.Parse("2006-01-02", input)
		if err != nil {
			return ParsedDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, input)
		}

		return ParsedDate{Formatted: t.Format(layoutDateOnly), DateOnly: true}, nil

	case reDateTime.MatchString(input):
		t, err := time.Parse("2006-01-02 15:04:05", input)
		if err != nil {
			return ParsedDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, input)
		}

		return ParsedDate{Formatted: formatDateTime(t, clock)}, nil

	case reISO.MatchString(input):
		for _, layout := range isoLayouts {
			t, err := time.Parse(layout, input)
			if err == nil {
				return ParsedDate{Formatted: formatDateTime(t, clock)}, nil
			}
		}

		return ParsedDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, input)

	default:
		return ParsedDate{}, fmt.Errorf("%w: %q", ErrInvalidDateFormat, input)
	}
}

func formatDateTime(t time.Time, clock *Clock) string {
	if clock != nil && clock.Use24Hour() {
		return t.Format(layoutDateTime24)
	}

	return t.Format(layoutDateTime12)
}
