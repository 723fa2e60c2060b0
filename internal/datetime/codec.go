package datetime

import (
	"fmt"
	"strings"
	"time"
)

// WireLayout is the timestamp format the task service expects.
const WireLayout = "2006-01-02T15:04:05.000-0700"

const (
	offsetUTC      = "+0000"
	offsetDaylight = "-0700"
	offsetStandard = "-0800"
)

// Input layouts accepted for due-date literals, tried in order.
var inputLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// Encode converts a date-time literal into the wire format.
//
// A literal ending in "Z" is taken as UTC and passed through with the
// clock value unchanged and the +0000 offset substituted. Anything else is
// assumed local and stamped with the offset for its calendar date.
// Impossible calendar dates (day 32, February 30) fail the round-trip
// parse and are rejected.
func Encode(literal string) (string, error) {
	literal = strings.TrimSpace(literal)
	if literal == "" {
		return "", fmt.Errorf("empty date-time literal")
	}

	offset := ""
	if strings.HasSuffix(literal, "Z") {
		literal = strings.TrimSuffix(literal, "Z")
		offset = offsetUTC
	}

	parsed, err := parseLiteral(literal)
	if err != nil {
		return "", err
	}

	if offset == "" {
		offset = offsetFor(parsed)
	}

	wire := parsed.Format("2006-01-02T15:04:05.000") + offset
	if _, err := time.Parse(WireLayout, wire); err != nil {
		return "", fmt.Errorf("invalid date-time literal %q: %w", literal, err)
	}
	return wire, nil
}

// parseLiteral tries each accepted layout, rejecting literals whose
// components are out of range.
func parseLiteral(literal string) (time.Time, error) {
	var lastErr error
	for _, layout := range inputLayouts {
		t, err := time.Parse(layout, literal)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("invalid date-time literal %q: %w", literal, lastErr)
}

// offsetFor selects the fixed offset for a calendar date.
// The daylight window is March 8 through November 1, inclusive.
func offsetFor(t time.Time) string {
	m, d := t.Month(), t.Day()
	afterStart := m > time.March || (m == time.March && d >= 8)
	beforeEnd := m < time.November || (m == time.November && d <= 1)
	if afterStart && beforeEnd {
		return offsetDaylight
	}
	return offsetStandard
}
