package mutate

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/tickctl/tickctl/internal/datetime"
)

// Input validation failures, detected before any remote call is made.
var (
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDueDate  = errors.New("invalid due date")
)

// priorityNames maps the CLI's priority words onto the wire ordinals.
var priorityNames = map[string]int{
	"none":   0,
	"low":    1,
	"medium": 3,
	"high":   5,
}

// Changes is a field delta with per-field touched flags.
//
// The flags exist because the wire format cannot distinguish "clear
// priority" from "priority untouched" (both are an omitted zero). Keeping
// the distinction in memory lets the planner report it even though the
// legacy payload cannot carry it.
type Changes struct {
	Title    string
	TitleSet bool

	Content    string
	ContentSet bool

	Priority    int
	PrioritySet bool

	// DueDate holds the caller's raw literal; encoding to the wire format
	// happens at plan time.
	DueDate    string
	DueDateSet bool

	Tags    []string
	TagsSet bool
}

// Empty reports whether no field was touched.
func (c Changes) Empty() bool {
	return !c.TitleSet && !c.ContentSet && !c.PrioritySet && !c.DueDateSet && !c.TagsSet
}

// Validate checks every touched field against its domain: priority must be
// one of the fixed ordinals {0,1,3,5} and the due-date literal must encode
// to a valid wire timestamp.
func (c Changes) Validate() error {
	if c.PrioritySet {
		switch c.Priority {
		case 0, 1, 3, 5:
		default:
			return fmt.Errorf("%w: %d (valid: 0, 1, 3, 5)", ErrInvalidPriority, c.Priority)
		}
	}
	if c.DueDateSet {
		if _, err := datetime.Encode(c.DueDate); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidDueDate, err)
		}
	}
	return nil
}

// ParsePriority converts a CLI priority argument (a name or a bare
// ordinal) into its wire value.
func ParsePriority(s string) (int, error) {
	if p, ok := priorityNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return p, nil
	}
	p, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidPriority, s)
	}
	switch p {
	case 0, 1, 3, 5:
		return p, nil
	}
	return 0, fmt.Errorf("%w: %d (valid: 0, 1, 3, 5)", ErrInvalidPriority, p)
}
