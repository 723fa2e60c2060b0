package resolve

import "strings"

// Normalize canonicalizes a free-text name for approximate matching:
// every character outside letters, digits, space, underscore and hyphen is
// removed, surrounding whitespace is trimmed, and the result is lower-cased.
// The mapping is lossy and many-to-one; collisions are expected. Normalize
// is pure, deterministic and idempotent, and empty input yields empty
// output.
func Normalize(raw string) string {
	var b strings.Builder
	b.Grow(len(raw))
	for _, r := range raw {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == ' ', r == '_', r == '-':
			b.WriteRune(r)
		}
	}
	return strings.ToLower(strings.TrimSpace(b.String()))
}
