package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "Fix bug", "fix bug"},
		{"punctuation stripped", "Fix: the bug!", "fix the bug"},
		{"kept characters", "release_2-final", "release_2-final"},
		{"surrounding whitespace", "  Fix bug  ", "fix bug"},
		{"empty", "", ""},
		{"only punctuation", "!!!???", ""},
		{"unicode stripped", "café ☕", "caf"},
		{"digits", "v2 RC1", "v2 rc1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"Fix bug", "  WEIRD__name!! ", "123-abc", "", "café ☕ break"}
	for _, in := range inputs {
		once := Normalize(in)
		assert.Equal(t, once, Normalize(once), "normalize must be idempotent for %q", in)
	}
}

func TestIsTaskID(t *testing.T) {
	assert.True(t, IsTaskID("6863f1f2a9c5e8d3b4f0a1c2"))
	assert.False(t, IsTaskID("6863F1F2A9C5E8D3B4F0A1C2")) // uppercase hex is a name
	assert.False(t, IsTaskID("6863f1f2a9c5e8d3b4f0a1c"))  // 23 chars
	assert.False(t, IsTaskID("6863f1f2a9c5e8d3b4f0a1c2f")) // 25 chars
	assert.False(t, IsTaskID("fix the bug"))
	assert.False(t, IsTaskID(""))
}
