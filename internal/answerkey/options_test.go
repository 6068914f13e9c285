package answerkey

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestNormalizeOption tests canonicalization of option values
func TestNormalizeOption(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"A", "A"},
		{"a", "A"},
		{"Option B", "B"},
		{"option-3", "C"},
		{"1", "A"},
		{"2", "B"},
		{"3", "C"},
		{"4", "D"},
		{"(C)", "C"},
		{" d. ", "D"},
		{"--", ""},
		{"", ""},
		{"5", "5"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, NormalizeOption(tc.in), "input %q", tc.in)
	}
}

// TestNormalizeOptionIdempotent tests that normalizing a normalized value is a no-op
func TestNormalizeOptionIdempotent(t *testing.T) {
	for _, letter := range []string{"A", "B", "C", "D", ""} {
		assert.Equal(t, letter, NormalizeOption(NormalizeOption(letter)))
	}
}

// TestResolveOption tests digit and letter prefix resolution
func TestResolveOption(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"1. The Eiffel Tower", "A"},
		{"2) Paris", "B"},
		{"3- Berlin", "C"},
		{"4 London", "D"},
		{"B", "B"},
		{"c is correct", "C"},
		{"Option 2", "B"},
		{"", ""},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, resolveOption(tc.in), "input %q", tc.in)
	}
}
