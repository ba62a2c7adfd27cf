package analyzer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccomment/internal/domain"
)

func TestParseTypedEntry(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		withName bool
		want     domain.TypedEntry
	}{
		{
			name:     "typed argument",
			line:     " * @arg {String} name - Who to greet.",
			withName: true,
			want:     domain.TypedEntry{Type: "String", Name: "name", Description: "Who to greet."},
		},
		{
			name:     "argument with default",
			line:     " * @argument {String} Joke = Lol - An argument.",
			withName: true,
			want:     domain.TypedEntry{Type: "String", Name: "Joke", Default: "Lol", Description: "An argument."},
		},
		{
			name:     "returns without name",
			line:     " * @returns {String} - The greeting.",
			withName: false,
			want:     domain.TypedEntry{Type: "String", Description: "The greeting."},
		},
		{
			name:     "name mode ignored without flag",
			line:     " * @throws {RangeError} tooBig - When n exceeds the limit.",
			withName: false,
			want:     domain.TypedEntry{Type: "RangeError", Description: "When n exceeds the limit."},
		},
		{
			name:     "untyped argument",
			line:     " * @param count - How many.",
			withName: true,
			want:     domain.TypedEntry{Name: "count", Description: "How many."},
		},
		{
			name:     "empty braces omit type",
			line:     " * @returns {} - Nothing useful.",
			withName: false,
			want:     domain.TypedEntry{Description: "Nothing useful."},
		},
		{
			name:     "typed entry without name",
			line:     " * @arg {Object} - Options bag.",
			withName: true,
			want:     domain.TypedEntry{Type: "Object", Description: "Options bag."},
		},
		{
			name:     "description keeps later delimiters",
			line:     " * @returns {Boolean} - true if a = b - or close enough",
			withName: false,
			want:     domain.TypedEntry{Type: "Boolean", Description: "true if a = b - or close enough"},
		},
		{
			name:     "braces inside description are not a type",
			line:     " * @returns - a {key} map",
			withName: false,
			want:     domain.TypedEntry{Description: "a {key} map"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTypedEntry(tt.line, tt.withName)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTypedEntry_MissingDescription(t *testing.T) {
	lines := []string{
		" * @arg {String} name",
		" * @returns {String}",
		" * @throws {Error}-no spaces",
	}

	for _, line := range lines {
		_, err := ParseTypedEntry(line, true)
		require.Error(t, err, line)

		var malformed *domain.MalformedEntryError
		require.True(t, errors.As(err, &malformed), "expected MalformedEntryError for %q, got %T", line, err)
		assert.Equal(t, line, malformed.Line)
	}
}

func TestChunk(t *testing.T) {
	got, ok := Chunk("a {b} c", "{", "}")
	assert.True(t, ok)
	assert.Equal(t, "b", got)

	got, ok = Chunk("key - value", " - ", lineEnd)
	assert.True(t, ok)
	assert.Equal(t, "value", got)

	_, ok = Chunk("nothing here", "{", "}")
	assert.False(t, ok)

	got, ok = ChunkAny(" x = 1 - y", "", " =", " -")
	assert.True(t, ok)
	assert.Equal(t, " x", got)
}
