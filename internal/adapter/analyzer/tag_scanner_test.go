package analyzer

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"doccomment/internal/domain"
)

func TestTagScanner_ModuleBlock(t *testing.T) {
	s := NewTagScanner()

	rec, err := s.Scan(domain.CommentBlock{
		"/**",
		" * @module Test",
		" * @description Testing functionality.",
		" * @property {TypeVal} propNameHere - A property.",
		" */",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.DocRecord{
		Module:      "Test",
		Description: "Testing functionality.",
		Properties: []domain.TypedEntry{
			{Type: "TypeVal", Name: "propNameHere", Description: "A property."},
		},
	}, rec)
}

func TestTagScanner_MethodBlock(t *testing.T) {
	s := NewTagScanner()

	rec, err := s.Scan(domain.CommentBlock{
		"/**",
		" * @method icular",
		" * @async",
		" * @description A method or function.",
		" * @argument {String} Joke = Lol - An argument.",
		" * @returns {Boolean} - `true` if funny, otherwise `false`.",
		" * @throws {ErrorType} - If it feels like it.",
		" */",
	})
	require.NoError(t, err)

	assert.Equal(t, "icular", rec.Function)
	assert.Empty(t, rec.Module)
	assert.True(t, rec.Async)
	assert.Equal(t, "A method or function.", rec.Description)
	assert.Equal(t, []domain.TypedEntry{{Type: "String", Name: "Joke", Default: "Lol", Description: "An argument."}}, rec.Arguments)
	assert.Equal(t, []domain.TypedEntry{{Type: "Boolean", Description: "`true` if funny, otherwise `false`."}}, rec.Returns)
	assert.Equal(t, []domain.TypedEntry{{Type: "ErrorType", Description: "If it feels like it."}}, rec.Throws)
	assert.Nil(t, rec.Properties)
}

func TestTagScanner_LastValueWins(t *testing.T) {
	s := NewTagScanner()

	rec, err := s.Scan(domain.CommentBlock{
		"/**",
		" * @description first",
		" * @async",
		" * @description second",
		" */",
	})
	require.NoError(t, err)

	assert.Equal(t, "second", rec.Description)
	assert.True(t, rec.Async)
}

func TestTagScanner_ArgumentsKeepOrder(t *testing.T) {
	s := NewTagScanner()

	rec, err := s.Scan(domain.CommentBlock{
		" * @arg {String} src - Source directory.",
		" * @param {RegExp} pattern - File pattern.",
		" * @arg {Boolean} recursive - Descend into children.",
	})
	require.NoError(t, err)

	require.Len(t, rec.Arguments, 3)
	assert.Equal(t, "src", rec.Arguments[0].Name)
	assert.Equal(t, "pattern", rec.Arguments[1].Name)
	assert.Equal(t, "recursive", rec.Arguments[2].Name)
}

func TestTagScanner_EmptyBlockHasNoFields(t *testing.T) {
	s := NewTagScanner()

	rec, err := s.Scan(domain.CommentBlock{"/**", " * just prose", " */"})
	require.NoError(t, err)
	assert.Equal(t, domain.DocRecord{}, rec)
}

func TestTagScanner_UntaggedReturnsIgnored(t *testing.T) {
	s := NewTagScanner()

	rec, err := s.Scan(domain.CommentBlock{
		" * @method extractFromFile",
		" * returns {Array} - Lines that are doccomments.",
	})
	require.NoError(t, err)
	assert.Nil(t, rec.Returns)
}

func TestTagScanner_MalformedEntryFailsBlock(t *testing.T) {
	s := NewTagScanner()

	_, err := s.Scan(domain.CommentBlock{
		" * @method broken",
		" * @arg {String} name",
	})
	require.Error(t, err)

	var malformed *domain.MalformedEntryError
	assert.True(t, errors.As(err, &malformed))
}
