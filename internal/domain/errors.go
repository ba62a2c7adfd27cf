package domain

import (
	"errors"
	"fmt"
)

var (
	ErrNotExist   = errors.New("does not exist, or is not accessible with current permissions")
	ErrNotDir     = errors.New("is not a directory")
	ErrNoProject  = errors.New("could not find package.json")
	ErrNoRenderer = errors.New("no renderer registered for format")
)

// StructuralError reports a source or target directory that cannot be used.
// It aborts the whole run.
type StructuralError struct {
	Path string
	Err  error
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("%s %v", e.Path, e.Err)
}

func (e *StructuralError) Unwrap() error {
	return e.Err
}

// MalformedEntryError reports a typed tag line without the " - " description delimiter.
type MalformedEntryError struct {
	Line string
}

func (e *MalformedEntryError) Error() string {
	return fmt.Sprintf("failed to parse description of typed entry: %q", e.Line)
}

// UnitError attaches the unit and block position to a parse failure.
type UnitError struct {
	Unit  string
	Block int
	Err   error
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("%s: comment block %d: %v", e.Unit, e.Block+1, e.Err)
}

func (e *UnitError) Unwrap() error {
	return e.Err
}

// UnknownTagWarning is raised by the markup front end for a tag outside its
// vocabulary. It never aborts rendering.
type UnknownTagWarning struct {
	Line int
	Tag  string
	Text string
}

func (w UnknownTagWarning) String() string {
	return fmt.Sprintf("error on line %d: Unknown tag '%s' in \"%s\".", w.Line, w.Tag, w.Text)
}
