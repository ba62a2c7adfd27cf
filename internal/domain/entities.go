package domain

import "time"

// CommentBlock is the raw lines of one /** ... */ region, blank lines removed.
type CommentBlock []string

// TypedEntry is the payload of an @arg, @param, @property, @returns or @throws line.
type TypedEntry struct {
	Type        string `json:"type,omitempty"`
	Name        string `json:"name,omitempty"`
	Default     string `json:"default,omitempty"`
	Description string `json:"description"`
}

// DocRecord is the flat result of scanning a single comment block. Only tags
// present in the block populate fields.
type DocRecord struct {
	Module      string       `json:"module,omitempty"`
	Function    string       `json:"function,omitempty"`
	Description string       `json:"description,omitempty"`
	Async       bool         `json:"async,omitempty"`
	Arguments   []TypedEntry `json:"arguments,omitempty"`
	Properties  []TypedEntry `json:"properties,omitempty"`
	Returns     []TypedEntry `json:"returns,omitempty"`
	Throws      []TypedEntry `json:"throws,omitempty"`
}

// IsModule reports whether the record documents a module rather than a member.
func (r DocRecord) IsModule() bool {
	return r.Module != "" && r.Function == ""
}

// IsMethod reports whether the record documents a method.
func (r DocRecord) IsMethod() bool {
	return r.Function != ""
}

// MethodNode is a method record inside a compressed module.
type MethodNode struct {
	Name        string       `json:"name"`
	Description string       `json:"description,omitempty"`
	Async       bool         `json:"async,omitempty"`
	Arguments   []TypedEntry `json:"arguments,omitempty"`
	Properties  []TypedEntry `json:"properties,omitempty"`
	Returns     []TypedEntry `json:"returns,omitempty"`
	Throws      []TypedEntry `json:"throws,omitempty"`
}

// ModuleNode is the compressed documentation of one source unit.
type ModuleNode struct {
	Module      string       `json:"module,omitempty"`
	Description string       `json:"description,omitempty"`
	Async       bool         `json:"async,omitempty"`
	Properties  []TypedEntry `json:"properties,omitempty"`
	Methods     []MethodNode `json:"methods,omitempty"`
	Arguments   []TypedEntry `json:"arguments,omitempty"`
	Returns     []TypedEntry `json:"returns,omitempty"`
	Throws      []TypedEntry `json:"throws,omitempty"`
}

// ModuleTree maps a unit identifier to its compressed node.
type ModuleTree map[string]ModuleNode

// ExtractedDocs is the intermediary form written in extract-only mode.
type ExtractedDocs struct {
	Name    string                    `json:"name"`
	Version string                    `json:"version"`
	Tree    map[string][]CommentBlock `json:"tree"`
}

// BuiltDocs is the intermediary form written after parsing and compression.
type BuiltDocs struct {
	Name    string     `json:"name"`
	Version string     `json:"version"`
	Tree    ModuleTree `json:"tree"`
}

// Unit is one source file handed over by the walker.
type Unit struct {
	ID      string
	Path    string
	ModTime time.Time
	Size    int64
}

// Project carries the name and version shown in generated documentation.
type Project struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}
