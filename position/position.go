package position

import "fmt"

// DocumentID is an opaque, stable identifier for an open document.
// It is unrelated to any file path; the editor shell assigns it.
type DocumentID string

// WindowID is an opaque, stable identifier for an editor window.
type WindowID string

// Position identifies a location in a document.
// Line and Column are 0-indexed. A Position is an immutable value;
// when an edit shifts it, a new Position replaces it in its owning slot.
type Position struct {
	Doc    DocumentID
	Line   int
	Column int
}

// New creates a position in the given document.
func New(doc DocumentID, line, column int) Position {
	return Position{Doc: doc, Line: line, Column: column}
}

// String returns a human-readable representation of the position.
func (p Position) String() string {
	return fmt.Sprintf("%s(%d:%d)", p.Doc, p.Line, p.Column)
}

// Compare returns -1 if p < other, 0 if p == other, 1 if p > other.
// Positions in different documents compare by document id.
func (p Position) Compare(other Position) int {
	if p.Doc != other.Doc {
		if p.Doc < other.Doc {
			return -1
		}
		return 1
	}
	if p.Line < other.Line {
		return -1
	}
	if p.Line > other.Line {
		return 1
	}
	if p.Column < other.Column {
		return -1
	}
	if p.Column > other.Column {
		return 1
	}
	return 0
}

// Before returns true if p comes before other.
func (p Position) Before(other Position) bool {
	return p.Compare(other) < 0
}

// After returns true if p comes after other.
func (p Position) After(other Position) bool {
	return p.Compare(other) > 0
}

// SameLine returns true if both positions name the same line of the
// same document, ignoring columns.
func (p Position) SameLine(other Position) bool {
	return p.Doc == other.Doc && p.Line == other.Line
}

// IsZero returns true if this is the zero position.
func (p Position) IsZero() bool {
	return p.Doc == "" && p.Line == 0 && p.Column == 0
}
