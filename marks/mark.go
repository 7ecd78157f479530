package marks

import (
	"github.com/dshills/navhist/position"
)

// ID names a mark. Lowercase letters are document-local marks,
// uppercase letters are workspace-global marks, and a small reserved
// set of punctuation ids are automatic marks maintained by the
// navigation manager rather than by user action.
type ID rune

// Automatic mark ids. Each is a single slot: writing one overwrites
// the previous value unconditionally.
const (
	// LastJumpOrigin is the position just before the most recent
	// jump-class motion.
	LastJumpOrigin ID = '\''

	// LastChange is the position of the most recent committed edit.
	LastChange ID = '.'

	// LastInsertion is the position where insertion last ended.
	LastInsertion ID = '^'

	// SelectionStart and SelectionEnd are the bounds of the most
	// recent selection.
	SelectionStart ID = '<'
	SelectionEnd   ID = '>'
)

// Scope classifies where a mark is visible from.
type Scope int

const (
	// ScopeLocal marks are visible only from the document that set them.
	ScopeLocal Scope = iota
	// ScopeGlobal marks are visible from any document.
	ScopeGlobal
	// ScopeAutomatic marks are global single slots written by the manager.
	ScopeAutomatic
)

// String returns the scope name.
func (s Scope) String() string {
	switch s {
	case ScopeLocal:
		return "local"
	case ScopeGlobal:
		return "global"
	case ScopeAutomatic:
		return "automatic"
	default:
		return "unknown"
	}
}

// IsLocal returns true for document-local mark ids (a-z).
func (id ID) IsLocal() bool {
	return id >= 'a' && id <= 'z'
}

// IsGlobal returns true for workspace-global mark ids (A-Z).
func (id ID) IsGlobal() bool {
	return id >= 'A' && id <= 'Z'
}

// IsAutomatic returns true for the reserved automatic mark ids.
func (id ID) IsAutomatic() bool {
	switch id {
	case LastJumpOrigin, LastChange, LastInsertion, SelectionStart, SelectionEnd:
		return true
	}
	return false
}

// Valid returns true if the id belongs to a recognized class.
func (id ID) Valid() bool {
	return id.IsLocal() || id.IsGlobal() || id.IsAutomatic()
}

// Scope returns the id's scope. Only meaningful for valid ids.
func (id ID) Scope() Scope {
	switch {
	case id.IsLocal():
		return ScopeLocal
	case id.IsAutomatic():
		return ScopeAutomatic
	default:
		return ScopeGlobal
	}
}

// String returns the mark name as typed by the user.
func (id ID) String() string {
	return string(rune(id))
}

// Mark is a named, persistent reference to a position.
type Mark struct {
	ID       ID
	Position position.Position
	Scope    Scope
}
