package changelist

import (
	"errors"

	"github.com/dshills/navhist/position"
)

// DefaultCapacity is the default maximum number of entries retained.
const DefaultCapacity = 100

// Boundary conditions for traversal. These are normal terminal
// outcomes of Older/Newer, not failures.
var (
	ErrAtOldest = errors.New("at oldest change")
	ErrAtNewest = errors.New("at newest change")
)

// Entry is a single recorded edit location.
type Entry struct {
	Position position.Position
}

// List tracks the sequence of locations where edits occurred in one
// document, strictly sequentially, with a single traversal cursor.
// New edits never branch: recording always re-anchors the cursor at
// the newest entry.
//
// List is not safe for concurrent use; the owning manager serializes
// all access.
type List struct {
	doc      position.DocumentID
	entries  []Entry
	cursor   int // in [0, len(entries)]; len means "at the live edge"
	capacity int
}

// NewList creates a change list for a document.
// A non-positive capacity selects DefaultCapacity.
func NewList(doc position.DocumentID, capacity int) *List {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List{doc: doc, capacity: capacity}
}

// Document returns the owning document id.
func (l *List) Document() position.DocumentID {
	return l.doc
}

// Record notes the location of a committed edit. A change on the same
// line as the last recorded entry updates that entry in place rather
// than duplicating it. The cursor re-anchors at the live edge.
func (l *List) Record(pos position.Position) {
	if n := len(l.entries); n > 0 && l.entries[n-1].Position.SameLine(pos) {
		l.entries[n-1].Position = pos
		l.cursor = n
		return
	}

	l.entries = append(l.entries, Entry{Position: pos})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
	l.cursor = len(l.entries)
}

// Older moves the cursor toward the oldest entry and returns the entry
// it lands on. At the oldest entry it returns ErrAtOldest and leaves
// the cursor untouched.
func (l *List) Older() (position.Position, error) {
	if l.cursor == 0 {
		return position.Position{}, ErrAtOldest
	}
	l.cursor--
	return l.entries[l.cursor].Position, nil
}

// Newer moves the cursor toward the newest entry and returns the entry
// it lands on. At the newest entry (or the live edge) it returns
// ErrAtNewest and leaves the cursor untouched.
func (l *List) Newer() (position.Position, error) {
	if l.cursor >= len(l.entries)-1 {
		return position.Position{}, ErrAtNewest
	}
	l.cursor++
	return l.entries[l.cursor].Position, nil
}

// Len returns the number of entries.
func (l *List) Len() int {
	return len(l.entries)
}

// Cursor returns the traversal cursor, in [0, Len()].
func (l *List) Cursor() int {
	return l.cursor
}

// Entries returns a copy of the recorded entries, oldest first.
func (l *List) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Clear removes all entries and resets the cursor.
func (l *List) Clear() {
	l.entries = nil
	l.cursor = 0
}

// ApplyEdit implements tracking.Store for the owning document.
// Entries inside the replaced range are dropped; the rest are shifted.
// Dropping an entry at or before the cursor pulls the cursor back.
func (l *List) ApplyEdit(doc position.DocumentID, edit position.Edit) {
	if doc != l.doc {
		return
	}

	kept := l.entries[:0]
	cursor := l.cursor
	for i := range l.entries {
		shifted, ok := position.Shift(l.entries[i].Position, doc, edit)
		if !ok {
			if i < l.cursor {
				cursor--
			}
			continue
		}
		kept = append(kept, Entry{Position: shifted})
	}
	l.entries = kept
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(l.entries) {
		cursor = len(l.entries)
	}
	l.cursor = cursor
}

// DropDocument implements tracking.Store.
func (l *List) DropDocument(doc position.DocumentID) {
	if doc == l.doc {
		l.Clear()
	}
}
