package jumplist

import (
	"errors"

	"github.com/dshills/navhist/position"
)

// DefaultCapacity is the default maximum number of entries retained.
const DefaultCapacity = 100

// Boundary conditions for traversal. These are normal terminal
// outcomes of Older/Newer, not failures.
var (
	ErrAtOldest = errors.New("at oldest jump")
	ErrAtNewest = errors.New("at newest jump")
)

// Entry is a single visited location in the owning window's history.
type Entry struct {
	Position position.Position
	Window   position.WindowID
}

// List lets the user retrace and re-advance through jump-class cursor
// movements, across documents, within one window. Each window owns an
// independent List; there is no cross-window sharing.
//
// Recording never truncates entries newer than the cursor: it dedupes,
// appends, and re-anchors the cursor at the live edge, so forward
// history survives further Older calls.
//
// List is not safe for concurrent use; the owning manager serializes
// all access.
type List struct {
	window   position.WindowID
	entries  []Entry
	cursor   int // in [0, len(entries)]; len means "at the live edge"
	capacity int
}

// NewList creates a jump list for a window.
// A non-positive capacity selects DefaultCapacity.
func NewList(window position.WindowID, capacity int) *List {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &List{window: window, capacity: capacity}
}

// Window returns the owning window id.
func (l *List) Window() position.WindowID {
	return l.window
}

// Record notes the position the cursor is leaving, called just before
// a jump-class motion executes. An existing entry for the same
// document and line is removed first so the list holds no stale copies
// of the same location. The cursor re-anchors at the live edge.
func (l *List) Record(pos position.Position) {
	l.removeSameLine(pos)
	l.entries = append(l.entries, Entry{Position: pos, Window: l.window})
	if len(l.entries) > l.capacity {
		l.entries = l.entries[len(l.entries)-l.capacity:]
	}
	l.cursor = len(l.entries)
}

// removeSameLine drops the entry matching pos's document and line,
// if any, pulling the cursor back when the removal is behind it.
func (l *List) removeSameLine(pos position.Position) {
	for i := range l.entries {
		if l.entries[i].Position.SameLine(pos) {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			if i < l.cursor {
				l.cursor--
			}
			return
		}
	}
}

// Older moves back through history and returns the entry it lands on.
// current is the caller's live cursor position; when Older is invoked
// at the live edge it is captured as a return anchor so that Newer can
// come all the way back. At the oldest entry Older returns ErrAtOldest
// and leaves the cursor untouched.
func (l *List) Older(current position.Position) (position.Position, error) {
	if len(l.entries) == 0 {
		return position.Position{}, ErrAtOldest
	}

	if l.cursor == len(l.entries) {
		l.anchor(current)
	}

	if l.cursor == 0 {
		return position.Position{}, ErrAtOldest
	}
	l.cursor--
	return l.entries[l.cursor].Position, nil
}

// anchor captures the live position as the newest entry. A last entry
// on the same line is overwritten rather than duplicated.
func (l *List) anchor(current position.Position) {
	if n := len(l.entries); n > 0 && l.entries[n-1].Position.SameLine(current) {
		l.entries[n-1].Position = current
	} else {
		l.entries = append(l.entries, Entry{Position: current, Window: l.window})
		if len(l.entries) > l.capacity {
			l.entries = l.entries[len(l.entries)-l.capacity:]
		}
	}
	l.cursor = len(l.entries) - 1
}

// Newer moves forward through history and returns the entry it lands
// on. At the newest entry (or the live edge) it returns ErrAtNewest
// and leaves the cursor untouched.
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

// ApplyEdit implements tracking.Store. Entries in doc that fall inside
// the replaced range are dropped; the rest are shifted. Dropping an
// entry behind the cursor pulls the cursor back.
func (l *List) ApplyEdit(doc position.DocumentID, edit position.Edit) {
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
		l.entries[i].Position = shifted
		kept = append(kept, l.entries[i])
	}
	l.entries = kept
	l.clampCursor(cursor)
}

// DropDocument implements tracking.Store. Every entry referencing the
// closed document is removed; they would otherwise be unreachable holes.
func (l *List) DropDocument(doc position.DocumentID) {
	kept := l.entries[:0]
	cursor := l.cursor
	for i := range l.entries {
		if l.entries[i].Position.Doc == doc {
			if i < l.cursor {
				cursor--
			}
			continue
		}
		kept = append(kept, l.entries[i])
	}
	l.entries = kept
	l.clampCursor(cursor)
}

func (l *List) clampCursor(cursor int) {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(l.entries) {
		cursor = len(l.entries)
	}
	l.cursor = cursor
}
