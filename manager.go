package navhist

import (
	"fmt"
	"sync"

	"github.com/dshills/navhist/changelist"
	"github.com/dshills/navhist/jumplist"
	"github.com/dshills/navhist/marks"
	"github.com/dshills/navhist/position"
	"github.com/dshills/navhist/tracking"
)

// Manager is the single entry point consumed by the editor shell.
// It routes motion and edit events to the jump lists, change lists,
// mark registry, and position tracker, and exposes the navigation
// query surface back to the shell.
//
// All entry points are serialized behind one mutex per Manager, so a
// Manager may be shared by multiple UI surfaces. Component state
// itself carries no locks; it is exclusively owned here.
type Manager struct {
	mu sync.Mutex

	capacity int
	logger   *Logger

	tracker *tracking.Tracker
	marks   *marks.Registry
	jumps   map[position.WindowID]*jumplist.List
	changes map[position.DocumentID]*changelist.List
}

// NewManager creates a manager with default settings.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		capacity: DefaultHistoryCapacity,
		logger:   NewLogger(DefaultLoggerConfig()),
		tracker:  tracking.NewTracker(),
		marks:    marks.NewRegistry(),
		jumps:    make(map[position.WindowID]*jumplist.List),
		changes:  make(map[position.DocumentID]*changelist.List),
	}

	for _, opt := range opts {
		opt(m)
	}
	m.logger = m.logger.WithComponent("manager")

	m.tracker.Register(m.marks)
	m.tracker.Register(jumpStores{m})
	m.tracker.Register(changeStores{m})

	return m
}

// HistoryCapacity returns the per-list entry capacity.
func (m *Manager) HistoryCapacity() int {
	return m.capacity
}

// Registration

// OpenWindow registers a window, creating its jump list.
// Idempotent: reopening an already-open window keeps its history.
func (m *Manager) OpenWindow(window position.WindowID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.jumpListLocked(window)
}

// OpenDocument registers a document, creating its change list.
// Idempotent: reopening an already-open document keeps its history.
func (m *Manager) OpenDocument(doc position.DocumentID) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.changeListLocked(doc)
}

// Events

// OnMotion is called by the editor shell before each cursor move.
// before is the position the cursor is leaving. Jump-class motions
// record a jump entry and update the last-jump-origin mark; fine
// motions are ignored. Motion classification is the shell's decision.
func (m *Manager) OnMotion(window position.WindowID, before position.Position, isJump bool) {
	if !isJump {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	m.jumpListLocked(window).Record(before)
	m.marks.Set(marks.LastJumpOrigin, before) //nolint:errcheck // automatic ids are always valid
	m.logger.Debug("jump recorded window=%s from=%s", window, before)
}

// OnEditCommitted is called once per committed edit, after the change
// lands in the buffer. The position rewrite runs first so every list
// and mark read later in this call is already consistent; then the
// new cursor position is recorded as a change location and as the
// last-change mark.
func (m *Manager) OnEditCommitted(doc position.DocumentID, edit position.Edit, newCursor position.Position) {
	m.mu.Lock()
	defer m.mu.Unlock()

	seq := m.tracker.ApplyEdit(doc, edit)
	m.changeListLocked(doc).Record(newCursor)
	m.marks.Set(marks.LastChange, newCursor) //nolint:errcheck
	m.logger.Debug("edit committed doc=%s edit=%s seq=%d cursor=%s", doc, edit, seq, newCursor)
}

// OnInsertEnded is called when the shell leaves insertion, recording
// the last-insertion automatic mark.
func (m *Manager) OnInsertEnded(pos position.Position) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marks.Set(marks.LastInsertion, pos) //nolint:errcheck
}

// OnSelectionChanged records the selection bound automatic marks.
func (m *Manager) OnSelectionChanged(start, end position.Position) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marks.Set(marks.SelectionStart, start) //nolint:errcheck
	m.marks.Set(marks.SelectionEnd, end)     //nolint:errcheck
}

// OnDocumentClosed removes every stored position referencing the
// closed document: its marks and change list, and its entries in
// every window's jump list, which would otherwise become unreachable
// holes.
func (m *Manager) OnDocumentClosed(doc position.DocumentID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tracker.CloseDocument(doc)
	delete(m.changes, doc)
	m.logger.Debug("document closed doc=%s", doc)
}

// OnWindowClosed frees the window's jump list.
func (m *Manager) OnWindowClosed(window position.WindowID) {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.jumps, window)
	m.logger.Debug("window closed window=%s", window)
}

// Queries

// JumpOlder retraces one step through the window's jump history.
// current is the live cursor position; invoked at the live edge it is
// captured so JumpNewer can return to it. Returns ErrAtOldestJump at
// the far end.
func (m *Manager) JumpOlder(window position.WindowID, current position.Position) (position.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mustJumpList(window).Older(current)
}

// JumpNewer re-advances one step through the window's jump history.
// Returns ErrAtNewestJump at the live edge.
func (m *Manager) JumpNewer(window position.WindowID) (position.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mustJumpList(window).Newer()
}

// ChangeOlder moves to an older recorded edit location in the
// document. Returns ErrAtOldestChange at the far end.
func (m *Manager) ChangeOlder(doc position.DocumentID) (position.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mustChangeList(doc).Older()
}

// ChangeNewer moves to a newer recorded edit location in the
// document. Returns ErrAtNewestChange at the newest entry.
func (m *Manager) ChangeNewer(doc position.DocumentID) (position.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.mustChangeList(doc).Newer()
}

// SetMark stores a user mark at the given position.
func (m *Manager) SetMark(id marks.ID, pos position.Position) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.marks.Set(id, pos)
}

// GetMark resolves a mark from the given current document. Local
// marks resolve only within the document that set them.
func (m *Manager) GetMark(id marks.ID, current position.DocumentID) (position.Position, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.marks.Get(id, current)
}

// ClearMark removes a mark. Local marks are cleared within the given
// current document only.
func (m *Manager) ClearMark(id marks.ID, current position.DocumentID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.marks.Clear(id, current)
}

// Marks lists the marks visible from the given document, sorted by id.
func (m *Manager) Marks(current position.DocumentID) []marks.Mark {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.marks.Marks(current)
}

// Introspection

// JumpEntries returns the window's jump history, oldest first, and the
// traversal cursor. Unknown windows report an empty history.
func (m *Manager) JumpEntries(window position.WindowID) ([]jumplist.Entry, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.jumps[window]
	if !ok {
		return nil, 0
	}
	return l.Entries(), l.Cursor()
}

// ChangeEntries returns the document's change history, oldest first,
// and the traversal cursor. Unknown documents report an empty history.
func (m *Manager) ChangeEntries(doc position.DocumentID) ([]changelist.Entry, int) {
	m.mu.Lock()
	defer m.mu.Unlock()

	l, ok := m.changes[doc]
	if !ok {
		return nil, 0
	}
	return l.Entries(), l.Cursor()
}

// HasWindow reports whether the window has a jump list.
func (m *Manager) HasWindow(window position.WindowID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.jumps[window]
	return ok
}

// HasDocument reports whether the document has a change list.
func (m *Manager) HasDocument(doc position.DocumentID) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.changes[doc]
	return ok
}

// EditSequence returns the document's edit sequence counter.
// Diagnostics and tests only.
func (m *Manager) EditSequence(doc position.DocumentID) uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.tracker.Sequence(doc)
}

// Reset drops all navigation history, marks, and edit sequences.
func (m *Manager) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.tracker.Reset()
	m.marks.Reset()
	m.jumps = make(map[position.WindowID]*jumplist.List)
	m.changes = make(map[position.DocumentID]*changelist.List)
}

// Internal helpers

// jumpListLocked returns the window's jump list, creating it on first
// use (must hold lock).
func (m *Manager) jumpListLocked(window position.WindowID) *jumplist.List {
	l, ok := m.jumps[window]
	if !ok {
		l = jumplist.NewList(window, m.capacity)
		m.jumps[window] = l
	}
	return l
}

// changeListLocked returns the document's change list, creating it on
// first use (must hold lock).
func (m *Manager) changeListLocked(doc position.DocumentID) *changelist.List {
	l, ok := m.changes[doc]
	if !ok {
		l = changelist.NewList(doc, m.capacity)
		m.changes[doc] = l
	}
	return l
}

// mustJumpList returns the window's jump list or panics. Querying a
// window the shell never registered or emitted a motion for is a
// caller contract violation (must hold lock).
func (m *Manager) mustJumpList(window position.WindowID) *jumplist.List {
	l, ok := m.jumps[window]
	if !ok {
		panic(fmt.Sprintf("navhist: no jump list for window %q; the shell must open the window or emit a motion before querying it", window))
	}
	return l
}

// mustChangeList returns the document's change list or panics
// (must hold lock).
func (m *Manager) mustChangeList(doc position.DocumentID) *changelist.List {
	l, ok := m.changes[doc]
	if !ok {
		panic(fmt.Sprintf("navhist: no change list for document %q; the shell must open the document or commit an edit before querying it", doc))
	}
	return l
}

// jumpStores fans tracker rewrites out to every window's jump list.
type jumpStores struct{ m *Manager }

func (s jumpStores) ApplyEdit(doc position.DocumentID, edit position.Edit) {
	for _, l := range s.m.jumps {
		l.ApplyEdit(doc, edit)
	}
}

func (s jumpStores) DropDocument(doc position.DocumentID) {
	for _, l := range s.m.jumps {
		l.DropDocument(doc)
	}
}

// changeStores fans tracker rewrites out to every document's change list.
type changeStores struct{ m *Manager }

func (s changeStores) ApplyEdit(doc position.DocumentID, edit position.Edit) {
	if l, ok := s.m.changes[doc]; ok {
		l.ApplyEdit(doc, edit)
	}
}

func (s changeStores) DropDocument(doc position.DocumentID) {
	if l, ok := s.m.changes[doc]; ok {
		l.Clear()
	}
}
