package tracking

import (
	"github.com/dshills/navhist/position"
)

// Store is implemented by anything that holds positions and must stay
// consistent with document line numbering: the mark registry, the
// per-document change lists, and the per-window jump lists.
type Store interface {
	// ApplyEdit rewrites every held position in doc after the edit.
	// Positions inside the replaced range are dropped.
	ApplyEdit(doc position.DocumentID, edit position.Edit)

	// DropDocument removes every held position referencing doc.
	DropDocument(doc position.DocumentID)
}

// Tracker keeps every registered store consistent with document edits.
// The rewrite is eager and synchronous: by the time ApplyEdit returns,
// no store holds a stale position, so reads never need lazy resolution.
//
// Tracker is not safe for concurrent use; the owning manager serializes
// all access behind its own mutex.
type Tracker struct {
	stores []Store

	// Per-document edit sequence, strictly increasing.
	// Diagnostics and tests only; correctness never depends on it.
	seqs map[position.DocumentID]uint64
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{
		seqs: make(map[position.DocumentID]uint64),
	}
}

// Register adds a store to the rewrite fan-out.
// Stores are rewritten in registration order.
func (t *Tracker) Register(s Store) {
	t.stores = append(t.stores, s)
}

// ApplyEdit bumps the document's edit sequence and rewrites every
// registered store. Returns the new sequence value.
func (t *Tracker) ApplyEdit(doc position.DocumentID, edit position.Edit) uint64 {
	t.seqs[doc]++
	for _, s := range t.stores {
		s.ApplyEdit(doc, edit)
	}
	return t.seqs[doc]
}

// CloseDocument drops every stored position referencing doc from all
// registered stores and forgets the document's edit sequence.
func (t *Tracker) CloseDocument(doc position.DocumentID) {
	for _, s := range t.stores {
		s.DropDocument(doc)
	}
	delete(t.seqs, doc)
}

// Sequence returns the document's current edit sequence.
// Zero means no edit has been applied since the document was opened.
func (t *Tracker) Sequence(doc position.DocumentID) uint64 {
	return t.seqs[doc]
}

// Reset forgets all sequences. Registered stores are kept.
func (t *Tracker) Reset() {
	t.seqs = make(map[position.DocumentID]uint64)
}
