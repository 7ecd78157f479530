package tracking

import (
	"testing"

	"github.com/dshills/navhist/position"
)

// recordingStore remembers the calls it receives.
type recordingStore struct {
	edits []string
	drops []position.DocumentID
}

func (s *recordingStore) ApplyEdit(doc position.DocumentID, edit position.Edit) {
	s.edits = append(s.edits, string(doc)+edit.String())
}

func (s *recordingStore) DropDocument(doc position.DocumentID) {
	s.drops = append(s.drops, doc)
}

func TestTrackerSequence(t *testing.T) {
	tr := NewTracker()
	edit := position.Edit{StartLine: 0, OldLines: 1, NewLines: 1}

	if tr.Sequence("d1") != 0 {
		t.Error("fresh document should have sequence 0")
	}

	if got := tr.ApplyEdit("d1", edit); got != 1 {
		t.Errorf("first ApplyEdit returned %d, want 1", got)
	}
	if got := tr.ApplyEdit("d1", edit); got != 2 {
		t.Errorf("second ApplyEdit returned %d, want 2", got)
	}
	if tr.Sequence("d2") != 0 {
		t.Error("sequences must be per document")
	}

	tr.ApplyEdit("d2", edit)
	if tr.Sequence("d1") != 2 || tr.Sequence("d2") != 1 {
		t.Errorf("sequences = %d/%d, want 2/1", tr.Sequence("d1"), tr.Sequence("d2"))
	}
}

func TestTrackerFanOut(t *testing.T) {
	tr := NewTracker()
	a := &recordingStore{}
	b := &recordingStore{}
	tr.Register(a)
	tr.Register(b)

	edit := position.Edit{StartLine: 3, OldLines: 2, NewLines: 5}
	tr.ApplyEdit("d1", edit)

	for _, s := range []*recordingStore{a, b} {
		if len(s.edits) != 1 || s.edits[0] != "d1[3,5)->5" {
			t.Errorf("store edits = %v, want one d1[3,5)->5", s.edits)
		}
	}
}

func TestTrackerCloseDocument(t *testing.T) {
	tr := NewTracker()
	s := &recordingStore{}
	tr.Register(s)

	edit := position.Edit{StartLine: 0, OldLines: 0, NewLines: 1}
	tr.ApplyEdit("d1", edit)
	tr.CloseDocument("d1")

	if len(s.drops) != 1 || s.drops[0] != "d1" {
		t.Errorf("drops = %v, want [d1]", s.drops)
	}
	if tr.Sequence("d1") != 0 {
		t.Error("closing a document should forget its sequence")
	}
}

func TestTrackerReset(t *testing.T) {
	tr := NewTracker()
	tr.ApplyEdit("d1", position.Edit{OldLines: 1, NewLines: 2})
	tr.Reset()

	if tr.Sequence("d1") != 0 {
		t.Error("Reset should forget all sequences")
	}
}
