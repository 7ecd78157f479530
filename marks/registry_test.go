package marks

import (
	"errors"
	"testing"

	"github.com/dshills/navhist/position"
)

func TestIDClassification(t *testing.T) {
	tests := []struct {
		id    ID
		scope Scope
		valid bool
	}{
		{'a', ScopeLocal, true},
		{'z', ScopeLocal, true},
		{'A', ScopeGlobal, true},
		{'Z', ScopeGlobal, true},
		{LastJumpOrigin, ScopeAutomatic, true},
		{LastChange, ScopeAutomatic, true},
		{LastInsertion, ScopeAutomatic, true},
		{SelectionStart, ScopeAutomatic, true},
		{SelectionEnd, ScopeAutomatic, true},
		{'0', 0, false},
		{'!', 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			if tt.id.Valid() != tt.valid {
				t.Fatalf("Valid() = %v, want %v", tt.id.Valid(), tt.valid)
			}
			if tt.valid && tt.id.Scope() != tt.scope {
				t.Errorf("Scope() = %v, want %v", tt.id.Scope(), tt.scope)
			}
		})
	}
}

func TestLocalMarkScoping(t *testing.T) {
	r := NewRegistry()
	posA := position.New("docA", 3, 0)

	if err := r.Set('a', posA); err != nil {
		t.Fatalf("Set: %v", err)
	}

	t.Run("visible from owning document", func(t *testing.T) {
		got, err := r.Get('a', "docA")
		if err != nil {
			t.Fatalf("Get: %v", err)
		}
		if got != posA {
			t.Errorf("Get = %v, want %v", got, posA)
		}
	})

	t.Run("invisible from another document", func(t *testing.T) {
		if _, err := r.Get('a', "docB"); !errors.Is(err, ErrMarkNotFound) {
			t.Errorf("Get from docB = %v, want ErrMarkNotFound", err)
		}
	})

	t.Run("same id independent per document", func(t *testing.T) {
		posB := position.New("docB", 8, 2)
		if err := r.Set('a', posB); err != nil {
			t.Fatalf("Set: %v", err)
		}
		gotA, _ := r.Get('a', "docA")
		gotB, _ := r.Get('a', "docB")
		if gotA != posA || gotB != posB {
			t.Errorf("marks bled across documents: %v / %v", gotA, gotB)
		}
	})
}

func TestGlobalMarkScoping(t *testing.T) {
	r := NewRegistry()
	pos := position.New("docA", 12, 1)

	if err := r.Set('Q', pos); err != nil {
		t.Fatalf("Set: %v", err)
	}

	for _, doc := range []position.DocumentID{"docA", "docB", "docC"} {
		got, err := r.Get('Q', doc)
		if err != nil {
			t.Fatalf("Get from %s: %v", doc, err)
		}
		if got != pos {
			t.Errorf("Get from %s = %v, want %v", doc, got, pos)
		}
	}
}

func TestAutomaticMarksSingleSlot(t *testing.T) {
	r := NewRegistry()

	first := position.New("d1", 1, 0)
	second := position.New("d2", 9, 4)
	if err := r.Set(LastChange, first); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if err := r.Set(LastChange, second); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := r.Get(LastChange, "d1")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != second {
		t.Errorf("automatic mark = %v, want overwritten value %v", got, second)
	}
}

func TestSetOverwrites(t *testing.T) {
	r := NewRegistry()
	r.Set('a', position.New("d1", 1, 0))
	r.Set('a', position.New("d1", 5, 2))

	got, _ := r.Get('a', "d1")
	if got.Line != 5 {
		t.Errorf("overwritten mark at line %d, want 5", got.Line)
	}
	if r.Count() != 1 {
		t.Errorf("Count = %d, want 1", r.Count())
	}
}

func TestInvalidMark(t *testing.T) {
	r := NewRegistry()
	pos := position.New("d1", 0, 0)

	if err := r.Set('7', pos); !errors.Is(err, ErrInvalidMark) {
		t.Errorf("Set('7') = %v, want ErrInvalidMark", err)
	}
	if _, err := r.Get('?', "d1"); !errors.Is(err, ErrInvalidMark) {
		t.Errorf("Get('?') = %v, want ErrInvalidMark", err)
	}
	if err := r.Clear('+', "d1"); !errors.Is(err, ErrInvalidMark) {
		t.Errorf("Clear('+') = %v, want ErrInvalidMark", err)
	}
}

func TestClear(t *testing.T) {
	r := NewRegistry()
	r.Set('a', position.New("d1", 2, 0))
	r.Set('G', position.New("d1", 4, 0))

	t.Run("local from wrong document", func(t *testing.T) {
		if err := r.Clear('a', "d2"); !errors.Is(err, ErrMarkNotFound) {
			t.Errorf("Clear from d2 = %v, want ErrMarkNotFound", err)
		}
	})

	t.Run("local from owning document", func(t *testing.T) {
		if err := r.Clear('a', "d1"); err != nil {
			t.Fatalf("Clear: %v", err)
		}
		if _, err := r.Get('a', "d1"); !errors.Is(err, ErrMarkNotFound) {
			t.Error("cleared mark should be gone")
		}
	})

	t.Run("global", func(t *testing.T) {
		if err := r.Clear('G', "whatever"); err != nil {
			t.Fatalf("Clear: %v", err)
		}
		if err := r.Clear('G', "whatever"); !errors.Is(err, ErrMarkNotFound) {
			t.Error("double clear should report not found")
		}
	})
}

func TestMarksListing(t *testing.T) {
	r := NewRegistry()
	r.Set('b', position.New("d1", 1, 0))
	r.Set('a', position.New("d1", 2, 0))
	r.Set('a', position.New("d2", 3, 0)) // other document's local: hidden
	r.Set('M', position.New("d2", 4, 0))
	r.Set(LastChange, position.New("d1", 5, 0))

	got := r.Marks("d1")
	if len(got) != 4 {
		t.Fatalf("Marks returned %d entries, want 4", len(got))
	}

	// Sorted by id rune: '.' < 'M' < 'a' < 'b'.
	wantIDs := []ID{LastChange, 'M', 'a', 'b'}
	for i, want := range wantIDs {
		if got[i].ID != want {
			t.Errorf("Marks[%d].ID = %s, want %s", i, got[i].ID, want)
		}
	}
	if got[0].Scope != ScopeAutomatic || got[1].Scope != ScopeGlobal || got[2].Scope != ScopeLocal {
		t.Error("mark scopes misreported in listing")
	}
}

func TestApplyEdit(t *testing.T) {
	r := NewRegistry()
	r.Set('a', position.New("d1", 10, 0))
	r.Set('b', position.New("d1", 6, 0))
	r.Set('G', position.New("d1", 20, 0))
	r.Set('H', position.New("d2", 20, 0))

	// Replace lines [5,8) with one line: delta -2, 'b' is inside.
	r.ApplyEdit("d1", position.Edit{StartLine: 5, OldLines: 3, NewLines: 1})

	if got, _ := r.Get('a', "d1"); got.Line != 8 {
		t.Errorf("'a' at line %d, want 8", got.Line)
	}
	if _, err := r.Get('b', "d1"); !errors.Is(err, ErrMarkNotFound) {
		t.Error("'b' inside the replaced range should be dropped")
	}
	if got, _ := r.Get('G', "d1"); got.Line != 18 {
		t.Errorf("'G' at line %d, want 18", got.Line)
	}
	if got, _ := r.Get('H', "d1"); got.Line != 20 {
		t.Error("'H' targets another document and must not move")
	}
}

func TestDropDocument(t *testing.T) {
	r := NewRegistry()
	r.Set('a', position.New("d1", 3, 0))
	r.Set('G', position.New("d1", 7, 0))
	r.Set('H', position.New("d2", 1, 0))

	r.DropDocument("d1")

	if _, err := r.Get('a', "d1"); !errors.Is(err, ErrMarkNotFound) {
		t.Error("local mark should die with its document")
	}
	if _, err := r.Get('G', "d1"); !errors.Is(err, ErrMarkNotFound) {
		t.Error("global mark targeting the closed document should be dropped")
	}
	if _, err := r.Get('H', "d1"); err != nil {
		t.Error("global mark targeting another document should survive")
	}
}
