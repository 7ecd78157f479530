package position

import "testing"

func TestPositionCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b Position
		want int
	}{
		{"equal", New("d1", 3, 4), New("d1", 3, 4), 0},
		{"earlier line", New("d1", 2, 9), New("d1", 3, 0), -1},
		{"later line", New("d1", 5, 0), New("d1", 3, 9), 1},
		{"earlier column", New("d1", 3, 1), New("d1", 3, 2), -1},
		{"later column", New("d1", 3, 8), New("d1", 3, 2), 1},
		{"different documents", New("a", 9, 9), New("b", 0, 0), -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Compare(tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestPositionHelpers(t *testing.T) {
	a := New("d1", 2, 0)
	b := New("d1", 4, 0)

	if !a.Before(b) {
		t.Error("a.Before(b) should be true")
	}
	if !b.After(a) {
		t.Error("b.After(a) should be true")
	}
	if !a.SameLine(New("d1", 2, 7)) {
		t.Error("SameLine should ignore columns")
	}
	if a.SameLine(New("d2", 2, 0)) {
		t.Error("SameLine should require the same document")
	}
	if !(Position{}).IsZero() {
		t.Error("zero position should report IsZero")
	}
	if got := a.String(); got != "d1(2:0)" {
		t.Errorf("String() = %q, want %q", got, "d1(2:0)")
	}
}

func TestEditDelta(t *testing.T) {
	e := Edit{StartLine: 5, OldLines: 2, NewLines: 1}
	if e.Delta() != -1 {
		t.Errorf("Delta() = %d, want -1", e.Delta())
	}
	if e.EndLine() != 7 {
		t.Errorf("EndLine() = %d, want 7", e.EndLine())
	}
	if got := e.String(); got != "[5,7)->1" {
		t.Errorf("String() = %q, want %q", got, "[5,7)->1")
	}
}

func TestShiftLine(t *testing.T) {
	tests := []struct {
		name     string
		line     int
		edit     Edit
		want     int
		survives bool
	}{
		{"before replaced range", 10, Edit{StartLine: 12, OldLines: 3, NewLines: 1}, 10, true},
		{"after shrink", 10, Edit{StartLine: 5, OldLines: 2, NewLines: 1}, 9, true},
		{"after growth", 10, Edit{StartLine: 5, OldLines: 1, NewLines: 4}, 13, true},
		{"inside replaced range", 10, Edit{StartLine: 8, OldLines: 4, NewLines: 2}, 0, false},
		{"at start of range", 8, Edit{StartLine: 8, OldLines: 4, NewLines: 2}, 0, false},
		{"at end of range", 12, Edit{StartLine: 8, OldLines: 4, NewLines: 2}, 10, true},
		{"pure insertion above", 10, Edit{StartLine: 3, OldLines: 0, NewLines: 2}, 12, true},
		{"pure insertion at line", 10, Edit{StartLine: 10, OldLines: 0, NewLines: 2}, 12, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ShiftLine(tt.line, tt.edit)
			if ok != tt.survives {
				t.Fatalf("ShiftLine(%d, %v) survives = %v, want %v", tt.line, tt.edit, ok, tt.survives)
			}
			if ok && got != tt.want {
				t.Errorf("ShiftLine(%d, %v) = %d, want %d", tt.line, tt.edit, got, tt.want)
			}
		})
	}
}

func TestShift(t *testing.T) {
	edit := Edit{StartLine: 5, OldLines: 2, NewLines: 1}

	t.Run("other document untouched", func(t *testing.T) {
		p := New("d2", 10, 3)
		got, ok := Shift(p, "d1", edit)
		if !ok || got != p {
			t.Errorf("Shift() = %v, %v; want %v unchanged", got, ok, p)
		}
	})

	t.Run("column preserved on shift", func(t *testing.T) {
		got, ok := Shift(New("d1", 10, 3), "d1", edit)
		if !ok {
			t.Fatal("position should survive")
		}
		if got.Line != 9 || got.Column != 3 {
			t.Errorf("Shift() = %v, want d1(9:3)", got)
		}
	})

	t.Run("inside range dropped", func(t *testing.T) {
		if _, ok := Shift(New("d1", 5, 0), "d1", edit); ok {
			t.Error("position inside the replaced range should be dropped")
		}
	})
}
