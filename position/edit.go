package position

import "fmt"

// Edit describes a committed line-range replacement in a document:
// lines [StartLine, StartLine+OldLines) were replaced by NewLines lines.
// The editor shell must emit exactly one Edit per committed change,
// in document order, or stored positions drift.
type Edit struct {
	StartLine int
	OldLines  int
	NewLines  int
}

// Delta returns the change in document line count from the edit.
func (e Edit) Delta() int {
	return e.NewLines - e.OldLines
}

// EndLine returns the exclusive end of the replaced range.
func (e Edit) EndLine() int {
	return e.StartLine + e.OldLines
}

// String returns a human-readable representation of the edit.
func (e Edit) String() string {
	return fmt.Sprintf("[%d,%d)->%d", e.StartLine, e.EndLine(), e.NewLines)
}

// ShiftLine rewrites a line number after an edit.
// Returns the new line and true when the line survives the edit.
//
// Transformation rules:
//   - Line before the replaced range: unchanged
//   - Line at or after the end of the replaced range: adjusted by the delta
//   - Line inside the replaced range: the line no longer exists in a
//     well-defined sense; second return is false
func ShiftLine(line int, e Edit) (int, bool) {
	if line < e.StartLine {
		return line, true
	}
	if line >= e.EndLine() {
		return line + e.Delta(), true
	}
	return 0, false
}

// Shift rewrites a position after an edit in its document.
// Returns the superseding position and true when it survives.
// Positions in other documents are returned unchanged.
func Shift(p Position, doc DocumentID, e Edit) (Position, bool) {
	if p.Doc != doc {
		return p, true
	}
	line, ok := ShiftLine(p.Line, e)
	if !ok {
		return Position{}, false
	}
	return Position{Doc: p.Doc, Line: line, Column: p.Column}, true
}
