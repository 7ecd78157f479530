package main

import (
	"fmt"
	"math/rand"

	"github.com/gdamore/tcell/v2"

	"github.com/dshills/navhist"
	"github.com/dshills/navhist/marks"
	"github.com/dshills/navhist/position"
)

const demoWindow = position.WindowID("main")

// document is a fake open document: the demo tracks only line counts,
// since navhist never stores text.
type document struct {
	id    position.DocumentID
	lines int
}

// demo drives a Manager from keyboard input and renders its state.
type demo struct {
	mgr    *navhist.Manager
	screen tcell.Screen
	rng    *rand.Rand

	docs    []*document
	current int // index into docs
	line    int

	pending rune // 'm' or '\'' while waiting for a mark name
	status  string
}

func newDemo(mgr *navhist.Manager, rng *rand.Rand) (*demo, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, err
	}

	d := &demo{
		mgr:    mgr,
		screen: screen,
		rng:    rng,
		docs: []*document{
			{id: "main.go", lines: 120},
			{id: "parser.go", lines: 300},
			{id: "README.md", lines: 45},
		},
		status: "ready",
	}

	mgr.OpenWindow(demoWindow)
	for _, doc := range d.docs {
		mgr.OpenDocument(doc.id)
	}
	return d, nil
}

// Run owns the screen until the user quits.
func (d *demo) Run() error {
	if err := d.screen.Init(); err != nil {
		return err
	}
	defer d.screen.Fini()

	for {
		d.render()
		ev := d.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			d.screen.Sync()
		case *tcell.EventKey:
			if d.handleKey(ev) {
				return nil
			}
		}
	}
}

func (d *demo) cursor() position.Position {
	return position.New(d.docs[d.current].id, d.line, 0)
}

// jumpTo records the jump-class motion and moves the cursor.
func (d *demo) jumpTo(docIdx, line int) {
	d.mgr.OnMotion(demoWindow, d.cursor(), true)
	d.current = docIdx
	d.line = clamp(line, 0, d.docs[docIdx].lines-1)
}

// moveTo relocates the cursor to a possibly different document,
// without recording anything. Used when following history results.
func (d *demo) moveTo(pos position.Position) {
	for i, doc := range d.docs {
		if doc.id == pos.Doc {
			d.current = i
			d.line = clamp(pos.Line, 0, doc.lines-1)
			return
		}
	}
}

func (d *demo) handleKey(ev *tcell.EventKey) (quit bool) {
	if ev.Key() == tcell.KeyEscape {
		return true
	}
	if ev.Key() != tcell.KeyRune {
		return false
	}
	r := ev.Rune()

	if d.pending != 0 {
		d.finishMarkKey(r)
		return false
	}

	doc := d.docs[d.current]
	switch r {
	case 'q':
		return true

	case 'j':
		d.mgr.OnMotion(demoWindow, d.cursor(), false)
		d.line = clamp(d.line+1, 0, doc.lines-1)
		d.status = "moved down"
	case 'k':
		d.mgr.OnMotion(demoWindow, d.cursor(), false)
		d.line = clamp(d.line-1, 0, doc.lines-1)
		d.status = "moved up"

	case 'J':
		target := d.rng.Intn(doc.lines)
		d.jumpTo(d.current, target)
		d.status = fmt.Sprintf("jumped to line %d", target)

	case '1', '2', '3':
		idx := int(r - '1')
		if idx < len(d.docs) && idx != d.current {
			d.jumpTo(idx, 0)
			d.status = fmt.Sprintf("switched to %s", d.docs[idx].id)
		}

	case 'e':
		edit := position.Edit{StartLine: d.line, OldLines: 0, NewLines: 1}
		doc.lines++
		d.line = clamp(d.line+1, 0, doc.lines-1)
		d.mgr.OnEditCommitted(doc.id, edit, d.cursor())
		d.status = fmt.Sprintf("inserted a line at %d", edit.StartLine)

	case 'd':
		n := min(3, doc.lines-1)
		if n <= 0 {
			d.status = "nothing to delete"
			break
		}
		edit := position.Edit{StartLine: d.line, OldLines: n, NewLines: 0}
		doc.lines -= n
		d.line = clamp(d.line, 0, doc.lines-1)
		d.mgr.OnEditCommitted(doc.id, edit, d.cursor())
		d.status = fmt.Sprintf("deleted %d lines at %d", n, edit.StartLine)

	case 'o':
		d.follow(d.mgr.JumpOlder(demoWindow, d.cursor()))
	case 'i':
		d.follow(d.mgr.JumpNewer(demoWindow))
	case ';':
		d.follow(d.mgr.ChangeOlder(doc.id))
	case ',':
		d.follow(d.mgr.ChangeNewer(doc.id))

	case 'm', '\'':
		d.pending = r
		d.status = fmt.Sprintf("%c_", r)
	}
	return false
}

// follow moves to a history result, or reports a boundary condition.
func (d *demo) follow(pos position.Position, err error) {
	if err != nil {
		d.status = err.Error()
		return
	}
	d.moveTo(pos)
	d.status = fmt.Sprintf("at %s", pos)
}

func (d *demo) finishMarkKey(name rune) {
	op := d.pending
	d.pending = 0
	id := marks.ID(name)

	if op == 'm' {
		if err := d.mgr.SetMark(id, d.cursor()); err != nil {
			d.status = err.Error()
			return
		}
		d.status = fmt.Sprintf("mark %c set", name)
		return
	}

	pos, err := d.mgr.GetMark(id, d.docs[d.current].id)
	if err != nil {
		d.status = err.Error()
		return
	}
	d.jumpTo(d.docIndex(pos.Doc), pos.Line)
	d.status = fmt.Sprintf("went to mark %c", name)
}

func (d *demo) docIndex(id position.DocumentID) int {
	for i, doc := range d.docs {
		if doc.id == id {
			return i
		}
	}
	return d.current
}

// Rendering

var (
	styleDefault = tcell.StyleDefault
	styleHeader  = tcell.StyleDefault.Bold(true).Foreground(tcell.ColorYellow)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

func (d *demo) render() {
	d.screen.Clear()
	width, _ := d.screen.Size()

	d.drawText(0, 0, styleHeader, "navhist demo  (q quits, -help for keys)")

	// Documents.
	d.drawText(0, 2, styleHeader, "documents")
	for i, doc := range d.docs {
		style := styleDefault
		marker := "  "
		if i == d.current {
			style = styleCursor
			marker = "> "
		}
		d.drawText(0, 3+i, style, fmt.Sprintf("%s%d %-12s %4d lines", marker, i+1, doc.id, doc.lines))
	}
	d.drawText(0, 3+len(d.docs), styleDefault, fmt.Sprintf("  cursor %s", d.cursor()))

	// Jump list.
	col := width / 3
	entries, cursor := d.mgr.JumpEntries(demoWindow)
	d.drawText(col, 2, styleHeader, fmt.Sprintf("jump list (cursor %d)", cursor))
	for i, e := range entries {
		style := styleDim
		marker := "  "
		if i == cursor {
			style = styleCursor
			marker = "> "
		}
		d.drawText(col, 3+i, style, fmt.Sprintf("%s%2d %s", marker, i, e.Position))
	}

	// Change list for the current document.
	col = 2 * width / 3
	doc := d.docs[d.current].id
	changes, ccursor := d.mgr.ChangeEntries(doc)
	d.drawText(col, 2, styleHeader, fmt.Sprintf("changes %s (cursor %d)", doc, ccursor))
	for i, e := range changes {
		style := styleDim
		marker := "  "
		if i == ccursor {
			style = styleCursor
			marker = "> "
		}
		d.drawText(col, 3+i, style, fmt.Sprintf("%s%2d line %d", marker, i, e.Position.Line))
	}

	// Marks and status.
	row := 5 + len(d.docs)
	d.drawText(0, row, styleHeader, "marks")
	for i, mk := range d.mgr.Marks(doc) {
		d.drawText(0, row+1+i, styleDefault, fmt.Sprintf("  %s %-9s %s", mk.ID, mk.Scope, mk.Position))
	}

	d.drawText(0, row+12, styleDim, fmt.Sprintf("seq=%d  %s", d.mgr.EditSequence(doc), d.status))
	d.screen.Show()
}

func (d *demo) drawText(x, y int, style tcell.Style, text string) {
	for i, r := range text {
		d.screen.SetContent(x+i, y, r, nil, style)
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
