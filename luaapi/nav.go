package luaapi

import (
	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/navhist"
	"github.com/dshills/navhist/marks"
	"github.com/dshills/navhist/position"
)

// NavModule exposes a navhist.Manager as the Lua `nav` API module, so
// editor plugins can drive navigation history from scripts.
type NavModule struct {
	mgr *navhist.Manager
}

// NewNavModule creates a module bound to a manager.
func NewNavModule(mgr *navhist.Manager) *NavModule {
	return &NavModule{mgr: mgr}
}

// Name returns the module name.
func (m *NavModule) Name() string {
	return "nav"
}

// Register registers the module into the Lua state.
func (m *NavModule) Register(L *lua.LState) error {
	mod := L.NewTable()

	L.SetField(mod, "on_motion", L.NewFunction(m.onMotion))
	L.SetField(mod, "on_edit", L.NewFunction(m.onEdit))
	L.SetField(mod, "on_insert_ended", L.NewFunction(m.onInsertEnded))
	L.SetField(mod, "on_selection", L.NewFunction(m.onSelection))
	L.SetField(mod, "jump_older", L.NewFunction(m.jumpOlder))
	L.SetField(mod, "jump_newer", L.NewFunction(m.jumpNewer))
	L.SetField(mod, "change_older", L.NewFunction(m.changeOlder))
	L.SetField(mod, "change_newer", L.NewFunction(m.changeNewer))
	L.SetField(mod, "set_mark", L.NewFunction(m.setMark))
	L.SetField(mod, "get_mark", L.NewFunction(m.getMark))
	L.SetField(mod, "clear_mark", L.NewFunction(m.clearMark))
	L.SetField(mod, "list_marks", L.NewFunction(m.listMarks))

	L.SetGlobal("nav", mod)
	return nil
}

// positionToTable converts a position to a Lua table {doc, line, col}.
func positionToTable(L *lua.LState, pos position.Position) *lua.LTable {
	tbl := L.NewTable()
	L.SetField(tbl, "doc", lua.LString(pos.Doc))
	L.SetField(tbl, "line", lua.LNumber(pos.Line))
	L.SetField(tbl, "col", lua.LNumber(pos.Column))
	return tbl
}

// checkPosition reads doc, line, col arguments starting at index n.
func checkPosition(L *lua.LState, n int) position.Position {
	doc := L.CheckString(n)
	line := L.CheckInt(n + 1)
	col := L.OptInt(n+2, 0)

	if line < 0 {
		L.ArgError(n+1, "line must be non-negative")
	}
	return position.New(position.DocumentID(doc), line, col)
}

// checkMarkID reads a single-character mark name at index n.
func checkMarkID(L *lua.LState, n int) marks.ID {
	s := L.CheckString(n)
	runes := []rune(s)
	if len(runes) != 1 {
		L.ArgError(n, "mark must be a single character")
	}
	return marks.ID(runes[0])
}

// pushResult pushes a position table, or nil plus a reason string for
// boundary and not-found conditions.
func pushResult(L *lua.LState, pos position.Position, err error) int {
	if err != nil {
		L.Push(lua.LNil)
		L.Push(lua.LString(err.Error()))
		return 2
	}
	L.Push(positionToTable(L, pos))
	return 1
}

// on_motion(window, doc, line, col, is_jump) -> nil
// Reports the position being left before a cursor move.
func (m *NavModule) onMotion(L *lua.LState) int {
	window := position.WindowID(L.CheckString(1))
	before := checkPosition(L, 2)
	isJump := L.CheckBool(5)

	m.mgr.OnMotion(window, before, isJump)
	return 0
}

// on_edit(doc, start_line, old_lines, new_lines, cursor_line, cursor_col) -> nil
// Reports a committed line-range replacement and the new cursor position.
func (m *NavModule) onEdit(L *lua.LState) int {
	doc := position.DocumentID(L.CheckString(1))
	edit := position.Edit{
		StartLine: L.CheckInt(2),
		OldLines:  L.CheckInt(3),
		NewLines:  L.CheckInt(4),
	}
	cursor := position.New(doc, L.CheckInt(5), L.OptInt(6, 0))

	if edit.StartLine < 0 {
		L.ArgError(2, "start_line must be non-negative")
	}
	if edit.OldLines < 0 || edit.NewLines < 0 {
		L.ArgError(3, "line counts must be non-negative")
	}

	m.mgr.OnEditCommitted(doc, edit, cursor)
	return 0
}

// on_insert_ended(doc, line, col) -> nil
func (m *NavModule) onInsertEnded(L *lua.LState) int {
	m.mgr.OnInsertEnded(checkPosition(L, 1))
	return 0
}

// on_selection(doc, start_line, start_col, end_line, end_col) -> nil
func (m *NavModule) onSelection(L *lua.LState) int {
	doc := position.DocumentID(L.CheckString(1))
	start := position.New(doc, L.CheckInt(2), L.CheckInt(3))
	end := position.New(doc, L.CheckInt(4), L.CheckInt(5))

	m.mgr.OnSelectionChanged(start, end)
	return 0
}

// jump_older(window, doc, line, col) -> {doc, line, col} | nil, reason
// doc/line/col is the live cursor position.
func (m *NavModule) jumpOlder(L *lua.LState) int {
	window := position.WindowID(L.CheckString(1))
	current := checkPosition(L, 2)

	if !m.mgr.HasWindow(window) {
		L.RaiseError("jump_older: unknown window %q", window)
		return 0
	}
	pos, err := m.mgr.JumpOlder(window, current)
	return pushResult(L, pos, err)
}

// jump_newer(window) -> {doc, line, col} | nil, reason
func (m *NavModule) jumpNewer(L *lua.LState) int {
	window := position.WindowID(L.CheckString(1))

	if !m.mgr.HasWindow(window) {
		L.RaiseError("jump_newer: unknown window %q", window)
		return 0
	}
	pos, err := m.mgr.JumpNewer(window)
	return pushResult(L, pos, err)
}

// change_older(doc) -> {doc, line, col} | nil, reason
func (m *NavModule) changeOlder(L *lua.LState) int {
	doc := position.DocumentID(L.CheckString(1))

	if !m.mgr.HasDocument(doc) {
		L.RaiseError("change_older: unknown document %q", doc)
		return 0
	}
	pos, err := m.mgr.ChangeOlder(doc)
	return pushResult(L, pos, err)
}

// change_newer(doc) -> {doc, line, col} | nil, reason
func (m *NavModule) changeNewer(L *lua.LState) int {
	doc := position.DocumentID(L.CheckString(1))

	if !m.mgr.HasDocument(doc) {
		L.RaiseError("change_newer: unknown document %q", doc)
		return 0
	}
	pos, err := m.mgr.ChangeNewer(doc)
	return pushResult(L, pos, err)
}

// set_mark(mark, doc, line, col) -> nil
func (m *NavModule) setMark(L *lua.LState) int {
	id := checkMarkID(L, 1)
	pos := checkPosition(L, 2)

	if err := m.mgr.SetMark(id, pos); err != nil {
		L.RaiseError("set_mark: %v", err)
	}
	return 0
}

// get_mark(mark, doc) -> {doc, line, col} | nil, reason
func (m *NavModule) getMark(L *lua.LState) int {
	id := checkMarkID(L, 1)
	doc := position.DocumentID(L.CheckString(2))

	pos, err := m.mgr.GetMark(id, doc)
	return pushResult(L, pos, err)
}

// clear_mark(mark, doc) -> bool
func (m *NavModule) clearMark(L *lua.LState) int {
	id := checkMarkID(L, 1)
	doc := position.DocumentID(L.CheckString(2))

	err := m.mgr.ClearMark(id, doc)
	L.Push(lua.LBool(err == nil))
	return 1
}

// list_marks(doc) -> {{mark, scope, doc, line, col}, ...}
func (m *NavModule) listMarks(L *lua.LState) int {
	doc := position.DocumentID(L.CheckString(1))

	tbl := L.NewTable()
	for i, mk := range m.mgr.Marks(doc) {
		entry := positionToTable(L, mk.Position)
		L.SetField(entry, "mark", lua.LString(mk.ID.String()))
		L.SetField(entry, "scope", lua.LString(mk.Scope.String()))
		tbl.RawSetInt(i+1, entry)
	}
	L.Push(tbl)
	return 1
}
