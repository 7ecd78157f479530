// Package navhist is a navigation-history engine for text editors:
// bounded per-window jump lists, bounded per-document change lists,
// and a mark registry, all kept consistent under document edits by an
// eager position-rewrite pass.
//
// The package tracks positions only, never text. It performs no I/O
// and owns no rendering, key binding, or buffer storage; the editor
// shell feeds it two event streams and queries it back.
//
// # Events
//
// The shell emits a motion event before each cursor move, already
// classified as jump-class or fine, and an edit event once per
// committed change:
//
//	mgr := navhist.NewManager()
//
//	// Before a jump-class motion executes:
//	mgr.OnMotion(win, cursorBefore, true)
//
//	// After lines [5,7) were replaced by one line:
//	mgr.OnEditCommitted(doc, position.Edit{StartLine: 5, OldLines: 2, NewLines: 1}, cursorAfter)
//
// The edit event eagerly rewrites every stored position in that
// document: positions past the replaced range shift by the line
// delta, and positions inside it are dropped. Queries therefore
// always return already-valid positions.
//
// # Navigation
//
//	pos, err := mgr.JumpOlder(win, cursorNow) // Ctrl-O
//	pos, err = mgr.JumpNewer(win)             // Ctrl-I
//	pos, err = mgr.ChangeOlder(doc)           // g;
//	pos, err = mgr.ChangeNewer(doc)           // g,
//
// Hitting either end of a list returns a boundary sentinel
// (ErrAtOldestJump and friends) matched with errors.Is; these are
// normal outcomes the shell surfaces as "nothing more to navigate."
//
// # Marks
//
// Lowercase marks are local to the document that set them, uppercase
// marks are workspace-global, and the manager maintains automatic
// marks for the last jump origin ('), last change (.), last
// insertion (^), and selection bounds (< and >).
//
// # Concurrency
//
// Every Manager entry point is serialized behind a single mutex, so
// one Manager may serve multiple windows. Component state is
// exclusively owned by the Manager and carries no locks of its own.
package navhist
