// Package position defines the location value types shared by every
// navigation-history component: Position (document, line, column),
// the opaque DocumentID/WindowID identifiers, and Edit, the committed
// line-range replacement that drives position rewriting.
//
// Positions are immutable values. An edit never mutates a stored
// position in place; [Shift] produces a superseding value (or reports
// that the position fell inside the replaced range and must be
// dropped), and the owning list or slot swaps it in.
package position
