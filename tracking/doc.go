// Package tracking keeps stored positions consistent with document
// edits. The Tracker fans each committed edit out to every registered
// Store eagerly, so downstream queries always see already-valid
// positions and never resolve staleness at read time.
package tracking
