// Package changelist tracks where edits happened in a document as a
// bounded, strictly sequential list with a single traversal cursor.
// Consecutive edits on the same line coalesce into one entry, and every
// new recording re-anchors the cursor at the newest entry.
package changelist
