// Package marks implements named position bookmarks with scoping:
// lowercase ids are document-local, uppercase ids are workspace-global,
// and a reserved punctuation set (' . ^ < >) holds the automatic marks
// the navigation manager maintains on the user's behalf.
package marks
