package navhist

import (
	"github.com/dshills/navhist/changelist"
	"github.com/dshills/navhist/jumplist"
	"github.com/dshills/navhist/marks"
)

// Boundary and lookup conditions surfaced by Manager queries,
// re-exported so callers can match with errors.Is without importing
// the component packages. Boundary conditions are normal terminal
// outcomes, never failures: show the user "nothing more to navigate."
var (
	ErrAtOldestJump   = jumplist.ErrAtOldest
	ErrAtNewestJump   = jumplist.ErrAtNewest
	ErrAtOldestChange = changelist.ErrAtOldest
	ErrAtNewestChange = changelist.ErrAtNewest
	ErrMarkNotFound   = marks.ErrMarkNotFound
	ErrInvalidMark    = marks.ErrInvalidMark
)
