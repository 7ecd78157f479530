package marks

import (
	"errors"
	"sort"

	"github.com/dshills/navhist/position"
)

// Common errors for mark operations.
var (
	ErrMarkNotFound = errors.New("mark not set")
	ErrInvalidMark  = errors.New("invalid mark id")
)

// Registry maps mark ids to positions with scoping rules.
// Local marks are owned by the document that set them and die with it;
// global and automatic marks survive document switches but are dropped
// when their target document closes.
//
// Registry is not safe for concurrent use; the owning manager
// serializes all access.
type Registry struct {
	locals  map[position.DocumentID]map[ID]position.Position
	globals map[ID]position.Position
}

// NewRegistry creates an empty mark registry.
func NewRegistry() *Registry {
	return &Registry{
		locals:  make(map[position.DocumentID]map[ID]position.Position),
		globals: make(map[ID]position.Position),
	}
}

// Set stores a mark at the given position, overwriting any previous
// value. Local marks are keyed by the position's document; global and
// automatic marks by id alone.
func (r *Registry) Set(id ID, pos position.Position) error {
	if !id.Valid() {
		return ErrInvalidMark
	}

	if id.IsLocal() {
		docMarks := r.locals[pos.Doc]
		if docMarks == nil {
			docMarks = make(map[ID]position.Position)
			r.locals[pos.Doc] = docMarks
		}
		docMarks[id] = pos
		return nil
	}

	r.globals[id] = pos
	return nil
}

// Get resolves a mark id from the given current document.
// Local marks resolve only within the document that set them;
// global and automatic marks resolve regardless of current document.
func (r *Registry) Get(id ID, current position.DocumentID) (position.Position, error) {
	if !id.Valid() {
		return position.Position{}, ErrInvalidMark
	}

	if id.IsLocal() {
		pos, ok := r.locals[current][id]
		if !ok {
			return position.Position{}, ErrMarkNotFound
		}
		return pos, nil
	}

	pos, ok := r.globals[id]
	if !ok {
		return position.Position{}, ErrMarkNotFound
	}
	return pos, nil
}

// Clear removes a mark. Local marks are cleared within the given
// current document only.
func (r *Registry) Clear(id ID, current position.DocumentID) error {
	if !id.Valid() {
		return ErrInvalidMark
	}

	if id.IsLocal() {
		if _, ok := r.locals[current][id]; !ok {
			return ErrMarkNotFound
		}
		delete(r.locals[current], id)
		return nil
	}

	if _, ok := r.globals[id]; !ok {
		return ErrMarkNotFound
	}
	delete(r.globals, id)
	return nil
}

// Marks returns the marks visible from the given document: its local
// marks plus every global and automatic mark, sorted by id.
func (r *Registry) Marks(current position.DocumentID) []Mark {
	var result []Mark
	for id, pos := range r.locals[current] {
		result = append(result, Mark{ID: id, Position: pos, Scope: ScopeLocal})
	}
	for id, pos := range r.globals {
		result = append(result, Mark{ID: id, Position: pos, Scope: id.Scope()})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].ID < result[j].ID
	})
	return result
}

// Count returns the total number of stored marks across all scopes.
func (r *Registry) Count() int {
	n := len(r.globals)
	for _, docMarks := range r.locals {
		n += len(docMarks)
	}
	return n
}

// ApplyEdit implements tracking.Store. Marks whose position falls
// inside the replaced range are dropped; the rest are shifted.
func (r *Registry) ApplyEdit(doc position.DocumentID, edit position.Edit) {
	if docMarks := r.locals[doc]; docMarks != nil {
		for id, pos := range docMarks {
			shifted, ok := position.Shift(pos, doc, edit)
			if !ok {
				delete(docMarks, id)
				continue
			}
			docMarks[id] = shifted
		}
	}

	for id, pos := range r.globals {
		shifted, ok := position.Shift(pos, doc, edit)
		if !ok {
			delete(r.globals, id)
			continue
		}
		r.globals[id] = shifted
	}
}

// DropDocument implements tracking.Store. The document's local marks
// die with it; global and automatic marks targeting it are dropped.
func (r *Registry) DropDocument(doc position.DocumentID) {
	delete(r.locals, doc)
	for id, pos := range r.globals {
		if pos.Doc == doc {
			delete(r.globals, id)
		}
	}
}

// Reset removes every mark.
func (r *Registry) Reset() {
	r.locals = make(map[position.DocumentID]map[ID]position.Position)
	r.globals = make(map[ID]position.Position)
}
