// Package jumplist implements a bounded per-window history of visited
// locations with a traversal cursor supporting older/newer navigation
// across documents. Recording dedupes by document and line and never
// truncates forward history.
package jumplist
