// Package session holds generated mindmaps for the lifetime of the process.
// Implementations can live in this package or subpackages; there is no
// persistence layer behind them.
package session

import (
	"docmap/internal/model"
)

// Store defines session-scoped access to generated mindmaps.
// No business logic here, strictly storage operations.
type Store interface {
	// Put stores a mindmap under its ID. Storing never fails; when the
	// store is at capacity the least recently accessed entry is evicted.
	Put(m *model.Mindmap)

	// Get returns the mindmap with the given ID and refreshes its
	// keep-alive window. The boolean reports whether it was found.
	Get(id string) (*model.Mindmap, bool)

	// List returns up to limit mindmaps ordered newest first.
	// A non-positive limit returns all entries.
	List(limit int) []*model.Mindmap

	// Delete removes the mindmap with the given ID and reports whether
	// an entry was removed.
	Delete(id string) bool

	// Len reports the number of stored mindmaps.
	Len() int
}
