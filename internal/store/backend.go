package store

import (
	"context"

	"github.com/hpungsan/tabstash/internal/tab"
)

// Backend is the persistence collaborator for the capture store. The store
// persists the tab list as one ordered collection and the pro entitlement
// as a single flag; first run must yield an empty list and pro off.
//
// Implementations: internal/db (SQLite) and Memory (tests).
type Backend interface {
	// LoadTabs returns the persisted collection in stored order,
	// front = newest.
	LoadTabs(ctx context.Context) ([]tab.Tab, error)

	// SaveTabs replaces the persisted collection with the given one as a
	// single atomic write.
	SaveTabs(ctx context.Context, tabs []tab.Tab) error

	// ProStatus returns the unlimited-capacity entitlement flag.
	ProStatus(ctx context.Context) (bool, error)

	// SetProStatus persists the entitlement flag.
	SetProStatus(ctx context.Context, pro bool) error
}
