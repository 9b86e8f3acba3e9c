package store

import (
	"context"
	"sync"

	"github.com/hpungsan/tabstash/internal/errors"
	"github.com/hpungsan/tabstash/internal/tab"
)

// Store owns the captured-tab collection. All mutation goes through it,
// serialized by a single mutex, so the read-check-insert-persist sequence
// of a capture is observed as one unit: the capacity gate is exact, not
// advisory, regardless of how many surfaces issue captures concurrently.
type Store struct {
	mu      sync.Mutex
	backend Backend
	gate    Gate
}

// New creates a Store over the given backend with a free-tier limit.
func New(backend Backend, freeLimit int) *Store {
	return &Store{
		backend: backend,
		gate:    Gate{FreeLimit: freeLimit},
	}
}

// Capture inserts an item at the front of the collection, newest first.
// When the free tier is active and the collection is at capacity it
// returns CapacityExceeded and persists nothing; the capture is dropped,
// not queued. A failed persist leaves the collection unchanged.
func (s *Store) Capture(ctx context.Context, item tab.Tab) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.backend.LoadTabs(ctx)
	if err != nil {
		return errors.NewPersistenceFailure(err)
	}

	pro, err := s.backend.ProStatus(ctx)
	if err != nil {
		return errors.NewPersistenceFailure(err)
	}

	if !s.gate.Allows(pro, len(tabs)) {
		return errors.NewCapacityExceeded(s.gate.FreeLimit)
	}

	updated := make([]tab.Tab, 0, len(tabs)+1)
	updated = append(updated, item)
	updated = append(updated, tabs...)

	if err := s.backend.SaveTabs(ctx, updated); err != nil {
		return errors.NewPersistenceFailure(err)
	}
	return nil
}

// Remove filters the collection to exclude the matching identifier.
// Removing an unknown id is a no-op, not an error. Relative order of the
// remaining items is preserved.
func (s *Store) Remove(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.backend.LoadTabs(ctx)
	if err != nil {
		return errors.NewPersistenceFailure(err)
	}

	updated := tabs[:0:0]
	for _, t := range tabs {
		if t.ID != id {
			updated = append(updated, t)
		}
	}
	if len(updated) == len(tabs) {
		return nil
	}

	if err := s.backend.SaveTabs(ctx, updated); err != nil {
		return errors.NewPersistenceFailure(err)
	}
	return nil
}

// Get returns the item with the given id.
func (s *Store) Get(ctx context.Context, id string) (tab.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.backend.LoadTabs(ctx)
	if err != nil {
		return tab.Tab{}, errors.NewPersistenceFailure(err)
	}
	for _, t := range tabs {
		if t.ID == id {
			return t, nil
		}
	}
	return tab.Tab{}, errors.NewNotFound(id)
}

// List returns the current collection, front = newest.
func (s *Store) List(ctx context.Context) ([]tab.Tab, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.backend.LoadTabs(ctx)
	if err != nil {
		return nil, errors.NewPersistenceFailure(err)
	}
	if tabs == nil {
		tabs = []tab.Tab{}
	}
	return tabs, nil
}

// UpdateTitle replaces the title of the item with the given id. This is
// the entry point for enrichment results: a late result whose item was
// removed in the meantime is a no-op.
func (s *Store) UpdateTitle(ctx context.Context, id, title string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tabs, err := s.backend.LoadTabs(ctx)
	if err != nil {
		return errors.NewPersistenceFailure(err)
	}

	found := false
	for i := range tabs {
		if tabs[i].ID == id {
			tabs[i].Title = title
			found = true
			break
		}
	}
	if !found {
		return nil
	}

	if err := s.backend.SaveTabs(ctx, tabs); err != nil {
		return errors.NewPersistenceFailure(err)
	}
	return nil
}

// ProStatus returns the current entitlement.
func (s *Store) ProStatus(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pro, err := s.backend.ProStatus(ctx)
	if err != nil {
		return false, errors.NewPersistenceFailure(err)
	}
	return pro, nil
}

// SetProStatus persists the entitlement.
func (s *Store) SetProStatus(ctx context.Context, pro bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.backend.SetProStatus(ctx, pro); err != nil {
		return errors.NewPersistenceFailure(err)
	}
	return nil
}

// FreeLimit exposes the configured free-tier capacity for status output.
func (s *Store) FreeLimit() int {
	return s.gate.FreeLimit
}
