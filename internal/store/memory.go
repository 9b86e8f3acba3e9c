package store

import (
	"context"
	"sync"

	"github.com/hpungsan/tabstash/internal/tab"
)

// Memory is an in-memory Backend. It backs tests and keeps the Store
// exercisable without a database.
type Memory struct {
	mu   sync.Mutex
	tabs []tab.Tab
	pro  bool

	// FailSaves makes every SaveTabs return this error, for exercising
	// the persistence-failure path.
	FailSaves error
}

// NewMemory returns an empty in-memory backend (first-run defaults:
// no tabs, pro off).
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) LoadTabs(_ context.Context) ([]tab.Tab, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]tab.Tab, len(m.tabs))
	copy(out, m.tabs)
	return out, nil
}

func (m *Memory) SaveTabs(_ context.Context, tabs []tab.Tab) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailSaves != nil {
		return m.FailSaves
	}
	m.tabs = make([]tab.Tab, len(tabs))
	copy(m.tabs, tabs)
	return nil
}

func (m *Memory) ProStatus(_ context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pro, nil
}

func (m *Memory) SetProStatus(_ context.Context, pro bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pro = pro
	return nil
}
