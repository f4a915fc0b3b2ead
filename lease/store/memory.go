// Package store provides RunStore implementations.
package store

import (
	"context"
	"sort"
	"sync"

	"github.com/meridian/lease-engine/lease"
)

// =============================================================================
// MEMORY STORE - In-memory implementation (for testing/dev)
// =============================================================================

type Memory struct {
	mu   sync.RWMutex
	runs map[string]lease.Run
}

var _ lease.RunStore = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{runs: make(map[string]lease.Run)}
}

// Save persists a run. Duplicate IDs are rejected, never overwritten.
func (m *Memory) Save(_ context.Context, run lease.Run) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.runs[run.ID]; ok {
		return lease.ErrDuplicateRun
	}
	m.runs[run.ID] = run
	return nil
}

func (m *Memory) Get(_ context.Context, id string) (lease.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	run, ok := m.runs[id]
	if !ok {
		return lease.Run{}, lease.ErrRunNotFound
	}
	return run, nil
}

func (m *Memory) Latest(_ context.Context) (lease.Run, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var latest lease.Run
	found := false
	for _, run := range m.runs {
		newer := run.CreatedAt.After(latest.CreatedAt) ||
			(run.CreatedAt.Equal(latest.CreatedAt) && run.ID > latest.ID)
		if !found || newer {
			latest = run
			found = true
		}
	}
	if !found {
		return lease.Run{}, lease.ErrRunNotFound
	}
	return latest, nil
}

// List returns summaries newest first. Ties break on descending ID, matching
// the SQLite store's ORDER BY.
func (m *Memory) List(_ context.Context) ([]lease.RunSummary, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	summaries := make([]lease.RunSummary, 0, len(m.runs))
	for _, run := range m.runs {
		summaries = append(summaries, run.Summary())
	}
	sort.Slice(summaries, func(i, j int) bool {
		if !summaries[i].CreatedAt.Equal(summaries[j].CreatedAt) {
			return summaries[i].CreatedAt.After(summaries[j].CreatedAt)
		}
		return summaries[i].ID > summaries[j].ID
	})
	return summaries, nil
}

func (m *Memory) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.runs[id]; !ok {
		return lease.ErrRunNotFound
	}
	delete(m.runs, id)
	return nil
}

func (m *Memory) Reset(_ context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.runs = make(map[string]lease.Run)
	return nil
}
