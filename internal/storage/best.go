package storage

import (
	"sync"

	"github.com/vovakirdan/gemswap/internal/match3"
)

// BestScoreKey adapts one best_scores row to match3.BestScoreStore.
type BestScoreKey struct {
	store *Store
	key   string
}

// NewBestScoreKey returns the best-score store for key (usually a variant ID).
func NewBestScoreKey(store *Store, key string) *BestScoreKey {
	return &BestScoreKey{store: store, key: key}
}

// Load implements match3.BestScoreStore.
func (b *BestScoreKey) Load() (int, error) {
	return b.store.BestScore(b.key)
}

// Save implements match3.BestScoreStore.
func (b *BestScoreKey) Save(best int) error {
	return b.store.SetBestScore(b.key, best)
}

// MemoryBest keeps a best score in memory, for play without a database.
type MemoryBest struct {
	mu   sync.Mutex
	best int
}

// Load implements match3.BestScoreStore.
func (m *MemoryBest) Load() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.best, nil
}

// Save implements match3.BestScoreStore.
func (m *MemoryBest) Save(best int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.best = max(m.best, best)
	return nil
}

var (
	_ match3.BestScoreStore = (*BestScoreKey)(nil)
	_ match3.BestScoreStore = (*MemoryBest)(nil)
)
