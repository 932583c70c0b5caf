package dashboard

import (
	"sync"
	"time"
)

// Store holds the canonical in-memory asset collection. It is only ever
// replaced wholesale by a reload; single records are never merged in, so the
// last full reload always wins.
type Store struct {
	mu      sync.RWMutex
	records []AssetRecord
}

// NewStore returns an empty store.
func NewStore() *Store {
	return &Store{}
}

// Load decodes the raw records into canonical form and atomically replaces
// the whole collection. Callers that keep a ViewState must reset its page
// afterwards.
func (s *Store) Load(raws []RawAsset) {
	now := time.Now()

	records := make([]AssetRecord, len(raws))
	for i, raw := range raws {
		records[i] = raw.Record(now)
	}

	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
}

// Clear drops every record, leaving the defined empty state used when the
// remote source is unavailable.
func (s *Store) Clear() {
	s.mu.Lock()
	s.records = nil
	s.mu.Unlock()
}

// Records returns a snapshot copy of the collection in load order.
func (s *Store) Records() []AssetRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]AssetRecord, len(s.records))
	copy(snapshot, s.records)
	return snapshot
}

// Len reports the number of records currently held.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
