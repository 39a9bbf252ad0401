// Package repository holds the in-memory state containers and their
// key/value persistence mirror. The containers own the only mutable state in
// the process; every mutation replaces the whole collection, so readers
// always work on a consistent snapshot.
package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
	"github.com/jthmssse/saisonnales-app-v2/internal/store"

	"go.uber.org/zap"
)

const residentsKey = "saisonnale:residents"

// ResidentStore owns the resident collection. Reads hand out copies;
// Replace swaps the collection atomically and then mirrors it to the KV
// store as one JSON array, best effort: a failed write is logged and the
// in-memory state stands.
type ResidentStore struct {
	mu        sync.RWMutex
	residents []domain.Resident
	kv        store.KV
	logger    *zap.Logger
}

func NewResidentStore(kv store.KV, logger *zap.Logger) *ResidentStore {
	return &ResidentStore{kv: kv, logger: logger}
}

// Load reads the persisted collection once at startup. A missing key or a
// payload that fails to parse falls back to the seed roster; neither is
// fatal.
func (s *ResidentStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := s.kv.Get(ctx, residentsKey)
	if err != nil {
		if err != store.ErrMiss {
			s.logger.Warn("failed to read residents from store, using seed data", zap.Error(err))
		}
		s.residents = SeedResidents()
		return
	}

	var list []domain.Resident
	if err := json.Unmarshal([]byte(val), &list); err != nil {
		s.logger.Warn("stored residents payload is corrupt, using seed data", zap.Error(err))
		s.residents = SeedResidents()
		return
	}
	s.residents = list
}

// Snapshot returns a copy of the current collection.
func (s *ResidentStore) Snapshot() []domain.Resident {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Resident, len(s.residents))
	copy(out, s.residents)
	return out
}

// Replace swaps in a new collection and persists it. The write is a
// fire-and-forget side effect: there is no transactional guarantee between
// memory and the store.
func (s *ResidentStore) Replace(ctx context.Context, residents []domain.Resident) {
	s.mu.Lock()
	s.residents = residents
	s.mu.Unlock()

	payload, err := json.Marshal(residents)
	if err != nil {
		s.logger.Error("failed to serialize residents", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, residentsKey, string(payload), 0); err != nil {
		s.logger.Warn("failed to persist residents", zap.Error(err), zap.Int("count", len(residents)))
	}
}
