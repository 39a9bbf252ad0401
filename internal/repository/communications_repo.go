package repository

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/jthmssse/saisonnales-app-v2/internal/domain"
	"github.com/jthmssse/saisonnales-app-v2/internal/store"

	"go.uber.org/zap"
)

const communicationsKey = "saisonnale:communications"

// CommunicationStore owns the message template catalog, mirrored to the KV
// store the same way as the resident collection.
type CommunicationStore struct {
	mu     sync.RWMutex
	comms  []domain.Communication
	kv     store.KV
	logger *zap.Logger
}

func NewCommunicationStore(kv store.KV, logger *zap.Logger) *CommunicationStore {
	return &CommunicationStore{kv: kv, logger: logger}
}

func (s *CommunicationStore) Load(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	val, err := s.kv.Get(ctx, communicationsKey)
	if err != nil {
		if err != store.ErrMiss {
			s.logger.Warn("failed to read communications from store, using seed data", zap.Error(err))
		}
		s.comms = SeedCommunications()
		return
	}

	var list []domain.Communication
	if err := json.Unmarshal([]byte(val), &list); err != nil {
		s.logger.Warn("stored communications payload is corrupt, using seed data", zap.Error(err))
		s.comms = SeedCommunications()
		return
	}
	s.comms = list
}

func (s *CommunicationStore) Snapshot() []domain.Communication {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Communication, len(s.comms))
	copy(out, s.comms)
	return out
}

func (s *CommunicationStore) Replace(ctx context.Context, comms []domain.Communication) {
	s.mu.Lock()
	s.comms = comms
	s.mu.Unlock()

	payload, err := json.Marshal(comms)
	if err != nil {
		s.logger.Error("failed to serialize communications", zap.Error(err))
		return
	}
	if err := s.kv.Set(ctx, communicationsKey, string(payload), 0); err != nil {
		s.logger.Warn("failed to persist communications", zap.Error(err))
	}
}
