package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"mamaeEmFormaAPI/internal/notification"
	"mamaeEmFormaAPI/internal/progress"
)

// MemoryStore keeps progress and device tokens in process memory. Records are
// copied in and out so callers never share state with the store.
type MemoryStore struct {
	mu       sync.RWMutex
	progress map[string]*progress.Record
	devices  map[string]notification.DeviceToken
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		progress: make(map[string]*progress.Record),
		devices:  make(map[string]notification.DeviceToken),
	}
}

func cloneRecord(rec *progress.Record) *progress.Record {
	out := *rec
	out.Progress = rec.Progress.Clone()
	return &out
}

func (s *MemoryStore) Load(ctx context.Context, userID string) (*progress.Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.progress[userID]
	if !ok {
		return nil, ErrNotFound
	}
	return cloneRecord(rec), nil
}

func (s *MemoryStore) Insert(ctx context.Context, rec *progress.Record) (*progress.Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.progress[rec.UserID]; ok {
		return cloneRecord(existing), nil
	}
	stored := cloneRecord(rec)
	stored.Version = 0
	s.progress[rec.UserID] = stored
	return cloneRecord(stored), nil
}

func (s *MemoryStore) Update(ctx context.Context, rec *progress.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.progress[rec.UserID]
	if !ok {
		return ErrNotFound
	}
	if current.Version != rec.Version {
		return ErrVersionConflict
	}
	rec.Version++
	rec.UpdatedAt = time.Now()
	s.progress[rec.UserID] = cloneRecord(rec)
	return nil
}

func (s *MemoryStore) SaveDeviceToken(ctx context.Context, token notification.DeviceToken) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if existing, ok := s.devices[token.Token]; ok {
		token.ID = existing.ID
		token.CreatedAt = existing.CreatedAt
	} else {
		if token.ID == uuid.Nil {
			token.ID = uuid.New()
		}
		token.CreatedAt = now
	}
	token.UpdatedAt = now
	s.devices[token.Token] = token
	return nil
}

func (s *MemoryStore) DeviceTokens(ctx context.Context, userID string) ([]notification.DeviceToken, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var tokens []notification.DeviceToken
	for _, t := range s.devices {
		if t.UserID == userID {
			tokens = append(tokens, t)
		}
	}
	return tokens, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error {
	return nil
}
