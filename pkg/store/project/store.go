package project

import (
	"context"
	"slices"
	"sync"

	"github.com/de-tools/flood-atlas/pkg/models/domain"
)

// Store holds the validated project records of the current session.
// Writers take the exclusive lock, so a snapshot never observes a half-applied load.
type Store interface {
	Replace(ctx context.Context, records []domain.ProjectRecord) error
	Append(ctx context.Context, records []domain.ProjectRecord) error
	Snapshot(ctx context.Context) ([]domain.ProjectRecord, error)
	Count(ctx context.Context) (int, error)
	Clear(ctx context.Context) error
}

type memoryStore struct {
	mu      sync.RWMutex
	records []domain.ProjectRecord
}

func NewStore() Store {
	return &memoryStore{}
}

func (s *memoryStore) Replace(ctx context.Context, records []domain.ProjectRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = slices.Clone(records)
	return nil
}

func (s *memoryStore) Append(ctx context.Context, records []domain.ProjectRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if len(records) == 0 {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append(s.records, records...)
	return nil
}

func (s *memoryStore) Snapshot(ctx context.Context) ([]domain.ProjectRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.records), nil
}

func (s *memoryStore) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records), nil
}

func (s *memoryStore) Clear(ctx context.Context) error {
	return s.Replace(ctx, nil)
}
