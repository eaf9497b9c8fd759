package storage

import (
	"context"
	"sync"

	"github.com/eventgram/photoshare/internal/model"
)

// MemoryStore is an in-process MetadataStore for tests and the local
// development server. It is single-process only and never persists.
type MemoryStore struct {
	mu        sync.RWMutex
	photos    map[string]model.PhotoRecord
	checklist *model.ChecklistConfig
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{photos: make(map[string]model.PhotoRecord)}
}

func (s *MemoryStore) GetPhoto(_ context.Context, photoID string) (*model.PhotoRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.photos[photoID]
	if !ok {
		return nil, ErrNotFound
	}
	return &rec, nil
}

func (s *MemoryStore) PutPhoto(_ context.Context, rec *model.PhotoRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.photos[rec.PhotoID] = *rec
	return nil
}

func (s *MemoryStore) UpdatePhoto(_ context.Context, photoID string, upd PhotoUpdate) (*model.PhotoRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.photos[photoID]
	if !ok {
		return nil, ErrNotFound
	}
	if upd.UploaderName != nil {
		rec.UploaderName = *upd.UploaderName
	}
	if upd.Comment != nil {
		rec.Comment = *upd.Comment
	}
	s.photos[photoID] = rec
	return &rec, nil
}

func (s *MemoryStore) DeletePhoto(_ context.Context, photoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.photos, photoID)
	return nil
}

func (s *MemoryStore) ListPhotos(_ context.Context) ([]model.PhotoRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	records := make([]model.PhotoRecord, 0, len(s.photos))
	for _, rec := range s.photos {
		records = append(records, rec)
	}
	return records, nil
}

func (s *MemoryStore) GetChecklist(_ context.Context) (*model.ChecklistConfig, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.checklist == nil {
		return nil, ErrNotFound
	}
	cfg := *s.checklist
	return &cfg, nil
}

func (s *MemoryStore) PutChecklist(_ context.Context, cfg *model.ChecklistConfig) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *cfg
	c.PK = model.ConfigPK
	c.SK = model.ChecklistSK
	s.checklist = &c
	return nil
}
