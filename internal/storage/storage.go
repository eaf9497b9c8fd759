// Package storage provides the metadata store for photo records and the
// checklist configuration. The production backend is DynamoDB; an in-memory
// backend exists for tests and the local development server.
package storage

import (
	"context"
	"errors"

	"github.com/eventgram/photoshare/internal/model"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

// PhotoUpdate is a partial update of a photo record. Nil fields are left
// untouched.
type PhotoUpdate struct {
	UploaderName *string
	Comment      *string
}

// MetadataStore is the single source of truth for a photo's existence.
type MetadataStore interface {
	// GetPhoto returns the record for photoID, or ErrNotFound.
	GetPhoto(ctx context.Context, photoID string) (*model.PhotoRecord, error)

	// PutPhoto writes a new photo record.
	PutPhoto(ctx context.Context, rec *model.PhotoRecord) error

	// UpdatePhoto applies the supplied fields to an existing record and
	// returns the merged record. Returns ErrNotFound if the record is absent.
	UpdatePhoto(ctx context.Context, photoID string, upd PhotoUpdate) (*model.PhotoRecord, error)

	// DeletePhoto removes the record. Deleting an absent record is not an
	// error; existence checks belong to the caller.
	DeletePhoto(ctx context.Context, photoID string) error

	// ListPhotos returns all photo records in unspecified order.
	ListPhotos(ctx context.Context) ([]model.PhotoRecord, error)

	// GetChecklist returns the singleton checklist config, or ErrNotFound.
	GetChecklist(ctx context.Context) (*model.ChecklistConfig, error)

	// PutChecklist writes the singleton checklist config.
	PutChecklist(ctx context.Context, cfg *model.ChecklistConfig) error
}
