package repository

import (
	"context"

	"dashgen/internal/model"
)

// Repository persists session contexts by id.
//
// Load returns session.ErrNotFound for unknown ids and
// session.ErrCorruptState for documents that fail validation.
// Save must never leave a half-written document behind.
type Repository interface {
	Load(ctx context.Context, id string) (model.SessionContext, error)
	Save(ctx context.Context, id string, sc model.SessionContext) error
	Delete(ctx context.Context, id string) error
}
