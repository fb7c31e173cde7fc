package repository

import (
	"app/internal/domain/model"
	"context"
)

type ArtisanRepository interface {
	FindByID(ctx context.Context, id int64) (model.ArtisanProfile, error)
	FindByUserID(ctx context.Context, userID int64) (model.ArtisanProfile, error)
	Create(ctx context.Context, a model.ArtisanProfile) (model.ArtisanProfile, error)
	Update(ctx context.Context, a model.ArtisanProfile) error

	// Deactivate flips is_active=false. One-way; there is no re-activation.
	Deactivate(ctx context.Context, id int64) error

	// ListActive returns active artisans, newest first. excludeID <= 0 means
	// no exclusion.
	ListActive(ctx context.Context, limit int, excludeID int64) ([]model.ArtisanProfile, error)
}
