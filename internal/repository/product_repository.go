package repository

import (
	"app/internal/domain/model"
	"context"
	"errors"
)

var ErrNotFound = errors.New("not found")

// Filters for the public listing page. Category and material selections are
// OR-combined, matching the storefront filter sidebar.
type ProductListQuery struct {
	CategoryIDs []int64
	MaterialIDs []int64
	Sort        string
}

type ProductRepository interface {
	// ListPublic returns active products only, filtered and sorted.
	ListPublic(ctx context.Context, q ProductListQuery) ([]model.Product, error)
	// FindByID does not hide inactive rows; callers check IsActive themselves.
	FindByID(ctx context.Context, id int64) (model.Product, error)
	ListByArtisan(ctx context.Context, artisanID int64, onlyActive bool) ([]model.Product, error)
	// ListSimilar returns other active products sharing a category or material.
	ListSimilar(ctx context.Context, p model.Product, limit int) ([]model.Product, error)
	// ListHome returns the newest active in-stock products of active artisans.
	ListHome(ctx context.Context, limit int) ([]model.Product, error)

	Create(ctx context.Context, p model.Product) (model.Product, error)
	Update(ctx context.Context, p model.Product) error
	SoftDelete(ctx context.Context, id int64) error

	// BulkDeactivateByArtisan flips is_active=false on the artisan's
	// currently-active products and returns how many rows changed.
	BulkDeactivateByArtisan(ctx context.Context, artisanID int64) (int64, error)
	CountActiveByArtisan(ctx context.Context, artisanID int64) (int64, error)
}
