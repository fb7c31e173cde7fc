package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)

	// Seller rollups. All-time figures: items from now-inactive products and
	// deactivated artisans still count, and the earnings sum uses the
	// snapshotted purchase price, never the live product price.
	CountByArtisan(ctx context.Context, artisanID int64) (int64, error)
	SumEarningsByArtisan(ctx context.Context, artisanID int64) (int64, error)
	CountByProduct(ctx context.Context, productID int64) (int64, error)
}
