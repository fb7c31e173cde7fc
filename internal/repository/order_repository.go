package repository

import (
	"context"

	"app/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	// ListByBuyer returns the buyer's orders, newest first.
	ListByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)

	// Same key, same result: lets checkout replays return the original order.
	FindByIdempotencyKey(ctx context.Context, buyerID int64, key string) (model.Order, bool, error)
}
