package repository

import "context"

type InventoryRepository interface {
	// DecrementStock subtracts qty only when enough stock remains. Returns
	// false when the decrement would go negative; the row is untouched then.
	DecrementStock(ctx context.Context, productID int64, qty int64) (bool, error)
}
