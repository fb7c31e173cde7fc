package repository

import "context"

// Repos available inside a transaction. Checkout needs the product read, the
// stock decrement and the order insert on the same tx handle; deactivation
// needs the artisan flag and the product bulk-update likewise.
type TxRepos interface {
	Orders() OrderRepository
	OrderItems() OrderItemRepository
	Products() ProductRepository
	Inventory() InventoryRepository
	Artisans() ArtisanRepository
}

// TransactionManager hides begin/commit/rollback from the usecases.
// fn returning an error rolls the whole unit back.
type TransactionManager interface {
	WithinTx(ctx context.Context, fn func(r TxRepos) error) error
}
