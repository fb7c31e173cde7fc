package repository

import (
	"context"

	"app/internal/domain/model"

	"gorm.io/gorm"
)

type OrderItemGormRepository struct {
	db *gorm.DB
}

func NewOrderItemGormRepository(db *gorm.DB) *OrderItemGormRepository {
	return &OrderItemGormRepository{db: db}
}

func (r *OrderItemGormRepository) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	for i := range items {
		items[i].OrderID = orderID
	}
	if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
		return err
	}
	return nil
}

func (r *OrderItemGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	var items []model.OrderItem
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.OrderItem{}, err
	}
	return items, nil
}

// All-time item count across the artisan's products, inactive ones included.
func (r *OrderItemGormRepository) CountByArtisan(ctx context.Context, artisanID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.artisan_id = ?", artisanID).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// Sum of price_at_purchase over the artisan's items. The snapshot column is
// what keeps this figure stable when product prices change later.
func (r *OrderItemGormRepository) SumEarningsByArtisan(ctx context.Context, artisanID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Joins("JOIN products ON products.id = order_items.product_id").
		Where("products.artisan_id = ?", artisanID).
		Select("COALESCE(SUM(order_items.price_at_purchase), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func (r *OrderItemGormRepository) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.OrderItem{}).
		Where("product_id = ?", productID).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
