package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type ProductGormRepository struct {
	db *gorm.DB
}

// DI
func NewProductGormRepository(db *gorm.DB) *ProductGormRepository {
	return &ProductGormRepository{db: db}
}

// Active products only, with the storefront filters. Category and material
// selections are OR-combined like the filter sidebar.
func (r *ProductGormRepository) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).Model(&model.Product{}).Where("is_active = ?", true)

	if len(q.CategoryIDs) > 0 && len(q.MaterialIDs) > 0 {
		tx = tx.Where("category_id IN ? OR material_id IN ?", q.CategoryIDs, q.MaterialIDs)
	} else if len(q.CategoryIDs) > 0 {
		tx = tx.Where("category_id IN ?", q.CategoryIDs)
	} else if len(q.MaterialIDs) > 0 {
		tx = tx.Where("material_id IN ?", q.MaterialIDs)
	}

	switch q.Sort {
	case "price_asc":
		tx = tx.Order("price asc").Order("id asc")
	case "price_desc":
		tx = tx.Order("price desc").Order("id desc")
	default:
		tx = tx.Order("created_at desc").Order("id desc")
	}

	var products []model.Product
	if err := tx.Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// FindByID returns the row regardless of is_active; listing views filter
// explicitly and checkout checks the flag itself.
func (r *ProductGormRepository) FindByID(ctx context.Context, id int64) (model.Product, error) {
	var p model.Product
	err := r.db.WithContext(ctx).First(&p, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Product{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) ListByArtisan(ctx context.Context, artisanID int64, onlyActive bool) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).Where("artisan_id = ?", artisanID)
	if onlyActive {
		tx = tx.Where("is_active = ?", true)
	}

	var products []model.Product
	if err := tx.Order("created_at desc").Order("id desc").Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// Other active products sharing a category or material with p.
func (r *ProductGormRepository) ListSimilar(ctx context.Context, p model.Product, limit int) ([]model.Product, error) {
	tx := r.db.WithContext(ctx).
		Where("is_active = ?", true).
		Where("id <> ?", p.ID)

	switch {
	case p.CategoryID != nil && p.MaterialID != nil:
		tx = tx.Where("category_id = ? OR material_id = ?", *p.CategoryID, *p.MaterialID)
	case p.CategoryID != nil:
		tx = tx.Where("category_id = ?", *p.CategoryID)
	case p.MaterialID != nil:
		tx = tx.Where("material_id = ?", *p.MaterialID)
	default:
		return []model.Product{}, nil
	}

	var products []model.Product
	if err := tx.Order("id asc").Limit(limit).Find(&products).Error; err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

// Home feed: newest active in-stock products whose artisan is still active.
func (r *ProductGormRepository) ListHome(ctx context.Context, limit int) ([]model.Product, error) {
	var products []model.Product
	err := r.db.WithContext(ctx).
		Joins("JOIN artisan_profiles ON artisan_profiles.id = products.artisan_id").
		Where("products.is_active = ? AND products.stock > 0", true).
		Where("artisan_profiles.is_active = ?", true).
		Order("products.created_at desc").Order("products.id desc").
		Limit(limit).
		Find(&products).Error
	if err != nil {
		return []model.Product{}, err
	}
	return products, nil
}

func (r *ProductGormRepository) Create(ctx context.Context, p model.Product) (model.Product, error) {
	if err := r.db.WithContext(ctx).Create(&p).Error; err != nil {
		return model.Product{}, err
	}
	return p, nil
}

func (r *ProductGormRepository) Update(ctx context.Context, p model.Product) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", p.ID).Updates(map[string]interface{}{
		"name":        p.Name,
		"description": p.Description,
		"price":       p.Price,
		"stock":       p.Stock,
		"category_id": p.CategoryID,
		"material_id": p.MaterialID,
	})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Soft delete: is_active=false, row stays for order history.
func (r *ProductGormRepository) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", id).
		Update("is_active", false)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// Only currently-active rows are touched, so products that were already
// inactive before the cascade keep their state untouched.
func (r *ProductGormRepository) BulkDeactivateByArtisan(ctx context.Context, artisanID int64) (int64, error) {
	res := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("artisan_id = ? AND is_active = ?", artisanID, true).
		Update("is_active", false)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (r *ProductGormRepository) CountActiveByArtisan(ctx context.Context, artisanID int64) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("artisan_id = ? AND is_active = ?", artisanID, true).
		Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}
