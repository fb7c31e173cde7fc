package repository

import (
	"context"
	"errors"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"gorm.io/gorm"
)

type TaxonomyGormRepository struct {
	db *gorm.DB
}

func NewTaxonomyGormRepository(db *gorm.DB) *TaxonomyGormRepository {
	return &TaxonomyGormRepository{db: db}
}

func (r *TaxonomyGormRepository) ListCategories(ctx context.Context) ([]model.Category, error) {
	var categories []model.Category
	if err := r.db.WithContext(ctx).Order("name asc").Find(&categories).Error; err != nil {
		return []model.Category{}, err
	}
	return categories, nil
}

func (r *TaxonomyGormRepository) ListMaterials(ctx context.Context) ([]model.Material, error) {
	var materials []model.Material
	if err := r.db.WithContext(ctx).Order("name asc").Find(&materials).Error; err != nil {
		return []model.Material{}, err
	}
	return materials, nil
}

func (r *TaxonomyGormRepository) FindCategoryByID(ctx context.Context, id int64) (model.Category, error) {
	var c model.Category
	err := r.db.WithContext(ctx).First(&c, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Category{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Category{}, err
	}
	return c, nil
}

func (r *TaxonomyGormRepository) FindMaterialByID(ctx context.Context, id int64) (model.Material, error) {
	var m model.Material
	err := r.db.WithContext(ctx).First(&m, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Material{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Material{}, err
	}
	return m, nil
}
