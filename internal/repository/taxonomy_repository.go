package repository

import (
	"app/internal/domain/model"
	"context"
)

// Read-only lookup of the category/material master data used by product
// forms and listing filters.
type TaxonomyRepository interface {
	ListCategories(ctx context.Context) ([]model.Category, error)
	ListMaterials(ctx context.Context) ([]model.Material, error)
	FindCategoryByID(ctx context.Context, id int64) (model.Category, error)
	FindMaterialByID(ctx context.Context, id int64) (model.Material, error)
}
