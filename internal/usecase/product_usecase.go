package usecase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

type ProductUsecase struct {
	products repo.ProductRepository
	artisans repo.ArtisanRepository
	taxonomy repo.TaxonomyRepository
}

// DI
func NewProductUsecase(
	products repo.ProductRepository,
	artisans repo.ArtisanRepository,
	taxonomy repo.TaxonomyRepository,
) *ProductUsecase {
	return &ProductUsecase{
		products: products,
		artisans: artisans,
		taxonomy: taxonomy,
	}
}

type ListProductsInput struct {
	CategoryIDs []int64
	MaterialIDs []int64
	Sort        string
}

type ProductListOutput struct {
	Items      []model.Product  `json:"items"`
	Categories []model.Category `json:"categories"`
	Materials  []model.Material `json:"materials"`
}

func (u *ProductUsecase) ListPublicProducts(ctx context.Context, in ListProductsInput) (ProductListOutput, error) {
	switch in.Sort {
	case "", "new", "price_asc", "price_desc":
	default:
		return ProductListOutput{}, NewHTTPError(http.StatusBadRequest, "invalid sort")
	}

	items, err := u.products.ListPublic(ctx, repo.ProductListQuery{
		CategoryIDs: in.CategoryIDs,
		MaterialIDs: in.MaterialIDs,
		Sort:        in.Sort,
	})
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	categories, err := u.taxonomy.ListCategories(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	materials, err := u.taxonomy.ListMaterials(ctx)
	if err != nil {
		return ProductListOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	return ProductListOutput{
		Items:      items,
		Categories: categories,
		Materials:  materials,
	}, nil
}

type ProductDetailOutput struct {
	Product         model.Product        `json:"product"`
	Inactive        bool                 `json:"inactive"`
	OutOfStock      bool                 `json:"out_of_stock"`
	Artisan         model.ArtisanProfile `json:"artisan"`
	SimilarProducts []model.Product      `json:"similar_products"`
	ArtisanProducts []model.Product      `json:"artisan_products"`
}

// The detail page still renders an inactive product (with a notice) so links
// from old orders keep working; listings never show it.
func (u *ProductUsecase) GetProductDetail(ctx context.Context, productID int64) (ProductDetailOutput, error) {
	if productID <= 0 {
		return ProductDetailOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	artisan, err := u.artisans.FindByID(ctx, p.ArtisanID)
	if err != nil && err != repo.ErrNotFound {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	similar, err := u.products.ListSimilar(ctx, p, 4)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	moreByArtisan := []model.Product{}
	byArtisan, err := u.products.ListByArtisan(ctx, p.ArtisanID, true)
	if err != nil {
		return ProductDetailOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, ap := range byArtisan {
		if ap.ID == p.ID {
			continue
		}
		moreByArtisan = append(moreByArtisan, ap)
		if len(moreByArtisan) == 4 {
			break
		}
	}

	return ProductDetailOutput{
		Product:         p,
		Inactive:        !p.IsActive,
		OutOfStock:      p.Stock <= 0,
		Artisan:         artisan,
		SimilarProducts: similar,
		ArtisanProducts: moreByArtisan,
	}, nil
}

type HomeOutput struct {
	Products []model.Product        `json:"products"`
	Artisans []model.ArtisanProfile `json:"artisans"`
}

func (u *ProductUsecase) Home(ctx context.Context) (HomeOutput, error) {
	products, err := u.products.ListHome(ctx, 6)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	artisans, err := u.artisans.ListActive(ctx, 4, 0)
	if err != nil {
		return HomeOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return HomeOutput{Products: products, Artisans: artisans}, nil
}

type CatalogOptionsOutput struct {
	Categories []model.Category `json:"categories"`
	Materials  []model.Material `json:"materials"`
}

func (u *ProductUsecase) ListCatalogOptions(ctx context.Context) (CatalogOptionsOutput, error) {
	categories, err := u.taxonomy.ListCategories(ctx)
	if err != nil {
		return CatalogOptionsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	materials, err := u.taxonomy.ListMaterials(ctx)
	if err != nil {
		return CatalogOptionsOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return CatalogOptionsOutput{Categories: categories, Materials: materials}, nil
}

type ProductInput struct {
	Name        string
	Description string
	Price       int64
	Stock       int64
	CategoryID  *int64
	MaterialID  *int64
}

func (u *ProductUsecase) validateProductInput(ctx context.Context, in ProductInput) error {
	if strings.TrimSpace(in.Name) == "" {
		return NewHTTPError(http.StatusBadRequest, "name required")
	}
	if strings.TrimSpace(in.Description) == "" {
		return NewHTTPError(http.StatusBadRequest, "description required")
	}
	if in.Price <= 0 {
		return NewHTTPError(http.StatusBadRequest, "price must be greater than zero")
	}
	if in.Stock < 0 {
		return NewHTTPError(http.StatusBadRequest, "stock must be >= 0")
	}
	if in.CategoryID != nil {
		if _, err := u.taxonomy.FindCategoryByID(ctx, *in.CategoryID); err != nil {
			return NewHTTPError(http.StatusBadRequest, "invalid category")
		}
	}
	if in.MaterialID != nil {
		if _, err := u.taxonomy.FindMaterialByID(ctx, *in.MaterialID); err != nil {
			return NewHTTPError(http.StatusBadRequest, "invalid material")
		}
	}
	return nil
}

// Seller actions require an existing AND still-active artisan profile.
func (u *ProductUsecase) requireActiveArtisan(ctx context.Context, userID int64) (model.ArtisanProfile, error) {
	a, err := u.artisans.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return model.ArtisanProfile{}, ErrNotArtisan
	}
	if err != nil {
		return model.ArtisanProfile{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if !a.IsActive {
		return model.ArtisanProfile{}, ErrNotArtisan
	}
	return a, nil
}

func (u *ProductUsecase) AddProduct(ctx context.Context, userID int64, in ProductInput) (int64, error) {
	if userID <= 0 {
		return 0, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	artisan, err := u.requireActiveArtisan(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := u.validateProductInput(ctx, in); err != nil {
		return 0, err
	}

	now := time.Now()
	p, err := u.products.Create(ctx, model.Product{
		ArtisanID:   artisan.ID,
		Name:        strings.TrimSpace(in.Name),
		Description: strings.TrimSpace(in.Description),
		Price:       in.Price,
		Stock:       in.Stock,
		CategoryID:  in.CategoryID,
		MaterialID:  in.MaterialID,
		IsActive:    true,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return 0, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return p.ID, nil
}

func (u *ProductUsecase) EditProduct(ctx context.Context, userID int64, productID int64, in ProductInput) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	artisan, err := u.requireActiveArtisan(ctx, userID)
	if err != nil {
		return err
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.ArtisanID != artisan.ID {
		return ErrNotOwner
	}

	if err := u.validateProductInput(ctx, in); err != nil {
		return err
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Description = strings.TrimSpace(in.Description)
	p.Price = in.Price
	p.Stock = in.Stock
	p.CategoryID = in.CategoryID
	p.MaterialID = in.MaterialID

	if err := u.products.Update(ctx, p); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}

// Soft delete. The row must survive for order history, so only the flag flips.
func (u *ProductUsecase) DeleteProduct(ctx context.Context, userID int64, productID int64) error {
	if userID <= 0 {
		return NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if productID <= 0 {
		return NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	artisan, err := u.requireActiveArtisan(ctx, userID)
	if err != nil {
		return err
	}

	p, err := u.products.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return NewHTTPError(http.StatusNotFound, "not found")
	}
	if err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	if p.ArtisanID != artisan.ID {
		return ErrNotOwner
	}

	if err := u.products.SoftDelete(ctx, productID); err != nil {
		return NewHTTPError(http.StatusInternalServerError, "db error")
	}
	return nil
}
