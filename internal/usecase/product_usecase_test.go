package usecase

import (
	"context"
	"net/http"
	"testing"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newProductFixture() (*ProductUsecase, *mockProductRepo, *mockArtisanRepo, *mockTaxonomyRepo) {
	products := new(mockProductRepo)
	artisans := new(mockArtisanRepo)
	taxonomy := new(mockTaxonomyRepo)
	return NewProductUsecase(products, artisans, taxonomy), products, artisans, taxonomy
}

func validProductInput() ProductInput {
	return ProductInput{
		Name:        "Clay Vase",
		Description: "Hand-thrown terracotta vase.",
		Price:       150000,
		Stock:       3,
	}
}

func TestListPublicProducts_InvalidSort(t *testing.T) {
	uc, _, _, _ := newProductFixture()

	_, err := uc.ListPublicProducts(context.Background(), ListProductsInput{Sort: "alphabetical"})
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestListPublicProducts_PassesFilters(t *testing.T) {
	uc, products, _, taxonomy := newProductFixture()

	products.On("ListPublic", mock.Anything, repo.ProductListQuery{
		CategoryIDs: []int64{1, 2},
		MaterialIDs: []int64{3},
		Sort:        "price_asc",
	}).Return([]model.Product{{ID: 10}}, nil)
	taxonomy.On("ListCategories", mock.Anything).Return([]model.Category{}, nil)
	taxonomy.On("ListMaterials", mock.Anything).Return([]model.Material{}, nil)

	out, err := uc.ListPublicProducts(context.Background(), ListProductsInput{
		CategoryIDs: []int64{1, 2},
		MaterialIDs: []int64{3},
		Sort:        "price_asc",
	})
	require.NoError(t, err)
	assert.Len(t, out.Items, 1)

	products.AssertExpectations(t)
}

func TestGetProductDetail_InactiveStillRenders(t *testing.T) {
	uc, products, artisans, _ := newProductFixture()

	products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, ArtisanID: 5, IsActive: false, Stock: 0}, nil)
	artisans.On("FindByID", mock.Anything, int64(5)).
		Return(model.ArtisanProfile{ID: 5}, nil)
	products.On("ListSimilar", mock.Anything, mock.Anything, 4).
		Return([]model.Product{}, nil)
	products.On("ListByArtisan", mock.Anything, int64(5), true).
		Return([]model.Product{}, nil)

	out, err := uc.GetProductDetail(context.Background(), 10)
	require.NoError(t, err)
	assert.True(t, out.Inactive)
	assert.True(t, out.OutOfStock)
}

func TestGetProductDetail_CapsArtisanProducts(t *testing.T) {
	uc, products, artisans, _ := newProductFixture()

	byArtisan := []model.Product{
		{ID: 10, ArtisanID: 5}, // the product itself, excluded
		{ID: 11, ArtisanID: 5},
		{ID: 12, ArtisanID: 5},
		{ID: 13, ArtisanID: 5},
		{ID: 14, ArtisanID: 5},
		{ID: 15, ArtisanID: 5},
	}

	products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, ArtisanID: 5, IsActive: true, Stock: 3}, nil)
	artisans.On("FindByID", mock.Anything, int64(5)).
		Return(model.ArtisanProfile{ID: 5}, nil)
	products.On("ListSimilar", mock.Anything, mock.Anything, 4).
		Return([]model.Product{}, nil)
	products.On("ListByArtisan", mock.Anything, int64(5), true).
		Return(byArtisan, nil)

	out, err := uc.GetProductDetail(context.Background(), 10)
	require.NoError(t, err)
	require.Len(t, out.ArtisanProducts, 4)
	for _, p := range out.ArtisanProducts {
		assert.NotEqual(t, int64(10), p.ID)
	}
}

func TestAddProduct_NotArtisan(t *testing.T) {
	uc, products, artisans, _ := newProductFixture()

	artisans.On("FindByUserID", mock.Anything, int64(1)).
		Return(model.ArtisanProfile{}, repo.ErrNotFound)

	_, err := uc.AddProduct(context.Background(), 1, validProductInput())
	assert.ErrorIs(t, err, ErrNotArtisan)

	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddProduct_DeactivatedArtisan(t *testing.T) {
	uc, products, artisans, _ := newProductFixture()

	artisans.On("FindByUserID", mock.Anything, int64(1)).
		Return(model.ArtisanProfile{ID: 5, UserID: 1, IsActive: false}, nil)

	_, err := uc.AddProduct(context.Background(), 1, validProductInput())
	assert.ErrorIs(t, err, ErrNotArtisan)

	products.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAddProduct_InvalidPrice(t *testing.T) {
	uc, _, artisans, _ := newProductFixture()

	artisans.On("FindByUserID", mock.Anything, int64(1)).
		Return(model.ArtisanProfile{ID: 5, UserID: 1, IsActive: true}, nil)

	in := validProductInput()
	in.Price = 0

	_, err := uc.AddProduct(context.Background(), 1, in)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestAddProduct_UnknownCategory(t *testing.T) {
	uc, _, artisans, taxonomy := newProductFixture()

	artisans.On("FindByUserID", mock.Anything, int64(1)).
		Return(model.ArtisanProfile{ID: 5, UserID: 1, IsActive: true}, nil)
	taxonomy.On("FindCategoryByID", mock.Anything, int64(99)).
		Return(model.Category{}, repo.ErrNotFound)

	in := validProductInput()
	catID := int64(99)
	in.CategoryID = &catID

	_, err := uc.AddProduct(context.Background(), 1, in)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestAddProduct_Success(t *testing.T) {
	uc, products, artisans, _ := newProductFixture()

	artisans.On("FindByUserID", mock.Anything, int64(1)).
		Return(model.ArtisanProfile{ID: 5, UserID: 1, IsActive: true}, nil)
	products.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.ArtisanID == 5 && p.Name == "Clay Vase" && p.IsActive
	})).Return(model.Product{ID: 10}, nil)

	id, err := uc.AddProduct(context.Background(), 1, validProductInput())
	require.NoError(t, err)
	assert.Equal(t, int64(10), id)
}

func TestEditProduct_NotOwner(t *testing.T) {
	uc, products, artisans, _ := newProductFixture()

	artisans.On("FindByUserID", mock.Anything, int64(1)).
		Return(model.ArtisanProfile{ID: 5, UserID: 1, IsActive: true}, nil)
	products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, ArtisanID: 6}, nil)

	err := uc.EditProduct(context.Background(), 1, 10, validProductInput())
	assert.ErrorIs(t, err, ErrNotOwner)

	products.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestDeleteProduct_SoftDeletesOwnProduct(t *testing.T) {
	uc, products, artisans, _ := newProductFixture()

	artisans.On("FindByUserID", mock.Anything, int64(1)).
		Return(model.ArtisanProfile{ID: 5, UserID: 1, IsActive: true}, nil)
	products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, ArtisanID: 5}, nil)
	products.On("SoftDelete", mock.Anything, int64(10)).Return(nil)

	err := uc.DeleteProduct(context.Background(), 1, 10)
	require.NoError(t, err)

	products.AssertExpectations(t)
}
