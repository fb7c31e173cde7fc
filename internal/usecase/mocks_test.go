package usecase

import (
	"context"

	"app/internal/domain/model"
	repo "app/internal/repository"

	"github.com/stretchr/testify/mock"
)

type mockProductRepo struct{ mock.Mock }

func (m *mockProductRepo) ListPublic(ctx context.Context, q repo.ProductListQuery) ([]model.Product, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepo) ListByArtisan(ctx context.Context, artisanID int64, onlyActive bool) ([]model.Product, error) {
	args := m.Called(ctx, artisanID, onlyActive)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) ListSimilar(ctx context.Context, p model.Product, limit int) ([]model.Product, error) {
	args := m.Called(ctx, p, limit)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) ListHome(ctx context.Context, limit int) ([]model.Product, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]model.Product), args.Error(1)
}

func (m *mockProductRepo) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(model.Product), args.Error(1)
}

func (m *mockProductRepo) Update(ctx context.Context, p model.Product) error {
	return m.Called(ctx, p).Error(0)
}

func (m *mockProductRepo) SoftDelete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockProductRepo) BulkDeactivateByArtisan(ctx context.Context, artisanID int64) (int64, error) {
	args := m.Called(ctx, artisanID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockProductRepo) CountActiveByArtisan(ctx context.Context, artisanID int64) (int64, error) {
	args := m.Called(ctx, artisanID)
	return args.Get(0).(int64), args.Error(1)
}

type mockArtisanRepo struct{ mock.Mock }

func (m *mockArtisanRepo) FindByID(ctx context.Context, id int64) (model.ArtisanProfile, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.ArtisanProfile), args.Error(1)
}

func (m *mockArtisanRepo) FindByUserID(ctx context.Context, userID int64) (model.ArtisanProfile, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.ArtisanProfile), args.Error(1)
}

func (m *mockArtisanRepo) Create(ctx context.Context, a model.ArtisanProfile) (model.ArtisanProfile, error) {
	args := m.Called(ctx, a)
	return args.Get(0).(model.ArtisanProfile), args.Error(1)
}

func (m *mockArtisanRepo) Update(ctx context.Context, a model.ArtisanProfile) error {
	return m.Called(ctx, a).Error(0)
}

func (m *mockArtisanRepo) Deactivate(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

func (m *mockArtisanRepo) ListActive(ctx context.Context, limit int, excludeID int64) ([]model.ArtisanProfile, error) {
	args := m.Called(ctx, limit, excludeID)
	return args.Get(0).([]model.ArtisanProfile), args.Error(1)
}

type mockTaxonomyRepo struct{ mock.Mock }

func (m *mockTaxonomyRepo) ListCategories(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Category), args.Error(1)
}

func (m *mockTaxonomyRepo) ListMaterials(ctx context.Context) ([]model.Material, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Material), args.Error(1)
}

func (m *mockTaxonomyRepo) FindCategoryByID(ctx context.Context, id int64) (model.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Category), args.Error(1)
}

func (m *mockTaxonomyRepo) FindMaterialByID(ctx context.Context, id int64) (model.Material, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Material), args.Error(1)
}

type mockInventoryRepo struct{ mock.Mock }

func (m *mockInventoryRepo) DecrementStock(ctx context.Context, productID int64, qty int64) (bool, error) {
	args := m.Called(ctx, productID, qty)
	return args.Bool(0), args.Error(1)
}

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) FindByID(ctx context.Context, orderID int64) (model.Order, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(model.Order), args.Error(1)
}

func (m *mockOrderRepo) ListByBuyer(ctx context.Context, buyerID int64) ([]model.Order, error) {
	args := m.Called(ctx, buyerID)
	return args.Get(0).([]model.Order), args.Error(1)
}

func (m *mockOrderRepo) Create(ctx context.Context, order model.Order) (int64, error) {
	args := m.Called(ctx, order)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderRepo) FindByIdempotencyKey(ctx context.Context, buyerID int64, key string) (model.Order, bool, error) {
	args := m.Called(ctx, buyerID, key)
	return args.Get(0).(model.Order), args.Bool(1), args.Error(2)
}

type mockOrderItemRepo struct{ mock.Mock }

func (m *mockOrderItemRepo) CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error {
	return m.Called(ctx, orderID, items).Error(0)
}

func (m *mockOrderItemRepo) ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).([]model.OrderItem), args.Error(1)
}

func (m *mockOrderItemRepo) CountByArtisan(ctx context.Context, artisanID int64) (int64, error) {
	args := m.Called(ctx, artisanID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderItemRepo) SumEarningsByArtisan(ctx context.Context, artisanID int64) (int64, error) {
	args := m.Called(ctx, artisanID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockOrderItemRepo) CountByProduct(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUserRepo) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	args := m.Called(ctx, userID)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	return m.Called(ctx, user).Error(0)
}

// stubTx runs the transactional function directly against the given repos.
// Rollback behavior is exercised by the repository tests on a real database.
type stubTx struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	inventory  repo.InventoryRepository
	artisans   repo.ArtisanRepository
}

func (s *stubTx) Orders() repo.OrderRepository         { return s.orders }
func (s *stubTx) OrderItems() repo.OrderItemRepository { return s.orderItems }
func (s *stubTx) Products() repo.ProductRepository     { return s.products }
func (s *stubTx) Inventory() repo.InventoryRepository  { return s.inventory }
func (s *stubTx) Artisans() repo.ArtisanRepository     { return s.artisans }

func (s *stubTx) WithinTx(ctx context.Context, fn func(r repo.TxRepos) error) error {
	return fn(s)
}
