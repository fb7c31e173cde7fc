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

func newCheckoutFixture() (*CheckoutUsecase, *mockOrderRepo, *mockOrderItemRepo, *mockProductRepo, *mockInventoryRepo) {
	orders := new(mockOrderRepo)
	items := new(mockOrderItemRepo)
	products := new(mockProductRepo)
	inventory := new(mockInventoryRepo)

	tx := &stubTx{
		orders:     orders,
		orderItems: items,
		products:   products,
		inventory:  inventory,
	}
	return NewCheckoutUsecase(tx), orders, items, products, inventory
}

func validCheckoutInput() CheckoutInput {
	return CheckoutInput{
		ProductID:      10,
		FullName:       "Kavya Nair",
		Address:        "12 Craft Lane",
		City:           "Pune",
		Pincode:        "411001",
		IdempotencyKey: "key-1",
	}
}

func TestCheckout_Success_SnapshotsPrice(t *testing.T) {
	uc, orders, items, products, inventory := newCheckoutFixture()
	ctx := context.Background()

	orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "key-1").
		Return(model.Order{}, false, nil)
	products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Clay Vase", Price: 150000, Stock: 3, IsActive: true}, nil)
	inventory.On("DecrementStock", mock.Anything, int64(10), int64(1)).Return(true, nil)
	orders.On("Create", mock.Anything, mock.MatchedBy(func(o model.Order) bool {
		return o.BuyerID == 1 && o.Status == model.OrderStatusOrdered && o.IdempotencyKey == "key-1"
	})).Return(int64(77), nil)
	items.On("CreateBulk", mock.Anything, int64(77), mock.MatchedBy(func(its []model.OrderItem) bool {
		return len(its) == 1 &&
			its[0].ProductID == 10 &&
			its[0].ProductNameSnapshot == "Clay Vase" &&
			its[0].PriceAtPurchase == 150000 &&
			its[0].Quantity == 1
	})).Return(nil)

	out, err := uc.Checkout(ctx, 1, validCheckoutInput())
	require.NoError(t, err)

	assert.Equal(t, int64(77), out.ID)
	assert.Equal(t, "ordered", out.Status)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(150000), out.Items[0].PriceAtPurchase)

	orders.AssertExpectations(t)
	items.AssertExpectations(t)
	inventory.AssertExpectations(t)
}

func TestCheckout_MissingAddressField(t *testing.T) {
	uc, orders, _, _, inventory := newCheckoutFixture()

	in := validCheckoutInput()
	in.City = "   "

	_, err := uc.Checkout(context.Background(), 1, in)
	assert.ErrorIs(t, err, ErrInvalidAddress)

	// Validation fails before any repository call.
	orders.AssertNotCalled(t, "FindByIdempotencyKey", mock.Anything, mock.Anything, mock.Anything)
	inventory.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_MissingIdempotencyKey(t *testing.T) {
	uc, _, _, _, _ := newCheckoutFixture()

	in := validCheckoutInput()
	in.IdempotencyKey = ""

	_, err := uc.Checkout(context.Background(), 1, in)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, he.Status)
}

func TestCheckout_ProductNotFound(t *testing.T) {
	uc, orders, _, products, _ := newCheckoutFixture()

	orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "key-1").
		Return(model.Order{}, false, nil)
	products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.Checkout(context.Background(), 1, validCheckoutInput())
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestCheckout_InactiveProduct(t *testing.T) {
	uc, orders, _, products, inventory := newCheckoutFixture()

	orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "key-1").
		Return(model.Order{}, false, nil)
	products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Stock: 5, IsActive: false}, nil)

	_, err := uc.Checkout(context.Background(), 1, validCheckoutInput())
	assert.ErrorIs(t, err, ErrProductUnavailable)

	inventory.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_ZeroStock(t *testing.T) {
	uc, orders, _, products, inventory := newCheckoutFixture()

	orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "key-1").
		Return(model.Order{}, false, nil)
	products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Stock: 0, IsActive: true}, nil)

	_, err := uc.Checkout(context.Background(), 1, validCheckoutInput())
	assert.ErrorIs(t, err, ErrOutOfStock)

	inventory.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
}

func TestCheckout_LostRaceOnLastUnit(t *testing.T) {
	uc, orders, _, products, inventory := newCheckoutFixture()

	orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "key-1").
		Return(model.Order{}, false, nil)
	// Read saw stock, but the conditional decrement touched no row.
	products.On("FindByID", mock.Anything, int64(10)).
		Return(model.Product{ID: 10, Name: "Clay Vase", Price: 150000, Stock: 1, IsActive: true}, nil)
	inventory.On("DecrementStock", mock.Anything, int64(10), int64(1)).Return(false, nil)

	_, err := uc.Checkout(context.Background(), 1, validCheckoutInput())
	assert.ErrorIs(t, err, ErrOutOfStock)

	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCheckout_IdempotentReplay(t *testing.T) {
	uc, orders, items, _, inventory := newCheckoutFixture()

	existing := model.Order{
		ID:      42,
		BuyerID: 1,
		Status:  model.OrderStatusOrdered,
	}
	orders.On("FindByIdempotencyKey", mock.Anything, int64(1), "key-1").
		Return(existing, true, nil)
	items.On("ListByOrderID", mock.Anything, int64(42)).
		Return([]model.OrderItem{{ProductID: 10, PriceAtPurchase: 150000, Quantity: 1}}, nil)

	out, err := uc.Checkout(context.Background(), 1, validCheckoutInput())
	require.NoError(t, err)
	assert.Equal(t, int64(42), out.ID)

	// No second order, no second decrement.
	inventory.AssertNotCalled(t, "DecrementStock", mock.Anything, mock.Anything, mock.Anything)
	orders.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetOrder_OtherBuyerLooksNonexistent(t *testing.T) {
	uc, orders, _, _, _ := newCheckoutFixture()

	orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, BuyerID: 7}, nil)

	_, err := uc.GetOrder(context.Background(), 1, 42)
	he, ok := AsHTTPError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusNotFound, he.Status)
}

func TestGetOrder_Success(t *testing.T) {
	uc, orders, items, _, _ := newCheckoutFixture()

	orders.On("FindByID", mock.Anything, int64(42)).
		Return(model.Order{ID: 42, BuyerID: 1, Status: model.OrderStatusShipped}, nil)
	items.On("ListByOrderID", mock.Anything, int64(42)).
		Return([]model.OrderItem{{ProductID: 10, ProductNameSnapshot: "Clay Vase", PriceAtPurchase: 150000, Quantity: 1}}, nil)

	out, err := uc.GetOrder(context.Background(), 1, 42)
	require.NoError(t, err)
	assert.Equal(t, "shipped", out.Status)
	require.Len(t, out.Items, 1)
	assert.Equal(t, "Clay Vase", out.Items[0].Name)
}
