package repository

import (
	"context"
	"testing"

	"app/internal/domain/model"
	"app/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Full checkout path against a real database, through the same transaction
// manager the server wires.
func TestCheckoutFlow_LastUnit(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := seedArtisan(t, db, 1, true)
	p := seedProduct(t, db, a.ID, 150000, 1, true)

	uc := usecase.NewCheckoutUsecase(NewTxManagerGorm(db))

	in := usecase.CheckoutInput{
		ProductID:      p.ID,
		FullName:       "Kavya Nair",
		Address:        "12 Craft Lane",
		City:           "Pune",
		Pincode:        "411001",
		IdempotencyKey: "key-1",
	}

	out, err := uc.Checkout(ctx, 2, in)
	require.NoError(t, err)
	require.Len(t, out.Items, 1)
	assert.Equal(t, int64(150000), out.Items[0].PriceAtPurchase)
	assert.Equal(t, "ordered", out.Status)

	// The other buyer of the last unit gets out-of-stock, nothing written.
	in2 := in
	in2.IdempotencyKey = "key-2"
	_, err = uc.Checkout(ctx, 3, in2)
	assert.ErrorIs(t, err, usecase.ErrOutOfStock)

	var got model.Product
	require.NoError(t, db.First(&got, p.ID).Error)
	assert.Equal(t, int64(0), got.Stock)

	var orderCount int64
	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)

	// Replaying the winner's key returns the same order, no new decrement.
	again, err := uc.Checkout(ctx, 2, in)
	require.NoError(t, err)
	assert.Equal(t, out.ID, again.ID)

	require.NoError(t, db.Model(&model.Order{}).Count(&orderCount).Error)
	assert.Equal(t, int64(1), orderCount)
}

func TestDeactivationFlow_CascadeAndHistory(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	a := seedArtisan(t, db, 1, true)
	p1 := seedProduct(t, db, a.ID, 150000, 5, true)
	seedProduct(t, db, a.ID, 90000, 5, true)

	checkout := usecase.NewCheckoutUsecase(NewTxManagerGorm(db))
	artisanUC := usecase.NewArtisanUsecase(NewTxManagerGorm(db), NewArtisanGormRepository(db), NewProductGormRepository(db))
	profileUC := usecase.NewProfileUsecase(
		NewOrderGormRepository(db),
		NewOrderItemGormRepository(db),
		NewProductGormRepository(db),
		NewArtisanGormRepository(db),
	)

	_, err := checkout.Checkout(ctx, 2, usecase.CheckoutInput{
		ProductID:      p1.ID,
		FullName:       "Kavya Nair",
		Address:        "12 Craft Lane",
		City:           "Pune",
		Pincode:        "411001",
		IdempotencyKey: "key-1",
	})
	require.NoError(t, err)

	out, err := artisanUC.Deactivate(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), out.DeactivatedProducts)

	// The order and its earnings survive the cascade.
	profile, err := profileUC.GetProfile(ctx, 1)
	require.NoError(t, err)
	assert.True(t, profile.IsSeller)
	assert.False(t, profile.SellerActive)
	assert.Zero(t, profile.TotalProducts)
	assert.Equal(t, int64(1), profile.TotalOrders)
	assert.Equal(t, int64(150000), profile.TotalEarned)

	// Deactivation is terminal for the storefront.
	_, err = artisanUC.GetPublicProfile(ctx, a.ID)
	require.Error(t, err)
}
