package usecase

import (
	"context"
	"net/http"

	repo "app/internal/repository"
)

type ProfileUsecase struct {
	orders     repo.OrderRepository
	orderItems repo.OrderItemRepository
	products   repo.ProductRepository
	artisans   repo.ArtisanRepository
}

func NewProfileUsecase(
	orders repo.OrderRepository,
	orderItems repo.OrderItemRepository,
	products repo.ProductRepository,
	artisans repo.ArtisanRepository,
) *ProfileUsecase {
	return &ProfileUsecase{
		orders:     orders,
		orderItems: orderItems,
		products:   products,
		artisans:   artisans,
	}
}

type SellerProductOutput struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Price      int64  `json:"price"`
	Stock      int64  `json:"stock"`
	OrderCount int64  `json:"order_count"`
}

type ProfileOutput struct {
	Orders []OrderOutput `json:"orders"`

	IsSeller      bool                  `json:"is_seller"`
	SellerActive  bool                  `json:"seller_active"`
	Products      []SellerProductOutput `json:"products"`
	TotalProducts int64                 `json:"total_products"`
	TotalOrders   int64                 `json:"total_orders"`
	TotalEarned   int64                 `json:"total_earned"`
}

// GetProfile is the read-only dashboard rollup. The seller block keeps
// counting items and earnings from deactivated products: earnings are
// permanent once realized. No artisan profile is not an error; the seller
// fields just stay zeroed.
func (u *ProfileUsecase) GetProfile(ctx context.Context, userID int64) (ProfileOutput, error) {
	if userID <= 0 {
		return ProfileOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}

	orders, err := u.orders.ListByBuyer(ctx, userID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	orderOuts := make([]OrderOutput, 0, len(orders))
	for _, o := range orders {
		items, err := u.orderItems.ListByOrderID(ctx, o.ID)
		if err != nil {
			return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		orderOuts = append(orderOuts, toOrderOutput(o, items))
	}

	out := ProfileOutput{
		Orders:   orderOuts,
		Products: []SellerProductOutput{},
	}

	artisan, err := u.artisans.FindByUserID(ctx, userID)
	if err == repo.ErrNotFound {
		return out, nil
	}
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out.IsSeller = true
	out.SellerActive = artisan.IsActive

	out.TotalProducts, err = u.products.CountActiveByArtisan(ctx, artisan.ID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	out.TotalOrders, err = u.orderItems.CountByArtisan(ctx, artisan.ID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	// Snapshot prices only; the live product price never enters this sum.
	out.TotalEarned, err = u.orderItems.SumEarningsByArtisan(ctx, artisan.ID)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}

	products, err := u.products.ListByArtisan(ctx, artisan.ID, true)
	if err != nil {
		return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
	}
	for _, p := range products {
		count, err := u.orderItems.CountByProduct(ctx, p.ID)
		if err != nil {
			return ProfileOutput{}, NewHTTPError(http.StatusInternalServerError, "db error")
		}
		out.Products = append(out.Products, SellerProductOutput{
			ID:         p.ID,
			Name:       p.Name,
			Price:      p.Price,
			Stock:      p.Stock,
			OrderCount: count,
		})
	}

	return out, nil
}
