package usecase

import (
	"context"
	"net/http"
	"strings"
	"time"

	"app/internal/domain/model"
	repo "app/internal/repository"
)

// Typed checkout/seller errors. Package-level values so callers can use
// errors.Is; handlers map them to responses via writeError.
var (
	ErrProductUnavailable = NewHTTPError(http.StatusConflict, "product unavailable")
	ErrOutOfStock         = NewHTTPError(http.StatusConflict, "out of stock")
	ErrInvalidAddress     = NewHTTPError(http.StatusBadRequest, "invalid address")
	ErrNotArtisan         = NewHTTPError(http.StatusForbidden, "not an artisan")
	ErrNotOwner           = NewHTTPError(http.StatusForbidden, "not the owner")
	ErrCommitFailed       = NewHTTPError(http.StatusInternalServerError, "commit failed")
)

type CheckoutUsecase struct {
	tx repo.TransactionManager
}

func NewCheckoutUsecase(tx repo.TransactionManager) *CheckoutUsecase {
	return &CheckoutUsecase{tx: tx}
}

// One product, quantity 1, per checkout. A deliberate scope limit of this
// marketplace, not a missing cart.
type CheckoutInput struct {
	ProductID      int64
	FullName       string
	Address        string
	City           string
	Pincode        string
	IdempotencyKey string
}

type OrderItemOutput struct {
	ProductID       int64  `json:"product_id"`
	Name            string `json:"name"`
	PriceAtPurchase int64  `json:"price_at_purchase"`
	Quantity        int64  `json:"quantity"`
}

type OrderOutput struct {
	ID        int64             `json:"id"`
	BuyerID   int64             `json:"buyer_id"`
	Status    string            `json:"status"`
	FullName  string            `json:"full_name"`
	Address   string            `json:"address"`
	City      string            `json:"city"`
	Pincode   string            `json:"pincode"`
	CreatedAt time.Time         `json:"created_at"`
	Items     []OrderItemOutput `json:"items"`
}

// Checkout turns a product selection into a committed Order + OrderItem.
// The product checks, the stock decrement and the order insert share one
// transaction, so two requests racing on the last unit can never both win:
// the loser's conditional decrement touches no row and it gets ErrOutOfStock.
func (u *CheckoutUsecase) Checkout(ctx context.Context, buyerID int64, in CheckoutInput) (OrderOutput, error) {
	if buyerID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if in.ProductID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid product id")
	}

	key := strings.TrimSpace(in.IdempotencyKey)
	if key == "" || len(key) > 255 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid idempotency_key")
	}

	// Address validation fails fast, before anything is touched.
	fullName := strings.TrimSpace(in.FullName)
	address := strings.TrimSpace(in.Address)
	city := strings.TrimSpace(in.City)
	pincode := strings.TrimSpace(in.Pincode)
	if fullName == "" || address == "" || city == "" || pincode == "" {
		return OrderOutput{}, ErrInvalidAddress
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		// Same key, same result.
		existing, found, err := r.Orders().FindByIdempotencyKey(ctx, buyerID, key)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if found {
			items, err := r.OrderItems().ListByOrderID(ctx, existing.ID)
			if err != nil {
				return NewHTTPError(http.StatusInternalServerError, "db error")
			}
			out = toOrderOutput(existing, items)
			return nil
		}

		p, err := r.Products().FindByID(ctx, in.ProductID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "product not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if !p.IsActive {
			return ErrProductUnavailable
		}
		if p.Stock <= 0 {
			return ErrOutOfStock
		}

		ok, err := r.Inventory().DecrementStock(ctx, p.ID, 1)
		if err != nil {
			return ErrCommitFailed
		}
		if !ok {
			// Lost the race on the last unit.
			return ErrOutOfStock
		}

		now := time.Now()
		orderID, err := r.Orders().Create(ctx, model.Order{
			BuyerID:        buyerID,
			Status:         model.OrderStatusOrdered,
			FullName:       fullName,
			Address:        address,
			City:           city,
			Pincode:        pincode,
			IdempotencyKey: key,
			CreatedAt:      now,
			UpdatedAt:      now,
		})
		if err != nil {
			// Concurrent replay with the same key: return the winner's order.
			ex2, found2, err2 := r.Orders().FindByIdempotencyKey(ctx, buyerID, key)
			if err2 == nil && found2 {
				items2, err3 := r.OrderItems().ListByOrderID(ctx, ex2.ID)
				if err3 != nil {
					return NewHTTPError(http.StatusInternalServerError, "db error")
				}
				out = toOrderOutput(ex2, items2)
				return nil
			}
			return ErrCommitFailed
		}

		// Snapshot the current price; later price edits never change it.
		items := []model.OrderItem{{
			ProductID:           p.ID,
			ProductNameSnapshot: p.Name,
			PriceAtPurchase:     p.Price,
			Quantity:            1,
			CreatedAt:           now,
		}}
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return ErrCommitFailed
		}

		created := model.Order{
			ID:        orderID,
			BuyerID:   buyerID,
			Status:    model.OrderStatusOrdered,
			FullName:  fullName,
			Address:   address,
			City:      city,
			Pincode:   pincode,
			CreatedAt: now,
		}
		out = toOrderOutput(created, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// GetOrder is the confirmation read. Other buyers' orders look nonexistent.
func (u *CheckoutUsecase) GetOrder(ctx context.Context, buyerID int64, orderID int64) (OrderOutput, error) {
	if buyerID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusUnauthorized, "unauthorized")
	}
	if orderID <= 0 {
		return OrderOutput{}, NewHTTPError(http.StatusBadRequest, "invalid id")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewHTTPError(http.StatusNotFound, "not found")
		}
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}
		if o.BuyerID != buyerID {
			return NewHTTPError(http.StatusNotFound, "not found")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewHTTPError(http.StatusInternalServerError, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID:       it.ProductID,
			Name:            it.ProductNameSnapshot,
			PriceAtPurchase: it.PriceAtPurchase,
			Quantity:        it.Quantity,
		})
	}

	return OrderOutput{
		ID:        o.ID,
		BuyerID:   o.BuyerID,
		Status:    string(o.Status),
		FullName:  o.FullName,
		Address:   o.Address,
		City:      o.City,
		Pincode:   o.Pincode,
		CreatedAt: o.CreatedAt,
		Items:     outItems,
	}
}
