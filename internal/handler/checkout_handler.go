package handler

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"app/internal/config"
	"app/internal/event"
	"app/internal/logging"
	"app/internal/middleware"
	"app/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type CheckoutHandler struct {
	uc       *usecase.CheckoutUsecase
	producer *event.Producer
}

func NewCheckoutHandler(uc *usecase.CheckoutUsecase, producer *event.Producer) *CheckoutHandler {
	return &CheckoutHandler{uc: uc, producer: producer}
}

type CheckoutRequest struct {
	ProductID int64  `json:"product_id"`
	FullName  string `json:"full_name"`
	Address   string `json:"address"`
	City      string `json:"city"`
	Pincode   string `json:"pincode"`
}

func (h *CheckoutHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("/checkout", h.checkout)
	g.GET("/orders/:id", h.orderDetail)
}

// Events are best-effort; a Kafka failure never fails the request.
func (h *CheckoutHandler) publish(c echo.Context, topic string, key string, ev map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.producer.PublishEvent(ctx, topic, key, ev); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "error", err)
	}
}

func (h *CheckoutHandler) checkout(c echo.Context) error {
	buyerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	// Clients may send a replay-protection key; generate one otherwise.
	idemKey := c.Request().Header.Get("X-Idempotency-Key")
	if idemKey == "" {
		idemKey = uuid.NewString()
	}

	out, err := h.uc.Checkout(c.Request().Context(), buyerID, usecase.CheckoutInput{
		ProductID:      req.ProductID,
		FullName:       req.FullName,
		Address:        req.Address,
		City:           req.City,
		Pincode:        req.Pincode,
		IdempotencyKey: idemKey,
	})
	if err != nil {
		return writeError(c, err)
	}

	h.publish(c, event.TopicOrderEvents, strconv.FormatInt(buyerID, 10), map[string]any{
		"type":     "order_placed",
		"order_id": out.ID,
		"buyer_id": buyerID,
	})

	return c.JSON(http.StatusCreated, out)
}

func (h *CheckoutHandler) orderDetail(c echo.Context) error {
	buyerID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetOrder(c.Request().Context(), buyerID, id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}
