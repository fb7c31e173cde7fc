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

	"github.com/labstack/echo/v4"
)

// Seller-side product mutations. Public reads live on ProductHandler.
type SellerProductHandler struct {
	uc       *usecase.ProductUsecase
	producer *event.Producer
}

func NewSellerProductHandler(uc *usecase.ProductUsecase, producer *event.Producer) *SellerProductHandler {
	return &SellerProductHandler{uc: uc, producer: producer}
}

type SellerProductRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       int64  `json:"price"`
	Stock       int64  `json:"stock"`
	CategoryID  *int64 `json:"category_id"`
	MaterialID  *int64 `json:"material_id"`
}

func (r SellerProductRequest) toInput() usecase.ProductInput {
	return usecase.ProductInput{
		Name:        r.Name,
		Description: r.Description,
		Price:       r.Price,
		Stock:       r.Stock,
		CategoryID:  r.CategoryID,
		MaterialID:  r.MaterialID,
	}
}

func (h *SellerProductHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/seller/products")
	g.Use(middleware.AuthJWT(cfg))

	g.POST("", h.create)
	g.PUT("/:id", h.update)
	g.DELETE("/:id", h.delete)
}

func (h *SellerProductHandler) publish(c echo.Context, key string, ev map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.producer.PublishEvent(ctx, event.TopicProductEvents, key, ev); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "error", err)
	}
}

func (h *SellerProductHandler) create(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req SellerProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	id, err := h.uc.AddProduct(c.Request().Context(), userID, req.toInput())
	if err != nil {
		return writeError(c, err)
	}

	h.publish(c, strconv.FormatInt(id, 10), map[string]any{
		"type":       "product_created",
		"product_id": id,
		"name":       req.Name,
	})

	return c.JSON(http.StatusCreated, map[string]any{"id": id})
}

func (h *SellerProductHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	var req SellerProductRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	if err := h.uc.EditProduct(c.Request().Context(), userID, id, req.toInput()); err != nil {
		return writeError(c, err)
	}

	h.publish(c, strconv.FormatInt(id, 10), map[string]any{
		"type":       "product_updated",
		"product_id": id,
		"name":       req.Name,
	})

	return c.NoContent(http.StatusNoContent)
}

func (h *SellerProductHandler) delete(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	if err := h.uc.DeleteProduct(c.Request().Context(), userID, id); err != nil {
		return writeError(c, err)
	}

	h.publish(c, strconv.FormatInt(id, 10), map[string]any{
		"type":       "product_deleted",
		"product_id": id,
	})

	return c.NoContent(http.StatusNoContent)
}
