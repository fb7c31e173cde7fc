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

type ArtisanHandler struct {
	uc       *usecase.ArtisanUsecase
	producer *event.Producer
}

func NewArtisanHandler(uc *usecase.ArtisanUsecase, producer *event.Producer) *ArtisanHandler {
	return &ArtisanHandler{uc: uc, producer: producer}
}

type ArtisanRequest struct {
	DisplayName string `json:"display_name"`
	Location    string `json:"location"`
	Story       string `json:"story"`
}

func (h *ArtisanHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	e.GET("/artisans/:id", h.publicProfile)

	g := e.Group("/artisans")
	g.Use(middleware.AuthJWT(cfg))
	g.POST("", h.become)
	g.PUT("/me", h.update)
	g.POST("/me/deactivate", h.deactivate)
}

func (h *ArtisanHandler) publish(c echo.Context, key string, ev map[string]any) {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()
	if err := h.producer.PublishEvent(ctx, event.TopicArtisanEvents, key, ev); err != nil {
		logging.FromContext(c.Request().Context()).Error("kafka publish failed", "error", err)
	}
}

func (h *ArtisanHandler) publicProfile(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid id"})
	}

	out, err := h.uc.GetPublicProfile(c.Request().Context(), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *ArtisanHandler) become(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ArtisanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	out, err := h.uc.BecomeArtisan(c.Request().Context(), userID, usecase.ArtisanInput{
		DisplayName: req.DisplayName,
		Location:    req.Location,
		Story:       req.Story,
	})
	if err != nil {
		return writeError(c, err)
	}

	h.publish(c, strconv.FormatInt(out.ID, 10), map[string]any{
		"type":       "artisan_created",
		"artisan_id": out.ID,
	})

	return c.JSON(http.StatusCreated, out)
}

func (h *ArtisanHandler) update(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	var req ArtisanRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid body"})
	}

	err := h.uc.UpdateArtisan(c.Request().Context(), userID, usecase.ArtisanInput{
		DisplayName: req.DisplayName,
		Location:    req.Location,
		Story:       req.Story,
	})
	if err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *ArtisanHandler) deactivate(c echo.Context) error {
	userID, ok := getUserIDFromContext(c)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
	}

	out, err := h.uc.Deactivate(c.Request().Context(), userID)
	if err != nil {
		return writeError(c, err)
	}

	h.publish(c, strconv.FormatInt(out.ArtisanID, 10), map[string]any{
		"type":                 "artisan_deactivated",
		"artisan_id":           out.ArtisanID,
		"deactivated_products": out.DeactivatedProducts,
	})

	return c.JSON(http.StatusOK, out)
}
