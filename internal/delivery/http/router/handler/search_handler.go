// Package handler contains the HTTP handlers for the delivery layer.
package handler

import (
	"log/slog"
	"net/http"

	"hotsheet/internal/delivery/http/response"
	"hotsheet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SearchHandlerParams holds dependencies for SearchHandler, injected by Fx.
type SearchHandlerParams struct {
	fx.In

	SearchUC usecase.SearchUsecase
	Logger   *slog.Logger
}

// SearchHandler holds dependencies for ad-hoc search handlers
type SearchHandler struct {
	searchUC usecase.SearchUsecase
	logger   *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler
func NewSearchHandler(params SearchHandlerParams) *SearchHandler {
	return &SearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// Search handles an ad-hoc filter evaluation. The request body is the raw
// filter document as assembled by the UI; normalization happens downstream.
func (h *SearchHandler) Search(c echo.Context) error {
	var filter map[string]any
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter document")
	}

	listings, err := h.searchUC.Search(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"listings": listings,
		"count":    len(listings),
	}, "Search completed successfully")
}

// Count handles a match count request without transferring listings.
func (h *SearchHandler) Count(c echo.Context) error {
	var filter map[string]any
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter document")
	}

	count, err := h.searchUC.CountMatches(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"count": count}, "Match count computed successfully")
}
