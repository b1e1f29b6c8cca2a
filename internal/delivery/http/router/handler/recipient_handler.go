package handler

import (
	"log/slog"
	"net/http"

	"hotsheet/internal/delivery/http/response"
	"hotsheet/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// RecipientHandlerParams holds dependencies for RecipientHandler, injected by Fx.
type RecipientHandlerParams struct {
	fx.In

	RecipientUC usecase.RecipientUsecase
	Logger      *slog.Logger
}

// RecipientHandler holds dependencies for audience estimation handlers
type RecipientHandler struct {
	recipientUC usecase.RecipientUsecase
	logger      *slog.Logger
}

// NewRecipientHandler is the constructor for RecipientHandler
func NewRecipientHandler(params RecipientHandlerParams) *RecipientHandler {
	return &RecipientHandler{
		recipientUC: params.RecipientUC,
		logger:      params.Logger,
	}
}

// EstimateRecipients handles sizing the notification audience for a filter's
// geography. The count is an estimate for UI display, not a delivery promise.
func (h *RecipientHandler) EstimateRecipients(c echo.Context) error {
	var filter map[string]any
	if err := c.Bind(&filter); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid filter document")
	}

	count, err := h.recipientUC.EstimateRecipients(c.Request().Context(), filter)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int64{"recipients": count}, "Recipient estimate computed successfully")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
