package handler

import (
	"log/slog"
	"net/http"

	"hotsheet/internal/delivery/http/middleware"
	"hotsheet/internal/delivery/http/response"
	"hotsheet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HotsheetHandlerParams holds dependencies for HotsheetHandler, injected by Fx.
type HotsheetHandlerParams struct {
	fx.In

	HotsheetUC usecase.HotsheetUsecase
	Logger     *slog.Logger
}

// HotsheetHandler holds dependencies for hotsheet-related handlers
type HotsheetHandler struct {
	hotsheetUC usecase.HotsheetUsecase
	logger     *slog.Logger
}

// NewHotsheetHandler is the constructor for HotsheetHandler
func NewHotsheetHandler(params HotsheetHandlerParams) *HotsheetHandler {
	return &HotsheetHandler{
		hotsheetUC: params.HotsheetUC,
		logger:     params.Logger,
	}
}

// CreateHotsheetRequest represents the request body for creating a hotsheet
type CreateHotsheetRequest struct {
	Name     string         `json:"name" validate:"required,max=120"`
	Criteria map[string]any `json:"criteria"`
}

// EditCriteriaRequest represents the request body for replacing the criteria
// snapshot of a hotsheet
type EditCriteriaRequest struct {
	Version  int64          `json:"version" validate:"required,min=1"`
	Criteria map[string]any `json:"criteria"`
}

// SetActiveRequest represents the request body for pausing or resuming a
// hotsheet
type SetActiveRequest struct {
	IsActive *bool `json:"is_active" validate:"required"`
}

// CreateHotsheet handles creating a hotsheet from a filter document
func (h *HotsheetHandler) CreateHotsheet(c echo.Context) error {
	ownerID, ok := middleware.GetAgentID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_AGENT", "Invalid agent ID in request")
	}

	var req CreateHotsheetRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid hotsheet input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	hotsheet, err := h.hotsheetUC.CreateHotsheet(c.Request().Context(), ownerID, req.Name, req.Criteria)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, hotsheet, "Hotsheet created successfully")
}

// ListHotsheets handles retrieving all hotsheets owned by the agent
func (h *HotsheetHandler) ListHotsheets(c echo.Context) error {
	ownerID, ok := middleware.GetAgentID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_AGENT", "Invalid agent ID in request")
	}

	hotsheets, err := h.hotsheetUC.ListHotsheets(c.Request().Context(), ownerID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hotsheets, "Hotsheets retrieved successfully")
}

// GetHotsheet handles retrieving a single hotsheet
func (h *HotsheetHandler) GetHotsheet(c echo.Context) error {
	ownerID, ok := middleware.GetAgentID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_AGENT", "Invalid agent ID in request")
	}

	id, err := uuid.Parse(c.Param("hotsheetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hotsheet ID")
	}

	hotsheet, err := h.hotsheetUC.GetHotsheet(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hotsheet, "Hotsheet retrieved successfully")
}

// EditCriteria handles replacing the whole criteria snapshot of a hotsheet
func (h *HotsheetHandler) EditCriteria(c echo.Context) error {
	ownerID, ok := middleware.GetAgentID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_AGENT", "Invalid agent ID in request")
	}

	id, err := uuid.Parse(c.Param("hotsheetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hotsheet ID")
	}

	var req EditCriteriaRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid criteria input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	hotsheet, err := h.hotsheetUC.EditCriteria(c.Request().Context(), ownerID, id, req.Version, req.Criteria)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, hotsheet, "Hotsheet criteria updated successfully")
}

// SetActive handles pausing or resuming a hotsheet
func (h *HotsheetHandler) SetActive(c echo.Context) error {
	ownerID, ok := middleware.GetAgentID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_AGENT", "Invalid agent ID in request")
	}

	id, err := uuid.Parse(c.Param("hotsheetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hotsheet ID")
	}

	var req SetActiveRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.hotsheetUC.SetActive(c.Request().Context(), ownerID, id, *req.IsActive); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]bool{"is_active": *req.IsActive}, "Hotsheet status updated successfully")
}

// DeleteHotsheet handles removing a hotsheet
func (h *HotsheetHandler) DeleteHotsheet(c echo.Context) error {
	ownerID, ok := middleware.GetAgentID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_AGENT", "Invalid agent ID in request")
	}

	id, err := uuid.Parse(c.Param("hotsheetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hotsheet ID")
	}

	if err := h.hotsheetUC.DeleteHotsheet(c.Request().Context(), ownerID, id); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Deleted successfully"}, "Hotsheet deleted successfully")
}

// CurrentMatches handles re-evaluating a hotsheet against live inventory
func (h *HotsheetHandler) CurrentMatches(c echo.Context) error {
	ownerID, ok := middleware.GetAgentID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_AGENT", "Invalid agent ID in request")
	}

	id, err := uuid.Parse(c.Param("hotsheetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hotsheet ID")
	}

	listings, err := h.hotsheetUC.CurrentMatches(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"listings": listings,
		"count":    len(listings),
	}, "Current matches retrieved successfully")
}

// NewSinceLastDelivery handles listing matches not yet delivered
func (h *HotsheetHandler) NewSinceLastDelivery(c echo.Context) error {
	ownerID, ok := middleware.GetAgentID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_AGENT", "Invalid agent ID in request")
	}

	id, err := uuid.Parse(c.Param("hotsheetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hotsheet ID")
	}

	listings, err := h.hotsheetUC.NewSinceLastDelivery(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]any{
		"listings": listings,
		"count":    len(listings),
	}, "Undelivered matches retrieved successfully")
}

// DeliverNew handles dispatching undelivered matches to the notification
// pipeline
func (h *HotsheetHandler) DeliverNew(c echo.Context) error {
	ownerID, ok := middleware.GetAgentID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_AGENT", "Invalid agent ID in request")
	}

	id, err := uuid.Parse(c.Param("hotsheetId"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid hotsheet ID")
	}

	report, err := h.hotsheetUC.DeliverNew(c.Request().Context(), ownerID, id)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, report, "Delivery completed successfully")
}
