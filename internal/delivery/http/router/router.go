// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"hotsheet/internal/delivery/http/middleware"
	"hotsheet/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SearchHandler    *handler.SearchHandler
	HotsheetHandler  *handler.HotsheetHandler
	RecipientHandler *handler.RecipientHandler
	AgentMiddleware  *middleware.AgentMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	searchHandler    *handler.SearchHandler
	hotsheetHandler  *handler.HotsheetHandler
	recipientHandler *handler.RecipientHandler
	agentMiddleware  *middleware.AgentMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		searchHandler:    params.SearchHandler,
		hotsheetHandler:  params.HotsheetHandler,
		recipientHandler: params.RecipientHandler,
		agentMiddleware:  params.AgentMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Ad-hoc search routes
	searchGroup := e.Group("/search")
	{
		searchGroup.POST("", r.searchHandler.Search)
		searchGroup.POST("/count", r.searchHandler.Count)
		searchGroup.POST("/recipients", r.recipientHandler.EstimateRecipients)
	}

	// Hotsheet routes require an authenticated agent identity
	hotsheetGroup := e.Group("/hotsheets")
	hotsheetGroup.Use(r.agentMiddleware.RequireAgent)
	{
		hotsheetGroup.POST("", r.hotsheetHandler.CreateHotsheet)
		hotsheetGroup.GET("", r.hotsheetHandler.ListHotsheets)
		hotsheetGroup.GET("/:hotsheetId", r.hotsheetHandler.GetHotsheet)
		hotsheetGroup.PUT("/:hotsheetId/criteria", r.hotsheetHandler.EditCriteria)
		hotsheetGroup.PUT("/:hotsheetId/status", r.hotsheetHandler.SetActive)
		hotsheetGroup.DELETE("/:hotsheetId", r.hotsheetHandler.DeleteHotsheet)
		hotsheetGroup.GET("/:hotsheetId/matches", r.hotsheetHandler.CurrentMatches)
		hotsheetGroup.GET("/:hotsheetId/new", r.hotsheetHandler.NewSinceLastDelivery)
		hotsheetGroup.POST("/:hotsheetId/deliver", r.hotsheetHandler.DeliverNew)
	}
}
