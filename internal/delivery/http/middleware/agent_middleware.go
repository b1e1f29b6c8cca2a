package middleware

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const agentIDContextKey = "agentID"

// AgentMiddleware resolves the calling agent's identity. Authentication
// happens upstream at the API gateway, which injects the verified agent id
// as a header; this middleware only parses and exposes it.
type AgentMiddleware struct{}

// NewAgentMiddleware is the constructor for AgentMiddleware.
func NewAgentMiddleware() *AgentMiddleware {
	return &AgentMiddleware{}
}

// RequireAgent rejects requests without a valid X-Agent-Id header and sets
// the parsed id on the context for handlers to use.
func (m *AgentMiddleware) RequireAgent(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		agentHeader := c.Request().Header.Get("X-Agent-Id")
		if agentHeader == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "X-Agent-Id header is missing"})
		}

		agentID, err := uuid.Parse(agentHeader)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid agent ID format"})
		}

		c.Set(agentIDContextKey, agentID)

		return next(c)
	}
}

// GetAgentID retrieves the authenticated agent's ID from the context.
func GetAgentID(c echo.Context) (uuid.UUID, bool) {
	agentID, ok := c.Get(agentIDContextKey).(uuid.UUID)

	return agentID, ok
}
