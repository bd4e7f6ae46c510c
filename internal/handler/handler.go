package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

// Handler mounts the HTTP surface: a health probe and the MCP streamable
// HTTP endpoint.
type Handler struct {
	tracer trace.Tracer
	mcp    http.Handler
}

func New(tracer trace.Tracer, mcpHandler http.Handler) *Handler {
	return &Handler{
		tracer: tracer,
		mcp:    mcpHandler,
	}
}

// RegisterRoutes wires the routes. authToken guards the MCP endpoint; an
// empty token disables auth.
func (h *Handler) RegisterRoutes(r *gin.Engine, authToken string) {
	r.GET("/health", h.Health)
	r.Any("/mcp", AuthToken(authToken), gin.WrapH(h.mcp))
}
