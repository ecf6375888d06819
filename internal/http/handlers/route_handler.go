// README: Route and transport-option handlers.
package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"safar/internal/modules/routes"
)

// RouteReader assembles route answers and lists stored routes.
type RouteReader interface {
	Info(ctx context.Context, origin, destination string) (*routes.RouteInfo, error)
	ListRoutes(ctx context.Context) ([]routes.Route, error)
}

type RouteHandler struct {
	routes RouteReader
}

func NewRouteHandler(routeData RouteReader) *RouteHandler {
	return &RouteHandler{routes: routeData}
}

// List handles GET /api/routes.
func (h *RouteHandler) List(c *gin.Context) {
	all, err := h.routes.ListRoutes(c.Request.Context())
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if all == nil {
		all = []routes.Route{}
	}
	writeJSON(c, http.StatusOK, gin.H{"routes": all, "count": len(all)})
}

// Get handles GET /api/routes/:origin/:destination.
func (h *RouteHandler) Get(c *gin.Context) {
	origin := strings.TrimSpace(c.Param("origin"))
	destination := strings.TrimSpace(c.Param("destination"))
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}

	info, err := h.routes.Info(c.Request.Context(), origin, destination)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if info.DistanceKM == nil {
		writeError(c, http.StatusNotFound, "route not found")
		return
	}
	writeJSON(c, http.StatusOK, info)
}

// TransportOptions handles GET /api/transport-options.
func (h *RouteHandler) TransportOptions(c *gin.Context) {
	origin := strings.TrimSpace(c.Query("origin"))
	destination := strings.TrimSpace(c.Query("destination"))
	if origin == "" || destination == "" {
		writeError(c, http.StatusBadRequest, "origin and destination are required")
		return
	}

	info, err := h.routes.Info(c.Request.Context(), origin, destination)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{
		"origin":            info.Origin,
		"destination":       info.Destination,
		"transport_options": info.TransportOptions,
	})
}
