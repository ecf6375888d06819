// README: Gin router registration; wires handlers and middleware.
package http

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"safar/internal/http/handlers"
	"safar/internal/http/middleware"
	"safar/internal/infra"
)

// RouterDeps carries everything the router needs. Verifier may be nil; the
// admin refresh endpoint is then left unprotected (local development).
type RouterDeps struct {
	Travel   *handlers.TravelHandler
	Trip     *handlers.TripHandler
	Routes   *handlers.RouteHandler
	Safety   *handlers.SafetyHandler
	Queries  *handlers.QueryHandler
	Verifier infra.TokenVerifier

	CORSOrigins []string
	Log         *zap.Logger
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.Recovery(deps.Log))
	r.Use(middleware.Logging(deps.Log))
	r.Use(middleware.CORS(deps.CORSOrigins))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "healthy"})
	})

	api := r.Group("/api")

	api.POST("/travel/query", deps.Travel.Query)

	api.POST("/trip/plan", deps.Trip.Plan)
	api.POST("/trip/quick-plan", deps.Trip.QuickPlan)
	api.GET("/trip/destinations", deps.Trip.Destinations)
	api.GET("/trip/packing-checklist", deps.Trip.PackingChecklist)
	api.GET("/trip/emergency-info", deps.Trip.EmergencyInfo)

	api.GET("/routes", deps.Routes.List)
	api.GET("/routes/:origin/:destination", deps.Routes.Get)
	api.GET("/transport-options", deps.Routes.TransportOptions)

	api.GET("/safety/alerts", deps.Safety.Alerts)

	refresh := api.Group("")
	if deps.Verifier != nil {
		refresh.Use(middleware.Auth(deps.Verifier))
	}
	refresh.POST("/alerts/refresh", deps.Safety.Refresh)

	api.GET("/queries/history", deps.Queries.History)
	api.POST("/user/profile", deps.Queries.CreateProfile)

	return r
}
