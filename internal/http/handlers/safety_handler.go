// README: Safety alert handlers (listing and admin-triggered refresh).
package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"safar/internal/modules/weather"
)

// AlertSource reads and refreshes safety alerts.
type AlertSource interface {
	ActiveAlerts(ctx context.Context, region string) ([]weather.SafetyAlert, error)
	RefreshAlerts(ctx context.Context) ([]weather.SafetyAlert, error)
}

type SafetyHandler struct {
	alerts AlertSource
}

func NewSafetyHandler(alerts AlertSource) *SafetyHandler {
	return &SafetyHandler{alerts: alerts}
}

// Alerts handles GET /api/safety/alerts.
func (h *SafetyHandler) Alerts(c *gin.Context) {
	region := c.Query("region")
	alerts, err := h.alerts.ActiveAlerts(c.Request.Context(), region)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	if alerts == nil {
		alerts = []weather.SafetyAlert{}
	}
	writeJSON(c, http.StatusOK, gin.H{"alerts": alerts, "count": len(alerts)})
}

// Refresh handles POST /api/alerts/refresh. Runs one monitored-city sweep
// immediately instead of waiting for the background ticker.
func (h *SafetyHandler) Refresh(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Minute)
	defer cancel()

	created, err := h.alerts.RefreshAlerts(ctx)
	if err != nil {
		writeServiceError(c, err)
		return
	}
	writeJSON(c, http.StatusOK, gin.H{"created": len(created), "alerts": created})
}
