package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all API v1 routes.
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Health check stays open for load balancers.
	api.GET("/system/health", h.healthCheck)

	protected := api.Group("", APIKeyAuthMiddleware(h.cfg, h.logger))

	// Alert ingestion (detector and citizen entry points)
	protected.POST("/alerts/ingest", h.ingestAlert)
	protected.POST("/reports", h.submitReport)

	// Incident lifecycle
	incidents := protected.Group("/incidents")
	{
		incidents.GET("", h.listIncidents)
		incidents.GET("/:id", h.getIncident)
		incidents.PATCH("/:id/status", h.updateIncidentStatus)
		incidents.PATCH("/:id/assignee", h.reassignIncident)
		incidents.PATCH("/:id/verification", h.verifyIncident)
	}

	// Responder tracking feed write side
	protected.POST("/responders/:id/location", h.recordResponderLocation)
}
