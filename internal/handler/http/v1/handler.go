package v1

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/citywatch/alert_dispatch_system/internal/apperrors"
	"github.com/citywatch/alert_dispatch_system/internal/config"
	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/service"
	"github.com/citywatch/alert_dispatch_system/internal/tenant"
)

const (
	headerTenantID    = "X-Tenant-ID"
	headerResponderID = "X-Responder-ID"
	headerActorID     = "X-Actor-ID"
)

type Handler struct {
	alertService     service.AlertService
	lifecycleService service.LifecycleService
	tenants          tenant.Directory
	logger           *logrus.Logger
	validate         *validator.Validate
	cfg              *config.Config
}

func NewHandler(alertService service.AlertService, lifecycleService service.LifecycleService, tenants tenant.Directory, logger *logrus.Logger, cfg *config.Config) *Handler {
	return &Handler{
		alertService:     alertService,
		lifecycleService: lifecycleService,
		tenants:          tenants,
		logger:           logger,
		validate:         validator.New(),
		cfg:              cfg,
	}
}

// partition resolves the caller's tenant partition from the X-Tenant-ID
// header. The tenant context itself is established by the out-of-scope
// auth layer; this core only resolves it to a partition key.
func (h *Handler) partition(c *gin.Context) (string, bool) {
	tenantID := c.GetHeader(headerTenantID)
	if tenantID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "X-Tenant-ID header required"})
		return "", false
	}
	partition, err := h.tenants.PartitionKey(tenantID)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "unknown tenant"})
		return "", false
	}
	return partition, true
}

// respondError maps the service error taxonomy onto HTTP status codes.
func (h *Handler) respondError(c *gin.Context, log *logrus.Entry, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation):
		log.WithError(err).Warn("Validation failure")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		log.WithError(err).Warn("Resource not found")
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		log.WithError(err).Warn("Forbidden transition")
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		log.WithError(err).Error("Unexpected failure")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// @Summary Ingest a machine detection
// @Description Turn a detector alert into a tracked incident with automatic responder dispatch. Requires API key and tenant context.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param alert body IngestRequest true "Detection ingest request"
// @Success 201 {object} IngestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Unknown camera or tenant"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /alerts/ingest [post]
func (h *Handler) ingestAlert(c *gin.Context) {
	log := h.logger.WithField("method", "ingestAlert")

	partition, ok := h.partition(c)
	if !ok {
		return
	}

	var input IngestRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.alertService.IngestDetection(c.Request.Context(), partition, IngestRequestToInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ResultToIngestResponse(result))
}

// @Summary Submit a citizen report
// @Description Create a tracked incident from a citizen-submitted report. Requires API key and tenant context.
// @Tags Alerts
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param report body CitizenReportRequest true "Citizen report"
// @Success 201 {object} IngestResponse
// @Failure 400 {object} map[string]string "Invalid request body or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /reports [post]
func (h *Handler) submitReport(c *gin.Context) {
	log := h.logger.WithField("method", "submitReport")

	partition, ok := h.partition(c)
	if !ok {
		return
	}

	var input CitizenReportRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if (input.Latitude == nil) != (input.Longitude == nil) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "latitude and longitude must be supplied together"})
		return
	}

	result, err := h.alertService.SubmitCitizenReport(c.Request.Context(), partition, ReportRequestToInput(input))
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusCreated, ResultToIngestResponse(result))
}

// @Summary Update incident status as responder
// @Description Assigned responder moves their incident to assigned or resolved. Requires API key and tenant context.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param X-Responder-ID header string true "Authenticated responder identifier"
// @Param id path string true "Incident ID"
// @Param status body UpdateStatusRequest true "Target status"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Target status not allowed for responders"
// @Failure 404 {object} map[string]string "Incident not found or not assigned to caller"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/status [patch]
func (h *Handler) updateIncidentStatus(c *gin.Context) {
	log := h.logger.WithField("method", "updateIncidentStatus")

	partition, ok := h.partition(c)
	if !ok {
		return
	}
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	responderID, err := uuid.Parse(c.GetHeader(headerResponderID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "responder identity required"})
		return
	}

	var input UpdateStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.lifecycleService.UpdateStatusByResponder(c.Request.Context(), partition, incidentID, responderID, models.IncidentStatus(input.Status))
	if err != nil {
		h.respondError(c, log.WithField("incident_id", incidentID), err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Reassign incident responder
// @Description Admin sets or clears the assigned responder regardless of current status. Requires API key and tenant context.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param X-Actor-ID header string true "Acting admin identifier"
// @Param id path string true "Incident ID"
// @Param reassignment body ReassignRequest true "Reassignment request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident or responder not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/assignee [patch]
func (h *Handler) reassignIncident(c *gin.Context) {
	log := h.logger.WithField("method", "reassignIncident")

	partition, ok := h.partition(c)
	if !ok {
		return
	}
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	actorID, err := uuid.Parse(c.GetHeader(headerActorID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "actor identity required"})
		return
	}

	var input ReassignRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	var responderID *uuid.UUID
	if input.ResponderID != nil {
		id, err := uuid.Parse(*input.ResponderID)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
			return
		}
		responderID = &id
	}

	incident, err := h.lifecycleService.ReassignResponder(c.Request.Context(), partition, incidentID, responderID, actorID, input.Comment)
	if err != nil {
		h.respondError(c, log.WithField("incident_id", incidentID), err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Verify or reject an incident
// @Description Admin moves the verification axis from pending to verified or rejected. Requires API key and tenant context.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param X-Actor-ID header string true "Acting admin identifier"
// @Param id path string true "Incident ID"
// @Param verification body VerificationRequest true "Verification request"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Incident already verified or rejected"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id}/verification [patch]
func (h *Handler) verifyIncident(c *gin.Context) {
	log := h.logger.WithField("method", "verifyIncident")

	partition, ok := h.partition(c)
	if !ok {
		return
	}
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	actorID, err := uuid.Parse(c.GetHeader(headerActorID))
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "actor identity required"})
		return
	}

	var input VerificationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	incident, err := h.lifecycleService.Verify(c.Request.Context(), partition, incidentID,
		models.VerificationStatus(input.VerificationStatus), input.FalsePositiveTag, actorID, input.Comment)
	if err != nil {
		h.respondError(c, log.WithField("incident_id", incidentID), err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get incident by ID
// @Description Get a single incident by its ID. Requires API key and tenant context.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param id path string true "Incident ID"
// @Success 200 {object} IncidentResponse
// @Failure 400 {object} map[string]string "Invalid incident ID"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Incident not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents/{id} [get]
func (h *Handler) getIncident(c *gin.Context) {
	partition, ok := h.partition(c)
	if !ok {
		return
	}
	incidentID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid incident ID"})
		return
	}
	log := h.logger.WithField("method", "getIncident").WithField("id", incidentID)

	incident, err := h.lifecycleService.GetIncident(c.Request.Context(), partition, incidentID)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelToIncidentResponse(incident))
}

// @Summary Get a list of incidents
// @Description Get a paginated list of incidents, newest first. Requires API key and tenant context.
// @Tags Incidents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param page query int false "Page number" default(1)
// @Param pageSize query int false "Number of items per page" default(20)
// @Success 200 {array} IncidentResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /incidents [get]
func (h *Handler) listIncidents(c *gin.Context) {
	log := h.logger.WithField("method", "listIncidents")

	partition, ok := h.partition(c)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("pageSize", "20"))

	incidents, err := h.lifecycleService.ListIncidents(c.Request.Context(), partition, page, pageSize)
	if err != nil {
		h.respondError(c, log, err)
		return
	}
	c.JSON(http.StatusOK, ModelsToIncidentResponses(incidents))
}

// @Summary Record a responder location fix
// @Description Store the latest GPS fix for a responder, consumed by dispatch matching. Requires API key and tenant context.
// @Tags Responders
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param X-Tenant-ID header string true "Tenant identifier"
// @Param id path string true "Responder ID"
// @Param fix body LocationFixRequest true "Location fix"
// @Success 204 "No Content"
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Responder not found"
// @Failure 500 {object} map[string]string "Internal server error"
// @Router /responders/{id}/location [post]
func (h *Handler) recordResponderLocation(c *gin.Context) {
	log := h.logger.WithField("method", "recordResponderLocation")

	partition, ok := h.partition(c)
	if !ok {
		return
	}
	responderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid responder ID"})
		return
	}

	var input LocationFixRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		log.WithError(err).Warn("Failed to bind JSON")
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(input); err != nil {
		log.WithError(err).Warn("Validation failed")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := h.lifecycleService.RecordResponderLocation(c.Request.Context(), partition, responderID, input.Latitude, input.Longitude); err != nil {
		h.respondError(c, log.WithField("responder_id", responderID), err)
		return
	}
	c.Status(http.StatusNoContent)
}

// @Summary Get application health status
// @Description Get health status of the application
// @Tags System
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string "Status OK"
// @Router /system/health [get]
func (h *Handler) healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
