package v1

import (
	"time"

	"github.com/google/uuid"

	"github.com/citywatch/alert_dispatch_system/internal/analytics"
	"github.com/citywatch/alert_dispatch_system/internal/models"
)

// IngestRequest is a machine detection from the external detector.
// Numeric enrichment fields are deliberately loose: detectors disagree on
// types, and an unparseable value degrades instead of failing the alert.
// @Description Machine detection ingest request
type IngestRequest struct {
	CameraID    string     `json:"camera_id" validate:"required"`
	Type        string     `json:"type" validate:"required"`
	Confidence  any        `json:"confidence,omitempty"`
	PeopleCount any        `json:"people_count,omitempty"`
	AreaSqm     any        `json:"area_sqm,omitempty"`
	MediaURL    *string    `json:"media_url,omitempty"`
	EventTime   *time.Time `json:"event_time,omitempty"`
}

// CitizenReportRequest is a citizen-submitted report.
// @Description Citizen report submission request
type CitizenReportRequest struct {
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description" validate:"required,min=3"`
	Latitude    *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude   *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	MediaURL    *string  `json:"media_url,omitempty"`
}

// UpdateStatusRequest carries a responder's target status. Values outside
// the allowed set are rejected by the lifecycle service, not here.
// @Description Responder status update request
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// ReassignRequest is the admin reassignment body; null responder_id
// unassigns the incident.
// @Description Admin responder reassignment request
type ReassignRequest struct {
	ResponderID *string `json:"responder_id"`
	Comment     string  `json:"comment,omitempty"`
}

// VerificationRequest is the admin verification body.
// @Description Admin verification request
type VerificationRequest struct {
	VerificationStatus string  `json:"verification_status" validate:"required,oneof=verified rejected"`
	FalsePositiveTag   *string `json:"false_positive_tag,omitempty"`
	Comment            string  `json:"comment,omitempty"`
}

// LocationFixRequest is one GPS fix from the responder tracking feed.
// @Description Responder location fix
type LocationFixRequest struct {
	Latitude  float64 `json:"latitude" validate:"required,latitude"`
	Longitude float64 `json:"longitude" validate:"required,longitude"`
}

// ResponderMatchResponse echoes the auto-assigned responder.
// @Description Auto-assigned responder summary
type ResponderMatchResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	BadgeNo   string    `json:"badge_no"`
	DistanceM float64   `json:"distance_m"`
	FixAt     time.Time `json:"fix_at"`
}

// IngestResponse echoes what the pipeline produced for one report.
// @Description Ingest result
type IngestResponse struct {
	IncidentID        uuid.UUID               `json:"incident_id"`
	Status            models.IncidentStatus   `json:"status"`
	CrowdMetrics      *analytics.Analysis     `json:"crowd_metrics,omitempty"`
	AssignedResponder *ResponderMatchResponse `json:"assigned_responder,omitempty"`
}

// IncidentResponse is the full incident representation.
// @Description Incident
type IncidentResponse struct {
	ID                  uuid.UUID                 `json:"id"`
	Type                models.IncidentType       `json:"type"`
	DetectedClass       string                    `json:"detected_class"`
	Confidence          *float64                  `json:"confidence,omitempty"`
	Source              models.IncidentSource     `json:"source"`
	Status              models.IncidentStatus     `json:"status"`
	VerificationStatus  models.VerificationStatus `json:"verification_status"`
	FalsePositiveTag    *string                   `json:"false_positive_tag,omitempty"`
	CameraID            *uuid.UUID                `json:"camera_id,omitempty"`
	AssignedResponderID *uuid.UUID                `json:"assigned_responder_id,omitempty"`
	Latitude            *float64                  `json:"latitude,omitempty"`
	Longitude           *float64                  `json:"longitude,omitempty"`
	MediaURL            *string                   `json:"media_url,omitempty"`
	Description         string                    `json:"description"`
	CreatedAt           time.Time                 `json:"created_at"`
	UpdatedAt           time.Time                 `json:"updated_at"`
}
