package models

import (
	"time"

	"github.com/google/uuid"
)

// IncidentType is the canonical threat category assigned to an incident.
type IncidentType string

const (
	IncidentTypeFire     IncidentType = "fire"
	IncidentTypeWeapon   IncidentType = "weapon"
	IncidentTypeCrowd    IncidentType = "crowd"
	IncidentTypeFight    IncidentType = "fight"
	IncidentTypeAccident IncidentType = "accident"
)

// IncidentStatus is the dispatch state of an incident.
// resolved and false_alarm are terminal.
type IncidentStatus string

const (
	StatusNew        IncidentStatus = "new"
	StatusAssigned   IncidentStatus = "assigned"
	StatusResolved   IncidentStatus = "resolved"
	StatusFalseAlarm IncidentStatus = "false_alarm"
)

// IsTerminal reports whether no further status transition is allowed.
func (s IncidentStatus) IsTerminal() bool {
	return s == StatusResolved || s == StatusFalseAlarm
}

// VerificationStatus is the human-review axis, independent of IncidentStatus.
type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

// IncidentSource identifies who produced the originating report.
type IncidentSource string

const (
	SourceAI      IncidentSource = "AI"
	SourceCitizen IncidentSource = "CITIZEN"
)

type Incident struct {
	ID                  uuid.UUID          `json:"id"`
	Type                IncidentType       `json:"type"`
	DetectedClass       string             `json:"detected_class"`
	Confidence          *float64           `json:"confidence,omitempty"`
	Source              IncidentSource     `json:"source"`
	Status              IncidentStatus     `json:"status"`
	VerificationStatus  VerificationStatus `json:"verification_status"`
	FalsePositiveTag    *string            `json:"false_positive_tag,omitempty"`
	CameraID            *uuid.UUID         `json:"camera_id,omitempty"`
	AssignedResponderID *uuid.UUID         `json:"assigned_responder_id,omitempty"`
	Latitude            *float64           `json:"latitude,omitempty"`
	Longitude           *float64           `json:"longitude,omitempty"`
	MediaURL            *string            `json:"media_url,omitempty"`
	Description         string             `json:"description"`
	CreatedAt           time.Time          `json:"created_at"`
	UpdatedAt           time.Time          `json:"updated_at"`
}

// IncidentHistoryEntry is an append-only audit record. Rows are never
// updated or deleted after creation.
type IncidentHistoryEntry struct {
	ID         int64          `json:"id"`
	IncidentID uuid.UUID      `json:"incident_id"`
	ActorID    *uuid.UUID     `json:"actor_id,omitempty"` // nil = system
	Action     string         `json:"action"`
	PrevStatus IncidentStatus `json:"prev_status"`
	NewStatus  IncidentStatus `json:"new_status"`
	Comment    string         `json:"comment,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}

// History action tags written by the pipeline and lifecycle service.
const (
	ActionCreatedByAI          = "created_by_ai"
	ActionCreatedByCitizen     = "created_by_citizen"
	ActionAutoAssignedBySystem = "auto_assigned_by_system"
	ActionCrowdSurgeDetected   = "crowd_surge_detected"
	ActionStatusChanged        = "status_changed_by_responder"
	ActionResponderReassigned  = "responder_reassigned"
	ActionVerificationUpdated  = "verification_updated"
)
