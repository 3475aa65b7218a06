package service

//go:generate mockgen -source=contracts.go -destination=mocks/mock_contracts.go -package=mocks

import (
	"context"

	"github.com/google/uuid"

	"github.com/citywatch/alert_dispatch_system/internal/models"
)

// CameraRepository reads cameras within a tenant partition.
type CameraRepository interface {
	GetByID(ctx context.Context, partition string, id uuid.UUID) (*models.Camera, error)
}

// IncidentRepository persists incidents and their append-only audit trail.
// CreateWithHistory must be atomic: an incident is never stored without its
// first history entry.
type IncidentRepository interface {
	CreateWithHistory(ctx context.Context, partition string, incident *models.Incident, entry *models.IncidentHistoryEntry) error
	AppendHistory(ctx context.Context, partition string, entry *models.IncidentHistoryEntry) error
	GetByID(ctx context.Context, partition string, id uuid.UUID) (*models.Incident, error)
	List(ctx context.Context, partition string, page, pageSize int) ([]*models.Incident, error)
	UpdateStatus(ctx context.Context, partition string, id uuid.UUID, status models.IncidentStatus) error
	UpdateAssignment(ctx context.Context, partition string, id uuid.UUID, responderID *uuid.UUID, status models.IncidentStatus) error
	UpdateVerification(ctx context.Context, partition string, id uuid.UUID, status models.VerificationStatus, falsePositiveTag *string) error
}

// CrowdRepository persists people-count samples and serves the trailing
// window, newest first.
type CrowdRepository interface {
	InsertSample(ctx context.Context, partition string, sample *models.CrowdMetricSample) error
	RecentSamples(ctx context.Context, partition string, cameraID uuid.UUID, limit int) ([]*models.CrowdMetricSample, error)
}

// ResponderRepository reads active dispatch candidates.
type ResponderRepository interface {
	ListActive(ctx context.Context, partition string) ([]*models.Responder, error)
	GetActive(ctx context.Context, partition string, id uuid.UUID) (*models.Responder, error)
}

// LocationStore consumes the location tracking feed: latest fix per
// responder, nothing older.
type LocationStore interface {
	SaveFix(ctx context.Context, partition string, fix *models.ResponderLocationFix) error
	LatestFixes(ctx context.Context, partition string, responderIDs []uuid.UUID) (map[uuid.UUID]*models.ResponderLocationFix, error)
}
