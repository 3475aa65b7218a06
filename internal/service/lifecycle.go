package service

//go:generate mockgen -source=lifecycle.go -destination=mocks/mock_lifecycle_service.go -package=mocks

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/citywatch/alert_dispatch_system/internal/apperrors"
	"github.com/citywatch/alert_dispatch_system/internal/config"
	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/notify"
)

// LifecycleService applies human-initiated transitions to incidents,
// reusing the ingestion pipeline's persistence and notification
// primitives. Status machine: new -> assigned -> {resolved, false_alarm};
// verification is a separate pending -> {verified, rejected} axis.
type LifecycleService interface {
	UpdateStatusByResponder(ctx context.Context, partition string, incidentID, responderID uuid.UUID, target models.IncidentStatus) (*models.Incident, error)
	ReassignResponder(ctx context.Context, partition string, incidentID uuid.UUID, responderID *uuid.UUID, actorID uuid.UUID, comment string) (*models.Incident, error)
	Verify(ctx context.Context, partition string, incidentID uuid.UUID, target models.VerificationStatus, falsePositiveTag *string, actorID uuid.UUID, comment string) (*models.Incident, error)
	GetIncident(ctx context.Context, partition string, incidentID uuid.UUID) (*models.Incident, error)
	ListIncidents(ctx context.Context, partition string, page, pageSize int) ([]*models.Incident, error)
	RecordResponderLocation(ctx context.Context, partition string, responderID uuid.UUID, lat, lon float64) error
}

type lifecycleService struct {
	incidents  IncidentRepository
	responders ResponderRepository
	locations  LocationStore
	publisher  notify.Publisher
	logger     *logrus.Logger
	cfg        *config.Config
}

func NewLifecycleService(incidents IncidentRepository, responders ResponderRepository, locations LocationStore, publisher notify.Publisher, logger *logrus.Logger, cfg *config.Config) LifecycleService {
	return &lifecycleService{
		incidents:  incidents,
		responders: responders,
		locations:  locations,
		publisher:  publisher,
		logger:     logger,
		cfg:        cfg,
	}
}

// UpdateStatusByResponder lets a responder move their own incident to
// assigned or resolved. Any other target is forbidden; an incident not
// assigned to the caller is reported as not found.
func (s *lifecycleService) UpdateStatusByResponder(ctx context.Context, partition string, incidentID, responderID uuid.UUID, target models.IncidentStatus) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":      "lifecycle",
		"method":       "UpdateStatusByResponder",
		"partition":    partition,
		"incident_id":  incidentID,
		"responder_id": responderID,
	})

	if target != models.StatusAssigned && target != models.StatusResolved {
		return nil, fmt.Errorf("%w: responders may only set assigned or resolved", apperrors.ErrForbidden)
	}

	incident, err := s.incidents.GetByID(ctx, partition, incidentID)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: %w", err)
	}

	if incident.AssignedResponderID == nil || *incident.AssignedResponderID != responderID {
		log.Warn("Responder attempted to act on an incident not assigned to them")
		return nil, fmt.Errorf("%w: incident %s is not assigned to caller", apperrors.ErrNotFound, incidentID)
	}
	if incident.Status.IsTerminal() {
		return nil, fmt.Errorf("%w: incident %s is already %s", apperrors.ErrForbidden, incidentID, incident.Status)
	}

	prev := incident.Status
	if err := s.incidents.UpdateStatus(ctx, partition, incidentID, target); err != nil {
		return nil, fmt.Errorf("lifecycle: could not update status: %w", err)
	}
	incident.Status = target

	actorID := responderID
	entry := &models.IncidentHistoryEntry{
		IncidentID: incidentID,
		ActorID:    &actorID,
		Action:     models.ActionStatusChanged,
		PrevStatus: prev,
		NewStatus:  target,
		Comment:    fmt.Sprintf("Status changed from %s to %s by assigned responder", prev, target),
	}
	if err := s.incidents.AppendHistory(ctx, partition, entry); err != nil {
		log.WithError(err).Error("Failed to append status-change history")
	}

	log.WithField("status", target).Info("Incident status updated by responder")
	s.publishIncidentUpdated(partition, incident)
	return incident, nil
}

// ReassignResponder is the admin reassignment: set any active responder, or
// nil to unassign, regardless of current status. Assigning a responder to a
// new incident also advances it to assigned.
func (s *lifecycleService) ReassignResponder(ctx context.Context, partition string, incidentID uuid.UUID, responderID *uuid.UUID, actorID uuid.UUID, comment string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "lifecycle",
		"method":      "ReassignResponder",
		"partition":   partition,
		"incident_id": incidentID,
	})

	incident, err := s.incidents.GetByID(ctx, partition, incidentID)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: %w", err)
	}

	var newName string
	if responderID != nil {
		responder, err := s.responders.GetActive(ctx, partition, *responderID)
		if err != nil {
			return nil, fmt.Errorf("lifecycle: %w", err)
		}
		newName = responder.Name
	}

	status := incident.Status
	if status == models.StatusNew && responderID != nil {
		status = models.StatusAssigned
	}

	if err := s.incidents.UpdateAssignment(ctx, partition, incidentID, responderID, status); err != nil {
		return nil, fmt.Errorf("lifecycle: could not reassign responder: %w", err)
	}

	prevStatus := incident.Status
	prevResponder := "none"
	if incident.AssignedResponderID != nil {
		prevResponder = incident.AssignedResponderID.String()
	}
	newResponder := "none"
	if responderID != nil {
		newResponder = fmt.Sprintf("%s (%s)", newName, responderID)
	}
	incident.AssignedResponderID = responderID
	incident.Status = status

	historyComment := fmt.Sprintf("Responder changed from %s to %s", prevResponder, newResponder)
	if comment != "" {
		historyComment = historyComment + ": " + comment
	}
	entry := &models.IncidentHistoryEntry{
		IncidentID: incidentID,
		ActorID:    &actorID,
		Action:     models.ActionResponderReassigned,
		PrevStatus: prevStatus,
		NewStatus:  status,
		Comment:    historyComment,
	}
	if err := s.incidents.AppendHistory(ctx, partition, entry); err != nil {
		log.WithError(err).Error("Failed to append reassignment history")
	}

	log.Info("Incident responder reassigned")
	s.publishIncidentUpdated(partition, incident)
	return incident, nil
}

// Verify moves the verification axis from pending to verified or rejected.
// Rejecting may record a false-positive tag for detector feedback.
func (s *lifecycleService) Verify(ctx context.Context, partition string, incidentID uuid.UUID, target models.VerificationStatus, falsePositiveTag *string, actorID uuid.UUID, comment string) (*models.Incident, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":     "lifecycle",
		"method":      "Verify",
		"partition":   partition,
		"incident_id": incidentID,
	})

	if target != models.VerificationVerified && target != models.VerificationRejected {
		return nil, fmt.Errorf("%w: verification target must be verified or rejected", apperrors.ErrValidation)
	}

	incident, err := s.incidents.GetByID(ctx, partition, incidentID)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: %w", err)
	}
	if incident.VerificationStatus != models.VerificationPending {
		return nil, fmt.Errorf("%w: incident %s is already %s", apperrors.ErrForbidden, incidentID, incident.VerificationStatus)
	}

	var tag *string
	if target == models.VerificationRejected {
		tag = falsePositiveTag
	}

	if err := s.incidents.UpdateVerification(ctx, partition, incidentID, target, tag); err != nil {
		return nil, fmt.Errorf("lifecycle: could not update verification: %w", err)
	}
	incident.VerificationStatus = target
	incident.FalsePositiveTag = tag

	historyComment := fmt.Sprintf("Verification set to %s", target)
	if tag != nil {
		historyComment = fmt.Sprintf("%s (false positive: %s)", historyComment, *tag)
	}
	if comment != "" {
		historyComment = historyComment + ": " + comment
	}
	entry := &models.IncidentHistoryEntry{
		IncidentID: incidentID,
		ActorID:    &actorID,
		Action:     models.ActionVerificationUpdated,
		PrevStatus: incident.Status,
		NewStatus:  incident.Status,
		Comment:    historyComment,
	}
	if err := s.incidents.AppendHistory(ctx, partition, entry); err != nil {
		log.WithError(err).Error("Failed to append verification history")
	}

	log.WithField("verification_status", target).Info("Incident verification updated")
	s.publishIncidentUpdated(partition, incident)
	return incident, nil
}

// GetIncident returns an incident by id.
func (s *lifecycleService) GetIncident(ctx context.Context, partition string, incidentID uuid.UUID) (*models.Incident, error) {
	incident, err := s.incidents.GetByID(ctx, partition, incidentID)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: %w", err)
	}
	return incident, nil
}

// ListIncidents returns incidents with pagination.
func (s *lifecycleService) ListIncidents(ctx context.Context, partition string, page, pageSize int) ([]*models.Incident, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	incidents, err := s.incidents.List(ctx, partition, page, pageSize)
	if err != nil {
		return nil, fmt.Errorf("lifecycle: could not list incidents: %w", err)
	}
	return incidents, nil
}

// RecordResponderLocation stores a new GPS fix from the tracking feed,
// replacing the responder's previous fix.
func (s *lifecycleService) RecordResponderLocation(ctx context.Context, partition string, responderID uuid.UUID, lat, lon float64) error {
	if _, err := s.responders.GetActive(ctx, partition, responderID); err != nil {
		return fmt.Errorf("lifecycle: %w", err)
	}

	fix := &models.ResponderLocationFix{
		ResponderID: responderID,
		Latitude:    lat,
		Longitude:   lon,
		UpdatedAt:   time.Now(),
	}
	if err := s.locations.SaveFix(ctx, partition, fix); err != nil {
		return fmt.Errorf("lifecycle: could not save location fix: %w", err)
	}
	return nil
}

func (s *lifecycleService) publishIncidentUpdated(partition string, incident *models.Incident) {
	publishAsync(s.logger, s.publisher, s.cfg.PublishTimeout, notify.Event{
		Name:      notify.EventIncidentUpdated,
		Partition: partition,
		Payload: map[string]any{
			"incident_id":           incident.ID,
			"status":                incident.Status,
			"verification_status":   incident.VerificationStatus,
			"assigned_responder_id": incident.AssignedResponderID,
		},
		OccurredAt: time.Now(),
	})
}
