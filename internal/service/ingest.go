package service

//go:generate mockgen -source=ingest.go -destination=mocks/mock_alert_service.go -package=mocks

import (
	"context"
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/citywatch/alert_dispatch_system/internal/analytics"
	"github.com/citywatch/alert_dispatch_system/internal/apperrors"
	"github.com/citywatch/alert_dispatch_system/internal/config"
	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/notify"
)

// IngestInput is one machine detection as delivered by the detector
// collaborator. Numeric fields arrive loosely typed and are normalized,
// never rejected, downstream of the camera lookup.
type IngestInput struct {
	CameraID    string
	RawType     string
	Confidence  any
	PeopleCount any
	AreaSqm     any
	MediaURL    *string
	EventTime   *time.Time
}

// ReportInput is a citizen-submitted report.
type ReportInput struct {
	ReportedType string
	Description  string
	Latitude     *float64
	Longitude    *float64
	MediaURL     *string
}

// IngestResult echoes what the pipeline produced for one inbound report.
type IngestResult struct {
	IncidentID        uuid.UUID              `json:"incident_id"`
	Status            models.IncidentStatus  `json:"status"`
	CrowdMetrics      *analytics.Analysis    `json:"crowd_metrics,omitempty"`
	AssignedResponder *models.ResponderMatch `json:"assigned_responder,omitempty"`
}

// AlertService is the alert-to-dispatch ingestion pipeline.
type AlertService interface {
	IngestDetection(ctx context.Context, partition string, input IngestInput) (*IngestResult, error)
	SubmitCitizenReport(ctx context.Context, partition string, input ReportInput) (*IngestResult, error)
}

type alertService struct {
	cameras   CameraRepository
	incidents IncidentRepository
	crowd     CrowdRepository
	locator   ResponderLocator
	engine    *analytics.Engine
	cooldown  analytics.CooldownStore
	publisher notify.Publisher
	logger    *logrus.Logger
	cfg       *config.Config

	cameraLocks *keyedMutex
}

func NewAlertService(
	cameras CameraRepository,
	incidents IncidentRepository,
	crowd CrowdRepository,
	locator ResponderLocator,
	engine *analytics.Engine,
	cooldown analytics.CooldownStore,
	publisher notify.Publisher,
	logger *logrus.Logger,
	cfg *config.Config,
) AlertService {
	return &alertService{
		cameras:     cameras,
		incidents:   incidents,
		crowd:       crowd,
		locator:     locator,
		engine:      engine,
		cooldown:    cooldown,
		publisher:   publisher,
		logger:      logger,
		cfg:         cfg,
		cameraLocks: newKeyedMutex(),
	}
}

// IngestDetection turns one machine detection into a tracked incident:
// validate, resolve camera, crowd analytics, nearest-responder lookup,
// atomic incident+history persist, tenant event fan-out. Enrichment
// failures degrade; a sensor alert is never lost because analytics or
// dispatch logic failed.
func (s *alertService) IngestDetection(ctx context.Context, partition string, input IngestInput) (*IngestResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "IngestDetection",
		"partition": partition,
		"raw_type":  input.RawType,
	})

	if strings.TrimSpace(input.CameraID) == "" || strings.TrimSpace(input.RawType) == "" {
		return nil, fmt.Errorf("%w: camera_id and type are required", apperrors.ErrValidation)
	}
	cameraID, err := uuid.Parse(input.CameraID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid camera id %q", apperrors.ErrValidation, input.CameraID)
	}

	camera, err := s.cameras.GetByID(ctx, partition, cameraID)
	if err != nil {
		return nil, fmt.Errorf("ingest: %w", err)
	}

	confidence := NormalizeConfidence(input.Confidence)

	capturedAt := time.Now()
	if input.EventTime != nil {
		capturedAt = *input.EventTime
	}

	var crowdMetrics *analytics.Analysis
	if count, ok := parseCount(input.PeopleCount); ok {
		crowdMetrics = s.runCrowdAnalytics(ctx, partition, camera, count, parseArea(input.AreaSqm), capturedAt)
	}

	match := s.lookupResponder(ctx, partition, camera.Latitude, camera.Longitude)

	status := models.StatusNew
	var responderID *uuid.UUID
	if match != nil {
		status = models.StatusAssigned
		id := match.ID
		responderID = &id
	}

	lat, lon := camera.Latitude, camera.Longitude
	incident := &models.Incident{
		Type:                NormalizeType(input.RawType),
		DetectedClass:       input.RawType,
		Confidence:          confidence,
		Source:              models.SourceAI,
		Status:              status,
		VerificationStatus:  models.VerificationPending,
		CameraID:            &cameraID,
		AssignedResponderID: responderID,
		Latitude:            &lat,
		Longitude:           &lon,
		MediaURL:            input.MediaURL,
		Description:         composeDescription(input.RawType, confidence),
	}
	if input.EventTime != nil {
		incident.CreatedAt = *input.EventTime
	}

	entry := &models.IncidentHistoryEntry{
		Action:     models.ActionCreatedByAI,
		PrevStatus: models.StatusNew,
		NewStatus:  status,
		Comment:    "Incident created from AI detection",
	}
	if match != nil {
		entry.Action = models.ActionAutoAssignedBySystem
		entry.Comment = fmt.Sprintf("Auto-assigned to %s (badge %s), %.2f m away", match.Name, match.BadgeNo, match.DistanceM)
	}

	if err := s.incidents.CreateWithHistory(ctx, partition, incident, entry); err != nil {
		log.WithError(err).Error("Failed to persist incident")
		return nil, fmt.Errorf("ingest: could not create incident: %w", err)
	}

	log.WithFields(logrus.Fields{
		"incident_id": incident.ID,
		"status":      incident.Status,
	}).Info("Detection ingested")

	s.publishCriticalAlert(partition, incident, camera, match)

	if match != nil {
		match.DistanceM = math.Round(match.DistanceM*100) / 100
	}
	return &IngestResult{
		IncidentID:        incident.ID,
		Status:            incident.Status,
		CrowdMetrics:      crowdMetrics,
		AssignedResponder: match,
	}, nil
}

// SubmitCitizenReport runs the dispatch tail of the pipeline for a
// citizen-submitted report: no camera, no crowd analytics, location and
// media supplied by the reporter.
func (s *alertService) SubmitCitizenReport(ctx context.Context, partition string, input ReportInput) (*IngestResult, error) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "SubmitCitizenReport",
		"partition": partition,
	})

	if strings.TrimSpace(input.Description) == "" {
		return nil, fmt.Errorf("%w: description is required", apperrors.ErrValidation)
	}

	var match *models.ResponderMatch
	if input.Latitude != nil && input.Longitude != nil {
		match = s.lookupResponder(ctx, partition, *input.Latitude, *input.Longitude)
	}

	status := models.StatusNew
	var responderID *uuid.UUID
	if match != nil {
		status = models.StatusAssigned
		id := match.ID
		responderID = &id
	}

	incident := &models.Incident{
		Type:                NormalizeType(input.ReportedType),
		DetectedClass:       input.ReportedType,
		Source:              models.SourceCitizen,
		Status:              status,
		VerificationStatus:  models.VerificationPending,
		AssignedResponderID: responderID,
		Latitude:            input.Latitude,
		Longitude:           input.Longitude,
		MediaURL:            input.MediaURL,
		Description:         input.Description,
	}

	entry := &models.IncidentHistoryEntry{
		Action:     models.ActionCreatedByCitizen,
		PrevStatus: models.StatusNew,
		NewStatus:  status,
		Comment:    "Incident created from citizen report",
	}
	if match != nil {
		entry.Action = models.ActionAutoAssignedBySystem
		entry.Comment = fmt.Sprintf("Auto-assigned to %s (badge %s), %.2f m away", match.Name, match.BadgeNo, match.DistanceM)
	}

	if err := s.incidents.CreateWithHistory(ctx, partition, incident, entry); err != nil {
		log.WithError(err).Error("Failed to persist citizen report incident")
		return nil, fmt.Errorf("report: could not create incident: %w", err)
	}

	log.WithField("incident_id", incident.ID).Info("Citizen report ingested")

	s.publishCriticalAlert(partition, incident, nil, match)

	if match != nil {
		match.DistanceM = math.Round(match.DistanceM*100) / 100
	}
	return &IngestResult{
		IncidentID:        incident.ID,
		Status:            incident.Status,
		AssignedResponder: match,
	}, nil
}

// runCrowdAnalytics classifies the sample and persists it. The trailing
// window read and the cooldown check-and-set are serialized per
// (partition, camera) so two concurrent detections cannot both pass the
// cooldown gate in the same window. Any failure here degrades to nil
// metrics; it never fails the ingest call.
func (s *alertService) runCrowdAnalytics(ctx context.Context, partition string, camera *models.Camera, count int, areaSqm float64, capturedAt time.Time) *analytics.Analysis {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "runCrowdAnalytics",
		"partition": partition,
		"camera_id": camera.ID,
	})

	key := partition + ":" + camera.ID.String()
	unlock := s.cameraLocks.lock(key)

	window, err := s.crowd.RecentSamples(ctx, partition, camera.ID, s.cfg.CrowdWindowSize)
	if err != nil {
		unlock()
		log.WithError(err).Warn("Crowd analytics degraded: could not read trailing window")
		return nil
	}

	analysis := s.engine.Analyze(count, areaSqm, window)

	sample := &models.CrowdMetricSample{
		CameraID:      camera.ID,
		PeopleCount:   count,
		DensityLevel:  analysis.Density,
		FlowDirection: analysis.Flow,
		CapturedAt:    capturedAt,
	}
	if err := s.crowd.InsertSample(ctx, partition, sample); err != nil {
		unlock()
		log.WithError(err).Warn("Crowd analytics degraded: could not persist sample")
		return &analysis
	}

	surgeAllowed := false
	if analysis.Surge.Triggered {
		ok, err := s.cooldown.TryAcquire(ctx, key, s.cfg.SurgeCooldown)
		if err != nil {
			log.WithError(err).Error("Cooldown check failed, suppressing surge alert")
		}
		surgeAllowed = err == nil && ok
	}
	unlock()

	if analysis.Surge.Triggered && !surgeAllowed {
		log.WithField("ratio", analysis.Surge.Ratio).Debug("Surge qualified but suppressed by cooldown")
	}
	if surgeAllowed {
		s.raiseSurgeIncident(ctx, partition, camera, &analysis, capturedAt)
	}
	return &analysis
}

// raiseSurgeIncident records a qualifying, non-suppressed surge as its own
// crowd incident and alerts the tenant channel.
func (s *alertService) raiseSurgeIncident(ctx context.Context, partition string, camera *models.Camera, analysis *analytics.Analysis, capturedAt time.Time) {
	log := s.logger.WithFields(logrus.Fields{
		"service":   "alert",
		"method":    "raiseSurgeIncident",
		"partition": partition,
		"camera_id": camera.ID,
	})

	cameraID := camera.ID
	lat, lon := camera.Latitude, camera.Longitude
	incident := &models.Incident{
		Type:               models.IncidentTypeCrowd,
		DetectedClass:      "crowd_surge",
		Source:             models.SourceAI,
		Status:             models.StatusNew,
		VerificationStatus: models.VerificationPending,
		CameraID:           &cameraID,
		Latitude:           &lat,
		Longitude:          &lon,
		Description: fmt.Sprintf("Sudden crowd surge at %s: %d people, %.2fx over baseline %.2f",
			camera.LocationName, analysis.PeopleCount, analysis.Surge.Ratio, analysis.Surge.Baseline),
		CreatedAt: capturedAt,
	}

	entry := &models.IncidentHistoryEntry{
		Action:     models.ActionCrowdSurgeDetected,
		PrevStatus: models.StatusNew,
		NewStatus:  models.StatusNew,
		Comment: fmt.Sprintf("Surge detected: baseline %.2f, ratio %.2f, density %s",
			analysis.Surge.Baseline, analysis.Surge.Ratio, analysis.Density),
	}

	if err := s.incidents.CreateWithHistory(ctx, partition, incident, entry); err != nil {
		log.WithError(err).Error("Failed to persist surge incident")
		return
	}

	log.WithField("incident_id", incident.ID).Warn("Crowd surge incident raised")

	publishAsync(s.logger, s.publisher, s.cfg.PublishTimeout, notify.Event{
		Name:      notify.EventCrowdSurgeAlert,
		Partition: partition,
		Payload: map[string]any{
			"incident_id":    incident.ID,
			"camera_id":      camera.ID,
			"camera_name":    camera.LocationName,
			"people_count":   analysis.PeopleCount,
			"density_level":  analysis.Density,
			"flow_direction": analysis.Flow,
			"baseline":       analysis.Surge.Baseline,
			"ratio":          analysis.Surge.Ratio,
			"delta":          analysis.Surge.Delta,
			"captured_at":    capturedAt,
		},
		OccurredAt: time.Now(),
	})
}

// lookupResponder degrades a locator failure to "no match".
func (s *alertService) lookupResponder(ctx context.Context, partition string, lat, lon float64) *models.ResponderMatch {
	match, err := s.locator.FindNearest(ctx, partition, lat, lon)
	if err != nil {
		s.logger.WithError(err).WithField("partition", partition).
			Warn("Responder lookup degraded, incident will be created unassigned")
		return nil
	}
	return match
}

func (s *alertService) publishCriticalAlert(partition string, incident *models.Incident, camera *models.Camera, match *models.ResponderMatch) {
	payload := map[string]any{
		"incident_id":    incident.ID,
		"type":           incident.Type,
		"detected_class": incident.DetectedClass,
		"confidence":     incident.Confidence,
		"status":         incident.Status,
	}
	if camera != nil {
		payload["camera_id"] = camera.ID
		payload["camera_name"] = camera.LocationName
	}
	if match != nil {
		payload["assigned_responder_id"] = match.ID
		payload["assigned_responder_name"] = match.Name
	} else {
		payload["assigned_responder_id"] = nil
		payload["assigned_responder_name"] = nil
	}

	publishAsync(s.logger, s.publisher, s.cfg.PublishTimeout, notify.Event{
		Name:       notify.EventCriticalAlert,
		Partition:  partition,
		Payload:    payload,
		OccurredAt: time.Now(),
	})
}

func composeDescription(detectedClass string, confidence *float64) string {
	if confidence == nil {
		return fmt.Sprintf("AI detection: %s (confidence unknown)", detectedClass)
	}
	return fmt.Sprintf("AI detection: %s (confidence %.2f)", detectedClass, *confidence)
}

// keyedMutex serializes work per string key. Lock granularity is one
// (partition, camera) pair; the map only grows with the camera fleet.
type keyedMutex struct {
	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func newKeyedMutex() *keyedMutex {
	return &keyedMutex{locks: make(map[string]*sync.Mutex)}
}

func (k *keyedMutex) lock(key string) func() {
	k.mu.Lock()
	m, ok := k.locks[key]
	if !ok {
		m = &sync.Mutex{}
		k.locks[key] = m
	}
	k.mu.Unlock()

	m.Lock()
	return m.Unlock
}
