package service_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citywatch/alert_dispatch_system/internal/analytics"
	"github.com/citywatch/alert_dispatch_system/internal/apperrors"
	"github.com/citywatch/alert_dispatch_system/internal/config"
	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/notify"
	"github.com/citywatch/alert_dispatch_system/internal/service"
	"github.com/citywatch/alert_dispatch_system/internal/service/mocks"
)

func ptr[T any](v T) *T { return &v }

// capturingPublisher records published events so tests can assert on the
// detached publish goroutines.
type capturingPublisher struct {
	mu     sync.Mutex
	events []notify.Event
}

func (p *capturingPublisher) Publish(_ context.Context, event notify.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *capturingPublisher) named(name string) []notify.Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	var out []notify.Event
	for _, event := range p.events {
		if event.Name == name {
			out = append(out, event)
		}
	}
	return out
}

func testConfig() *config.Config {
	return &config.Config{
		DefaultAreaSqm:        50,
		DensityCriticalPerSqm: 0.75,
		DensityDensePerSqm:    0.35,
		FlowDelta:             3,
		SurgeRatio:            1.8,
		SurgeDelta:            12,
		SurgeCooldown:         120 * time.Second,
		CrowdWindowSize:       6,
		PublishTimeout:        time.Second,
	}
}

func testAnalyticsEngine(cfg *config.Config) *analytics.Engine {
	return analytics.NewEngine(analytics.Config{
		DefaultAreaSqm:        cfg.DefaultAreaSqm,
		DensityCriticalPerSqm: cfg.DensityCriticalPerSqm,
		DensityDensePerSqm:    cfg.DensityDensePerSqm,
		FlowDelta:             cfg.FlowDelta,
		SurgeRatio:            cfg.SurgeRatio,
		SurgeDelta:            cfg.SurgeDelta,
	})
}

type alertFixture struct {
	cameras   *mocks.MockCameraRepository
	incidents *mocks.MockIncidentRepository
	crowd     *mocks.MockCrowdRepository
	locator   *mocks.MockResponderLocator
	publisher *capturingPublisher
	svc       service.AlertService
}

func newAlertFixture(t *testing.T) *alertFixture {
	ctrl := gomock.NewController(t)
	cfg := testConfig()

	f := &alertFixture{
		cameras:   mocks.NewMockCameraRepository(ctrl),
		incidents: mocks.NewMockIncidentRepository(ctrl),
		crowd:     mocks.NewMockCrowdRepository(ctrl),
		locator:   mocks.NewMockResponderLocator(ctrl),
		publisher: &capturingPublisher{},
	}
	f.svc = service.NewAlertService(
		f.cameras,
		f.incidents,
		f.crowd,
		f.locator,
		testAnalyticsEngine(cfg),
		analytics.NewMemoryCooldownStore(),
		f.publisher,
		testLogger(),
		cfg,
	)
	return f
}

func crowdWindow(chronological ...int) []*models.CrowdMetricSample {
	samples := make([]*models.CrowdMetricSample, len(chronological))
	for i, count := range chronological {
		samples[len(chronological)-1-i] = &models.CrowdMetricSample{PeopleCount: count}
	}
	return samples
}

func TestAlertService_IngestDetection(t *testing.T) {
	const partition = "tenant_metro"

	camera := &models.Camera{
		ID:           uuid.New(),
		Latitude:     55.7558,
		Longitude:    37.6173,
		LocationName: "Central Station, Platform 2",
	}
	match := &models.ResponderMatch{
		ID:        uuid.New(),
		Name:      "Officer Chen",
		BadgeNo:   "B-102",
		DistanceM: 3712.456,
	}

	t.Run("weapon detection becomes an assigned incident", func(t *testing.T) {
		f := newAlertFixture(t)
		incidentID := uuid.New()

		f.cameras.EXPECT().GetByID(gomock.Any(), partition, camera.ID).Return(camera, nil)
		f.locator.EXPECT().FindNearest(gomock.Any(), partition, camera.Latitude, camera.Longitude).
			Return(&models.ResponderMatch{ID: match.ID, Name: match.Name, BadgeNo: match.BadgeNo, DistanceM: match.DistanceM}, nil)

		var created *models.Incident
		f.incidents.EXPECT().CreateWithHistory(gomock.Any(), partition, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, incident *models.Incident, entry *models.IncidentHistoryEntry) error {
				incident.ID = incidentID
				created = incident
				assert.Equal(t, models.ActionAutoAssignedBySystem, entry.Action)
				assert.Equal(t, models.StatusAssigned, entry.NewStatus)
				return nil
			})

		result, err := f.svc.IngestDetection(context.Background(), partition, service.IngestInput{
			CameraID:   camera.ID.String(),
			RawType:    "WEAPON_DETECTED",
			Confidence: 0.91,
		})

		require.NoError(t, err)
		assert.Equal(t, incidentID, result.IncidentID)
		assert.Equal(t, models.StatusAssigned, result.Status)
		assert.Nil(t, result.CrowdMetrics, "no people count, no analytics")
		require.NotNil(t, result.AssignedResponder)
		assert.Equal(t, match.ID, result.AssignedResponder.ID)
		assert.Equal(t, 3712.46, result.AssignedResponder.DistanceM)

		require.NotNil(t, created)
		assert.Equal(t, models.IncidentTypeWeapon, created.Type)
		assert.Equal(t, "WEAPON_DETECTED", created.DetectedClass)
		assert.Equal(t, models.SourceAI, created.Source)
		assert.Equal(t, models.VerificationPending, created.VerificationStatus)
		require.NotNil(t, created.Confidence)
		assert.Equal(t, 0.91, *created.Confidence)
		require.NotNil(t, created.CameraID)
		assert.Equal(t, camera.ID, *created.CameraID)
		require.NotNil(t, created.AssignedResponderID)
		assert.Equal(t, match.ID, *created.AssignedResponderID)

		assert.Eventually(t, func() bool {
			return len(f.publisher.named(notify.EventCriticalAlert)) == 1
		}, time.Second, 10*time.Millisecond)
		event := f.publisher.named(notify.EventCriticalAlert)[0]
		assert.Equal(t, partition, event.Partition)
		assert.Equal(t, incidentID, event.Payload["incident_id"])
		assert.Equal(t, match.ID, event.Payload["assigned_responder_id"])
	})

	t.Run("missing fields fail validation", func(t *testing.T) {
		f := newAlertFixture(t)

		_, err := f.svc.IngestDetection(context.Background(), partition, service.IngestInput{RawType: "fire"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = f.svc.IngestDetection(context.Background(), partition, service.IngestInput{CameraID: camera.ID.String()})
		assert.ErrorIs(t, err, apperrors.ErrValidation)

		_, err = f.svc.IngestDetection(context.Background(), partition, service.IngestInput{CameraID: "not-a-uuid", RawType: "fire"})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("unknown camera is reported as not found", func(t *testing.T) {
		f := newAlertFixture(t)
		cameraID := uuid.New()

		f.cameras.EXPECT().GetByID(gomock.Any(), partition, cameraID).
			Return(nil, apperrors.ErrNotFound)

		_, err := f.svc.IngestDetection(context.Background(), partition, service.IngestInput{
			CameraID: cameraID.String(),
			RawType:  "fire",
		})
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("locator failure degrades to an unassigned incident", func(t *testing.T) {
		f := newAlertFixture(t)

		f.cameras.EXPECT().GetByID(gomock.Any(), partition, camera.ID).Return(camera, nil)
		f.locator.EXPECT().FindNearest(gomock.Any(), partition, camera.Latitude, camera.Longitude).
			Return(nil, errors.New("redis down"))
		f.incidents.EXPECT().CreateWithHistory(gomock.Any(), partition, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, incident *models.Incident, entry *models.IncidentHistoryEntry) error {
				incident.ID = uuid.New()
				assert.Equal(t, models.ActionCreatedByAI, entry.Action)
				return nil
			})

		result, err := f.svc.IngestDetection(context.Background(), partition, service.IngestInput{
			CameraID: camera.ID.String(),
			RawType:  "fire_smoke",
		})

		require.NoError(t, err)
		assert.Equal(t, models.StatusNew, result.Status)
		assert.Nil(t, result.AssignedResponder)
	})

	t.Run("crowd spike raises a surge incident alongside the detection", func(t *testing.T) {
		f := newAlertFixture(t)

		f.cameras.EXPECT().GetByID(gomock.Any(), partition, camera.ID).Return(camera, nil)
		f.locator.EXPECT().FindNearest(gomock.Any(), partition, camera.Latitude, camera.Longitude).Return(nil, nil)
		f.crowd.EXPECT().RecentSamples(gomock.Any(), partition, camera.ID, 6).
			Return(crowdWindow(10, 10, 10, 10, 10, 10), nil)
		f.crowd.EXPECT().InsertSample(gomock.Any(), partition, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, sample *models.CrowdMetricSample) error {
				assert.Equal(t, camera.ID, sample.CameraID)
				assert.Equal(t, 40, sample.PeopleCount)
				assert.Equal(t, models.DensityCritical, sample.DensityLevel)
				return nil
			})

		var surge *models.Incident
		f.incidents.EXPECT().CreateWithHistory(gomock.Any(), partition, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, incident *models.Incident, entry *models.IncidentHistoryEntry) error {
				incident.ID = uuid.New()
				if entry.Action == models.ActionCrowdSurgeDetected {
					surge = incident
				}
				return nil
			}).Times(2)

		result, err := f.svc.IngestDetection(context.Background(), partition, service.IngestInput{
			CameraID:    camera.ID.String(),
			RawType:     "crowd_density",
			PeopleCount: 40.0,
			AreaSqm:     50.0,
		})

		require.NoError(t, err)
		require.NotNil(t, result.CrowdMetrics)
		assert.Equal(t, models.DensityCritical, result.CrowdMetrics.Density)
		assert.Equal(t, 0.8, result.CrowdMetrics.DensityPerSqm)
		assert.Equal(t, 4.0, result.CrowdMetrics.Surge.Ratio)
		assert.True(t, result.CrowdMetrics.Surge.Triggered)

		require.NotNil(t, surge)
		assert.Equal(t, models.IncidentTypeCrowd, surge.Type)
		assert.Equal(t, "crowd_surge", surge.DetectedClass)
		assert.Equal(t, models.StatusNew, surge.Status)

		assert.Eventually(t, func() bool {
			return len(f.publisher.named(notify.EventCrowdSurgeAlert)) == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("cooldown suppresses the second surge in the window", func(t *testing.T) {
		f := newAlertFixture(t)

		f.cameras.EXPECT().GetByID(gomock.Any(), partition, camera.ID).Return(camera, nil).Times(2)
		f.locator.EXPECT().FindNearest(gomock.Any(), partition, camera.Latitude, camera.Longitude).
			Return(nil, nil).Times(2)
		f.crowd.EXPECT().RecentSamples(gomock.Any(), partition, camera.ID, 6).
			Return(crowdWindow(10, 10, 10), nil).Times(2)
		f.crowd.EXPECT().InsertSample(gomock.Any(), partition, gomock.Any()).Return(nil).Times(2)

		surgeIncidents := 0
		f.incidents.EXPECT().CreateWithHistory(gomock.Any(), partition, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, incident *models.Incident, entry *models.IncidentHistoryEntry) error {
				incident.ID = uuid.New()
				if entry.Action == models.ActionCrowdSurgeDetected {
					surgeIncidents++
				}
				return nil
			}).Times(3)

		input := service.IngestInput{
			CameraID:    camera.ID.String(),
			RawType:     "crowd_density",
			PeopleCount: 40.0,
		}
		_, err := f.svc.IngestDetection(context.Background(), partition, input)
		require.NoError(t, err)
		_, err = f.svc.IngestDetection(context.Background(), partition, input)
		require.NoError(t, err)

		assert.Equal(t, 1, surgeIncidents, "only the first qualifying surge raises an incident")
	})

	t.Run("analytics failure never loses the alert", func(t *testing.T) {
		f := newAlertFixture(t)

		f.cameras.EXPECT().GetByID(gomock.Any(), partition, camera.ID).Return(camera, nil)
		f.locator.EXPECT().FindNearest(gomock.Any(), partition, camera.Latitude, camera.Longitude).Return(nil, nil)
		f.crowd.EXPECT().RecentSamples(gomock.Any(), partition, camera.ID, 6).
			Return(nil, errors.New("db timeout"))
		f.incidents.EXPECT().CreateWithHistory(gomock.Any(), partition, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, incident *models.Incident, _ *models.IncidentHistoryEntry) error {
				incident.ID = uuid.New()
				return nil
			})

		result, err := f.svc.IngestDetection(context.Background(), partition, service.IngestInput{
			CameraID:    camera.ID.String(),
			RawType:     "crowd_density",
			PeopleCount: 40.0,
		})

		require.NoError(t, err)
		assert.Nil(t, result.CrowdMetrics)
	})

	t.Run("persistence failure fails the ingest", func(t *testing.T) {
		f := newAlertFixture(t)

		f.cameras.EXPECT().GetByID(gomock.Any(), partition, camera.ID).Return(camera, nil)
		f.locator.EXPECT().FindNearest(gomock.Any(), partition, camera.Latitude, camera.Longitude).Return(nil, nil)
		f.incidents.EXPECT().CreateWithHistory(gomock.Any(), partition, gomock.Any(), gomock.Any()).
			Return(errors.New("tx aborted"))

		_, err := f.svc.IngestDetection(context.Background(), partition, service.IngestInput{
			CameraID: camera.ID.String(),
			RawType:  "fight",
		})
		require.Error(t, err)
	})
}

func TestAlertService_SubmitCitizenReport(t *testing.T) {
	const partition = "tenant_metro"

	t.Run("report with location is dispatched", func(t *testing.T) {
		f := newAlertFixture(t)
		responderID := uuid.New()

		f.locator.EXPECT().FindNearest(gomock.Any(), partition, 55.75, 37.61).
			Return(&models.ResponderMatch{ID: responderID, Name: "Officer Diaz", BadgeNo: "B-217", DistanceM: 812.3}, nil)

		var created *models.Incident
		f.incidents.EXPECT().CreateWithHistory(gomock.Any(), partition, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, incident *models.Incident, entry *models.IncidentHistoryEntry) error {
				incident.ID = uuid.New()
				created = incident
				assert.Equal(t, models.ActionAutoAssignedBySystem, entry.Action)
				return nil
			})

		result, err := f.svc.SubmitCitizenReport(context.Background(), partition, service.ReportInput{
			ReportedType: "fight",
			Description:  "Two groups fighting near the ticket hall",
			Latitude:     ptr(55.75),
			Longitude:    ptr(37.61),
		})

		require.NoError(t, err)
		assert.Equal(t, models.StatusAssigned, result.Status)
		require.NotNil(t, created)
		assert.Equal(t, models.SourceCitizen, created.Source)
		assert.Equal(t, models.IncidentTypeFight, created.Type)
		assert.Nil(t, created.CameraID)
		assert.Nil(t, created.Confidence)
	})

	t.Run("report without location stays unassigned", func(t *testing.T) {
		f := newAlertFixture(t)

		f.incidents.EXPECT().CreateWithHistory(gomock.Any(), partition, gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, incident *models.Incident, entry *models.IncidentHistoryEntry) error {
				incident.ID = uuid.New()
				assert.Equal(t, models.ActionCreatedByCitizen, entry.Action)
				return nil
			})

		result, err := f.svc.SubmitCitizenReport(context.Background(), partition, service.ReportInput{
			ReportedType: "suspicious_package",
			Description:  "Unattended bag at the north entrance",
		})

		require.NoError(t, err)
		assert.Equal(t, models.StatusNew, result.Status)
		assert.Nil(t, result.AssignedResponder)
	})

	t.Run("empty description fails validation", func(t *testing.T) {
		f := newAlertFixture(t)

		_, err := f.svc.SubmitCitizenReport(context.Background(), partition, service.ReportInput{
			ReportedType: "fire",
			Description:  "   ",
		})
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
