package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citywatch/alert_dispatch_system/internal/apperrors"
	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/notify"
	"github.com/citywatch/alert_dispatch_system/internal/service"
	"github.com/citywatch/alert_dispatch_system/internal/service/mocks"
)

type lifecycleFixture struct {
	incidents  *mocks.MockIncidentRepository
	responders *mocks.MockResponderRepository
	locations  *mocks.MockLocationStore
	publisher  *capturingPublisher
	svc        service.LifecycleService
}

func newLifecycleFixture(t *testing.T) *lifecycleFixture {
	ctrl := gomock.NewController(t)

	f := &lifecycleFixture{
		incidents:  mocks.NewMockIncidentRepository(ctrl),
		responders: mocks.NewMockResponderRepository(ctrl),
		locations:  mocks.NewMockLocationStore(ctrl),
		publisher:  &capturingPublisher{},
	}
	f.svc = service.NewLifecycleService(f.incidents, f.responders, f.locations, f.publisher, testLogger(), testConfig())
	return f
}

func assignedIncident(responderID uuid.UUID) *models.Incident {
	id := responderID
	return &models.Incident{
		ID:                  uuid.New(),
		Type:                models.IncidentTypeWeapon,
		Source:              models.SourceAI,
		Status:              models.StatusAssigned,
		VerificationStatus:  models.VerificationPending,
		AssignedResponderID: &id,
	}
}

func TestLifecycleService_UpdateStatusByResponder(t *testing.T) {
	const partition = "tenant_metro"
	responderID := uuid.New()

	t.Run("assigned responder resolves their incident", func(t *testing.T) {
		f := newLifecycleFixture(t)
		incident := assignedIncident(responderID)

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)
		f.incidents.EXPECT().UpdateStatus(gomock.Any(), partition, incident.ID, models.StatusResolved).Return(nil)
		f.incidents.EXPECT().AppendHistory(gomock.Any(), partition, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, entry *models.IncidentHistoryEntry) error {
				assert.Equal(t, models.ActionStatusChanged, entry.Action)
				assert.Equal(t, models.StatusAssigned, entry.PrevStatus)
				assert.Equal(t, models.StatusResolved, entry.NewStatus)
				require.NotNil(t, entry.ActorID)
				assert.Equal(t, responderID, *entry.ActorID)
				return nil
			})

		updated, err := f.svc.UpdateStatusByResponder(context.Background(), partition, incident.ID, responderID, models.StatusResolved)

		require.NoError(t, err)
		assert.Equal(t, models.StatusResolved, updated.Status)

		assert.Eventually(t, func() bool {
			return len(f.publisher.named(notify.EventIncidentUpdated)) == 1
		}, time.Second, 10*time.Millisecond)
	})

	t.Run("responder may not mark a false alarm", func(t *testing.T) {
		f := newLifecycleFixture(t)

		_, err := f.svc.UpdateStatusByResponder(context.Background(), partition, uuid.New(), responderID, models.StatusFalseAlarm)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("incident assigned to someone else reads as not found", func(t *testing.T) {
		f := newLifecycleFixture(t)
		incident := assignedIncident(uuid.New())

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)

		_, err := f.svc.UpdateStatusByResponder(context.Background(), partition, incident.ID, responderID, models.StatusResolved)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("unassigned incident reads as not found", func(t *testing.T) {
		f := newLifecycleFixture(t)
		incident := assignedIncident(responderID)
		incident.AssignedResponderID = nil

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)

		_, err := f.svc.UpdateStatusByResponder(context.Background(), partition, incident.ID, responderID, models.StatusResolved)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	t.Run("terminal incident rejects further transitions", func(t *testing.T) {
		f := newLifecycleFixture(t)
		incident := assignedIncident(responderID)
		incident.Status = models.StatusResolved

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)

		_, err := f.svc.UpdateStatusByResponder(context.Background(), partition, incident.ID, responderID, models.StatusAssigned)
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})
}

func TestLifecycleService_ReassignResponder(t *testing.T) {
	const partition = "tenant_metro"
	actorID := uuid.New()

	t.Run("assigning a new incident advances it to assigned", func(t *testing.T) {
		f := newLifecycleFixture(t)
		responderID := uuid.New()
		incident := &models.Incident{
			ID:                 uuid.New(),
			Status:             models.StatusNew,
			VerificationStatus: models.VerificationPending,
		}

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)
		f.responders.EXPECT().GetActive(gomock.Any(), partition, responderID).
			Return(&models.Responder{ID: responderID, Name: "Officer Diaz", BadgeNo: "B-217", IsActive: true}, nil)
		f.incidents.EXPECT().UpdateAssignment(gomock.Any(), partition, incident.ID, &responderID, models.StatusAssigned).Return(nil)
		f.incidents.EXPECT().AppendHistory(gomock.Any(), partition, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, entry *models.IncidentHistoryEntry) error {
				assert.Equal(t, models.ActionResponderReassigned, entry.Action)
				assert.Equal(t, models.StatusNew, entry.PrevStatus)
				assert.Equal(t, models.StatusAssigned, entry.NewStatus)
				return nil
			})

		updated, err := f.svc.ReassignResponder(context.Background(), partition, incident.ID, &responderID, actorID, "nearest unit busy")

		require.NoError(t, err)
		assert.Equal(t, models.StatusAssigned, updated.Status)
		require.NotNil(t, updated.AssignedResponderID)
		assert.Equal(t, responderID, *updated.AssignedResponderID)
	})

	t.Run("unassigning keeps the current status", func(t *testing.T) {
		f := newLifecycleFixture(t)
		incident := assignedIncident(uuid.New())

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)
		f.incidents.EXPECT().UpdateAssignment(gomock.Any(), partition, incident.ID, nil, models.StatusAssigned).Return(nil)
		f.incidents.EXPECT().AppendHistory(gomock.Any(), partition, gomock.Any()).Return(nil)

		updated, err := f.svc.ReassignResponder(context.Background(), partition, incident.ID, nil, actorID, "")

		require.NoError(t, err)
		assert.Nil(t, updated.AssignedResponderID)
		assert.Equal(t, models.StatusAssigned, updated.Status)
	})

	t.Run("inactive responder is rejected", func(t *testing.T) {
		f := newLifecycleFixture(t)
		responderID := uuid.New()
		incident := assignedIncident(uuid.New())

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)
		f.responders.EXPECT().GetActive(gomock.Any(), partition, responderID).
			Return(nil, apperrors.ErrNotFound)

		_, err := f.svc.ReassignResponder(context.Background(), partition, incident.ID, &responderID, actorID, "")
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}

func TestLifecycleService_Verify(t *testing.T) {
	const partition = "tenant_metro"
	actorID := uuid.New()

	t.Run("rejecting records the false positive tag", func(t *testing.T) {
		f := newLifecycleFixture(t)
		incident := assignedIncident(uuid.New())
		tag := "shadow_misread"

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)
		f.incidents.EXPECT().UpdateVerification(gomock.Any(), partition, incident.ID, models.VerificationRejected, &tag).Return(nil)
		f.incidents.EXPECT().AppendHistory(gomock.Any(), partition, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, entry *models.IncidentHistoryEntry) error {
				assert.Equal(t, models.ActionVerificationUpdated, entry.Action)
				assert.Contains(t, entry.Comment, "shadow_misread")
				return nil
			})

		updated, err := f.svc.Verify(context.Background(), partition, incident.ID, models.VerificationRejected, &tag, actorID, "")

		require.NoError(t, err)
		assert.Equal(t, models.VerificationRejected, updated.VerificationStatus)
		require.NotNil(t, updated.FalsePositiveTag)
		assert.Equal(t, tag, *updated.FalsePositiveTag)
	})

	t.Run("verifying discards any supplied tag", func(t *testing.T) {
		f := newLifecycleFixture(t)
		incident := assignedIncident(uuid.New())
		tag := "should_be_dropped"

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)
		f.incidents.EXPECT().UpdateVerification(gomock.Any(), partition, incident.ID, models.VerificationVerified, nil).Return(nil)
		f.incidents.EXPECT().AppendHistory(gomock.Any(), partition, gomock.Any()).Return(nil)

		updated, err := f.svc.Verify(context.Background(), partition, incident.ID, models.VerificationVerified, &tag, actorID, "confirmed on scene")

		require.NoError(t, err)
		assert.Equal(t, models.VerificationVerified, updated.VerificationStatus)
		assert.Nil(t, updated.FalsePositiveTag)
	})

	t.Run("already verified incident rejects a second pass", func(t *testing.T) {
		f := newLifecycleFixture(t)
		incident := assignedIncident(uuid.New())
		incident.VerificationStatus = models.VerificationVerified

		f.incidents.EXPECT().GetByID(gomock.Any(), partition, incident.ID).Return(incident, nil)

		_, err := f.svc.Verify(context.Background(), partition, incident.ID, models.VerificationRejected, nil, actorID, "")
		assert.ErrorIs(t, err, apperrors.ErrForbidden)
	})

	t.Run("pending is not a valid target", func(t *testing.T) {
		f := newLifecycleFixture(t)

		_, err := f.svc.Verify(context.Background(), partition, uuid.New(), models.VerificationPending, nil, actorID, "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}

func TestLifecycleService_ListIncidents(t *testing.T) {
	const partition = "tenant_metro"

	t.Run("out-of-range pagination is clamped", func(t *testing.T) {
		f := newLifecycleFixture(t)

		f.incidents.EXPECT().List(gomock.Any(), partition, 1, 20).Return([]*models.Incident{}, nil)

		incidents, err := f.svc.ListIncidents(context.Background(), partition, 0, 500)

		require.NoError(t, err)
		assert.Empty(t, incidents)
	})
}

func TestLifecycleService_RecordResponderLocation(t *testing.T) {
	const partition = "tenant_metro"
	responderID := uuid.New()

	t.Run("active responder fix is saved", func(t *testing.T) {
		f := newLifecycleFixture(t)

		f.responders.EXPECT().GetActive(gomock.Any(), partition, responderID).
			Return(&models.Responder{ID: responderID, IsActive: true}, nil)
		f.locations.EXPECT().SaveFix(gomock.Any(), partition, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ string, fix *models.ResponderLocationFix) error {
				assert.Equal(t, responderID, fix.ResponderID)
				assert.Equal(t, 55.75, fix.Latitude)
				assert.Equal(t, 37.61, fix.Longitude)
				assert.False(t, fix.UpdatedAt.IsZero())
				return nil
			})

		err := f.svc.RecordResponderLocation(context.Background(), partition, responderID, 55.75, 37.61)
		require.NoError(t, err)
	})

	t.Run("unknown responder is rejected", func(t *testing.T) {
		f := newLifecycleFixture(t)

		f.responders.EXPECT().GetActive(gomock.Any(), partition, responderID).
			Return(nil, apperrors.ErrNotFound)

		err := f.svc.RecordResponderLocation(context.Background(), partition, responderID, 55.75, 37.61)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})
}
