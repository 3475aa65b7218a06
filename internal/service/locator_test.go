package service_test

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/service"
	"github.com/citywatch/alert_dispatch_system/internal/service/mocks"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func TestResponderLocator_FindNearest(t *testing.T) {
	const partition = "tenant_metro"

	near := &models.Responder{ID: uuid.New(), Name: "Officer Chen", BadgeNo: "B-102", IsActive: true}
	far := &models.Responder{ID: uuid.New(), Name: "Officer Diaz", BadgeNo: "B-217", IsActive: true}
	noFix := &models.Responder{ID: uuid.New(), Name: "Officer Okafor", BadgeNo: "B-330", IsActive: true}

	fixAt := time.Date(2026, 8, 29, 10, 30, 0, 0, time.UTC)

	t.Run("picks the responder with minimal distance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		responders := mocks.NewMockResponderRepository(ctrl)
		locations := mocks.NewMockLocationStore(ctrl)
		locator := service.NewResponderLocator(responders, locations, testLogger())

		responders.EXPECT().ListActive(gomock.Any(), partition).
			Return([]*models.Responder{far, near, noFix}, nil)
		locations.EXPECT().LatestFixes(gomock.Any(), partition, []uuid.UUID{far.ID, near.ID, noFix.ID}).
			Return(map[uuid.UUID]*models.ResponderLocationFix{
				// incident point is 55.7558, 37.6173
				far.ID:  {ResponderID: far.ID, Latitude: 55.8000, Longitude: 37.7000, UpdatedAt: fixAt},
				near.ID: {ResponderID: near.ID, Latitude: 55.7560, Longitude: 37.6180, UpdatedAt: fixAt},
			}, nil)

		match, err := locator.FindNearest(context.Background(), partition, 55.7558, 37.6173)

		require.NoError(t, err)
		require.NotNil(t, match)
		assert.Equal(t, near.ID, match.ID)
		assert.Equal(t, "Officer Chen", match.Name)
		assert.Equal(t, "B-102", match.BadgeNo)
		assert.Equal(t, fixAt, match.FixAt)
		assert.Less(t, match.DistanceM, 100.0)
	})

	t.Run("no active responders yields no match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		responders := mocks.NewMockResponderRepository(ctrl)
		locations := mocks.NewMockLocationStore(ctrl)
		locator := service.NewResponderLocator(responders, locations, testLogger())

		responders.EXPECT().ListActive(gomock.Any(), partition).Return(nil, nil)

		match, err := locator.FindNearest(context.Background(), partition, 55.7558, 37.6173)

		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("responders without a fix yield no match", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		responders := mocks.NewMockResponderRepository(ctrl)
		locations := mocks.NewMockLocationStore(ctrl)
		locator := service.NewResponderLocator(responders, locations, testLogger())

		responders.EXPECT().ListActive(gomock.Any(), partition).
			Return([]*models.Responder{noFix}, nil)
		locations.EXPECT().LatestFixes(gomock.Any(), partition, []uuid.UUID{noFix.ID}).
			Return(map[uuid.UUID]*models.ResponderLocationFix{}, nil)

		match, err := locator.FindNearest(context.Background(), partition, 55.7558, 37.6173)

		require.NoError(t, err)
		assert.Nil(t, match)
	})

	t.Run("repository error is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		responders := mocks.NewMockResponderRepository(ctrl)
		locations := mocks.NewMockLocationStore(ctrl)
		locator := service.NewResponderLocator(responders, locations, testLogger())

		responders.EXPECT().ListActive(gomock.Any(), partition).
			Return(nil, errors.New("connection refused"))

		match, err := locator.FindNearest(context.Background(), partition, 55.7558, 37.6173)

		require.Error(t, err)
		assert.Nil(t, match)
	})

	t.Run("fix store error is propagated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		responders := mocks.NewMockResponderRepository(ctrl)
		locations := mocks.NewMockLocationStore(ctrl)
		locator := service.NewResponderLocator(responders, locations, testLogger())

		responders.EXPECT().ListActive(gomock.Any(), partition).
			Return([]*models.Responder{near}, nil)
		locations.EXPECT().LatestFixes(gomock.Any(), partition, []uuid.UUID{near.ID}).
			Return(nil, errors.New("redis down"))

		match, err := locator.FindNearest(context.Background(), partition, 55.7558, 37.6173)

		require.Error(t, err)
		assert.Nil(t, match)
	})
}
