package service

//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/citywatch/alert_dispatch_system/internal/geo"
	"github.com/citywatch/alert_dispatch_system/internal/models"
)

// ResponderLocator finds the nearest active responder to an incident point.
// A nil match is a normal outcome (no candidates, no fixes), not an error;
// the incident is then created unassigned.
type ResponderLocator interface {
	FindNearest(ctx context.Context, partition string, lat, lon float64) (*models.ResponderMatch, error)
}

type responderLocator struct {
	responders ResponderRepository
	locations  LocationStore
	logger     *logrus.Logger
}

func NewResponderLocator(responders ResponderRepository, locations LocationStore, logger *logrus.Logger) ResponderLocator {
	return &responderLocator{
		responders: responders,
		locations:  locations,
		logger:     logger,
	}
}

// FindNearest returns the active responder with minimal haversine distance
// to the point among those with a known fix. Ties go to the first candidate
// encountered.
func (l *responderLocator) FindNearest(ctx context.Context, partition string, lat, lon float64) (*models.ResponderMatch, error) {
	log := l.logger.WithFields(logrus.Fields{
		"service":   "locator",
		"method":    "FindNearest",
		"partition": partition,
	})

	responders, err := l.responders.ListActive(ctx, partition)
	if err != nil {
		return nil, fmt.Errorf("locator: could not list active responders: %w", err)
	}
	if len(responders) == 0 {
		log.Debug("No active responders for tenant")
		return nil, nil
	}

	ids := make([]uuid.UUID, len(responders))
	for i, responder := range responders {
		ids[i] = responder.ID
	}

	fixes, err := l.locations.LatestFixes(ctx, partition, ids)
	if err != nil {
		return nil, fmt.Errorf("locator: could not read location fixes: %w", err)
	}

	var best *models.ResponderMatch
	for _, responder := range responders {
		fix, ok := fixes[responder.ID]
		if !ok {
			continue
		}
		distance := geo.Distance(lat, lon, fix.Latitude, fix.Longitude)
		if best == nil || distance < best.DistanceM {
			best = &models.ResponderMatch{
				ID:        responder.ID,
				Name:      responder.Name,
				BadgeNo:   responder.BadgeNo,
				DistanceM: distance,
				FixAt:     fix.UpdatedAt,
			}
		}
	}

	if best == nil {
		log.Debug("No responder with a known location fix")
		return nil, nil
	}

	log.WithFields(logrus.Fields{
		"responder_id": best.ID,
		"distance_m":   best.DistanceM,
	}).Info("Nearest responder located")
	return best, nil
}
