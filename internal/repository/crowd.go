package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/service"
)

// CrowdRepository persists immutable people-count samples per camera.
type CrowdRepository struct {
	db *pgxpool.Pool
}

func NewCrowdRepository(db *pgxpool.Pool) service.CrowdRepository {
	return &CrowdRepository{db: db}
}

// InsertSample writes one sample. Samples are never updated or deleted.
func (r *CrowdRepository) InsertSample(ctx context.Context, partition string, sample *models.CrowdMetricSample) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (camera_id, people_count, density_level, flow_direction, captured_at)
		VALUES ($1, $2, $3, $4, $5) RETURNING id;
	`, table(partition, "crowd_metric_samples"))
	err := r.db.QueryRow(ctx, query,
		sample.CameraID,
		sample.PeopleCount,
		sample.DensityLevel,
		sample.FlowDirection,
		sample.CapturedAt,
	).Scan(&sample.ID)
	if err != nil {
		return fmt.Errorf("failed to insert crowd sample: %w", err)
	}
	return nil
}

// RecentSamples returns the trailing window for a camera, newest first.
func (r *CrowdRepository) RecentSamples(ctx context.Context, partition string, cameraID uuid.UUID, limit int) ([]*models.CrowdMetricSample, error) {
	query := fmt.Sprintf(`
		SELECT id, camera_id, people_count, density_level, flow_direction, captured_at
		FROM %s
		WHERE camera_id = $1
		ORDER BY captured_at DESC
		LIMIT $2;
	`, table(partition, "crowd_metric_samples"))
	rows, err := r.db.Query(ctx, query, cameraID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query crowd samples: %w", err)
	}
	defer rows.Close()

	samples := make([]*models.CrowdMetricSample, 0, limit)
	for rows.Next() {
		sample := &models.CrowdMetricSample{}
		err := rows.Scan(
			&sample.ID,
			&sample.CameraID,
			&sample.PeopleCount,
			&sample.DensityLevel,
			&sample.FlowDirection,
			&sample.CapturedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan crowd sample row: %w", err)
		}
		samples = append(samples, sample)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error crowd sample iteration: %w", err)
	}
	return samples, nil
}
