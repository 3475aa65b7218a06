package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/citywatch/alert_dispatch_system/internal/apperrors"
	"github.com/citywatch/alert_dispatch_system/internal/models"
	"github.com/citywatch/alert_dispatch_system/internal/service"
)

type CameraRepository struct {
	db *pgxpool.Pool
}

func NewCameraRepository(db *pgxpool.Pool) service.CameraRepository {
	return &CameraRepository{db: db}
}

// GetByID returns a camera within the tenant partition.
func (r *CameraRepository) GetByID(ctx context.Context, partition string, id uuid.UUID) (*models.Camera, error) {
	camera := &models.Camera{}
	query := fmt.Sprintf(`
		SELECT id, latitude, longitude, location_name
		FROM %s
		WHERE id = $1;
	`, table(partition, "cameras"))
	err := r.db.QueryRow(ctx, query, id).Scan(
		&camera.ID,
		&camera.Latitude,
		&camera.Longitude,
		&camera.LocationName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: camera %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get camera by id: %w", err)
	}
	return camera, nil
}
