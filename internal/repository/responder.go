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

// ResponderRepository reads dispatch candidates from the personnel table.
// Only active rows with the responder role are ever surfaced.
type ResponderRepository struct {
	db *pgxpool.Pool
}

func NewResponderRepository(db *pgxpool.Pool) service.ResponderRepository {
	return &ResponderRepository{db: db}
}

// ListActive returns all active responders for the tenant.
func (r *ResponderRepository) ListActive(ctx context.Context, partition string) ([]*models.Responder, error) {
	query := fmt.Sprintf(`
		SELECT id, name, badge_no, is_active
		FROM %s
		WHERE role = 'responder' AND is_active = TRUE;
	`, table(partition, "personnel"))
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list active responders: %w", err)
	}
	defer rows.Close()

	responders := make([]*models.Responder, 0)
	for rows.Next() {
		responder := &models.Responder{}
		if err := rows.Scan(&responder.ID, &responder.Name, &responder.BadgeNo, &responder.IsActive); err != nil {
			return nil, fmt.Errorf("failed to scan responder row: %w", err)
		}
		responders = append(responders, responder)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error responder iteration: %w", err)
	}
	return responders, nil
}

// GetActive returns one active responder by id.
func (r *ResponderRepository) GetActive(ctx context.Context, partition string, id uuid.UUID) (*models.Responder, error) {
	responder := &models.Responder{}
	query := fmt.Sprintf(`
		SELECT id, name, badge_no, is_active
		FROM %s
		WHERE id = $1 AND role = 'responder' AND is_active = TRUE;
	`, table(partition, "personnel"))
	err := r.db.QueryRow(ctx, query, id).Scan(&responder.ID, &responder.Name, &responder.BadgeNo, &responder.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: active responder %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get responder by id: %w", err)
	}
	return responder, nil
}
