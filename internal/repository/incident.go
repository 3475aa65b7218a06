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

// IncidentRepository persists incidents and their append-only history.
// Every query runs against the tenant's own schema; the partition key is
// resolved upstream and sanitized before interpolation.
type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{db: db}
}

const incidentColumns = `
			id,
			type,
			detected_class,
			confidence,
			source,
			status,
			verification_status,
			false_positive_tag,
			camera_id,
			assigned_responder_id,
			latitude,
			longitude,
			media_url,
			description,
			created_at,
			updated_at`

func table(partition, name string) string {
	return pgx.Identifier{partition, name}.Sanitize()
}

func scanIncident(row pgx.Row, incident *models.Incident) error {
	return row.Scan(
		&incident.ID,
		&incident.Type,
		&incident.DetectedClass,
		&incident.Confidence,
		&incident.Source,
		&incident.Status,
		&incident.VerificationStatus,
		&incident.FalsePositiveTag,
		&incident.CameraID,
		&incident.AssignedResponderID,
		&incident.Latitude,
		&incident.Longitude,
		&incident.MediaURL,
		&incident.Description,
		&incident.CreatedAt,
		&incident.UpdatedAt,
	)
}

// CreateWithHistory inserts an incident and its first history entry in one
// transaction. An incident is never persisted without its audit record.
func (r *IncidentRepository) CreateWithHistory(ctx context.Context, partition string, incident *models.Incident, entry *models.IncidentHistoryEntry) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin incident transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	// created_at may be back-dated to the detector's event time.
	var createdAt any
	if !incident.CreatedAt.IsZero() {
		createdAt = incident.CreatedAt
	}

	query := fmt.Sprintf(`
		INSERT INTO %s (type, detected_class, confidence, source, status, verification_status,
			camera_id, assigned_responder_id, latitude, longitude, media_url, description, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, COALESCE($13, NOW()))
		RETURNING id, created_at, updated_at;
	`, table(partition, "incidents"))
	err = tx.QueryRow(ctx, query,
		incident.Type,
		incident.DetectedClass,
		incident.Confidence,
		incident.Source,
		incident.Status,
		incident.VerificationStatus,
		incident.CameraID,
		incident.AssignedResponderID,
		incident.Latitude,
		incident.Longitude,
		incident.MediaURL,
		incident.Description,
		createdAt,
	).Scan(&incident.ID, &incident.CreatedAt, &incident.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}

	entry.IncidentID = incident.ID
	if err := insertHistory(ctx, tx, partition, entry); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit incident transaction: %w", err)
	}
	return nil
}

// AppendHistory adds an audit record for an existing incident. History is
// insert-only; no update or delete path exists.
func (r *IncidentRepository) AppendHistory(ctx context.Context, partition string, entry *models.IncidentHistoryEntry) error {
	return insertHistory(ctx, r.db, partition, entry)
}

type execQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func insertHistory(ctx context.Context, q execQuerier, partition string, entry *models.IncidentHistoryEntry) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (incident_id, actor_id, action, prev_status, new_status, comment)
		VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at;
	`, table(partition, "incident_history"))
	err := q.QueryRow(ctx, query,
		entry.IncidentID,
		entry.ActorID,
		entry.Action,
		entry.PrevStatus,
		entry.NewStatus,
		entry.Comment,
	).Scan(&entry.ID, &entry.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to append incident history: %w", err)
	}
	return nil
}

// GetByID returns an incident by its UUID.
func (r *IncidentRepository) GetByID(ctx context.Context, partition string, id uuid.UUID) (*models.Incident, error) {
	incident := &models.Incident{}
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE id = $1;
	`, incidentColumns, table(partition, "incidents"))
	err := scanIncident(r.db.QueryRow(ctx, query, id), incident)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: incident %s", apperrors.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// List returns incidents ordered newest first, with pagination.
func (r *IncidentRepository) List(ctx context.Context, partition string, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2;
	`, incidentColumns, table(partition, "incidents"))
	rows, err := r.db.Query(ctx, query, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		if err := scanIncident(rows, incident); err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// UpdateStatus moves an incident to a new dispatch status.
func (r *IncidentRepository) UpdateStatus(ctx context.Context, partition string, id uuid.UUID, status models.IncidentStatus) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			status = $1,
			updated_at = NOW()
		WHERE id = $2;
	`, table(partition, "incidents"))
	cmdTag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update incident status: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: incident %s", apperrors.ErrNotFound, id)
	}
	return nil
}

// UpdateAssignment sets (or clears) the assigned responder together with
// the status that accompanies the reassignment.
func (r *IncidentRepository) UpdateAssignment(ctx context.Context, partition string, id uuid.UUID, responderID *uuid.UUID, status models.IncidentStatus) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			assigned_responder_id = $1,
			status = $2,
			updated_at = NOW()
		WHERE id = $3;
	`, table(partition, "incidents"))
	cmdTag, err := r.db.Exec(ctx, query, responderID, status, id)
	if err != nil {
		return fmt.Errorf("failed to update incident assignment: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: incident %s", apperrors.ErrNotFound, id)
	}
	return nil
}

// UpdateVerification moves the verification axis; rejecting may record a
// false-positive tag.
func (r *IncidentRepository) UpdateVerification(ctx context.Context, partition string, id uuid.UUID, status models.VerificationStatus, falsePositiveTag *string) error {
	query := fmt.Sprintf(`
		UPDATE %s SET
			verification_status = $1,
			false_positive_tag = $2,
			updated_at = NOW()
		WHERE id = $3;
	`, table(partition, "incidents"))
	cmdTag, err := r.db.Exec(ctx, query, status, falsePositiveTag, id)
	if err != nil {
		return fmt.Errorf("failed to update incident verification: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("%w: incident %s", apperrors.ErrNotFound, id)
	}
	return nil
}
