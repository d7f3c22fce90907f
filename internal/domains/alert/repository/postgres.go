package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"smarttrack-backend/internal/domains/alert/model"
)

// Repository is the alert data access contract.
type Repository interface {
	Create(ctx context.Context, alert *model.Alert) error
	ListUnacknowledged(ctx context.Context) ([]model.Alert, error)
	ListUnacknowledgedCritical(ctx context.Context) ([]model.Alert, error)
	CountUnacknowledged(ctx context.Context) (int64, error)
	HasOpenAlert(ctx context.Context, batchID uuid.UUID, alertType model.AlertType) (bool, error)
	Acknowledge(ctx context.Context, id, userID uuid.UUID, at time.Time) error
}

const alertColumns = `
	a.id, a.batch_id, a.alert_type, a.severity, a.message,
	a.is_acknowledged, a.acknowledged_by, a.acknowledged_at, a.created_at,
	b.batch_number, p.name AS product_name
`

const alertFrom = `
	FROM alerts a
	JOIN inventory_batches b ON b.id = a.batch_id
	JOIN products p ON p.id = b.product_id
`

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func (r *postgresRepository) Create(ctx context.Context, alert *model.Alert) error {
	query := `
		INSERT INTO alerts (id, batch_id, alert_type, severity, message)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`

	err := r.pool.QueryRow(ctx, query,
		alert.ID,
		alert.BatchID,
		alert.AlertType,
		alert.Severity,
		alert.Message,
	).Scan(&alert.CreatedAt)

	if err != nil {
		return fmt.Errorf("failed to insert alert: %w", err)
	}

	return nil
}

func (r *postgresRepository) listAlerts(ctx context.Context, query string, args ...interface{}) ([]model.Alert, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query alerts: %w", err)
	}
	defer rows.Close()

	var alerts []model.Alert
	for rows.Next() {
		var a model.Alert
		err := rows.Scan(
			&a.ID, &a.BatchID, &a.AlertType, &a.Severity, &a.Message,
			&a.IsAcknowledged, &a.AcknowledgedBy, &a.AcknowledgedAt, &a.CreatedAt,
			&a.BatchNumber, &a.ProductName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan alert: %w", err)
		}
		alerts = append(alerts, a)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read alerts: %w", err)
	}

	return alerts, nil
}

func (r *postgresRepository) ListUnacknowledged(ctx context.Context) ([]model.Alert, error) {
	query := `SELECT ` + alertColumns + alertFrom + `
		WHERE a.is_acknowledged = false
		ORDER BY a.created_at DESC`
	return r.listAlerts(ctx, query)
}

func (r *postgresRepository) ListUnacknowledgedCritical(ctx context.Context) ([]model.Alert, error) {
	query := `SELECT ` + alertColumns + alertFrom + `
		WHERE a.is_acknowledged = false AND a.severity = 'CRITICAL'
		ORDER BY a.created_at DESC`
	return r.listAlerts(ctx, query)
}

func (r *postgresRepository) CountUnacknowledged(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM alerts WHERE is_acknowledged = false`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count alerts: %w", err)
	}
	return count, nil
}

// HasOpenAlert reports whether the batch already has an unacknowledged alert
// of the given type. The expiry sweep uses it to avoid duplicates.
func (r *postgresRepository) HasOpenAlert(ctx context.Context, batchID uuid.UUID, alertType model.AlertType) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx,
		`SELECT EXISTS (
			SELECT 1 FROM alerts
			WHERE batch_id = $1 AND alert_type = $2 AND is_acknowledged = false
		)`,
		batchID, alertType,
	).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check open alert: %w", err)
	}
	return exists, nil
}

func (r *postgresRepository) Acknowledge(ctx context.Context, id, userID uuid.UUID, at time.Time) error {
	query := `
		UPDATE alerts
		SET is_acknowledged = true, acknowledged_by = $2, acknowledged_at = $3
		WHERE id = $1 AND is_acknowledged = false
		RETURNING id
	`

	var returned uuid.UUID
	err := r.pool.QueryRow(ctx, query, id, userID, at).Scan(&returned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return r.acknowledgeMissReason(ctx, id)
		}
		return fmt.Errorf("failed to acknowledge alert: %w", err)
	}

	return nil
}

// acknowledgeMissReason distinguishes a missing alert from a double
// acknowledge after the conditional update matched nothing.
func (r *postgresRepository) acknowledgeMissReason(ctx context.Context, id uuid.UUID) error {
	var acknowledged bool
	err := r.pool.QueryRow(ctx,
		`SELECT is_acknowledged FROM alerts WHERE id = $1`, id,
	).Scan(&acknowledged)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.ErrAlertNotFound
		}
		return fmt.Errorf("failed to look up alert: %w", err)
	}
	if acknowledged {
		return model.ErrAlertAlreadyAcknowledged
	}
	return model.ErrAlertNotFound
}
