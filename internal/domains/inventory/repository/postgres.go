package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"smarttrack-backend/internal/domains/inventory/model"
)

// batchColumns is the shared select list for batch reads, joined with the
// product and its (optional) category.
const batchColumns = `
	b.id, b.product_id, b.batch_number, b.quantity, b.unit_price,
	b.manufacturing_date, b.expiry_date, b.status, b.storage_location, b.notes,
	b.created_at, b.updated_at,
	p.name AS product_name, p.category_id, c.name AS category_name
`

const batchFrom = `
	FROM inventory_batches b
	JOIN products p ON p.id = b.product_id
	LEFT JOIN categories c ON c.id = p.category_id
`

type postgresRepository struct {
	pool *pgxpool.Pool
}

// NewRepository creates a new PostgreSQL repository
func NewRepository(pool *pgxpool.Pool) Repository {
	return &postgresRepository{pool: pool}
}

func scanBatch(row pgx.Row) (*model.Batch, error) {
	var b model.Batch
	err := row.Scan(
		&b.ID, &b.ProductID, &b.BatchNumber, &b.Quantity, &b.UnitPrice,
		&b.ManufacturingDate, &b.ExpiryDate, &b.Status, &b.StorageLocation, &b.Notes,
		&b.CreatedAt, &b.UpdatedAt,
		&b.ProductName, &b.CategoryID, &b.CategoryName,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *postgresRepository) queryBatches(ctx context.Context, query string, args ...interface{}) ([]model.Batch, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query batches: %w", err)
	}
	defer rows.Close()

	var batches []model.Batch
	for rows.Next() {
		b, err := scanBatch(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan batch: %w", err)
		}
		batches = append(batches, *b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read batches: %w", err)
	}

	return batches, nil
}

// Create implements Repository.Create
func (r *postgresRepository) Create(ctx context.Context, batch *model.Batch) error {
	query := `
		INSERT INTO inventory_batches (
			id, product_id, batch_number, quantity, unit_price,
			manufacturing_date, expiry_date, status, storage_location, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10
		)
		RETURNING created_at, updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		batch.ID,
		batch.ProductID,
		batch.BatchNumber,
		batch.Quantity,
		batch.UnitPrice,
		batch.ManufacturingDate,
		batch.ExpiryDate,
		batch.Status,
		batch.StorageLocation,
		batch.Notes,
	).Scan(&batch.CreatedAt, &batch.UpdatedAt)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" { // foreign_key_violation
			return model.ErrProductNotFound
		}
		return fmt.Errorf("failed to insert batch: %w", err)
	}

	return nil
}

// GetByID implements Repository.GetByID
func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Batch, error) {
	query := `SELECT ` + batchColumns + batchFrom + ` WHERE b.id = $1`

	b, err := scanBatch(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.NewBatchNotFoundError(id)
		}
		return nil, fmt.Errorf("failed to get batch by id: %w", err)
	}

	return b, nil
}

// Update implements Repository.Update
func (r *postgresRepository) Update(ctx context.Context, batch *model.Batch) error {
	query := `
		UPDATE inventory_batches
		SET batch_number = $2, quantity = $3, unit_price = $4,
		    manufacturing_date = $5, expiry_date = $6, status = $7,
		    storage_location = $8, notes = $9, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`

	err := r.pool.QueryRow(ctx, query,
		batch.ID,
		batch.BatchNumber,
		batch.Quantity,
		batch.UnitPrice,
		batch.ManufacturingDate,
		batch.ExpiryDate,
		batch.Status,
		batch.StorageLocation,
		batch.Notes,
	).Scan(&batch.UpdatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.NewBatchNotFoundError(batch.ID)
		}
		return fmt.Errorf("failed to update batch: %w", err)
	}

	return nil
}

// Delete implements Repository.Delete
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM inventory_batches WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete batch: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return model.NewBatchNotFoundError(id)
	}
	return nil
}

// ListAll implements Repository.ListAll. Includes inactive batches so the
// inventory list shows depleted lots as well.
func (r *postgresRepository) ListAll(ctx context.Context) ([]model.Batch, error) {
	query := `SELECT ` + batchColumns + batchFrom + ` ORDER BY b.expiry_date ASC`
	return r.queryBatches(ctx, query)
}

// FindExpired implements Repository.FindExpired
func (r *postgresRepository) FindExpired(ctx context.Context, asOf time.Time) ([]model.Batch, error) {
	query := `SELECT ` + batchColumns + batchFrom + `
		WHERE b.expiry_date < $1 AND b.quantity > 0
		ORDER BY b.expiry_date ASC`
	return r.queryBatches(ctx, query, model.ToDay(asOf))
}

// FindExpiringBetween implements Repository.FindExpiringBetween.
// Both bounds are inclusive.
func (r *postgresRepository) FindExpiringBetween(ctx context.Context, start, end time.Time) ([]model.Batch, error) {
	query := `SELECT ` + batchColumns + batchFrom + `
		WHERE b.expiry_date BETWEEN $1 AND $2 AND b.quantity > 0
		ORDER BY b.expiry_date ASC`
	return r.queryBatches(ctx, query, model.ToDay(start), model.ToDay(end))
}

// FindAllActiveOrderedByExpiry implements Repository.FindAllActiveOrderedByExpiry
func (r *postgresRepository) FindAllActiveOrderedByExpiry(ctx context.Context) ([]model.Batch, error) {
	query := `SELECT ` + batchColumns + batchFrom + `
		WHERE b.quantity > 0
		ORDER BY b.expiry_date ASC`
	return r.queryBatches(ctx, query)
}

// Search implements Repository.Search: case-insensitive match on product
// name or batch number.
func (r *postgresRepository) Search(ctx context.Context, keyword string) ([]model.Batch, error) {
	query := `SELECT ` + batchColumns + batchFrom + `
		WHERE p.name ILIKE '%' || $1 || '%' OR b.batch_number ILIKE '%' || $1 || '%'
		ORDER BY b.expiry_date ASC`
	return r.queryBatches(ctx, query, keyword)
}

// CountActive implements Repository.CountActive
func (r *postgresRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_batches WHERE quantity > 0`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active batches: %w", err)
	}
	return count, nil
}

// CountExpired implements Repository.CountExpired
func (r *postgresRepository) CountExpired(ctx context.Context, asOf time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_batches WHERE expiry_date < $1 AND quantity > 0`,
		model.ToDay(asOf),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count expired batches: %w", err)
	}
	return count, nil
}

// CountExpiringBetween implements Repository.CountExpiringBetween.
// Both bounds are inclusive.
func (r *postgresRepository) CountExpiringBetween(ctx context.Context, start, end time.Time) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM inventory_batches
		 WHERE expiry_date BETWEEN $1 AND $2 AND quantity > 0`,
		model.ToDay(start), model.ToDay(end),
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count near-expiry batches: %w", err)
	}
	return count, nil
}

// RefreshStatuses implements Repository.RefreshStatuses. Only rows whose
// computed status differs are touched, so repeated runs are cheap no-ops.
func (r *postgresRepository) RefreshStatuses(ctx context.Context, asOf time.Time) (int64, error) {
	today := model.ToDay(asOf)
	windowEnd := today.AddDate(0, 0, model.NearExpiryWindowDays)

	query := `
		UPDATE inventory_batches
		SET status = CASE
			WHEN expiry_date < $1 THEN 'EXPIRED'
			WHEN expiry_date < $2 THEN 'NEAR_EXPIRY'
			ELSE 'GOOD'
		END, updated_at = NOW()
		WHERE status <> CASE
			WHEN expiry_date < $1 THEN 'EXPIRED'
			WHEN expiry_date < $2 THEN 'NEAR_EXPIRY'
			ELSE 'GOOD'
		END
	`

	tag, err := r.pool.Exec(ctx, query, today, windowEnd)
	if err != nil {
		return 0, fmt.Errorf("failed to refresh batch statuses: %w", err)
	}
	return tag.RowsAffected(), nil
}

// TotalInventoryValue implements Repository.TotalInventoryValue. Returns nil
// when no active batches exist (SUM over zero rows); callers normalize to 0.
func (r *postgresRepository) TotalInventoryValue(ctx context.Context) (*decimal.Decimal, error) {
	var value *decimal.Decimal
	err := r.pool.QueryRow(ctx,
		`SELECT SUM(quantity * COALESCE(unit_price, 0)) FROM inventory_batches WHERE quantity > 0`,
	).Scan(&value)
	if err != nil {
		return nil, fmt.Errorf("failed to sum inventory value: %w", err)
	}
	return value, nil
}
