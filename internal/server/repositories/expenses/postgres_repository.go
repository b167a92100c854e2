package expenses

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/aislekit/aislekit/internal/common"
	"github.com/aislekit/aislekit/internal/dbx"
	"github.com/aislekit/aislekit/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByCouple(ctx context.Context, coupleID string) ([]models.Expense, error) {
	query :=
		`SELECT id, couple_id, category_id, vendor_id, title, amount, paid_at,
		        created_at, updated_at
		 FROM expenses
		 WHERE couple_id = $1
		 ORDER BY created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Expense{}
	for rows.Next() {
		var e models.Expense
		if err := rows.Scan(&e.ID, &e.CoupleID, &e.CategoryID, &e.VendorID, &e.Title,
			&e.Amount, &e.PaidAt, &e.CreatedAt, &e.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, e)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, coupleID, id string) (*models.Expense, error) {
	query :=
		`SELECT id, couple_id, category_id, vendor_id, title, amount, paid_at,
		        created_at, updated_at
		 FROM expenses
		 WHERE couple_id = $1 AND id = $2
		 `

	var e models.Expense
	err := r.db.QueryRowContext(ctx, query, coupleID, id).
		Scan(&e.ID, &e.CoupleID, &e.CategoryID, &e.VendorID, &e.Title,
			&e.Amount, &e.PaidAt, &e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &e, nil
}

func (r *PostgresRepository) Create(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	query :=
		`INSERT INTO expenses (id, couple_id, category_id, vendor_id, title, amount, paid_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, e.ID, e.CoupleID, e.CategoryID, e.VendorID,
		e.Title, e.Amount, e.PaidAt).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Update(ctx context.Context, e *models.Expense) (*models.Expense, error) {
	query :=
		`UPDATE expenses
		 SET category_id = $3, vendor_id = $4, title = $5, amount = $6, paid_at = $7,
		     updated_at = now()
		 WHERE couple_id = $1 AND id = $2
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, e.CoupleID, e.ID, e.CategoryID, e.VendorID,
		e.Title, e.Amount, e.PaidAt).
		Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, coupleID, id string) error {
	query := `DELETE FROM expenses WHERE couple_id = $1 AND id = $2`

	if _, err := r.db.ExecContext(ctx, query, coupleID, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
