package budgetcategories

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

func (r *PostgresRepository) ListByCouple(ctx context.Context, coupleID string) ([]models.BudgetCategory, error) {
	query :=
		`SELECT id, couple_id, name, allocated, created_at, updated_at
		 FROM budget_categories
		 WHERE couple_id = $1
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.BudgetCategory{}
	for rows.Next() {
		var c models.BudgetCategory
		if err := rows.Scan(&c.ID, &c.CoupleID, &c.Name, &c.Allocated,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, c)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, coupleID, id string) (*models.BudgetCategory, error) {
	query :=
		`SELECT id, couple_id, name, allocated, created_at, updated_at
		 FROM budget_categories
		 WHERE couple_id = $1 AND id = $2
		 `

	var c models.BudgetCategory
	err := r.db.QueryRowContext(ctx, query, coupleID, id).
		Scan(&c.ID, &c.CoupleID, &c.Name, &c.Allocated, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &c, nil
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.BudgetCategory) (*models.BudgetCategory, error) {
	query :=
		`INSERT INTO budget_categories (id, couple_id, name, allocated)
		 VALUES ($1, $2, $3, $4)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, c.ID, c.CoupleID, c.Name, c.Allocated).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Update(ctx context.Context, c *models.BudgetCategory) (*models.BudgetCategory, error) {
	query :=
		`UPDATE budget_categories
		 SET name = $3, allocated = $4, updated_at = now()
		 WHERE couple_id = $1 AND id = $2
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, c.CoupleID, c.ID, c.Name, c.Allocated).
		Scan(&c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return c, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, coupleID, id string) error {
	query := `DELETE FROM budget_categories WHERE couple_id = $1 AND id = $2`

	if _, err := r.db.ExecContext(ctx, query, coupleID, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
