package milestones

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

func (r *PostgresRepository) ListByCouple(ctx context.Context, coupleID string) ([]models.Milestone, error) {
	query :=
		`SELECT id, couple_id, title, date, done, notes, created_at, updated_at
		 FROM milestones
		 WHERE couple_id = $1
		 ORDER BY date
		 `

	rows, err := r.db.QueryContext(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Milestone{}
	for rows.Next() {
		var m models.Milestone
		if err := rows.Scan(&m.ID, &m.CoupleID, &m.Title, &m.Date, &m.Done,
			&m.Notes, &m.CreatedAt, &m.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, m)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, coupleID, id string) (*models.Milestone, error) {
	query :=
		`SELECT id, couple_id, title, date, done, notes, created_at, updated_at
		 FROM milestones
		 WHERE couple_id = $1 AND id = $2
		 `

	var m models.Milestone
	err := r.db.QueryRowContext(ctx, query, coupleID, id).
		Scan(&m.ID, &m.CoupleID, &m.Title, &m.Date, &m.Done, &m.Notes, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &m, nil
}

func (r *PostgresRepository) Create(ctx context.Context, m *models.Milestone) (*models.Milestone, error) {
	query :=
		`INSERT INTO milestones (id, couple_id, title, date, done, notes)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, m.ID, m.CoupleID, m.Title, m.Date, m.Done, m.Notes).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Update(ctx context.Context, m *models.Milestone) (*models.Milestone, error) {
	query :=
		`UPDATE milestones
		 SET title = $3, date = $4, done = $5, notes = $6, updated_at = now()
		 WHERE couple_id = $1 AND id = $2
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, m.CoupleID, m.ID, m.Title, m.Date, m.Done, m.Notes).
		Scan(&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return m, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, coupleID, id string) error {
	query := `DELETE FROM milestones WHERE couple_id = $1 AND id = $2`

	if _, err := r.db.ExecContext(ctx, query, coupleID, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
