package guests

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

func (r *PostgresRepository) ListByCouple(ctx context.Context, coupleID string) ([]models.Guest, error) {
	query :=
		`SELECT id, couple_id, name, email, phone, side, rsvp_status, plus_ones,
		        dietary_notes, table_number, created_at, updated_at
		 FROM guests
		 WHERE couple_id = $1
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Guest{}
	for rows.Next() {
		var g models.Guest
		if err := rows.Scan(&g.ID, &g.CoupleID, &g.Name, &g.Email, &g.Phone, &g.Side,
			&g.RSVP, &g.PlusOnes, &g.Dietary, &g.Table, &g.CreatedAt, &g.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, g)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, coupleID, id string) (*models.Guest, error) {
	query :=
		`SELECT id, couple_id, name, email, phone, side, rsvp_status, plus_ones,
		        dietary_notes, table_number, created_at, updated_at
		 FROM guests
		 WHERE couple_id = $1 AND id = $2
		 `

	var g models.Guest
	err := r.db.QueryRowContext(ctx, query, coupleID, id).
		Scan(&g.ID, &g.CoupleID, &g.Name, &g.Email, &g.Phone, &g.Side,
			&g.RSVP, &g.PlusOnes, &g.Dietary, &g.Table, &g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &g, nil
}

func (r *PostgresRepository) Create(ctx context.Context, g *models.Guest) (*models.Guest, error) {
	query :=
		`INSERT INTO guests (id, couple_id, name, email, phone, side, rsvp_status,
		                     plus_ones, dietary_notes, table_number)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, g.ID, g.CoupleID, g.Name, g.Email, g.Phone,
		g.Side, g.RSVP, g.PlusOnes, g.Dietary, g.Table).
		Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) Update(ctx context.Context, g *models.Guest) (*models.Guest, error) {
	query :=
		`UPDATE guests
		 SET name = $3, email = $4, phone = $5, side = $6, rsvp_status = $7,
		     plus_ones = $8, dietary_notes = $9, table_number = $10, updated_at = now()
		 WHERE couple_id = $1 AND id = $2
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, g.CoupleID, g.ID, g.Name, g.Email, g.Phone,
		g.Side, g.RSVP, g.PlusOnes, g.Dietary, g.Table).
		Scan(&g.CreatedAt, &g.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return g, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, coupleID, id string) error {
	query := `DELETE FROM guests WHERE couple_id = $1 AND id = $2`

	if _, err := r.db.ExecContext(ctx, query, coupleID, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
