package couples

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

func (r *PostgresRepository) Create(ctx context.Context, couple *models.Couple) (*models.Couple, error) {
	query :=
		`INSERT INTO couples (partner1_name, partner2_name, wedding_date)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		couple.Partner1Name, couple.Partner2Name, couple.WeddingDate).
		Scan(&couple.ID, &couple.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return couple, nil
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Couple, error) {
	query :=
		`SELECT id, partner1_name, partner2_name, wedding_date, created_at FROM couples
		 WHERE id = $1
		 `

	c := &models.Couple{}
	err := r.db.QueryRowContext(ctx, query, id).
		Scan(&c.ID, &c.Partner1Name, &c.Partner2Name, &c.WeddingDate, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}
