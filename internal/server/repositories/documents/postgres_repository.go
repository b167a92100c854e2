package documents

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

func (r *PostgresRepository) ListByCouple(ctx context.Context, coupleID string) ([]models.Document, error) {
	query :=
		`SELECT id, couple_id, name, content_type, size_bytes, storage_key, vendor_id,
		        created_at, updated_at
		 FROM documents
		 WHERE couple_id = $1
		 ORDER BY name
		 `

	rows, err := r.db.QueryContext(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Document{}
	for rows.Next() {
		var d models.Document
		if err := rows.Scan(&d.ID, &d.CoupleID, &d.Name, &d.ContentType, &d.SizeBytes,
			&d.StorageKey, &d.VendorID, &d.CreatedAt, &d.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, d)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, coupleID, id string) (*models.Document, error) {
	query :=
		`SELECT id, couple_id, name, content_type, size_bytes, storage_key, vendor_id,
		        created_at, updated_at
		 FROM documents
		 WHERE couple_id = $1 AND id = $2
		 `

	var d models.Document
	err := r.db.QueryRowContext(ctx, query, coupleID, id).
		Scan(&d.ID, &d.CoupleID, &d.Name, &d.ContentType, &d.SizeBytes,
			&d.StorageKey, &d.VendorID, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &d, nil
}

func (r *PostgresRepository) Create(ctx context.Context, d *models.Document) (*models.Document, error) {
	query :=
		`INSERT INTO documents (id, couple_id, name, content_type, size_bytes, storage_key, vendor_id)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, d.ID, d.CoupleID, d.Name, d.ContentType,
		d.SizeBytes, d.StorageKey, d.VendorID).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

func (r *PostgresRepository) Update(ctx context.Context, d *models.Document) (*models.Document, error) {
	query :=
		`UPDATE documents
		 SET name = $3, content_type = $4, size_bytes = $5, storage_key = $6,
		     vendor_id = $7, updated_at = now()
		 WHERE couple_id = $1 AND id = $2
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, d.CoupleID, d.ID, d.Name, d.ContentType,
		d.SizeBytes, d.StorageKey, d.VendorID).
		Scan(&d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return d, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, coupleID, id string) error {
	query := `DELETE FROM documents WHERE couple_id = $1 AND id = $2`

	if _, err := r.db.ExecContext(ctx, query, coupleID, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
