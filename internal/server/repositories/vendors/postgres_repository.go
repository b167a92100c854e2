package vendors

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

func (r *PostgresRepository) ListByCouple(ctx context.Context, coupleID string) ([]models.Vendor, error) {
	query :=
		`SELECT id, couple_id, name, category, contact_name, email, phone, status,
		        contract_amount, deposit_paid, notes, created_at, updated_at
		 FROM vendors
		 WHERE couple_id = $1
		 ORDER BY category, name
		 `

	rows, err := r.db.QueryContext(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	items := []models.Vendor{}
	for rows.Next() {
		var v models.Vendor
		if err := rows.Scan(&v.ID, &v.CoupleID, &v.Name, &v.Category, &v.ContactName,
			&v.Email, &v.Phone, &v.Status, &v.ContractAmount, &v.DepositPaid,
			&v.Notes, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		items = append(items, v)
	}
	return items, rows.Err()
}

func (r *PostgresRepository) Get(ctx context.Context, coupleID, id string) (*models.Vendor, error) {
	query :=
		`SELECT id, couple_id, name, category, contact_name, email, phone, status,
		        contract_amount, deposit_paid, notes, created_at, updated_at
		 FROM vendors
		 WHERE couple_id = $1 AND id = $2
		 `

	var v models.Vendor
	err := r.db.QueryRowContext(ctx, query, coupleID, id).
		Scan(&v.ID, &v.CoupleID, &v.Name, &v.Category, &v.ContactName,
			&v.Email, &v.Phone, &v.Status, &v.ContractAmount, &v.DepositPaid,
			&v.Notes, &v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return &v, nil
}

func (r *PostgresRepository) Create(ctx context.Context, v *models.Vendor) (*models.Vendor, error) {
	query :=
		`INSERT INTO vendors (id, couple_id, name, category, contact_name, email, phone,
		                      status, contract_amount, deposit_paid, notes)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, v.ID, v.CoupleID, v.Name, v.Category,
		v.ContactName, v.Email, v.Phone, v.Status, v.ContractAmount, v.DepositPaid, v.Notes).
		Scan(&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) Update(ctx context.Context, v *models.Vendor) (*models.Vendor, error) {
	query :=
		`UPDATE vendors
		 SET name = $3, category = $4, contact_name = $5, email = $6, phone = $7,
		     status = $8, contract_amount = $9, deposit_paid = $10, notes = $11, updated_at = now()
		 WHERE couple_id = $1 AND id = $2
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, v.CoupleID, v.ID, v.Name, v.Category,
		v.ContactName, v.Email, v.Phone, v.Status, v.ContractAmount, v.DepositPaid, v.Notes).
		Scan(&v.CreatedAt, &v.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return v, nil
}

func (r *PostgresRepository) Delete(ctx context.Context, coupleID, id string) error {
	query := `DELETE FROM vendors WHERE couple_id = $1 AND id = $2`

	if _, err := r.db.ExecContext(ctx, query, coupleID, id); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
