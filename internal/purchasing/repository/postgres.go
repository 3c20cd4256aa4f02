package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, po *model.PurchaseOrder) error {
	query := `
        INSERT INTO purchase_orders (material_name, weight_grams, total_cost, vendor_id, is_received, created_at)
        VALUES (:material_name, :weight_grams, :total_cost, :vendor_id, FALSE, NOW())
        RETURNING id, created_at
    `
	q, args, err := sqlx.Named(query, po)
	if err != nil {
		return err
	}
	if err := postgres.Conn(ctx, r.DB).QueryRowxContext(ctx, r.DB.Rebind(q), args...).Scan(&po.ID, &po.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert purchase order: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := postgres.Conn(ctx, r.DB).GetContext(ctx, &po, `SELECT * FROM purchase_orders WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &po, nil
}

func (r *PGRepository) FindOpen(ctx context.Context) ([]model.PurchaseOrder, error) {
	var items []model.PurchaseOrder
	err := postgres.Conn(ctx, r.DB).SelectContext(ctx, &items,
		`SELECT * FROM purchase_orders WHERE is_received = FALSE ORDER BY id ASC`)
	return items, err
}

// MarkReceived flips the flag only while it is still false, so concurrent receipts
// cannot both restock.
func (r *PGRepository) MarkReceived(ctx context.Context, id int64) (*model.PurchaseOrder, error) {
	var po model.PurchaseOrder
	err := postgres.Conn(ctx, r.DB).QueryRowxContext(ctx, `
		UPDATE purchase_orders
		SET is_received = TRUE, received_at = NOW()
		WHERE id = $1 AND is_received = FALSE
		RETURNING *
	`, id).StructScan(&po)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to mark purchase order received: %w", err)
	}
	return &po, nil
}
