package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/shipment"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, s *model.Shipment) error {
	query := `
        INSERT INTO shipments (
            order_id, customer_id, product_id, total_count, defective_count,
            shipped_count, estimated_arrival_date, created_at
        )
        VALUES (
            :order_id, :customer_id, :product_id, :total_count, :defective_count,
            :shipped_count, :estimated_arrival_date, NOW()
        )
        ON CONFLICT (order_id) DO NOTHING
        RETURNING id, created_at
    `
	conn := postgres.Conn(ctx, r.DB)
	q, args, err := sqlx.Named(query, s)
	if err != nil {
		return err
	}
	err = conn.QueryRowxContext(ctx, r.DB.Rebind(q), args...).Scan(&s.ID, &s.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.PreconditionFailed("order %d already has a shipment", s.OrderID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert shipment: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Shipment, error) {
	return r.findOne(ctx, `SELECT * FROM shipments WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindByOrderID(ctx context.Context, orderID int64) (*model.Shipment, error) {
	return r.findOne(ctx, `SELECT * FROM shipments WHERE order_id = $1 LIMIT 1`, orderID)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg interface{}) (*model.Shipment, error) {
	var s model.Shipment
	err := postgres.Conn(ctx, r.DB).GetContext(ctx, &s, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *shipment.Filters) ([]model.Shipment, int, error) {
	var items []model.Shipment
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CustomerID != 0 {
		conditions = append(conditions, "customer_id = :customer_id")
		args["customer_id"] = f.CustomerID
	}
	if f.OrderID != 0 {
		conditions = append(conditions, "order_id = :order_id")
		args["order_id"] = f.OrderID
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM shipments"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM shipments" + whereClause + " ORDER BY id DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	listQuery, listArgs, err := sqlx.Named(query, args)
	if err != nil {
		return nil, 0, err
	}
	err = r.DB.SelectContext(ctx, &items, r.DB.Rebind(listQuery), listArgs...)
	return items, count, err
}
