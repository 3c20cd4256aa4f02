package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order/dto"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
        INSERT INTO orders (
            customer_id, product_id, unit_count, bom, status, defective_count,
            start_date, end_date, is_paid, is_business,
            unit_cost, subtotal, tax_amount, grand_total, created_at, updated_at
        )
        VALUES (
            :customer_id, :product_id, :unit_count, :bom, :status, :defective_count,
            :start_date, :end_date, :is_paid, :is_business,
            :unit_cost, :subtotal, :tax_amount, :grand_total, NOW(), NOW()
        )
        RETURNING id, created_at, updated_at
    `
	q, args, err := sqlx.Named(query, o)
	if err != nil {
		return err
	}
	err = postgres.Conn(ctx, r.DB).QueryRowxContext(ctx, r.DB.Rebind(q), args...).
		Scan(&o.ID, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert order: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.Order, error) {
	return r.findOne(ctx, `SELECT * FROM orders WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.Order, error) {
	return r.findOne(ctx, `SELECT * FROM orders WHERE id = $1 FOR UPDATE`, id)
}

func (r *PGRepository) findOne(ctx context.Context, query string, id int64) (*model.Order, error) {
	var o model.Order
	err := postgres.Conn(ctx, r.DB).GetContext(ctx, &o, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.OrderFilters) ([]model.Order, int, error) {
	var items []model.Order
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.CustomerID != 0 {
		conditions = append(conditions, "customer_id = :customer_id")
		args["customer_id"] = f.CustomerID
	}
	if f.ProductID != 0 {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM orders"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM orders" + whereClause + " ORDER BY id DESC"
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

func (r *PGRepository) CountByStatus(ctx context.Context, status model.OrderStatus) (int, error) {
	var count int
	err := postgres.Conn(ctx, r.DB).GetContext(ctx, &count, `SELECT count(*) FROM orders WHERE status = $1`, status)
	return count, err
}

// Update is a compare-and-set on status: zero affected rows means the order moved on.
func (r *PGRepository) Update(ctx context.Context, o *model.Order, from model.OrderStatus) error {
	query := `
        UPDATE orders SET
            status = :status,
            defective_count = :defective_count,
            start_date = :start_date,
            end_date = :end_date,
            is_paid = :is_paid,
            updated_at = NOW()
        WHERE id = :id AND status = :from_status
    `
	args := map[string]interface{}{
		"id":              o.ID,
		"status":          o.Status,
		"defective_count": o.DefectiveCount,
		"start_date":      o.StartDate,
		"end_date":        o.EndDate,
		"is_paid":         o.IsPaid,
		"from_status":     from,
	}
	res, err := postgres.Conn(ctx, r.DB).NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update order: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.PreconditionFailed("order %d is no longer %s", o.ID, from)
	}
	return nil
}
