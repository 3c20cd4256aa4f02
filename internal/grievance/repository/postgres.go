package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-fulfillment-service/internal/grievance"
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

func (r *PGRepository) Create(ctx context.Context, g *model.Grievance) error {
	query := `
        INSERT INTO grievances (order_id, customer_id, message, defective_count, created_at)
        VALUES (:order_id, :customer_id, :message, :defective_count, NOW())
        RETURNING id, created_at
    `
	q, args, err := sqlx.Named(query, g)
	if err != nil {
		return err
	}
	if err := postgres.Conn(ctx, r.DB).QueryRowxContext(ctx, r.DB.Rebind(q), args...).Scan(&g.ID, &g.CreatedAt); err != nil {
		return fmt.Errorf("failed to insert grievance: %w", err)
	}
	return nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *grievance.Filters) ([]model.Grievance, error) {
	var items []model.Grievance

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

	q, qargs, err := sqlx.Named("SELECT * FROM grievances"+whereClause+" ORDER BY created_at DESC, id DESC", args)
	if err != nil {
		return nil, err
	}
	err = r.DB.SelectContext(ctx, &items, r.DB.Rebind(q), qargs...)
	return items, err
}
