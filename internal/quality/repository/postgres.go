package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality/dto"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database/postgres"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, rec *model.QualityAssuranceRecord) error {
	query := `
        INSERT INTO quality_assurance (
            order_id, status, inspector_name, inspection_date, defects_found, notes,
            created_at, updated_at
        )
        VALUES (
            :order_id, :status, :inspector_name, :inspection_date, :defects_found, :notes,
            NOW(), NOW()
        )
        ON CONFLICT (order_id) DO NOTHING
        RETURNING id, created_at, updated_at
    `
	q, args, err := sqlx.Named(query, rec)
	if err != nil {
		return err
	}
	err = postgres.Conn(ctx, r.DB).QueryRowxContext(ctx, r.DB.Rebind(q), args...).
		Scan(&rec.ID, &rec.CreatedAt, &rec.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.PreconditionFailed("order %d already has a QA record", rec.OrderID)
	}
	if err != nil {
		return fmt.Errorf("failed to insert QA record: %w", err)
	}
	return nil
}

func (r *PGRepository) FindByID(ctx context.Context, id int64) (*model.QualityAssuranceRecord, error) {
	return r.findOne(ctx, `SELECT * FROM quality_assurance WHERE id = $1 LIMIT 1`, id)
}

func (r *PGRepository) FindByIDForUpdate(ctx context.Context, id int64) (*model.QualityAssuranceRecord, error) {
	return r.findOne(ctx, `SELECT * FROM quality_assurance WHERE id = $1 FOR UPDATE`, id)
}

func (r *PGRepository) FindByOrderID(ctx context.Context, orderID int64) (*model.QualityAssuranceRecord, error) {
	return r.findOne(ctx, `SELECT * FROM quality_assurance WHERE order_id = $1 LIMIT 1`, orderID)
}

func (r *PGRepository) findOne(ctx context.Context, query string, arg int64) (*model.QualityAssuranceRecord, error) {
	var rec model.QualityAssuranceRecord
	err := postgres.Conn(ctx, r.DB).GetContext(ctx, &rec, query, arg)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &rec, nil
}

func (r *PGRepository) FindAll(ctx context.Context, f *dto.QAFilters) ([]model.QualityAssuranceRecord, int, error) {
	var items []model.QualityAssuranceRecord
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.OrderID != 0 {
		conditions = append(conditions, "order_id = :order_id")
		args["order_id"] = f.OrderID
	}
	if f.Status != "" {
		conditions = append(conditions, "status = :status")
		args["status"] = f.Status
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM quality_assurance"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM quality_assurance" + whereClause + " ORDER BY id DESC"
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

func (r *PGRepository) Update(ctx context.Context, rec *model.QualityAssuranceRecord, from model.QAStatus) error {
	query := `
        UPDATE quality_assurance SET
            status = :status,
            inspector_name = :inspector_name,
            inspection_date = :inspection_date,
            defects_found = :defects_found,
            notes = :notes,
            updated_at = NOW()
        WHERE id = :id AND status = :from_status
    `
	args := map[string]interface{}{
		"id":              rec.ID,
		"status":          rec.Status,
		"inspector_name":  rec.InspectorName,
		"inspection_date": rec.InspectionDate,
		"defects_found":   rec.DefectsFound,
		"notes":           rec.Notes,
		"from_status":     from,
	}
	res, err := postgres.Conn(ctx, r.DB).NamedExecContext(ctx, query, args)
	if err != nil {
		return fmt.Errorf("failed to update QA record: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return apperr.PreconditionFailed("QA record %d is no longer %s", rec.ID, from)
	}
	return nil
}
