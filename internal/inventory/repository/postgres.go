package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apperr"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/database/postgres"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
	tx *postgres.TxManager
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db, tx: postgres.NewTxManager(db)}
}

func (r *PGRepository) GetOnHand(ctx context.Context, names []string) (map[string]float64, error) {
	result := make(map[string]float64, len(names))
	if len(names) == 0 {
		return result, nil
	}
	for _, name := range names {
		result[name] = 0
	}

	query, args, err := sqlx.In(`SELECT name, on_hand_weight FROM materials WHERE name IN (?)`, names)
	if err != nil {
		return nil, err
	}
	query = r.DB.Rebind(query)

	var rows []model.Material
	if err := postgres.Conn(ctx, r.DB).SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("failed to read on-hand weights: %w", err)
	}
	for _, m := range rows {
		result[m.Name] = m.OnHandWeight
	}
	return result, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Material, error) {
	var items []model.Material
	err := postgres.Conn(ctx, r.DB).SelectContext(ctx, &items, `SELECT * FROM materials ORDER BY name`)
	return items, err
}

func (r *PGRepository) BelowThreshold(ctx context.Context, threshold float64) ([]model.Material, error) {
	var items []model.Material
	err := postgres.Conn(ctx, r.DB).SelectContext(ctx, &items,
		`SELECT * FROM materials WHERE on_hand_weight < $1 ORDER BY on_hand_weight ASC, name ASC`, threshold)
	return items, err
}

// Reserve runs one conditional decrement per material inside a single transaction.
// Materials are visited in name order so two reservations never wait on each other's
// rows in opposite order.
func (r *PGRepository) Reserve(ctx context.Context, requirements map[string]float64, ref dto.Reference) error {
	names := make([]string, 0, len(requirements))
	for name := range requirements {
		names = append(names, name)
	}
	sort.Strings(names)

	return r.tx.WithinTx(ctx, func(ctx context.Context) error {
		conn := postgres.Conn(ctx, r.DB)
		now := time.Now()

		var shortages []apperr.Shortage
		var movements []*model.InventoryMovement

		for _, name := range names {
			amount := requirements[name]
			if amount <= 0 {
				continue
			}

			var after float64
			err := conn.QueryRowxContext(ctx, `
				UPDATE materials
				SET on_hand_weight = on_hand_weight - $1, updated_at = NOW()
				WHERE name = $2 AND on_hand_weight >= $1
				RETURNING on_hand_weight
			`, amount, name).Scan(&after)
			if errors.Is(err, sql.ErrNoRows) {
				var available float64
				if err := conn.GetContext(ctx, &available, `SELECT on_hand_weight FROM materials WHERE name = $1`, name); err != nil && !errors.Is(err, sql.ErrNoRows) {
					return fmt.Errorf("failed to read %s: %w", name, err)
				}
				shortages = append(shortages, apperr.Shortage{Material: name, RequiredGrams: amount, AvailableGrams: available})
				continue
			}
			if err != nil {
				return fmt.Errorf("failed to reserve %s: %w", name, err)
			}

			movements = append(movements, newMovement(name, model.MovementReserve, -amount, after+amount, after, ref, now))
		}

		if len(shortages) > 0 {
			return apperr.InsufficientInventory(shortages)
		}

		for _, m := range movements {
			if err := r.logMovement(ctx, conn, m); err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *PGRepository) Restock(ctx context.Context, name string, weight float64, movementType model.MovementType, ref dto.Reference) (*model.Material, error) {
	var mat model.Material
	err := r.tx.WithinTx(ctx, func(ctx context.Context) error {
		conn := postgres.Conn(ctx, r.DB)

		err := conn.QueryRowxContext(ctx, `
			INSERT INTO materials (name, on_hand_weight, updated_at)
			VALUES ($1, $2, NOW())
			ON CONFLICT (name)
			DO UPDATE SET
				on_hand_weight = materials.on_hand_weight + EXCLUDED.on_hand_weight,
				updated_at = NOW()
			RETURNING *
		`, name, weight).StructScan(&mat)
		if err != nil {
			return fmt.Errorf("failed to restock %s: %w", name, err)
		}

		m := newMovement(name, movementType, weight, mat.OnHandWeight-weight, mat.OnHandWeight, ref, time.Now())
		return r.logMovement(ctx, conn, m)
	})
	if err != nil {
		return nil, err
	}
	return &mat, nil
}

func (r *PGRepository) logMovement(ctx context.Context, conn postgres.Executor, m *model.InventoryMovement) error {
	query := `
        INSERT INTO inventory_movements (
            id, material_name, movement_type, quantity_change, quantity_before,
            quantity_after, reference_type, reference_id, created_at
        )
        VALUES (
            :id, :material_name, :movement_type, :quantity_change, :quantity_before,
            :quantity_after, :reference_type, :reference_id, :created_at
        )
    `
	if _, err := conn.NamedExecContext(ctx, query, m); err != nil {
		return fmt.Errorf("failed to log movement: %w", err)
	}
	return nil
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.InventoryMovement, int, error) {
	var items []model.InventoryMovement
	var count int

	conditions := []string{}
	args := map[string]interface{}{}

	if f.MaterialName != "" {
		conditions = append(conditions, "material_name = :material_name")
		args["material_name"] = f.MaterialName
	}
	if f.MovementType != "" {
		conditions = append(conditions, "movement_type = :movement_type")
		args["movement_type"] = f.MovementType
	}
	if f.ReferenceType != "" {
		conditions = append(conditions, "reference_type = :reference_type")
		args["reference_type"] = f.ReferenceType
	}
	if f.ReferenceID != "" {
		conditions = append(conditions, "reference_id = :reference_id")
		args["reference_id"] = f.ReferenceID
	}
	if f.StartDate != nil {
		conditions = append(conditions, "created_at >= :start_date")
		args["start_date"] = *f.StartDate
	}
	if f.EndDate != nil {
		conditions = append(conditions, "created_at < :end_date")
		args["end_date"] = *f.EndDate
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery, countArgs, err := sqlx.Named("SELECT count(*) FROM inventory_movements"+whereClause, args)
	if err != nil {
		return nil, 0, err
	}
	if err := r.DB.GetContext(ctx, &count, r.DB.Rebind(countQuery), countArgs...); err != nil {
		return nil, 0, err
	}

	query := "SELECT * FROM inventory_movements" + whereClause + " ORDER BY created_at DESC"
	if f.PageSize > 0 {
		page := f.Page
		if page < 1 {
			page = 1
		}
		query += fmt.Sprintf(" LIMIT %d OFFSET %d", f.PageSize, (page-1)*f.PageSize)
	}

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, 0, err
	}
	defer nstmt.Close()

	err = nstmt.SelectContext(ctx, &items, args)
	return items, count, err
}

func newMovement(name string, movementType model.MovementType, change, before, after float64, ref dto.Reference, at time.Time) *model.InventoryMovement {
	m := &model.InventoryMovement{
		ID:             uuid.New().String(),
		MaterialName:   name,
		MovementType:   movementType,
		QuantityChange: change,
		QuantityBefore: before,
		QuantityAfter:  after,
		CreatedAt:      at,
	}
	if ref.Type != "" {
		refType := ref.Type
		m.ReferenceType = &refType
	}
	if ref.ID != "" {
		refID := ref.ID
		m.ReferenceID = &refID
	}
	return m
}
