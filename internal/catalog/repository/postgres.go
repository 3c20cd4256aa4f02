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

// FindProduct loads a product and its bill of materials as the configurator stored them.
func (r *PGRepository) FindProduct(ctx context.Context, productID int64) (*model.Product, error) {
	conn := postgres.Conn(ctx, r.DB)

	var p model.Product
	err := conn.GetContext(ctx, &p, `SELECT id, name, unit_cost FROM products WHERE id = $1 LIMIT 1`, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	var lines []model.ProductMaterial
	if err := conn.SelectContext(ctx, &lines, `
		SELECT product_id, material_name, weight_per_unit
		FROM product_materials
		WHERE product_id = $1
		ORDER BY material_name
	`, productID); err != nil {
		return nil, fmt.Errorf("failed to get product materials: %w", err)
	}

	p.Weights = make(model.BillOfMaterials, len(lines))
	for _, l := range lines {
		p.Weights[model.NormalizeMaterialName(l.MaterialName)] += l.WeightPerUnit
	}
	return &p, nil
}
