package model

// Product is the configurator's snapshot of a configured pen: what it costs to make one
// unit and how much of each material one unit consumes.
type Product struct {
	ID       int64           `db:"id" json:"id"`
	Name     string          `db:"name" json:"name"`
	UnitCost float64         `db:"unit_cost" json:"unit_cost"`
	Weights  BillOfMaterials `db:"-" json:"weights"`
}

// ProductMaterial is one bill-of-materials line as stored by the configurator.
type ProductMaterial struct {
	ProductID     int64   `db:"product_id"`
	MaterialName  string  `db:"material_name"`
	WeightPerUnit float64 `db:"weight_per_unit"`
}
