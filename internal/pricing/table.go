// Package pricing holds the static cost table used when an order is quoted.
package pricing

import (
	"fmt"
	"os"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

type LabourCharges struct {
	Manufacture *float64 `yaml:"manufacture"`
	Assembly    *float64 `yaml:"assembly"`
	Finishing   *float64 `yaml:"finishing"`
	Total       *float64 `yaml:"total"`
}

type ShippingCharges struct {
	BaseCost    *float64 `yaml:"baseCost"`
	PerUnitCost *float64 `yaml:"perUnitCost"`
	Total       *float64 `yaml:"total"`
}

// Table mirrors the amount-details document. The file may be YAML or JSON.
type Table struct {
	Currency                string             `yaml:"currency"`
	MinimumProductionAmount float64            `yaml:"minimumProductionAmount"`
	LabourCharges           *LabourCharges     `yaml:"labourCharges"`
	Overheads               map[string]float64 `yaml:"overheads"`
	PackagingCostPerUnit    *float64           `yaml:"packagingCostPerUnit"`
	Shipping                *ShippingCharges   `yaml:"shipping"`
	Tax                     *float64           `yaml:"tax"`
	MaterialPrices          map[string]float64 `yaml:"materialPrices"`
}

// Quote is the priced result for one order.
type Quote struct {
	UnitCost   decimal.Decimal
	Subtotal   decimal.Decimal
	TaxAmount  decimal.Decimal
	GrandTotal decimal.Decimal
	TaxPercent decimal.Decimal
}

func Load(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read pricing table: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*Table, error) {
	var t Table
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parse pricing table: %w", err)
	}
	t.normalize()
	return &t, nil
}

// Default is an empty table: no surcharges, no configured tax.
func Default() *Table {
	t := &Table{Currency: "INR"}
	t.normalize()
	return t
}

func (t *Table) normalize() {
	prices := make(map[string]float64, len(t.MaterialPrices))
	for name, p := range t.MaterialPrices {
		prices[model.NormalizeMaterialName(name)] = p
	}
	t.MaterialPrices = prices
}

func (t *Table) LabourTotal() decimal.Decimal {
	l := t.LabourCharges
	if l == nil {
		return decimal.Zero
	}
	if l.Total != nil {
		return decimal.NewFromFloat(*l.Total)
	}
	sum := decimal.Zero
	for _, v := range []*float64{l.Manufacture, l.Assembly, l.Finishing} {
		if v != nil {
			sum = sum.Add(decimal.NewFromFloat(*v))
		}
	}
	return sum
}

func (t *Table) ShippingTotal() decimal.Decimal {
	s := t.Shipping
	if s == nil {
		return decimal.Zero
	}
	if s.Total != nil {
		return decimal.NewFromFloat(*s.Total)
	}
	sum := decimal.Zero
	if s.BaseCost != nil {
		sum = sum.Add(decimal.NewFromFloat(*s.BaseCost))
	}
	if s.PerUnitCost != nil {
		sum = sum.Add(decimal.NewFromFloat(*s.PerUnitCost))
	}
	return sum
}

func (t *Table) Packaging() decimal.Decimal {
	if t.PackagingCostPerUnit == nil {
		return decimal.Zero
	}
	return decimal.NewFromFloat(*t.PackagingCostPerUnit)
}

// TaxPercent prefers a valid caller-provided rate over the configured one.
func (t *Table) TaxPercent(provided *float64) decimal.Decimal {
	if provided != nil && *provided >= 0 {
		return decimal.NewFromFloat(*provided)
	}
	if t.Tax != nil && *t.Tax >= 0 {
		return decimal.NewFromFloat(*t.Tax)
	}
	return decimal.Zero
}

// Quote prices quantity units of a product costing productCost each. Labour, packaging
// and shipping are added per unit; overheads and the production minimum are not applied.
func (t *Table) Quote(productCost float64, quantity int, taxPercent *float64) Quote {
	if quantity <= 0 {
		quantity = 1
	}
	unit := decimal.NewFromFloat(productCost).
		Add(t.LabourTotal()).
		Add(t.Packaging()).
		Add(t.ShippingTotal()).
		Round(2)

	rate := t.TaxPercent(taxPercent)
	subtotal := unit.Mul(decimal.NewFromInt(int64(quantity))).Round(2)
	tax := subtotal.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)

	return Quote{
		UnitCost:   unit,
		Subtotal:   subtotal,
		TaxAmount:  tax,
		GrandTotal: subtotal.Add(tax),
		TaxPercent: rate,
	}
}

// MaterialCost prices grams of a material; unknown materials cost nothing.
func (t *Table) MaterialCost(material string, grams float64) decimal.Decimal {
	price, ok := t.MaterialPrices[model.NormalizeMaterialName(material)]
	if !ok {
		return decimal.Zero
	}
	return decimal.NewFromFloat(price).Mul(decimal.NewFromFloat(grams)).Round(2)
}
