// Package apiconv maps domain models to fulfillmentv1 messages.
package apiconv

import (
	"time"

	fulfillmentv1 "github.com/fekuna/omnipos-fulfillment-service/api/fulfillmentv1"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	"github.com/fekuna/omnipos-fulfillment-service/internal/requirement"
)

const DateLayout = "2006-01-02"

func date(t *time.Time) string {
	if t == nil || t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func timestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func Material(m *model.Material) *fulfillmentv1.Material {
	if m == nil {
		return nil
	}
	return &fulfillmentv1.Material{
		Name:         m.Name,
		OnHandWeight: m.OnHandWeight,
		UpdatedAt:    timestamp(m.UpdatedAt),
	}
}

func Materials(items []model.Material) []*fulfillmentv1.Material {
	out := make([]*fulfillmentv1.Material, len(items))
	for i := range items {
		out[i] = Material(&items[i])
	}
	return out
}

func Movement(m *model.InventoryMovement) *fulfillmentv1.InventoryMovement {
	out := &fulfillmentv1.InventoryMovement{
		Id:             m.ID,
		Material:       m.MaterialName,
		MovementType:   string(m.MovementType),
		QuantityChange: m.QuantityChange,
		QuantityBefore: m.QuantityBefore,
		QuantityAfter:  m.QuantityAfter,
		CreatedAt:      timestamp(m.CreatedAt),
	}
	if m.ReferenceType != nil {
		out.ReferenceType = *m.ReferenceType
	}
	if m.ReferenceID != nil {
		out.ReferenceId = *m.ReferenceID
	}
	return out
}

func Order(o *model.Order) *fulfillmentv1.Order {
	if o == nil {
		return nil
	}
	return &fulfillmentv1.Order{
		Id:             o.ID,
		CustomerId:     o.CustomerID,
		ProductId:      o.ProductID,
		UnitCount:      int32(o.UnitCount),
		Bom:            o.BOM,
		Status:         string(o.Status),
		DefectiveCount: int32(o.DefectiveCount),
		StartDate:      date(o.StartDate),
		EndDate:        date(o.EndDate),
		IsPaid:         o.IsPaid,
		IsBusiness:     o.IsBusiness,
		UnitCost:       o.UnitCost.StringFixed(2),
		Subtotal:       o.Subtotal.StringFixed(2),
		TaxAmount:      o.TaxAmount.StringFixed(2),
		GrandTotal:     o.GrandTotal.StringFixed(2),
		CreatedAt:      timestamp(o.CreatedAt),
		UpdatedAt:      timestamp(o.UpdatedAt),
	}
}

func Availability(a *requirement.Availability) *fulfillmentv1.AvailabilityResponse {
	items := make([]*fulfillmentv1.AvailabilityItem, len(a.Items))
	for i, it := range a.Items {
		items[i] = &fulfillmentv1.AvailabilityItem{
			Material:       it.Material,
			RequestedGrams: it.RequestedGrams,
			AvailableGrams: it.AvailableGrams,
			IsAvailable:    it.IsAvailable,
		}
	}
	return &fulfillmentv1.AvailabilityResponse{
		Items:                items,
		UnavailableMaterials: a.UnavailableMaterials,
		AllAvailable:         a.AllAvailable,
	}
}

func QARecord(r *model.QualityAssuranceRecord) *fulfillmentv1.QARecord {
	if r == nil {
		return nil
	}
	return &fulfillmentv1.QARecord{
		Id:             r.ID,
		OrderId:        r.OrderID,
		Status:         string(r.Status),
		InspectorName:  r.InspectorName,
		InspectionDate: date(&r.InspectionDate),
		DefectsFound:   int32(r.DefectsFound),
		Notes:          r.Notes,
	}
}

func Shipment(s *model.Shipment) *fulfillmentv1.Shipment {
	if s == nil {
		return nil
	}
	return &fulfillmentv1.Shipment{
		Id:                   s.ID,
		OrderId:              s.OrderID,
		CustomerId:           s.CustomerID,
		ProductId:            s.ProductID,
		TotalCount:           int32(s.TotalCount),
		DefectiveCount:       int32(s.DefectiveCount),
		ShippedCount:         int32(s.ShippedCount),
		EstimatedArrivalDate: date(&s.EstimatedArrivalDate),
		CreatedAt:            timestamp(s.CreatedAt),
	}
}

func Grievance(g *model.Grievance) *fulfillmentv1.Grievance {
	if g == nil {
		return nil
	}
	return &fulfillmentv1.Grievance{
		Id:             g.ID,
		OrderId:        g.OrderID,
		CustomerId:     g.CustomerID,
		Message:        g.Message,
		DefectiveCount: int32(g.DefectiveCount),
		CreatedAt:      timestamp(g.CreatedAt),
	}
}

func PurchaseOrder(po *model.PurchaseOrder) *fulfillmentv1.PurchaseOrder {
	if po == nil {
		return nil
	}
	out := &fulfillmentv1.PurchaseOrder{
		Id:          po.ID,
		Material:    po.MaterialName,
		WeightGrams: po.WeightGrams,
		TotalCost:   po.TotalCost.StringFixed(2),
		IsReceived:  po.IsReceived,
		CreatedAt:   timestamp(po.CreatedAt),
	}
	if po.VendorID != nil {
		out.VendorId = *po.VendorID
	}
	if po.ReceivedAt != nil {
		out.ReceivedAt = timestamp(*po.ReceivedAt)
	}
	return out
}

func PurchaseOrders(items []model.PurchaseOrder) []*fulfillmentv1.PurchaseOrder {
	out := make([]*fulfillmentv1.PurchaseOrder, len(items))
	for i := range items {
		out[i] = PurchaseOrder(&items[i])
	}
	return out
}

// ParseDate accepts a calendar date or an RFC 3339 timestamp. Empty input yields nil.
func ParseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(DateLayout, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}
