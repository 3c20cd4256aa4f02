// Package memstore keeps every fulfillment table in process memory. It backs the
// memory storage driver and the usecase tests.
//
// A transaction holds the store mutex for its whole duration and restores a snapshot
// of all tables when the function returns an error, so a unit of work is serialized
// and all-or-nothing across tables.
package memstore

import (
	"context"
	"sync"
	"time"

	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
)

type txKey struct{}

type tables struct {
	materials      map[string]model.Material
	movements      []model.InventoryMovement
	products       map[int64]model.Product
	orders         map[int64]model.Order
	qa             map[int64]model.QualityAssuranceRecord
	grievances     map[int64]model.Grievance
	shipments      map[int64]model.Shipment
	purchaseOrders map[int64]model.PurchaseOrder
	seq            map[string]int64
}

func newTables() *tables {
	return &tables{
		materials:      make(map[string]model.Material),
		products:       make(map[int64]model.Product),
		orders:         make(map[int64]model.Order),
		qa:             make(map[int64]model.QualityAssuranceRecord),
		grievances:     make(map[int64]model.Grievance),
		shipments:      make(map[int64]model.Shipment),
		purchaseOrders: make(map[int64]model.PurchaseOrder),
		seq:            make(map[string]int64),
	}
}

func (t *tables) clone() *tables {
	c := newTables()
	for k, v := range t.materials {
		c.materials[k] = v
	}
	c.movements = append([]model.InventoryMovement(nil), t.movements...)
	for k, v := range t.products {
		v.Weights = v.Weights.Clone()
		c.products[k] = v
	}
	for k, v := range t.orders {
		c.orders[k] = cloneOrder(v)
	}
	for k, v := range t.qa {
		c.qa[k] = v
	}
	for k, v := range t.grievances {
		c.grievances[k] = v
	}
	for k, v := range t.shipments {
		c.shipments[k] = v
	}
	for k, v := range t.purchaseOrders {
		c.purchaseOrders[k] = v
	}
	for k, v := range t.seq {
		c.seq[k] = v
	}
	return c
}

type Store struct {
	mu   sync.Mutex
	data *tables
	now  func() time.Time
}

func New() *Store {
	return &Store{data: newTables(), now: time.Now}
}

// SetClock replaces the time source used for created/updated timestamps.
func (s *Store) SetClock(now func() time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.now = now
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if s.inTx(ctx) {
		return fn(ctx)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.data.clone()
	if err := fn(context.WithValue(ctx, txKey{}, s)); err != nil {
		s.data = snapshot
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, ok := ctx.Value(txKey{}).(*Store)
	return ok && owner == s
}

// lock takes the store mutex unless ctx already runs inside this store's transaction.
func (s *Store) lock(ctx context.Context) func() {
	if s.inTx(ctx) {
		return func() {}
	}
	s.mu.Lock()
	return s.mu.Unlock
}

func (s *Store) nextID(table string) int64 {
	s.data.seq[table]++
	return s.data.seq[table]
}

func (s *Store) Inventory() *InventoryRepository   { return &InventoryRepository{s: s} }
func (s *Store) Orders() *OrderRepository          { return &OrderRepository{s: s} }
func (s *Store) Quality() *QualityRepository       { return &QualityRepository{s: s} }
func (s *Store) Shipments() *ShipmentRepository    { return &ShipmentRepository{s: s} }
func (s *Store) Grievances() *GrievanceRepository  { return &GrievanceRepository{s: s} }
func (s *Store) Purchasing() *PurchasingRepository { return &PurchasingRepository{s: s} }
func (s *Store) Catalog() *CatalogRepository       { return &CatalogRepository{s: s} }

func cloneOrder(o model.Order) model.Order {
	o.BOM = o.BOM.Clone()
	return o
}

func paginate[T any](items []T, page, pageSize int) []T {
	if pageSize <= 0 {
		return items
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(items) {
		return []T{}
	}
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end]
}
