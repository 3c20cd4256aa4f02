// Package fulfillmentv1 defines the fulfillment gRPC services. Messages are plain structs
// carried by the JSON codec registered in pkg/rpc.
package fulfillmentv1

type Empty struct{}

type Pagination struct {
	Page     int32 `json:"page,omitempty"`
	PageSize int32 `json:"page_size,omitempty"`
}

// Inventory

type Material struct {
	Name         string  `json:"name"`
	OnHandWeight float64 `json:"on_hand_weight"`
	UpdatedAt    string  `json:"updated_at,omitempty"`
}

type GetOnHandRequest struct {
	Materials []string `json:"materials"`
}

type GetOnHandResponse struct {
	OnHand map[string]float64 `json:"on_hand"`
}

type ListMaterialsResponse struct {
	Materials []*Material `json:"materials"`
}

type ListLowStockRequest struct {
	ThresholdGrams float64 `json:"threshold_grams,omitempty"`
}

type RestockRequest struct {
	Material      string  `json:"material"`
	WeightGrams   float64 `json:"weight_grams"`
	ReferenceType string  `json:"reference_type,omitempty"`
	ReferenceId   string  `json:"reference_id,omitempty"`
}

type InventoryMovement struct {
	Id             string  `json:"id"`
	Material       string  `json:"material"`
	MovementType   string  `json:"movement_type"`
	QuantityChange float64 `json:"quantity_change"`
	QuantityBefore float64 `json:"quantity_before"`
	QuantityAfter  float64 `json:"quantity_after"`
	ReferenceType  string  `json:"reference_type,omitempty"`
	ReferenceId    string  `json:"reference_id,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type ListMovementsRequest struct {
	Material      string `json:"material,omitempty"`
	MovementType  string `json:"movement_type,omitempty"`
	ReferenceType string `json:"reference_type,omitempty"`
	ReferenceId   string `json:"reference_id,omitempty"`
	StartDate     string `json:"start_date,omitempty"`
	EndDate       string `json:"end_date,omitempty"`
	Pagination
}

type ListMovementsResponse struct {
	Movements []*InventoryMovement `json:"movements"`
	Total     int32                `json:"total"`
}

// Orders

type Order struct {
	Id             int64              `json:"id"`
	CustomerId     int64              `json:"customer_id"`
	ProductId      int64              `json:"product_id"`
	UnitCount      int32              `json:"unit_count"`
	Bom            map[string]float64 `json:"bom"`
	Status         string             `json:"status"`
	DefectiveCount int32              `json:"defective_count"`
	StartDate      string             `json:"start_date,omitempty"`
	EndDate        string             `json:"end_date,omitempty"`
	IsPaid         bool               `json:"is_paid"`
	IsBusiness     bool               `json:"is_business"`
	UnitCost       string             `json:"unit_cost"`
	Subtotal       string             `json:"subtotal"`
	TaxAmount      string             `json:"tax_amount"`
	GrandTotal     string             `json:"grand_total"`
	CreatedAt      string             `json:"created_at"`
	UpdatedAt      string             `json:"updated_at"`
}

type CreateOrderRequest struct {
	CustomerId int64    `json:"customer_id"`
	ProductId  int64    `json:"product_id"`
	UnitCount  int32    `json:"unit_count"`
	IsBusiness bool     `json:"is_business"`
	TaxPercent *float64 `json:"tax_percent,omitempty"`
}

type OrderIDRequest struct {
	Id int64 `json:"id"`
}

type ListOrdersRequest struct {
	CustomerId int64  `json:"customer_id,omitempty"`
	ProductId  int64  `json:"product_id,omitempty"`
	Status     string `json:"status,omitempty"`
	Pagination
}

type ListOrdersResponse struct {
	Orders []*Order `json:"orders"`
	Total  int32    `json:"total"`
}

type AvailabilityItem struct {
	Material       string  `json:"material"`
	RequestedGrams float64 `json:"requested_grams"`
	AvailableGrams float64 `json:"available_grams"`
	IsAvailable    bool    `json:"is_available"`
}

type AvailabilityResponse struct {
	Items                []*AvailabilityItem `json:"items"`
	UnavailableMaterials []string            `json:"unavailable_materials"`
	AllAvailable         bool                `json:"all_available"`
}

type FinishProductionRequest struct {
	OrderId        int64 `json:"order_id"`
	DefectiveCount int32 `json:"defective_count"`
}

type FinishProductionResponse struct {
	Order     *Order     `json:"order"`
	QaRecord  *QARecord  `json:"qa_record"`
	Grievance *Grievance `json:"grievance,omitempty"`
}

// Quality

type QARecord struct {
	Id             int64  `json:"id"`
	OrderId        int64  `json:"order_id"`
	Status         string `json:"status"`
	InspectorName  string `json:"inspector_name"`
	InspectionDate string `json:"inspection_date"`
	DefectsFound   int32  `json:"defects_found"`
	Notes          string `json:"notes"`
}

type QAIDRequest struct {
	Id int64 `json:"id"`
}

type ListQARecordsRequest struct {
	OrderId int64  `json:"order_id,omitempty"`
	Status  string `json:"status,omitempty"`
	Pagination
}

type ListQARecordsResponse struct {
	Records []*QARecord `json:"records"`
	Total   int32       `json:"total"`
}

type PassQARequest struct {
	QaId          int64  `json:"qa_id"`
	OrderId       int64  `json:"order_id"`
	InspectorName string `json:"inspector_name,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type PassQAResponse struct {
	Record   *QARecord `json:"record"`
	Shipment *Shipment `json:"shipment"`
	Created  bool      `json:"created"`
}

type FailQARequest struct {
	QaId          int64  `json:"qa_id"`
	OrderId       int64  `json:"order_id"`
	InspectorName string `json:"inspector_name,omitempty"`
	DefectsFound  int32  `json:"defects_found"`
	Notes         string `json:"notes,omitempty"`
}

// Shipments

type Shipment struct {
	Id                   int64  `json:"id"`
	OrderId              int64  `json:"order_id"`
	CustomerId           int64  `json:"customer_id"`
	ProductId            int64  `json:"product_id"`
	TotalCount           int32  `json:"total_count"`
	DefectiveCount       int32  `json:"defective_count"`
	ShippedCount         int32  `json:"shipped_count"`
	EstimatedArrivalDate string `json:"estimated_arrival_date"`
	CreatedAt            string `json:"created_at"`
}

type ShipmentIDRequest struct {
	Id int64 `json:"id"`
}

type ListShipmentsRequest struct {
	CustomerId int64 `json:"customer_id,omitempty"`
	OrderId    int64 `json:"order_id,omitempty"`
	Pagination
}

type ListShipmentsResponse struct {
	Shipments []*Shipment `json:"shipments"`
	Total     int32       `json:"total"`
}

// Grievances

type Grievance struct {
	Id             int64  `json:"id"`
	OrderId        int64  `json:"order_id"`
	CustomerId     int64  `json:"customer_id"`
	Message        string `json:"message"`
	DefectiveCount int32  `json:"defective_count"`
	CreatedAt      string `json:"created_at"`
}

type ListGrievancesRequest struct {
	CustomerId int64 `json:"customer_id,omitempty"`
	OrderId    int64 `json:"order_id,omitempty"`
}

type ListGrievancesResponse struct {
	Grievances []*Grievance `json:"grievances"`
}

// Purchasing

type PurchaseOrder struct {
	Id          int64   `json:"id"`
	Material    string  `json:"material"`
	WeightGrams float64 `json:"weight_grams"`
	TotalCost   string  `json:"total_cost"`
	VendorId    int64   `json:"vendor_id,omitempty"`
	IsReceived  bool    `json:"is_received"`
	ReceivedAt  string  `json:"received_at,omitempty"`
	CreatedAt   string  `json:"created_at"`
}

type PurchaseLine struct {
	Material    string  `json:"material"`
	WeightGrams float64 `json:"weight_grams"`
}

type CreatePurchaseOrdersRequest struct {
	VendorId int64           `json:"vendor_id,omitempty"`
	Lines    []*PurchaseLine `json:"lines"`
}

type PurchaseOrdersResponse struct {
	PurchaseOrders []*PurchaseOrder `json:"purchase_orders"`
}

type ReceivePurchaseOrderRequest struct {
	Id int64 `json:"id"`
}

type ReceivePurchaseOrderResponse struct {
	PurchaseOrder   *PurchaseOrder `json:"purchase_order"`
	Material        *Material      `json:"material,omitempty"`
	AlreadyReceived bool           `json:"already_received"`
}
