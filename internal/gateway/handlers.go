package gateway

import (
	"strconv"
	"strings"

	"github.com/fekuna/omnipos-fulfillment-service/internal/apiconv"
	"github.com/fekuna/omnipos-fulfillment-service/internal/grievance"
	invdto "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	orderdto "github.com/fekuna/omnipos-fulfillment-service/internal/order/dto"
	podto "github.com/fekuna/omnipos-fulfillment-service/internal/purchasing/dto"
	qadto "github.com/fekuna/omnipos-fulfillment-service/internal/quality/dto"
	"github.com/fekuna/omnipos-fulfillment-service/internal/shipment"
	"github.com/gin-gonic/gin"
)

type orderIDRequest struct {
	OrderID int64 `json:"order_id" binding:"required"`
}

type createOrderRequest struct {
	CustomerID int64    `json:"customer_id" binding:"required"`
	ProductID  int64    `json:"product_id" binding:"required"`
	UnitCount  int      `json:"unit_count"`
	IsBusiness bool     `json:"is_business"`
	TaxPercent *float64 `json:"tax_percent"`
}

type finishProductionRequest struct {
	OrderID        int64 `json:"order_id" binding:"required"`
	DefectiveCount int   `json:"defective_count"`
}

type qaRequest struct {
	QAID          int64  `json:"qa_id" binding:"required"`
	OrderID       int64  `json:"order_id" binding:"required"`
	InspectorName string `json:"inspector_name"`
	DefectsFound  int    `json:"defects_found"`
	Notes         string `json:"notes"`
}

type restockRequest struct {
	Material      string  `json:"material" binding:"required"`
	WeightGrams   float64 `json:"weight_grams"`
	ReferenceType string  `json:"reference_type"`
	ReferenceID   string  `json:"reference_id"`
}

type purchaseOrdersRequest struct {
	VendorID *int64              `json:"vendor_id"`
	Lines    []podto.PurchaseLine `json:"lines" binding:"required"`
}

type receiveRequest struct {
	ID int64 `json:"id" binding:"required"`
}

// Inventory

func (h *Handler) ListMaterials(c *gin.Context) {
	items, err := h.svc.Inventory.ListMaterials(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, items)
}

func (h *Handler) GetOnHand(c *gin.Context) {
	var names []string
	for _, n := range strings.Split(c.Query("materials"), ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if len(names) == 0 {
		BadRequest(c, "materials query parameter is required")
		return
	}

	onHand, err := h.svc.Inventory.GetOnHand(c.Request.Context(), names)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, onHand)
}

func (h *Handler) ListLowStock(c *gin.Context) {
	threshold, _ := strconv.ParseFloat(c.Query("threshold"), 64)
	items, err := h.svc.Inventory.BelowThreshold(c.Request.Context(), threshold)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, items)
}

func (h *Handler) ListMovements(c *gin.Context) {
	start, err := apiconv.ParseDate(c.Query("start_date"))
	if err != nil {
		BadRequest(c, "invalid start_date")
		return
	}
	end, err := apiconv.ParseDate(c.Query("end_date"))
	if err != nil {
		BadRequest(c, "invalid end_date")
		return
	}
	page, size := pageParams(c)

	items, total, err := h.svc.Inventory.ListMovements(c.Request.Context(), &invdto.MovementFilters{
		MaterialName:  model.NormalizeMaterialName(c.Query("material")),
		MovementType:  c.Query("movement_type"),
		ReferenceType: c.Query("reference_type"),
		ReferenceID:   c.Query("reference_id"),
		StartDate:     start,
		EndDate:       end,
		Page:          page,
		PageSize:      size,
	})
	if err != nil {
		Error(c, err)
		return
	}
	List(c, items, page, size, total)
}

func (h *Handler) Restock(c *gin.Context) {
	var req restockRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	ref := invdto.Reference{Type: req.ReferenceType, ID: req.ReferenceID}
	if ref.Type == "" {
		ref.Type = "manual"
	}

	m, err := h.svc.Inventory.Restock(c.Request.Context(), &invdto.RestockInput{
		MaterialName: req.Material,
		Weight:       req.WeightGrams,
		MovementType: model.MovementRestock,
		Reference:    ref,
	})
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, m)
}

// Orders

func (h *Handler) CreateOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}

	o, err := h.svc.Orders.Create(c.Request.Context(), &orderdto.CreateOrderInput{
		CustomerID: req.CustomerID,
		ProductID:  req.ProductID,
		UnitCount:  req.UnitCount,
		IsBusiness: req.IsBusiness,
		TaxPercent: req.TaxPercent,
	})
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, o)
}

func (h *Handler) ListOrders(c *gin.Context) {
	page, size := pageParams(c)
	customerID, _ := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	productID, _ := strconv.ParseInt(c.Query("product_id"), 10, 64)

	items, total, err := h.svc.Orders.List(c.Request.Context(), &orderdto.OrderFilters{
		CustomerID: customerID,
		ProductID:  productID,
		Status:     model.OrderStatus(c.Query("status")),
		Page:       page,
		PageSize:   size,
	})
	if err != nil {
		Error(c, err)
		return
	}
	List(c, items, page, size, total)
}

func (h *Handler) GetOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := h.svc.Orders.Get(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, o)
}

func (h *Handler) CheckAvailability(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	a, err := h.svc.Orders.CheckAvailability(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, a)
}

func (h *Handler) AcceptOrder(c *gin.Context) {
	var req orderIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	h.respondOrder(c)(h.svc.Orders.Accept(c.Request.Context(), req.OrderID))
}

func (h *Handler) MarkPaid(c *gin.Context) {
	var req orderIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	h.respondOrder(c)(h.svc.Orders.MarkPaid(c.Request.Context(), req.OrderID))
}

func (h *Handler) CancelOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	h.respondOrder(c)(h.svc.Orders.Cancel(c.Request.Context(), id))
}

func (h *Handler) StartProduction(c *gin.Context) {
	var req orderIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	h.respondOrder(c)(h.svc.Orders.StartProduction(c.Request.Context(), req.OrderID))
}

func (h *Handler) FinishProduction(c *gin.Context) {
	var req finishProductionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	res, err := h.svc.Orders.FinishProduction(c.Request.Context(), &orderdto.FinishProductionInput{
		OrderID:        req.OrderID,
		DefectiveCount: req.DefectiveCount,
	})
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, res)
}

func (h *Handler) respondOrder(c *gin.Context) func(*model.Order, error) {
	return func(o *model.Order, err error) {
		if err != nil {
			Error(c, err)
			return
		}
		Success(c, o)
	}
}

// Quality

func (h *Handler) ListQARecords(c *gin.Context) {
	page, size := pageParams(c)
	orderID, _ := strconv.ParseInt(c.Query("order_id"), 10, 64)

	items, total, err := h.svc.Quality.List(c.Request.Context(), &qadto.QAFilters{
		OrderID:  orderID,
		Status:   model.QAStatus(c.Query("status")),
		Page:     page,
		PageSize: size,
	})
	if err != nil {
		Error(c, err)
		return
	}
	List(c, items, page, size, total)
}

func (h *Handler) GetQARecord(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	r, err := h.svc.Quality.Get(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, r)
}

func (h *Handler) PassQA(c *gin.Context) {
	var req qaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	res, err := h.svc.Quality.PassQA(c.Request.Context(), &qadto.PassQAInput{
		QAID:          req.QAID,
		OrderID:       req.OrderID,
		InspectorName: req.InspectorName,
		Notes:         req.Notes,
	})
	if err != nil {
		Error(c, err)
		return
	}
	if res.Created {
		Created(c, res)
		return
	}
	Success(c, res)
}

func (h *Handler) FailQA(c *gin.Context) {
	var req qaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	r, err := h.svc.Quality.FailQA(c.Request.Context(), &qadto.FailQAInput{
		QAID:          req.QAID,
		OrderID:       req.OrderID,
		InspectorName: req.InspectorName,
		DefectsFound:  req.DefectsFound,
		Notes:         req.Notes,
	})
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, r)
}

// Shipments

func (h *Handler) ListShipments(c *gin.Context) {
	page, size := pageParams(c)
	customerID, _ := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	orderID, _ := strconv.ParseInt(c.Query("order_id"), 10, 64)

	items, total, err := h.svc.Shipments.List(c.Request.Context(), &shipment.Filters{
		CustomerID: customerID,
		OrderID:    orderID,
		Page:       page,
		PageSize:   size,
	})
	if err != nil {
		Error(c, err)
		return
	}
	List(c, items, page, size, total)
}

func (h *Handler) GetShipment(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s, err := h.svc.Shipments.Get(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, s)
}

func (h *Handler) GetShipmentByOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	s, err := h.svc.Shipments.GetByOrder(c.Request.Context(), id)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, s)
}

// Grievances

func (h *Handler) ListGrievances(c *gin.Context) {
	customerID, _ := strconv.ParseInt(c.Query("customer_id"), 10, 64)
	orderID, _ := strconv.ParseInt(c.Query("order_id"), 10, 64)

	items, err := h.svc.Grievances.List(c.Request.Context(), &grievance.Filters{
		CustomerID: customerID,
		OrderID:    orderID,
	})
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, items)
}

// Purchasing

func (h *Handler) ListOpenPurchaseOrders(c *gin.Context) {
	items, err := h.svc.Purchasing.ListOpen(c.Request.Context())
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, items)
}

func (h *Handler) CreatePurchaseOrders(c *gin.Context) {
	var req purchaseOrdersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	items, err := h.svc.Purchasing.Create(c.Request.Context(), &podto.CreatePurchaseOrdersInput{
		VendorID: req.VendorID,
		Lines:    req.Lines,
	})
	if err != nil {
		Error(c, err)
		return
	}
	Created(c, items)
}

func (h *Handler) ReceivePurchaseOrder(c *gin.Context) {
	var req receiveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		BadRequest(c, err.Error())
		return
	}
	res, err := h.svc.Purchasing.Receive(c.Request.Context(), req.ID)
	if err != nil {
		Error(c, err)
		return
	}
	Success(c, res)
}

func pathID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		BadRequest(c, "invalid id")
		return 0, false
	}
	return id, true
}

func pageParams(c *gin.Context) (int, int) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	size, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if size < 1 {
		size = 20
	}
	return page, size
}
