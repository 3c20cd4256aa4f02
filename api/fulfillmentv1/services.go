package fulfillmentv1

import (
	"context"

	"github.com/fekuna/omnipos-fulfillment-service/pkg/rpc"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const packageName = "omnipos.fulfillment.v1"

// InventoryService

const InventoryServiceName = packageName + ".InventoryService"

type InventoryServiceServer interface {
	GetOnHand(context.Context, *GetOnHandRequest) (*GetOnHandResponse, error)
	ListMaterials(context.Context, *Empty) (*ListMaterialsResponse, error)
	ListLowStock(context.Context, *ListLowStockRequest) (*ListMaterialsResponse, error)
	Restock(context.Context, *RestockRequest) (*Material, error)
	ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error)
}

// UnimplementedInventoryServiceServer answers every method with codes.Unimplemented.
type UnimplementedInventoryServiceServer struct{}

func (UnimplementedInventoryServiceServer) GetOnHand(context.Context, *GetOnHandRequest) (*GetOnHandResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOnHand not implemented")
}

func (UnimplementedInventoryServiceServer) ListMaterials(context.Context, *Empty) (*ListMaterialsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMaterials not implemented")
}

func (UnimplementedInventoryServiceServer) ListLowStock(context.Context, *ListLowStockRequest) (*ListMaterialsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListLowStock not implemented")
}

func (UnimplementedInventoryServiceServer) Restock(context.Context, *RestockRequest) (*Material, error) {
	return nil, status.Error(codes.Unimplemented, "method Restock not implemented")
}

func (UnimplementedInventoryServiceServer) ListMovements(context.Context, *ListMovementsRequest) (*ListMovementsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListMovements not implemented")
}

var InventoryService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: InventoryServiceName,
	HandlerType: (*InventoryServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(InventoryServiceName, "GetOnHand", InventoryServiceServer.GetOnHand),
		rpc.Unary(InventoryServiceName, "ListMaterials", InventoryServiceServer.ListMaterials),
		rpc.Unary(InventoryServiceName, "ListLowStock", InventoryServiceServer.ListLowStock),
		rpc.Unary(InventoryServiceName, "Restock", InventoryServiceServer.Restock),
		rpc.Unary(InventoryServiceName, "ListMovements", InventoryServiceServer.ListMovements),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/fulfillment/v1/fulfillment.proto",
}

func RegisterInventoryServiceServer(s grpc.ServiceRegistrar, srv InventoryServiceServer) {
	s.RegisterService(&InventoryService_ServiceDesc, srv)
}

type InventoryServiceClient interface {
	GetOnHand(ctx context.Context, in *GetOnHandRequest, opts ...grpc.CallOption) (*GetOnHandResponse, error)
	ListMaterials(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListMaterialsResponse, error)
	ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListMaterialsResponse, error)
	Restock(ctx context.Context, in *RestockRequest, opts ...grpc.CallOption) (*Material, error)
	ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error)
}

type inventoryServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewInventoryServiceClient(cc grpc.ClientConnInterface) InventoryServiceClient {
	return &inventoryServiceClient{cc: cc}
}

func (c *inventoryServiceClient) GetOnHand(ctx context.Context, in *GetOnHandRequest, opts ...grpc.CallOption) (*GetOnHandResponse, error) {
	return rpc.Invoke[GetOnHandRequest, GetOnHandResponse](ctx, c.cc, InventoryServiceName, "GetOnHand", in, opts...)
}

func (c *inventoryServiceClient) ListMaterials(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListMaterialsResponse, error) {
	return rpc.Invoke[Empty, ListMaterialsResponse](ctx, c.cc, InventoryServiceName, "ListMaterials", in, opts...)
}

func (c *inventoryServiceClient) ListLowStock(ctx context.Context, in *ListLowStockRequest, opts ...grpc.CallOption) (*ListMaterialsResponse, error) {
	return rpc.Invoke[ListLowStockRequest, ListMaterialsResponse](ctx, c.cc, InventoryServiceName, "ListLowStock", in, opts...)
}

func (c *inventoryServiceClient) Restock(ctx context.Context, in *RestockRequest, opts ...grpc.CallOption) (*Material, error) {
	return rpc.Invoke[RestockRequest, Material](ctx, c.cc, InventoryServiceName, "Restock", in, opts...)
}

func (c *inventoryServiceClient) ListMovements(ctx context.Context, in *ListMovementsRequest, opts ...grpc.CallOption) (*ListMovementsResponse, error) {
	return rpc.Invoke[ListMovementsRequest, ListMovementsResponse](ctx, c.cc, InventoryServiceName, "ListMovements", in, opts...)
}

// OrderService

const OrderServiceName = packageName + ".OrderService"

type OrderServiceServer interface {
	CreateOrder(context.Context, *CreateOrderRequest) (*Order, error)
	GetOrder(context.Context, *OrderIDRequest) (*Order, error)
	ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error)
	CheckAvailability(context.Context, *OrderIDRequest) (*AvailabilityResponse, error)
	AcceptOrder(context.Context, *OrderIDRequest) (*Order, error)
	MarkPaid(context.Context, *OrderIDRequest) (*Order, error)
	CancelOrder(context.Context, *OrderIDRequest) (*Order, error)
	StartProduction(context.Context, *OrderIDRequest) (*Order, error)
	FinishProduction(context.Context, *FinishProductionRequest) (*FinishProductionResponse, error)
}

// UnimplementedOrderServiceServer answers every method with codes.Unimplemented.
type UnimplementedOrderServiceServer struct{}

func (UnimplementedOrderServiceServer) CreateOrder(context.Context, *CreateOrderRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method CreateOrder not implemented")
}

func (UnimplementedOrderServiceServer) GetOrder(context.Context, *OrderIDRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method GetOrder not implemented")
}

func (UnimplementedOrderServiceServer) ListOrders(context.Context, *ListOrdersRequest) (*ListOrdersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListOrders not implemented")
}

func (UnimplementedOrderServiceServer) CheckAvailability(context.Context, *OrderIDRequest) (*AvailabilityResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CheckAvailability not implemented")
}

func (UnimplementedOrderServiceServer) AcceptOrder(context.Context, *OrderIDRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method AcceptOrder not implemented")
}

func (UnimplementedOrderServiceServer) MarkPaid(context.Context, *OrderIDRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method MarkPaid not implemented")
}

func (UnimplementedOrderServiceServer) CancelOrder(context.Context, *OrderIDRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method CancelOrder not implemented")
}

func (UnimplementedOrderServiceServer) StartProduction(context.Context, *OrderIDRequest) (*Order, error) {
	return nil, status.Error(codes.Unimplemented, "method StartProduction not implemented")
}

func (UnimplementedOrderServiceServer) FinishProduction(context.Context, *FinishProductionRequest) (*FinishProductionResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method FinishProduction not implemented")
}

var OrderService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: OrderServiceName,
	HandlerType: (*OrderServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(OrderServiceName, "CreateOrder", OrderServiceServer.CreateOrder),
		rpc.Unary(OrderServiceName, "GetOrder", OrderServiceServer.GetOrder),
		rpc.Unary(OrderServiceName, "ListOrders", OrderServiceServer.ListOrders),
		rpc.Unary(OrderServiceName, "CheckAvailability", OrderServiceServer.CheckAvailability),
		rpc.Unary(OrderServiceName, "AcceptOrder", OrderServiceServer.AcceptOrder),
		rpc.Unary(OrderServiceName, "MarkPaid", OrderServiceServer.MarkPaid),
		rpc.Unary(OrderServiceName, "CancelOrder", OrderServiceServer.CancelOrder),
		rpc.Unary(OrderServiceName, "StartProduction", OrderServiceServer.StartProduction),
		rpc.Unary(OrderServiceName, "FinishProduction", OrderServiceServer.FinishProduction),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/fulfillment/v1/fulfillment.proto",
}

func RegisterOrderServiceServer(s grpc.ServiceRegistrar, srv OrderServiceServer) {
	s.RegisterService(&OrderService_ServiceDesc, srv)
}

type OrderServiceClient interface {
	CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*Order, error)
	GetOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error)
	ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error)
	CheckAvailability(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*AvailabilityResponse, error)
	AcceptOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error)
	MarkPaid(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error)
	CancelOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error)
	StartProduction(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error)
	FinishProduction(ctx context.Context, in *FinishProductionRequest, opts ...grpc.CallOption) (*FinishProductionResponse, error)
}

type orderServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewOrderServiceClient(cc grpc.ClientConnInterface) OrderServiceClient {
	return &orderServiceClient{cc: cc}
}

func (c *orderServiceClient) CreateOrder(ctx context.Context, in *CreateOrderRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[CreateOrderRequest, Order](ctx, c.cc, OrderServiceName, "CreateOrder", in, opts...)
}

func (c *orderServiceClient) GetOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[OrderIDRequest, Order](ctx, c.cc, OrderServiceName, "GetOrder", in, opts...)
}

func (c *orderServiceClient) ListOrders(ctx context.Context, in *ListOrdersRequest, opts ...grpc.CallOption) (*ListOrdersResponse, error) {
	return rpc.Invoke[ListOrdersRequest, ListOrdersResponse](ctx, c.cc, OrderServiceName, "ListOrders", in, opts...)
}

func (c *orderServiceClient) CheckAvailability(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*AvailabilityResponse, error) {
	return rpc.Invoke[OrderIDRequest, AvailabilityResponse](ctx, c.cc, OrderServiceName, "CheckAvailability", in, opts...)
}

func (c *orderServiceClient) AcceptOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[OrderIDRequest, Order](ctx, c.cc, OrderServiceName, "AcceptOrder", in, opts...)
}

func (c *orderServiceClient) MarkPaid(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[OrderIDRequest, Order](ctx, c.cc, OrderServiceName, "MarkPaid", in, opts...)
}

func (c *orderServiceClient) CancelOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[OrderIDRequest, Order](ctx, c.cc, OrderServiceName, "CancelOrder", in, opts...)
}

func (c *orderServiceClient) StartProduction(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Order, error) {
	return rpc.Invoke[OrderIDRequest, Order](ctx, c.cc, OrderServiceName, "StartProduction", in, opts...)
}

func (c *orderServiceClient) FinishProduction(ctx context.Context, in *FinishProductionRequest, opts ...grpc.CallOption) (*FinishProductionResponse, error) {
	return rpc.Invoke[FinishProductionRequest, FinishProductionResponse](ctx, c.cc, OrderServiceName, "FinishProduction", in, opts...)
}

// QualityService

const QualityServiceName = packageName + ".QualityService"

type QualityServiceServer interface {
	GetQARecord(context.Context, *QAIDRequest) (*QARecord, error)
	ListQARecords(context.Context, *ListQARecordsRequest) (*ListQARecordsResponse, error)
	PassQA(context.Context, *PassQARequest) (*PassQAResponse, error)
	FailQA(context.Context, *FailQARequest) (*QARecord, error)
}

// UnimplementedQualityServiceServer answers every method with codes.Unimplemented.
type UnimplementedQualityServiceServer struct{}

func (UnimplementedQualityServiceServer) GetQARecord(context.Context, *QAIDRequest) (*QARecord, error) {
	return nil, status.Error(codes.Unimplemented, "method GetQARecord not implemented")
}

func (UnimplementedQualityServiceServer) ListQARecords(context.Context, *ListQARecordsRequest) (*ListQARecordsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListQARecords not implemented")
}

func (UnimplementedQualityServiceServer) PassQA(context.Context, *PassQARequest) (*PassQAResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method PassQA not implemented")
}

func (UnimplementedQualityServiceServer) FailQA(context.Context, *FailQARequest) (*QARecord, error) {
	return nil, status.Error(codes.Unimplemented, "method FailQA not implemented")
}

var QualityService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: QualityServiceName,
	HandlerType: (*QualityServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(QualityServiceName, "GetQARecord", QualityServiceServer.GetQARecord),
		rpc.Unary(QualityServiceName, "ListQARecords", QualityServiceServer.ListQARecords),
		rpc.Unary(QualityServiceName, "PassQA", QualityServiceServer.PassQA),
		rpc.Unary(QualityServiceName, "FailQA", QualityServiceServer.FailQA),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/fulfillment/v1/fulfillment.proto",
}

func RegisterQualityServiceServer(s grpc.ServiceRegistrar, srv QualityServiceServer) {
	s.RegisterService(&QualityService_ServiceDesc, srv)
}

type QualityServiceClient interface {
	GetQARecord(ctx context.Context, in *QAIDRequest, opts ...grpc.CallOption) (*QARecord, error)
	ListQARecords(ctx context.Context, in *ListQARecordsRequest, opts ...grpc.CallOption) (*ListQARecordsResponse, error)
	PassQA(ctx context.Context, in *PassQARequest, opts ...grpc.CallOption) (*PassQAResponse, error)
	FailQA(ctx context.Context, in *FailQARequest, opts ...grpc.CallOption) (*QARecord, error)
}

type qualityServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewQualityServiceClient(cc grpc.ClientConnInterface) QualityServiceClient {
	return &qualityServiceClient{cc: cc}
}

func (c *qualityServiceClient) GetQARecord(ctx context.Context, in *QAIDRequest, opts ...grpc.CallOption) (*QARecord, error) {
	return rpc.Invoke[QAIDRequest, QARecord](ctx, c.cc, QualityServiceName, "GetQARecord", in, opts...)
}

func (c *qualityServiceClient) ListQARecords(ctx context.Context, in *ListQARecordsRequest, opts ...grpc.CallOption) (*ListQARecordsResponse, error) {
	return rpc.Invoke[ListQARecordsRequest, ListQARecordsResponse](ctx, c.cc, QualityServiceName, "ListQARecords", in, opts...)
}

func (c *qualityServiceClient) PassQA(ctx context.Context, in *PassQARequest, opts ...grpc.CallOption) (*PassQAResponse, error) {
	return rpc.Invoke[PassQARequest, PassQAResponse](ctx, c.cc, QualityServiceName, "PassQA", in, opts...)
}

func (c *qualityServiceClient) FailQA(ctx context.Context, in *FailQARequest, opts ...grpc.CallOption) (*QARecord, error) {
	return rpc.Invoke[FailQARequest, QARecord](ctx, c.cc, QualityServiceName, "FailQA", in, opts...)
}

// ShipmentService

const ShipmentServiceName = packageName + ".ShipmentService"

type ShipmentServiceServer interface {
	GetShipment(context.Context, *ShipmentIDRequest) (*Shipment, error)
	GetShipmentByOrder(context.Context, *OrderIDRequest) (*Shipment, error)
	ListShipments(context.Context, *ListShipmentsRequest) (*ListShipmentsResponse, error)
}

// UnimplementedShipmentServiceServer answers every method with codes.Unimplemented.
type UnimplementedShipmentServiceServer struct{}

func (UnimplementedShipmentServiceServer) GetShipment(context.Context, *ShipmentIDRequest) (*Shipment, error) {
	return nil, status.Error(codes.Unimplemented, "method GetShipment not implemented")
}

func (UnimplementedShipmentServiceServer) GetShipmentByOrder(context.Context, *OrderIDRequest) (*Shipment, error) {
	return nil, status.Error(codes.Unimplemented, "method GetShipmentByOrder not implemented")
}

func (UnimplementedShipmentServiceServer) ListShipments(context.Context, *ListShipmentsRequest) (*ListShipmentsResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListShipments not implemented")
}

var ShipmentService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: ShipmentServiceName,
	HandlerType: (*ShipmentServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(ShipmentServiceName, "GetShipment", ShipmentServiceServer.GetShipment),
		rpc.Unary(ShipmentServiceName, "GetShipmentByOrder", ShipmentServiceServer.GetShipmentByOrder),
		rpc.Unary(ShipmentServiceName, "ListShipments", ShipmentServiceServer.ListShipments),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/fulfillment/v1/fulfillment.proto",
}

func RegisterShipmentServiceServer(s grpc.ServiceRegistrar, srv ShipmentServiceServer) {
	s.RegisterService(&ShipmentService_ServiceDesc, srv)
}

type ShipmentServiceClient interface {
	GetShipment(ctx context.Context, in *ShipmentIDRequest, opts ...grpc.CallOption) (*Shipment, error)
	GetShipmentByOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Shipment, error)
	ListShipments(ctx context.Context, in *ListShipmentsRequest, opts ...grpc.CallOption) (*ListShipmentsResponse, error)
}

type shipmentServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewShipmentServiceClient(cc grpc.ClientConnInterface) ShipmentServiceClient {
	return &shipmentServiceClient{cc: cc}
}

func (c *shipmentServiceClient) GetShipment(ctx context.Context, in *ShipmentIDRequest, opts ...grpc.CallOption) (*Shipment, error) {
	return rpc.Invoke[ShipmentIDRequest, Shipment](ctx, c.cc, ShipmentServiceName, "GetShipment", in, opts...)
}

func (c *shipmentServiceClient) GetShipmentByOrder(ctx context.Context, in *OrderIDRequest, opts ...grpc.CallOption) (*Shipment, error) {
	return rpc.Invoke[OrderIDRequest, Shipment](ctx, c.cc, ShipmentServiceName, "GetShipmentByOrder", in, opts...)
}

func (c *shipmentServiceClient) ListShipments(ctx context.Context, in *ListShipmentsRequest, opts ...grpc.CallOption) (*ListShipmentsResponse, error) {
	return rpc.Invoke[ListShipmentsRequest, ListShipmentsResponse](ctx, c.cc, ShipmentServiceName, "ListShipments", in, opts...)
}

// GrievanceService

const GrievanceServiceName = packageName + ".GrievanceService"

type GrievanceServiceServer interface {
	ListGrievances(context.Context, *ListGrievancesRequest) (*ListGrievancesResponse, error)
}

// UnimplementedGrievanceServiceServer answers every method with codes.Unimplemented.
type UnimplementedGrievanceServiceServer struct{}

func (UnimplementedGrievanceServiceServer) ListGrievances(context.Context, *ListGrievancesRequest) (*ListGrievancesResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListGrievances not implemented")
}

var GrievanceService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: GrievanceServiceName,
	HandlerType: (*GrievanceServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(GrievanceServiceName, "ListGrievances", GrievanceServiceServer.ListGrievances),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/fulfillment/v1/fulfillment.proto",
}

func RegisterGrievanceServiceServer(s grpc.ServiceRegistrar, srv GrievanceServiceServer) {
	s.RegisterService(&GrievanceService_ServiceDesc, srv)
}

type GrievanceServiceClient interface {
	ListGrievances(ctx context.Context, in *ListGrievancesRequest, opts ...grpc.CallOption) (*ListGrievancesResponse, error)
}

type grievanceServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewGrievanceServiceClient(cc grpc.ClientConnInterface) GrievanceServiceClient {
	return &grievanceServiceClient{cc: cc}
}

func (c *grievanceServiceClient) ListGrievances(ctx context.Context, in *ListGrievancesRequest, opts ...grpc.CallOption) (*ListGrievancesResponse, error) {
	return rpc.Invoke[ListGrievancesRequest, ListGrievancesResponse](ctx, c.cc, GrievanceServiceName, "ListGrievances", in, opts...)
}

// PurchasingService

const PurchasingServiceName = packageName + ".PurchasingService"

type PurchasingServiceServer interface {
	CreatePurchaseOrders(context.Context, *CreatePurchaseOrdersRequest) (*PurchaseOrdersResponse, error)
	ListOpenPurchaseOrders(context.Context, *Empty) (*PurchaseOrdersResponse, error)
	ReceivePurchaseOrder(context.Context, *ReceivePurchaseOrderRequest) (*ReceivePurchaseOrderResponse, error)
}

// UnimplementedPurchasingServiceServer answers every method with codes.Unimplemented.
type UnimplementedPurchasingServiceServer struct{}

func (UnimplementedPurchasingServiceServer) CreatePurchaseOrders(context.Context, *CreatePurchaseOrdersRequest) (*PurchaseOrdersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method CreatePurchaseOrders not implemented")
}

func (UnimplementedPurchasingServiceServer) ListOpenPurchaseOrders(context.Context, *Empty) (*PurchaseOrdersResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ListOpenPurchaseOrders not implemented")
}

func (UnimplementedPurchasingServiceServer) ReceivePurchaseOrder(context.Context, *ReceivePurchaseOrderRequest) (*ReceivePurchaseOrderResponse, error) {
	return nil, status.Error(codes.Unimplemented, "method ReceivePurchaseOrder not implemented")
}

var PurchasingService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: PurchasingServiceName,
	HandlerType: (*PurchasingServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		rpc.Unary(PurchasingServiceName, "CreatePurchaseOrders", PurchasingServiceServer.CreatePurchaseOrders),
		rpc.Unary(PurchasingServiceName, "ListOpenPurchaseOrders", PurchasingServiceServer.ListOpenPurchaseOrders),
		rpc.Unary(PurchasingServiceName, "ReceivePurchaseOrder", PurchasingServiceServer.ReceivePurchaseOrder),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "omnipos/fulfillment/v1/fulfillment.proto",
}

func RegisterPurchasingServiceServer(s grpc.ServiceRegistrar, srv PurchasingServiceServer) {
	s.RegisterService(&PurchasingService_ServiceDesc, srv)
}

type PurchasingServiceClient interface {
	CreatePurchaseOrders(ctx context.Context, in *CreatePurchaseOrdersRequest, opts ...grpc.CallOption) (*PurchaseOrdersResponse, error)
	ListOpenPurchaseOrders(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PurchaseOrdersResponse, error)
	ReceivePurchaseOrder(ctx context.Context, in *ReceivePurchaseOrderRequest, opts ...grpc.CallOption) (*ReceivePurchaseOrderResponse, error)
}

type purchasingServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPurchasingServiceClient(cc grpc.ClientConnInterface) PurchasingServiceClient {
	return &purchasingServiceClient{cc: cc}
}

func (c *purchasingServiceClient) CreatePurchaseOrders(ctx context.Context, in *CreatePurchaseOrdersRequest, opts ...grpc.CallOption) (*PurchaseOrdersResponse, error) {
	return rpc.Invoke[CreatePurchaseOrdersRequest, PurchaseOrdersResponse](ctx, c.cc, PurchasingServiceName, "CreatePurchaseOrders", in, opts...)
}

func (c *purchasingServiceClient) ListOpenPurchaseOrders(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*PurchaseOrdersResponse, error) {
	return rpc.Invoke[Empty, PurchaseOrdersResponse](ctx, c.cc, PurchasingServiceName, "ListOpenPurchaseOrders", in, opts...)
}

func (c *purchasingServiceClient) ReceivePurchaseOrder(ctx context.Context, in *ReceivePurchaseOrderRequest, opts ...grpc.CallOption) (*ReceivePurchaseOrderResponse, error) {
	return rpc.Invoke[ReceivePurchaseOrderRequest, ReceivePurchaseOrderResponse](ctx, c.cc, PurchasingServiceName, "ReceivePurchaseOrder", in, opts...)
}
