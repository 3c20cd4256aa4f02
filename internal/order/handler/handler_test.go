package handler

import (
	"context"
	"net"
	"testing"
	"time"

	fulfillmentv1 "github.com/fekuna/omnipos-fulfillment-service/api/fulfillmentv1"
	catalogusecase "github.com/fekuna/omnipos-fulfillment-service/internal/catalog/usecase"
	inventoryusecase "github.com/fekuna/omnipos-fulfillment-service/internal/inventory/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/memstore"
	"github.com/fekuna/omnipos-fulfillment-service/internal/model"
	orderusecase "github.com/fekuna/omnipos-fulfillment-service/internal/order/usecase"
	"github.com/fekuna/omnipos-fulfillment-service/internal/requirement"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
)

func newClient(t *testing.T) (fulfillmentv1.OrderServiceClient, *memstore.Store) {
	t.Helper()

	store := memstore.New()
	log := logger.NewNop()
	inv := inventoryusecase.NewInventoryUseCase(store.Inventory(), nil, log, 100)
	store.Catalog().Seed(model.Product{ID: 1, Name: "Gold nib fountain pen", UnitCost: 100, Weights: model.BillOfMaterials{"gold": 2}})

	uc := orderusecase.NewOrderUseCase(orderusecase.Dependencies{
		Orders:     store.Orders(),
		Inventory:  inv,
		Resolver:   requirement.NewResolver(inv, log),
		Catalog:    catalogusecase.NewCatalogUseCase(store.Catalog(), nil, 0, log),
		Quality:    store.Quality(),
		Grievances: store.Grievances(),
		Tx:         store,
		Locker:     memstore.NewLocker(),
		Logger:     log,
		Settings: orderusecase.Settings{
			TaxPercent:     18,
			ProductionDays: 5,
			LockTTL:        time.Second,
		},
	})

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer()
	fulfillmentv1.RegisterOrderServiceServer(srv, NewOrderHandler(uc, log))
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) { return lis.DialContext(ctx) }),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("Failed to dial: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	return fulfillmentv1.NewOrderServiceClient(conn), store
}

func TestCreateAndGetOrder(t *testing.T) {
	client, _ := newClient(t)
	ctx := context.Background()

	created, err := client.CreateOrder(ctx, &fulfillmentv1.CreateOrderRequest{CustomerId: 7, ProductId: 1, UnitCount: 10})
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}
	if created.Status != string(model.OrderStatusAwaitingConfirmation) {
		t.Errorf("Expected awaiting_confirmation, got %s", created.Status)
	}
	if created.Subtotal != "1000.00" || created.GrandTotal != "1180.00" {
		t.Errorf("Unexpected totals %s %s", created.Subtotal, created.GrandTotal)
	}
	if created.Bom["gold"] != 2 {
		t.Errorf("Expected bom snapshot, got %v", created.Bom)
	}

	got, err := client.GetOrder(ctx, &fulfillmentv1.OrderIDRequest{Id: created.Id})
	if err != nil {
		t.Fatalf("Failed to get order: %v", err)
	}
	if got.Id != created.Id || got.CustomerId != 7 {
		t.Errorf("Unexpected order %+v", got)
	}
}

func TestErrorCodes(t *testing.T) {
	client, _ := newClient(t)
	ctx := context.Background()

	_, err := client.GetOrder(ctx, &fulfillmentv1.OrderIDRequest{Id: 999})
	if status.Code(err) != codes.NotFound {
		t.Errorf("Expected NotFound, got %v", err)
	}

	_, err = client.CreateOrder(ctx, &fulfillmentv1.CreateOrderRequest{CustomerId: 7, ProductId: 1, UnitCount: 0})
	if status.Code(err) != codes.InvalidArgument {
		t.Errorf("Expected InvalidArgument, got %v", err)
	}

	o, err := client.CreateOrder(ctx, &fulfillmentv1.CreateOrderRequest{CustomerId: 7, ProductId: 1, UnitCount: 5})
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}
	_, err = client.StartProduction(ctx, &fulfillmentv1.OrderIDRequest{Id: o.Id})
	if status.Code(err) != codes.FailedPrecondition {
		t.Errorf("Expected FailedPrecondition before acceptance, got %v", err)
	}
}

func TestStartProductionShortageDetails(t *testing.T) {
	client, store := newClient(t)
	ctx := context.Background()
	store.Inventory().Seed("gold", 4)

	o, err := client.CreateOrder(ctx, &fulfillmentv1.CreateOrderRequest{CustomerId: 7, ProductId: 1, UnitCount: 5})
	if err != nil {
		t.Fatalf("Failed to create order: %v", err)
	}
	if _, err := client.AcceptOrder(ctx, &fulfillmentv1.OrderIDRequest{Id: o.Id}); err != nil {
		t.Fatalf("Failed to accept order: %v", err)
	}

	_, err = client.StartProduction(ctx, &fulfillmentv1.OrderIDRequest{Id: o.Id})
	st, _ := status.FromError(err)
	if st.Code() != codes.ResourceExhausted {
		t.Fatalf("Expected ResourceExhausted, got %v", err)
	}

	var violations []*errdetails.PreconditionFailure_Violation
	for _, d := range st.Details() {
		if pf, ok := d.(*errdetails.PreconditionFailure); ok {
			violations = append(violations, pf.GetViolations()...)
		}
	}
	if len(violations) != 1 || violations[0].GetSubject() != "gold" {
		t.Errorf("Expected one gold violation, got %v", violations)
	}
}
