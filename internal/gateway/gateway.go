// Package gateway exposes the fulfillment usecases over HTTP/JSON.
package gateway

import (
	"github.com/fekuna/omnipos-fulfillment-service/internal/grievance"
	"github.com/fekuna/omnipos-fulfillment-service/internal/inventory"
	"github.com/fekuna/omnipos-fulfillment-service/internal/order"
	"github.com/fekuna/omnipos-fulfillment-service/internal/purchasing"
	"github.com/fekuna/omnipos-fulfillment-service/internal/quality"
	"github.com/fekuna/omnipos-fulfillment-service/internal/shipment"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/logger"
	"github.com/fekuna/omnipos-fulfillment-service/pkg/middleware"
	"github.com/gin-gonic/gin"
)

type Services struct {
	Inventory  inventory.UseCase
	Orders     order.UseCase
	Quality    quality.UseCase
	Shipments  shipment.UseCase
	Grievances grievance.UseCase
	Purchasing purchasing.UseCase
}

type Handler struct {
	svc Services
}

func NewRouter(svc Services, log logger.ZapLogger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestID(), middleware.HTTPLogger(log))

	h := &Handler{svc: svc}

	r.GET("/healthz", func(c *gin.Context) { Success(c, gin.H{"status": "ok"}) })

	api := r.Group("/api")
	{
		inv := api.Group("/inventory")
		inv.GET("", h.ListMaterials)
		inv.GET("/on-hand", h.GetOnHand)
		inv.GET("/low-stock", h.ListLowStock)
		inv.GET("/movements", h.ListMovements)
		inv.POST("/restock", h.Restock)

		orders := api.Group("/orders")
		orders.POST("", h.CreateOrder)
		orders.GET("", h.ListOrders)
		orders.GET("/:id", h.GetOrder)
		orders.GET("/:id/availability", h.CheckAvailability)
		orders.GET("/:id/shipment", h.GetShipmentByOrder)
		orders.POST("/accept", h.AcceptOrder)
		orders.POST("/:id/cancel", h.CancelOrder)

		api.POST("/pay", h.MarkPaid)

		production := api.Group("/production")
		production.POST("/start", h.StartProduction)
		production.POST("/finish", h.FinishProduction)

		qa := api.Group("/qa")
		qa.GET("", h.ListQARecords)
		qa.GET("/:id", h.GetQARecord)
		qa.POST("/pass", h.PassQA)
		qa.POST("/fail", h.FailQA)

		shipping := api.Group("/shipping")
		shipping.GET("", h.ListShipments)
		shipping.GET("/:id", h.GetShipment)

		api.GET("/grievance", h.ListGrievances)

		po := api.Group("/purchase_order")
		po.GET("", h.ListOpenPurchaseOrders)
		po.POST("", h.CreatePurchaseOrders)
		po.POST("/receive", h.ReceivePurchaseOrder)
	}

	return r
}
