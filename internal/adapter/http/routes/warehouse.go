package routes

import (
	"github.com/gin-gonic/gin"
)

const (
	PathSuppliers = "/suppliers"
	PathClients   = "/clients"
	PathFurniture = "/furniture"
	PathOrders    = "/orders"
	PathDashboard = "/dashboard"
)

func addWarehouseRoutes(rg *gin.RouterGroup, h Handlers) {
	suppliers := rg.Group(PathSuppliers)
	{
		suppliers.GET("", h.Supplier.List)
		suppliers.GET("/:id", h.Supplier.Get)
		suppliers.POST("", h.Supplier.Create)
		suppliers.PUT("/:id", h.Supplier.Update)
		suppliers.DELETE("/:id", h.Supplier.Delete)
	}

	clients := rg.Group(PathClients)
	{
		clients.GET("", h.Client.List)
		clients.GET("/:id", h.Client.Get)
		clients.POST("", h.Client.Create)
		clients.PUT("/:id", h.Client.Update)
		clients.DELETE("/:id", h.Client.Delete)
	}

	furniture := rg.Group(PathFurniture)
	{
		furniture.GET("", h.Furniture.List)
		furniture.GET("/:id", h.Furniture.Get)
		furniture.POST("", h.Furniture.Create)
		furniture.PUT("/:id", h.Furniture.Update)
		furniture.PATCH("/:id/quantity", h.Furniture.UpdateQuantity)
		furniture.DELETE("/:id", h.Furniture.Delete)
	}

	orders := rg.Group(PathOrders)
	{
		orders.GET("", h.Order.List)
		orders.GET("/:id", h.Order.Get)
		orders.POST("", h.Order.Create)
		orders.PATCH("/:id/status", h.Order.UpdateStatus)
		orders.DELETE("/:id", h.Order.Delete)
	}

	rg.GET(PathDashboard, h.Dashboard.Stats)
}
