package routes

import (
	"go-postgres-restopos/controllers"
	"go-postgres-restopos/realtime"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, hub *realtime.Hub) {
	api := r.Group("/api")
	{
		floors := api.Group("/floors")
		{
			floors.GET("", controllers.GetAllFloors)
			floors.GET("/:id", controllers.GetFloorByID)
			floors.POST("", controllers.CreateFloor(hub))
			floors.PATCH("/:id", controllers.UpdateFloor(hub))
			floors.DELETE("/:id", controllers.DeleteFloor(hub))
		}

		tables := api.Group("/tables")
		{
			tables.GET("", controllers.GetAllTables)
			tables.GET("/:id", controllers.GetTableByID)
			tables.POST("", controllers.CreateTable(hub))
			tables.PATCH("/:id", controllers.UpdateTable(hub))
			tables.DELETE("/:id", controllers.DeleteTable(hub))
			tables.PATCH("/:id/status", controllers.UpdateTableStatus(hub))
			tables.PATCH("/:id/order", controllers.UpdateTableOrder(hub))
		}

		menu := api.Group("/menu")
		{
			menu.GET("", controllers.GetAllMenu)
			menu.GET("/categories", controllers.GetMenuCategories)
			menu.GET("/:id", controllers.GetMenuByID)
			menu.POST("", controllers.CreateMenuItem(hub))
			menu.PATCH("/:id", controllers.UpdateMenuItem(hub))
			menu.DELETE("/:id", controllers.DeleteMenuItem(hub))
			menu.POST("/sync-from-mongodb", controllers.SyncFromMongoDB(hub))
		}

		orders := api.Group("/orders")
		{
			orders.GET("", controllers.GetAllOrders)
			orders.GET("/active", controllers.GetActiveOrders)
			orders.GET("/completed", controllers.GetCompletedOrders)
			orders.GET("/:id", controllers.GetOrderByID)
			orders.GET("/:id/items", controllers.GetOrderItemsByOrder)
			orders.POST("", controllers.CreateOrder(hub))
			orders.POST("/:id/items", controllers.AddOrderItem(hub))
			orders.PATCH("/:id/status", controllers.UpdateOrderStatus(hub))
			orders.POST("/:id/kot", controllers.SendToKitchen(hub))
			orders.POST("/:id/save", controllers.SaveOrder(hub))
			orders.POST("/:id/bill", controllers.BillOrder(hub))
			orders.POST("/:id/checkout", controllers.Checkout(hub))
			orders.POST("/:id/complete", controllers.CompleteOrder(hub))
		}

		orderItems := api.Group("/order-items")
		{
			orderItems.PATCH("/:id/status", controllers.UpdateOrderItemStatus(hub))
			orderItems.DELETE("/:id", controllers.DeleteOrderItem(hub))
		}

		inventory := api.Group("/inventory")
		{
			inventory.GET("", controllers.GetAllInventory)
			inventory.POST("", controllers.CreateInventoryItem)
			inventory.PATCH("/:id", controllers.UpdateInventoryQuantity)
		}

		invoices := api.Group("/invoices")
		{
			invoices.GET("", controllers.GetAllInvoices)
			invoices.GET("/:id", controllers.GetInvoiceByID)
			invoices.GET("/number/:invoiceNumber", controllers.GetInvoiceByNumber)
			invoices.POST("", controllers.CreateInvoice(hub))
			invoices.PATCH("/:id", controllers.UpdateInvoice(hub))
			invoices.DELETE("/:id", controllers.DeleteInvoice(hub))
		}

		reservations := api.Group("/reservations")
		{
			reservations.GET("", controllers.GetAllReservations)
			reservations.GET("/:id", controllers.GetReservationByID)
			reservations.GET("/table/:tableId", controllers.GetReservationsByTable)
			reservations.POST("", controllers.CreateReservation(hub))
			reservations.PATCH("/:id", controllers.UpdateReservation(hub))
			reservations.DELETE("/:id", controllers.DeleteReservation(hub))
		}

		settings := api.Group("/settings")
		{
			settings.GET("/mongodb-uri", controllers.GetMongoURI)
			settings.POST("/mongodb-uri", controllers.SetMongoURI)
		}

		users := api.Group("/users")
		{
			users.POST("", controllers.CreateUser)
			users.GET("/:id", controllers.GetUserByID)
		}

		api.GET("/reports/sales", controllers.GetSalesReport)
	}

	r.GET("/ws", controllers.ServeWS(hub))
}
