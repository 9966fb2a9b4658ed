package controllers

import (
	"net/http"

	"go-postgres-restopos/config"
	"go-postgres-restopos/models"
	"go-postgres-restopos/realtime"

	"github.com/gin-gonic/gin"
)

// UpdateOrderItemStatus mengubah status satu item dapur (new -> preparing ->
// ready -> served) lalu menurunkan ulang status meja dari gabungan item.
func UpdateOrderItemStatus(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Status models.OrderItemStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}
		if !in.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status item tidak valid"})
			return
		}

		var item models.OrderItem
		if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item order tidak ditemukan"})
			return
		}

		if err := config.DB.Model(&item).Update("status", in.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update status item", "error": err.Error()})
			return
		}

		var order models.Order
		if err := config.DB.First(&order, "id = ?", item.OrderID).Error; err == nil {
			refreshTableStatus(hub, &order)
		}

		hub.Broadcast("order_item_updated", item)
		c.JSON(http.StatusOK, item)
	}
}

// DeleteOrderItem menghapus item lalu menghitung ulang total order DAN
// status meja — item yang hilang bisa mengubah keduanya.
func DeleteOrderItem(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.OrderItem
		if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Item order tidak ditemukan"})
			return
		}

		if err := config.DB.Delete(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghapus item", "error": err.Error()})
			return
		}

		if err := recalcOrderTotal(item.OrderID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal hitung ulang total", "error": err.Error()})
			return
		}

		var order models.Order
		if err := config.DB.First(&order, "id = ?", item.OrderID).Error; err == nil {
			refreshTableStatus(hub, &order)
		}

		hub.Broadcast("order_item_deleted", gin.H{"id": item.ID, "orderId": item.OrderID})
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
