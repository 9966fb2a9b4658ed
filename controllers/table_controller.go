package controllers

import (
	"net/http"

	"go-postgres-restopos/config"
	"go-postgres-restopos/models"
	"go-postgres-restopos/realtime"
	"go-postgres-restopos/utils"

	"github.com/gin-gonic/gin"
)

func GetAllTables(c *gin.Context) {
	var tables []models.Table
	if err := config.DB.Order("table_number ASC").Find(&tables).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data meja", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tables)
}

func GetTableByID(c *gin.Context) {
	var table models.Table
	if err := config.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Meja tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, table)
}

func CreateTable(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			TableNumber string             `json:"tableNumber" binding:"required"`
			Seats       int                `json:"seats" binding:"required,gt=0"`
			Status      models.TableStatus `json:"status"`
			FloorID     *string            `json:"floorId"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		status := in.Status
		if status == "" {
			status = models.TableFree
		}
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status meja tidak valid"})
			return
		}

		table := models.Table{
			TableNumber: in.TableNumber,
			Seats:       in.Seats,
			Status:      status,
			FloorID:     in.FloorID,
		}
		if err := config.DB.Create(&table).Error; err != nil {
			if utils.IsUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"message": "Nomor meja sudah digunakan"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat meja", "error": err.Error()})
			return
		}

		hub.Broadcast("table_created", table)
		c.JSON(http.StatusOK, table)
	}
}

func UpdateTable(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var table models.Table
		if err := config.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meja tidak ditemukan"})
			return
		}

		var in struct {
			TableNumber *string             `json:"tableNumber"`
			Seats       *int                `json:"seats"`
			Status      *models.TableStatus `json:"status"`
			FloorID     *string             `json:"floorId"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		updates := map[string]any{}
		if in.TableNumber != nil {
			updates["table_number"] = *in.TableNumber
		}
		if in.Seats != nil {
			updates["seats"] = *in.Seats
		}
		if in.Status != nil {
			if !in.Status.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Status meja tidak valid"})
				return
			}
			updates["status"] = *in.Status
		}
		if in.FloorID != nil {
			updates["floor_id"] = *in.FloorID
		}
		if len(updates) > 0 {
			if err := config.DB.Model(&table).Updates(updates).Error; err != nil {
				if utils.IsUniqueViolation(err) {
					c.JSON(http.StatusConflict, gin.H{"message": "Nomor meja sudah digunakan"})
					return
				}
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update meja", "error": err.Error()})
				return
			}
		}

		hub.Broadcast("table_updated", table)
		c.JSON(http.StatusOK, table)
	}
}

func DeleteTable(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res := config.DB.Delete(&models.Table{}, "id = ?", id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal hapus meja", "error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meja tidak ditemukan"})
			return
		}

		hub.Broadcast("table_deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// UpdateTableStatus adalah override manual oleh admin. Jalur normal status
// meja adalah hasil turunan dari status item order.
func UpdateTableStatus(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Status models.TableStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}
		if !in.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status meja tidak valid"})
			return
		}

		var table models.Table
		if err := config.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meja tidak ditemukan"})
			return
		}

		if err := config.DB.Model(&table).Update("status", in.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update status meja", "error": err.Error()})
			return
		}

		hub.Broadcast("table_updated", table)
		c.JSON(http.StatusOK, table)
	}
}

// UpdateTableOrder set/clear referensi order aktif di meja (orderId null
// berarti dilepas).
func UpdateTableOrder(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			OrderID *string `json:"orderId"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		var table models.Table
		if err := config.DB.First(&table, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meja tidak ditemukan"})
			return
		}

		if err := config.DB.Model(&table).Update("current_order_id", in.OrderID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update order meja", "error": err.Error()})
			return
		}

		hub.Broadcast("table_updated", table)
		c.JSON(http.StatusOK, table)
	}
}
