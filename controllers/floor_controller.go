package controllers

import (
	"net/http"

	"go-postgres-restopos/config"
	"go-postgres-restopos/models"
	"go-postgres-restopos/realtime"

	"github.com/gin-gonic/gin"
)

func GetAllFloors(c *gin.Context) {
	var floors []models.Floor
	if err := config.DB.Order("display_order ASC").Find(&floors).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data lantai", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, floors)
}

func GetFloorByID(c *gin.Context) {
	var floor models.Floor
	if err := config.DB.First(&floor, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Lantai tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, floor)
}

func CreateFloor(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Name         string `json:"name" binding:"required"`
			DisplayOrder int    `json:"displayOrder"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		floor := models.Floor{Name: in.Name, DisplayOrder: in.DisplayOrder}
		if err := config.DB.Create(&floor).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat lantai", "error": err.Error()})
			return
		}

		hub.Broadcast("floor_created", floor)
		c.JSON(http.StatusOK, floor)
	}
}

func UpdateFloor(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var floor models.Floor
		if err := config.DB.First(&floor, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Lantai tidak ditemukan"})
			return
		}

		var in struct {
			Name         *string `json:"name"`
			DisplayOrder *int    `json:"displayOrder"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		updates := map[string]any{}
		if in.Name != nil {
			updates["name"] = *in.Name
		}
		if in.DisplayOrder != nil {
			updates["display_order"] = *in.DisplayOrder
		}
		if len(updates) > 0 {
			if err := config.DB.Model(&floor).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update lantai", "error": err.Error()})
				return
			}
		}

		hub.Broadcast("floor_updated", floor)
		c.JSON(http.StatusOK, floor)
	}
}

func DeleteFloor(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")

		var floor models.Floor
		if err := config.DB.First(&floor, "id = ?", id).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Lantai tidak ditemukan"})
			return
		}

		// lantai yang masih punya meja tidak boleh dihapus
		var tables int64
		config.DB.Model(&models.Table{}).Where("floor_id = ?", id).Count(&tables)
		if tables > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "Lantai masih dipakai meja", "tables": tables})
			return
		}

		if err := config.DB.Delete(&floor).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal hapus lantai", "error": err.Error()})
			return
		}

		hub.Broadcast("floor_deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
