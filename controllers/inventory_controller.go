package controllers

import (
	"net/http"

	"go-postgres-restopos/config"
	"go-postgres-restopos/models"
	"go-postgres-restopos/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func GetAllInventory(c *gin.Context) {
	var items []models.InventoryItem
	if err := config.DB.Order("name ASC").Find(&items).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal mengambil data inventory", err)
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateInventoryItem(c *gin.Context) {
	var in struct {
		Name        string  `json:"name" binding:"required"`
		Quantity    string  `json:"quantity" binding:"required"`
		Unit        string  `json:"unit" binding:"required"`
		MinQuantity *string `json:"minQuantity"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	qty, err := decimal.NewFromString(in.Quantity)
	if err != nil || qty.IsNegative() {
		utils.Error(c, http.StatusBadRequest, "Jumlah tidak valid", nil)
		return
	}

	item := models.InventoryItem{
		Name:     in.Name,
		Quantity: qty.StringFixed(2),
		Unit:     in.Unit,
	}
	if in.MinQuantity != nil {
		min, err := decimal.NewFromString(*in.MinQuantity)
		if err != nil || min.IsNegative() {
			utils.Error(c, http.StatusBadRequest, "Stok minimum tidak valid", nil)
			return
		}
		v := min.StringFixed(2)
		item.MinQuantity = &v
	}

	if err := config.DB.Create(&item).Error; err != nil {
		if utils.IsUniqueViolation(err) {
			utils.Error(c, http.StatusConflict, "Nama item inventory sudah dipakai", nil)
			return
		}
		utils.Error(c, http.StatusInternalServerError, "Gagal membuat item inventory", err)
		return
	}
	c.JSON(http.StatusOK, item)
}

func UpdateInventoryQuantity(c *gin.Context) {
	var in struct {
		Quantity string `json:"quantity" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		utils.Error(c, http.StatusBadRequest, "Payload tidak valid", err)
		return
	}

	qty, err := decimal.NewFromString(in.Quantity)
	if err != nil || qty.IsNegative() {
		utils.Error(c, http.StatusBadRequest, "Jumlah tidak valid", nil)
		return
	}

	var item models.InventoryItem
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		utils.Error(c, http.StatusNotFound, "Item inventory tidak ditemukan", err)
		return
	}

	if err := config.DB.Model(&item).Update("quantity", qty.StringFixed(2)).Error; err != nil {
		utils.Error(c, http.StatusInternalServerError, "Gagal update jumlah inventory", err)
		return
	}
	c.JSON(http.StatusOK, item)
}
