package controllers

import (
	"encoding/json"
	"net/http"

	"go-postgres-restopos/config"
	"go-postgres-restopos/models"
	"go-postgres-restopos/realtime"
	"go-postgres-restopos/service"

	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func GetAllMenu(c *gin.Context) {
	var items []models.MenuItem
	if err := config.DB.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data menu", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func GetMenuCategories(c *gin.Context) {
	var setting models.Setting
	categories := []string{}
	if err := config.DB.First(&setting, "key = ?", "menu_categories").Error; err == nil {
		_ = json.Unmarshal([]byte(setting.Value), &categories)
	}
	c.JSON(http.StatusOK, gin.H{"categories": categories})
}

func GetMenuByID(c *gin.Context) {
	var item models.MenuItem
	if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Menu tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, item)
}

type menuItemInput struct {
	Name        string   `json:"name" binding:"required"`
	Category    string   `json:"category" binding:"required"`
	Price       string   `json:"price" binding:"required"`
	Cost        string   `json:"cost" binding:"required"`
	Available   *bool    `json:"available"`
	IsVeg       *bool    `json:"isVeg"`
	Variants    []string `json:"variants"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

func CreateMenuItem(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in menuItemInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		price, err := decimal.NewFromString(in.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Harga tidak valid"})
			return
		}
		cost, err := decimal.NewFromString(in.Cost)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Harga modal tidak valid"})
			return
		}

		item := models.MenuItem{
			Name:        in.Name,
			Category:    in.Category,
			Price:       price.Round(2).StringFixed(2),
			Cost:        cost.Round(2).StringFixed(2),
			Available:   true,
			IsVeg:       true,
			Variants:    pq.StringArray(in.Variants),
			Image:       in.Image,
			Description: in.Description,
		}
		if in.Available != nil {
			item.Available = *in.Available
		}
		if in.IsVeg != nil {
			item.IsVeg = *in.IsVeg
		}

		if err := config.DB.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat menu", "error": err.Error()})
			return
		}

		hub.Broadcast("menu_updated", item)
		c.JSON(http.StatusOK, item)
	}
}

func UpdateMenuItem(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var item models.MenuItem
		if err := config.DB.First(&item, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu tidak ditemukan"})
			return
		}

		var in struct {
			Name        *string  `json:"name"`
			Category    *string  `json:"category"`
			Price       *string  `json:"price"`
			Cost        *string  `json:"cost"`
			Available   *bool    `json:"available"`
			IsVeg       *bool    `json:"isVeg"`
			Variants    []string `json:"variants"`
			Image       *string  `json:"image"`
			Description *string  `json:"description"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		updates := map[string]any{}
		if in.Name != nil {
			updates["name"] = *in.Name
		}
		if in.Category != nil {
			updates["category"] = *in.Category
		}
		if in.Price != nil {
			price, err := decimal.NewFromString(*in.Price)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Harga tidak valid"})
				return
			}
			updates["price"] = price.Round(2).StringFixed(2)
		}
		if in.Cost != nil {
			cost, err := decimal.NewFromString(*in.Cost)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Harga modal tidak valid"})
				return
			}
			updates["cost"] = cost.Round(2).StringFixed(2)
		}
		if in.Available != nil {
			updates["available"] = *in.Available
		}
		if in.IsVeg != nil {
			updates["is_veg"] = *in.IsVeg
		}
		if in.Variants != nil {
			updates["variants"] = pq.StringArray(in.Variants)
		}
		if in.Image != nil {
			updates["image"] = *in.Image
		}
		if in.Description != nil {
			updates["description"] = *in.Description
		}
		if len(updates) > 0 {
			if err := config.DB.Model(&item).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update menu", "error": err.Error()})
				return
			}
		}

		hub.Broadcast("menu_updated", item)
		c.JSON(http.StatusOK, item)
	}
}

func DeleteMenuItem(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res := config.DB.Delete(&models.MenuItem{}, "id = ?", id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal hapus menu", "error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Menu tidak ditemukan"})
			return
		}

		hub.Broadcast("menu_deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// SyncFromMongoDB mengganti seluruh menu lokal dengan hasil import dari
// MongoDB milik operator (URI dari setting mongodb_uri).
func SyncFromMongoDB(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var setting models.Setting
		if err := config.DB.First(&setting, "key = ?", "mongodb_uri").Error; err != nil || setting.Value == "" {
			c.JSON(http.StatusBadRequest, gin.H{"message": "MongoDB URI belum dikonfigurasi"})
			return
		}

		var in struct {
			DatabaseName string `json:"databaseName"`
		}
		_ = c.ShouldBindJSON(&in) // body opsional

		items, categories, err := service.FetchMenuFromMongo(c.Request.Context(), setting.Value, in.DatabaseName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal sync dari MongoDB", "error": err.Error()})
			return
		}

		rawCategories, _ := json.Marshal(categories)

		var created []models.MenuItem
		err = config.DB.Transaction(func(tx *gorm.DB) error {
			// 1) kosongkan menu lama
			if err := tx.Where("1 = 1").Delete(&models.MenuItem{}).Error; err != nil {
				return err
			}
			// 2) masukkan hasil import
			for i := range items {
				if err := tx.Create(&items[i]).Error; err != nil {
					return err
				}
				created = append(created, items[i])
			}
			// 3) simpan daftar kategori
			return tx.Save(&models.Setting{Key: "menu_categories", Value: string(rawCategories)}).Error
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan hasil sync", "error": err.Error()})
			return
		}

		hub.Broadcast("menu_synced", gin.H{"count": len(created)})
		c.JSON(http.StatusOK, gin.H{
			"success":       true,
			"itemsImported": len(created),
			"items":         created,
		})
	}
}
