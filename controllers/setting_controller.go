package controllers

import (
	"errors"
	"net/http"

	"go-postgres-restopos/config"
	"go-postgres-restopos/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const settingMongoURI = "mongodb_uri"

// GetMongoURI mengembalikan URI yang tersimpan plus flag hasUri supaya client
// bisa bedakan "belum di-set" dari "kosong".
func GetMongoURI(c *gin.Context) {
	var setting models.Setting
	err := config.DB.First(&setting, "key = ?", settingMongoURI).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusOK, gin.H{"uri": "", "hasUri": false})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil setting", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"uri": setting.Value, "hasUri": setting.Value != ""})
}

func SetMongoURI(c *gin.Context) {
	var in struct {
		URI string `json:"uri" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "URI wajib diisi", "error": err.Error()})
		return
	}

	setting := models.Setting{Key: settingMongoURI, Value: in.URI}
	if err := config.DB.Save(&setting).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyimpan setting", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
