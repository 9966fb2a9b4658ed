package controllers

import (
	"net/http"
	"time"

	"go-postgres-restopos/config"
	"go-postgres-restopos/models"
	"go-postgres-restopos/realtime"
	"go-postgres-restopos/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

func GetAllInvoices(c *gin.Context) {
	var invoices []models.Invoice
	if err := config.DB.Order("created_at DESC").Find(&invoices).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data invoice", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, invoices)
}

func GetInvoiceByID(c *gin.Context) {
	var invoice models.Invoice
	if err := config.DB.First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

func GetInvoiceByNumber(c *gin.Context) {
	var invoice models.Invoice
	if err := config.DB.First(&invoice, "invoice_number = ?", c.Param("invoiceNumber")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Invoice tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, invoice)
}

// CreateInvoice membuat invoice manual (di luar jalur checkout), misalnya
// koreksi admin. Angka divalidasi sebagai decimal, nomor tetap lewat unique
// index.
func CreateInvoice(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			InvoiceNumber string               `json:"invoiceNumber" binding:"required"`
			OrderID       string               `json:"orderId" binding:"required"`
			TableNumber   *string              `json:"tableNumber"`
			FloorName     *string              `json:"floorName"`
			CustomerName  *string              `json:"customerName"`
			CustomerPhone *string              `json:"customerPhone"`
			Subtotal      string               `json:"subtotal" binding:"required"`
			Tax           string               `json:"tax" binding:"required"`
			Discount      *string              `json:"discount"`
			Total         string               `json:"total" binding:"required"`
			PaymentMode   string               `json:"paymentMode" binding:"required"`
			SplitPayments *string              `json:"splitPayments"`
			Status        models.InvoiceStatus `json:"status"`
			Items         string               `json:"items" binding:"required"`
			Notes         *string              `json:"notes"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		for _, v := range []string{in.Subtotal, in.Tax, in.Total} {
			if _, err := decimal.NewFromString(v); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Nominal invoice tidak valid"})
				return
			}
		}

		status := in.Status
		if status == "" {
			status = models.InvoicePaid
		}
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status invoice tidak valid"})
			return
		}

		discount := "0.00"
		if in.Discount != nil {
			d, err := decimal.NewFromString(*in.Discount)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Diskon tidak valid"})
				return
			}
			discount = d.StringFixed(2)
		}

		invoice := models.Invoice{
			InvoiceNumber: in.InvoiceNumber,
			OrderID:       in.OrderID,
			TableNumber:   in.TableNumber,
			FloorName:     in.FloorName,
			CustomerName:  in.CustomerName,
			CustomerPhone: in.CustomerPhone,
			Subtotal:      in.Subtotal,
			Tax:           in.Tax,
			Discount:      discount,
			Total:         in.Total,
			PaymentMode:   in.PaymentMode,
			SplitPayments: in.SplitPayments,
			Status:        status,
			Items:         in.Items,
			Notes:         in.Notes,
		}
		if err := config.DB.Create(&invoice).Error; err != nil {
			if utils.IsUniqueViolation(err) {
				c.JSON(http.StatusConflict, gin.H{"message": "Nomor invoice sudah dipakai"})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat invoice", "error": err.Error()})
			return
		}

		hub.Broadcast("invoice_created", invoice)
		c.JSON(http.StatusOK, invoice)
	}
}

func UpdateInvoice(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var invoice models.Invoice
		if err := config.DB.First(&invoice, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invoice tidak ditemukan"})
			return
		}

		var in struct {
			Status      *models.InvoiceStatus `json:"status"`
			PaymentMode *string               `json:"paymentMode"`
			Notes       *string               `json:"notes"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		updates := map[string]any{"updated_at": time.Now().UTC()}
		if in.Status != nil {
			if !in.Status.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Status invoice tidak valid"})
				return
			}
			updates["status"] = *in.Status
		}
		if in.PaymentMode != nil {
			updates["payment_mode"] = *in.PaymentMode
		}
		if in.Notes != nil {
			updates["notes"] = *in.Notes
		}

		if err := config.DB.Model(&invoice).Updates(updates).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update invoice", "error": err.Error()})
			return
		}

		hub.Broadcast("invoice_updated", invoice)
		c.JSON(http.StatusOK, invoice)
	}
}

func DeleteInvoice(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.Param("id")
		res := config.DB.Delete(&models.Invoice{}, "id = ?", id)
		if res.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghapus invoice", "error": res.Error.Error()})
			return
		}
		if res.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"message": "Invoice tidak ditemukan"})
			return
		}

		hub.Broadcast("invoice_deleted", gin.H{"id": id})
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}
