package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go-postgres-restopos/config"
	"go-postgres-restopos/models"
	"go-postgres-restopos/realtime"
	"go-postgres-restopos/service"
	"go-postgres-restopos/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func GetAllOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.Order("created_at DESC").Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data order", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetActiveOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.
		Where("status IN ?", []models.OrderStatus{models.OrderSentToKitchen, models.OrderBilled}).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil order aktif", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetCompletedOrders(c *gin.Context) {
	var orders []models.Order
	if err := config.DB.
		Where("status IN ?", []models.OrderStatus{models.OrderPaid, models.OrderCompleted}).
		Find(&orders).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil order selesai", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func GetOrderByID(c *gin.Context) {
	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, order)
}

func GetOrderItemsByOrder(c *gin.Context) {
	var items []models.OrderItem
	if err := config.DB.Find(&items, "order_id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil item order", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, items)
}

func CreateOrder(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			TableID            *string          `json:"tableId"`
			OrderType          models.OrderType `json:"orderType" binding:"required"`
			CustomerName       *string          `json:"customerName"`
			CustomerPhone      *string          `json:"customerPhone"`
			CustomerAddress    *string          `json:"customerAddress"`
			WaiterID           *string          `json:"waiterId"`
			DeliveryPersonID   *string          `json:"deliveryPersonId"`
			ExpectedPickupTime *time.Time       `json:"expectedPickupTime"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}
		if !in.OrderType.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Tipe order tidak valid"})
			return
		}

		// cek FK meja sebelum dipakai
		var table models.Table
		if in.TableID != nil {
			if err := config.DB.First(&table, "id = ?", *in.TableID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Meja tidak ditemukan"})
				return
			}
		}

		order := models.Order{
			TableID:            in.TableID,
			OrderType:          in.OrderType,
			Status:             models.OrderSaved,
			Total:              "0.00",
			CustomerName:       in.CustomerName,
			CustomerPhone:      in.CustomerPhone,
			CustomerAddress:    in.CustomerAddress,
			WaiterID:           in.WaiterID,
			DeliveryPersonID:   in.DeliveryPersonID,
			ExpectedPickupTime: in.ExpectedPickupTime,
		}
		if err := config.DB.Create(&order).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat order", "error": err.Error()})
			return
		}

		// meja jadi occupied dan pegang referensi order aktif
		if in.TableID != nil {
			if err := config.DB.Model(&table).Updates(map[string]any{
				"current_order_id": order.ID,
				"status":           models.TableOccupied,
			}).Error; err == nil {
				hub.Broadcast("table_updated", table)
			}
		}

		hub.Broadcast("order_created", order)
		c.JSON(http.StatusOK, order)
	}
}

func AddOrderItem(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var order models.Order
		if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order tidak ditemukan"})
			return
		}

		var in struct {
			MenuItemID string                 `json:"menuItemId" binding:"required"`
			Name       string                 `json:"name" binding:"required"`
			Quantity   int                    `json:"quantity" binding:"required,gt=0"`
			Price      string                 `json:"price" binding:"required"`
			Notes      *string                `json:"notes"`
			Status     models.OrderItemStatus `json:"status"`
			IsVeg      *bool                  `json:"isVeg"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		price, err := decimal.NewFromString(in.Price)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Harga tidak valid"})
			return
		}

		status := in.Status
		if status == "" {
			status = models.ItemNew
		}
		if !status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status item tidak valid"})
			return
		}

		item := models.OrderItem{
			OrderID:    orderID,
			MenuItemID: in.MenuItemID,
			Name:       in.Name,
			Quantity:   in.Quantity,
			Price:      price.Round(2).StringFixed(2),
			Notes:      in.Notes,
			Status:     status,
			IsVeg:      true,
		}
		if in.IsVeg != nil {
			item.IsVeg = *in.IsVeg
		}

		if err := config.DB.Create(&item).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menambah item", "error": err.Error()})
			return
		}

		// hitung ulang total order dari semua item saat ini
		if err := recalcOrderTotal(orderID); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal hitung ulang total", "error": err.Error()})
			return
		}

		refreshTableStatus(hub, &order)

		hub.Broadcast("order_item_added", gin.H{"orderId": orderID, "item": item})
		c.JSON(http.StatusOK, item)
	}
}

func UpdateOrderStatus(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			Status models.OrderStatus `json:"status" binding:"required"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}
		if !in.Status.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Status order tidak valid"})
			return
		}

		var order models.Order
		if err := config.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order tidak ditemukan"})
			return
		}

		if err := config.DB.Model(&order).Update("status", in.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update status order", "error": err.Error()})
			return
		}

		hub.Broadcast("order_updated", order)
		c.JSON(http.StatusOK, order)
	}
}

// CompleteOrder menutup order tanpa pembayaran (tutup administratif).
// Meja dibebaskan tanpa syarat.
func CompleteOrder(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var order models.Order
		if err := config.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order tidak ditemukan"})
			return
		}

		now := time.Now().UTC()
		if err := config.DB.Model(&order).Updates(map[string]any{
			"status":       models.OrderCompleted,
			"completed_at": now,
		}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menyelesaikan order", "error": err.Error()})
			return
		}

		if order.TableID != nil {
			freeTable(hub, *order.TableID)
		}

		hub.Broadcast("order_completed", order)
		c.JSON(http.StatusOK, order)
	}
}

type orderActionInput struct {
	Print bool `json:"print"`
}

// SendToKitchen menandai order sent_to_kitchen (KOT). Flag print dikembalikan
// apa adanya — keputusan cetak ada di client, bukan kebijakan server.
func SendToKitchen(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderAction(hub, c, models.OrderSentToKitchen, nil)
	}
}

// SaveOrder menyimpan order sebagai draft (status saved).
func SaveOrder(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderAction(hub, c, models.OrderSaved, nil)
	}
}

// BillOrder menandai order billed + set billed_at.
func BillOrder(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		now := time.Now().UTC()
		orderAction(hub, c, models.OrderBilled, &now)
	}
}

func orderAction(hub *realtime.Hub, c *gin.Context, status models.OrderStatus, billedAt *time.Time) {
	var in orderActionInput
	_ = c.ShouldBindJSON(&in) // body opsional

	var order models.Order
	if err := config.DB.First(&order, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Order tidak ditemukan"})
		return
	}

	updates := map[string]any{"status": status}
	if billedAt != nil {
		updates["billed_at"] = *billedAt
	}
	if err := config.DB.Model(&order).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update order", "error": err.Error()})
		return
	}

	hub.Broadcast("order_updated", order)
	c.JSON(http.StatusOK, gin.H{"order": order, "shouldPrint": in.Print})
}

// Checkout menghitung ulang tagihan dari item saat ini (total dari client
// tidak pernah dipercaya), memvalidasi split payment, menandai order paid,
// membebaskan meja, dan membuat invoice snapshot dengan nomor berurutan.
func Checkout(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		orderID := c.Param("id")

		var in struct {
			PaymentMode   string                `json:"paymentMode"`
			Print         bool                  `json:"print"`
			SplitPayments []models.SplitPayment `json:"splitPayments"`
		}
		_ = c.ShouldBindJSON(&in) // body opsional, default cash tanpa split

		var order models.Order
		if err := config.DB.First(&order, "id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Order tidak ditemukan"})
			return
		}

		var items []models.OrderItem
		if err := config.DB.Find(&items, "order_id = ?", orderID).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil item order", "error": err.Error()})
			return
		}

		bill := service.ComputeBill(items)

		if err := service.ValidateSplitPayments(in.SplitPayments, bill.Total); err != nil {
			switch {
			case errors.Is(err, service.ErrSplitNonPositive):
				c.JSON(http.StatusBadRequest, gin.H{"message": "Nominal split payment harus lebih dari 0"})
			case errors.Is(err, service.ErrSplitMismatch):
				c.JSON(http.StatusConflict, gin.H{
					"message": "Total split payment harus sama dengan total tagihan",
					"total":   bill.Total.StringFixed(2),
				})
			default:
				c.JSON(http.StatusBadRequest, gin.H{"message": "Split payment tidak valid", "error": err.Error()})
			}
			return
		}

		paymentMode := in.PaymentMode
		if paymentMode == "" {
			paymentMode = "cash"
		}

		itemsJSON, err := service.BuildInvoiceItems(items)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat snapshot item", "error": err.Error()})
			return
		}

		var splitJSON *string
		if len(in.SplitPayments) > 0 {
			raw, err := json.Marshal(in.SplitPayments)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Split payment tidak valid", "error": err.Error()})
				return
			}
			s := string(raw)
			splitJSON = &s
		}

		now := time.Now().UTC()
		var invoice models.Invoice
		var table *models.Table

		// transaksi + retry: nomor invoice dihitung dari count di dalam
		// transaksi; kalau bentrok di unique index, ulang.
		const maxRetries = 3
		var lastErr error
		for attempt := 0; attempt < maxRetries; attempt++ {
			table = nil
			lastErr = config.DB.Transaction(func(tx *gorm.DB) error {
				// 1) order -> paid
				if err := tx.Model(&models.Order{}).Where("id = ?", orderID).Updates(map[string]any{
					"status":       models.OrderPaid,
					"payment_mode": paymentMode,
					"paid_at":      now,
					"completed_at": now,
				}).Error; err != nil {
					return err
				}

				// 2) bebaskan meja
				if order.TableID != nil {
					var tbl models.Table
					if err := tx.First(&tbl, "id = ?", *order.TableID).Error; err == nil {
						table = &tbl
						if err := tx.Model(&tbl).Updates(map[string]any{
							"current_order_id": nil,
							"status":           models.TableFree,
						}).Error; err != nil {
							return err
						}
					}
				}

				// 3) nomor invoice berurutan
				var cnt int64
				if err := tx.Model(&models.Invoice{}).Count(&cnt).Error; err != nil {
					return err
				}

				var floorName *string
				if table != nil && table.FloorID != nil {
					var floor models.Floor
					if err := tx.First(&floor, "id = ?", *table.FloorID).Error; err == nil {
						floorName = &floor.Name
					}
				}
				var tableNumber *string
				if table != nil {
					tableNumber = &table.TableNumber
				}

				invoice = models.Invoice{
					InvoiceNumber: utils.GenInvoiceNo(cnt + 1),
					OrderID:       orderID,
					TableNumber:   tableNumber,
					FloorName:     floorName,
					CustomerName:  order.CustomerName,
					CustomerPhone: order.CustomerPhone,
					Subtotal:      bill.Subtotal.StringFixed(2),
					Tax:           bill.Tax.StringFixed(2),
					Discount:      "0.00",
					Total:         bill.Total.StringFixed(2),
					PaymentMode:   paymentMode,
					SplitPayments: splitJSON,
					Status:        models.InvoicePaid,
					Items:         itemsJSON,
				}
				return tx.Create(&invoice).Error
			})
			if lastErr == nil || !utils.IsUniqueViolation(lastErr) {
				break
			}
		}
		if lastErr != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal checkout order", "error": lastErr.Error()})
			return
		}

		// ambil order versi terbaru untuk response
		_ = config.DB.First(&order, "id = ?", orderID).Error

		hub.Broadcast("order_paid", order)
		hub.Broadcast("invoice_created", invoice)
		c.JSON(http.StatusOK, gin.H{"order": order, "invoice": invoice, "shouldPrint": in.Print})
	}
}

// recalcOrderTotal menghitung ulang total order dari semua item saat ini.
func recalcOrderTotal(orderID string) error {
	var items []models.OrderItem
	if err := config.DB.Find(&items, "order_id = ?", orderID).Error; err != nil {
		return err
	}
	return config.DB.Model(&models.Order{}).
		Where("id = ?", orderID).
		Update("total", service.OrderTotal(items)).Error
}

// refreshTableStatus menurunkan ulang status meja dari status item order.
// No-op untuk order tanpa meja atau kalau tidak ada aturan yang kena.
func refreshTableStatus(hub *realtime.Hub, order *models.Order) {
	if order.TableID == nil {
		return
	}
	var items []models.OrderItem
	if err := config.DB.Find(&items, "order_id = ?", order.ID).Error; err != nil {
		return
	}
	status, ok := service.DeriveTableStatus(items)
	if !ok {
		return
	}
	var table models.Table
	if err := config.DB.First(&table, "id = ?", *order.TableID).Error; err != nil {
		return
	}
	if err := config.DB.Model(&table).Update("status", status).Error; err != nil {
		return
	}
	hub.Broadcast("table_updated", table)
}

// freeTable melepas referensi order dan mengembalikan meja ke free.
func freeTable(hub *realtime.Hub, tableID string) {
	var table models.Table
	if err := config.DB.First(&table, "id = ?", tableID).Error; err != nil {
		return
	}
	if err := config.DB.Model(&table).Updates(map[string]any{
		"current_order_id": nil,
		"status":           models.TableFree,
	}).Error; err != nil {
		return
	}
	hub.Broadcast("table_updated", table)
}
