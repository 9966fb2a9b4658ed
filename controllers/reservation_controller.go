package controllers

import (
	"net/http"
	"time"

	"go-postgres-restopos/config"
	"go-postgres-restopos/models"
	"go-postgres-restopos/realtime"
	"go-postgres-restopos/service"

	"github.com/gin-gonic/gin"
)

func GetAllReservations(c *gin.Context) {
	var reservations []models.Reservation
	if err := config.DB.Order("time_slot ASC").Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil data reservasi", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func GetReservationByID(c *gin.Context) {
	var reservation models.Reservation
	if err := config.DB.First(&reservation, "id = ?", c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"message": "Reservasi tidak ditemukan"})
		return
	}
	c.JSON(http.StatusOK, reservation)
}

// GetReservationsByTable hanya mengembalikan reservasi aktif di meja tsb.
func GetReservationsByTable(c *gin.Context) {
	var reservations []models.Reservation
	if err := config.DB.
		Where("table_id = ? AND status = ?", c.Param("tableId"), models.ReservationActive).
		Order("time_slot ASC").
		Find(&reservations).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal mengambil reservasi meja", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reservations)
}

func CreateReservation(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in struct {
			TableID        string    `json:"tableId" binding:"required"`
			CustomerName   string    `json:"customerName" binding:"required"`
			CustomerPhone  string    `json:"customerPhone" binding:"required"`
			NumberOfPeople int       `json:"numberOfPeople" binding:"required,gt=0"`
			TimeSlot       time.Time `json:"timeSlot" binding:"required"`
			Notes          *string   `json:"notes"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		var table models.Table
		if err := config.DB.First(&table, "id = ?", in.TableID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Meja tidak ditemukan"})
			return
		}

		// satu reservasi aktif per meja
		var active int64
		if err := config.DB.Model(&models.Reservation{}).
			Where("table_id = ? AND status = ?", in.TableID, models.ReservationActive).
			Count(&active).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal cek reservasi aktif", "error": err.Error()})
			return
		}
		if active > 0 {
			c.JSON(http.StatusConflict, gin.H{"message": "Meja ini sudah punya reservasi aktif"})
			return
		}

		reservation := models.Reservation{
			TableID:        in.TableID,
			CustomerName:   in.CustomerName,
			CustomerPhone:  in.CustomerPhone,
			NumberOfPeople: in.NumberOfPeople,
			TimeSlot:       in.TimeSlot,
			Notes:          in.Notes,
			Status:         models.ReservationActive,
		}
		if err := config.DB.Create(&reservation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat reservasi", "error": err.Error()})
			return
		}

		// meja kosong ikut ditandai reserved
		if table.Status == models.TableFree {
			if err := config.DB.Model(&table).Update("status", models.TableReserved).Error; err == nil {
				hub.Broadcast("table_updated", table)
			}
		}

		hub.Broadcast("reservation_created", reservation)
		c.JSON(http.StatusOK, reservation)
	}
}

// UpdateReservation meng-handle juga pindah meja dan pembatalan: status meja
// hanya disentuh kalau benar-benar milik reservasi ini (reserved tanpa order
// aktif) supaya meja yang sedang dipakai tamu walk-in tidak tersenggol.
func UpdateReservation(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reservation models.Reservation
		if err := config.DB.First(&reservation, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Reservasi tidak ditemukan"})
			return
		}

		var in struct {
			TableID        *string                   `json:"tableId"`
			CustomerName   *string                   `json:"customerName"`
			CustomerPhone  *string                   `json:"customerPhone"`
			NumberOfPeople *int                      `json:"numberOfPeople"`
			TimeSlot       *time.Time                `json:"timeSlot"`
			Notes          *string                   `json:"notes"`
			Status         *models.ReservationStatus `json:"status"`
		}
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Payload tidak valid", "error": err.Error()})
			return
		}

		oldTableID := reservation.TableID
		movingTable := in.TableID != nil && *in.TableID != oldTableID

		if movingTable {
			var dest models.Table
			if err := config.DB.First(&dest, "id = ?", *in.TableID).Error; err != nil {
				c.JSON(http.StatusNotFound, gin.H{"message": "Meja tujuan tidak ditemukan"})
				return
			}
			var active int64
			if err := config.DB.Model(&models.Reservation{}).
				Where("table_id = ? AND status = ? AND id <> ?", *in.TableID, models.ReservationActive, reservation.ID).
				Count(&active).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal cek reservasi aktif", "error": err.Error()})
				return
			}
			if active > 0 {
				c.JSON(http.StatusConflict, gin.H{"message": "Meja tujuan sudah punya reservasi aktif"})
				return
			}
		}

		updates := map[string]any{}
		if in.TableID != nil {
			updates["table_id"] = *in.TableID
		}
		if in.CustomerName != nil {
			updates["customer_name"] = *in.CustomerName
		}
		if in.CustomerPhone != nil {
			updates["customer_phone"] = *in.CustomerPhone
		}
		if in.NumberOfPeople != nil {
			if *in.NumberOfPeople <= 0 {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Jumlah orang harus lebih dari 0"})
				return
			}
			updates["number_of_people"] = *in.NumberOfPeople
		}
		if in.TimeSlot != nil {
			updates["time_slot"] = *in.TimeSlot
		}
		if in.Notes != nil {
			updates["notes"] = *in.Notes
		}
		if in.Status != nil {
			if !in.Status.Valid() {
				c.JSON(http.StatusBadRequest, gin.H{"message": "Status reservasi tidak valid"})
				return
			}
			updates["status"] = *in.Status
		}

		if len(updates) > 0 {
			if err := config.DB.Model(&reservation).Updates(updates).Error; err != nil {
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal update reservasi", "error": err.Error()})
				return
			}
		}

		if movingTable {
			releaseReservedTable(hub, oldTableID)
			if reservation.Status == models.ReservationActive {
				markTableReserved(hub, reservation.TableID)
			}
		}
		if in.Status != nil && *in.Status == models.ReservationCancelled {
			releaseReservedTable(hub, reservation.TableID)
		}

		hub.Broadcast("reservation_updated", reservation)
		c.JSON(http.StatusOK, reservation)
	}
}

func DeleteReservation(hub *realtime.Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reservation models.Reservation
		if err := config.DB.First(&reservation, "id = ?", c.Param("id")).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"message": "Reservasi tidak ditemukan"})
			return
		}

		if err := config.DB.Delete(&reservation).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal menghapus reservasi", "error": err.Error()})
			return
		}

		if reservation.Status == models.ReservationActive {
			releaseReservedTable(hub, reservation.TableID)
		}

		hub.Broadcast("reservation_deleted", gin.H{"id": reservation.ID})
		c.JSON(http.StatusOK, gin.H{"success": true})
	}
}

// releaseReservedTable mengembalikan meja ke free hanya kalau statusnya masih
// reserved, tidak ada order aktif di atasnya, dan tidak tersisa reservasi
// aktif lain di meja itu (mis. reservasi cancelled yang berbagi meja dengan
// yang masih aktif).
func releaseReservedTable(hub *realtime.Hub, tableID string) {
	var table models.Table
	if err := config.DB.First(&table, "id = ?", tableID).Error; err != nil {
		return
	}
	var active int64
	if err := config.DB.Model(&models.Reservation{}).
		Where("table_id = ? AND status = ?", tableID, models.ReservationActive).
		Count(&active).Error; err != nil {
		return
	}
	if !service.CanReleaseReservedTable(table, active) {
		return
	}
	if err := config.DB.Model(&table).Update("status", models.TableFree).Error; err != nil {
		return
	}
	hub.Broadcast("table_updated", table)
}

// markTableReserved menandai meja reserved hanya kalau masih free.
func markTableReserved(hub *realtime.Hub, tableID string) {
	var table models.Table
	if err := config.DB.First(&table, "id = ?", tableID).Error; err != nil {
		return
	}
	if table.Status != models.TableFree {
		return
	}
	if err := config.DB.Model(&table).Update("status", models.TableReserved).Error; err != nil {
		return
	}
	hub.Broadcast("table_updated", table)
}
