package controllers

import (
	"net/http"
	"time"

	"go-postgres-restopos/config"
	"go-postgres-restopos/service"

	"github.com/gin-gonic/gin"
)

// GetSalesReport — laporan penjualan harian. Query ?from=...&to=... dalam
// format RFC3339 atau YYYY-MM-DD; to bersifat eksklusif.
func GetSalesReport(c *gin.Context) {
	var f service.SalesReportFilter

	if raw := c.Query("from"); raw != "" {
		t, err := parseReportTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Parameter from tidak valid"})
			return
		}
		f.From = &t
	}
	if raw := c.Query("to"); raw != "" {
		t, err := parseReportTime(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Parameter to tidak valid"})
			return
		}
		f.To = &t
	}

	report, err := service.NewService(config.DB).LaporanPenjualan(c.Request.Context(), f)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Gagal membuat laporan penjualan", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, report)
}

func parseReportTime(raw string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", raw)
}
