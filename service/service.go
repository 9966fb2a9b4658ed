package service

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ===== DTO laporan penjualan =====

type SalesReportRow struct {
	Day      time.Time `json:"day"`
	Invoices int64     `json:"invoices"`
	Subtotal float64   `json:"subtotal"`
	Tax      float64   `json:"tax"`
	Discount float64   `json:"discount"`
	Total    float64   `json:"total"`
}

type SalesReportSummary struct {
	Invoices int64   `json:"invoices"`
	Total    float64 `json:"total"`
}

type SalesReport struct {
	Summary SalesReportSummary `json:"summary"`
	Rows    []SalesReportRow   `json:"rows"`
}

type SalesReportFilter struct {
	From *time.Time
	To   *time.Time
}

// ===== Service =====

type Service interface {
	// Laporan penjualan harian dari invoice (agregasi per tanggal).
	LaporanPenjualan(ctx context.Context, f SalesReportFilter) (SalesReport, error)
}

type service struct{ db *gorm.DB }

func NewService(db *gorm.DB) Service { return &service{db: db} }

func (s *service) LaporanPenjualan(ctx context.Context, f SalesReportFilter) (SalesReport, error) {
	q := s.db.WithContext(ctx).
		Table("invoices").
		Select(`
			DATE_TRUNC('day', created_at) AS day,
			COUNT(id)     AS invoices,
			SUM(subtotal) AS subtotal,
			SUM(tax)      AS tax,
			SUM(discount) AS discount,
			SUM(total)    AS total
		`).
		Group("DATE_TRUNC('day', created_at)").
		Order("day DESC")

	if f.From != nil {
		q = q.Where("created_at >= ?", *f.From)
	}
	if f.To != nil {
		q = q.Where("created_at < ?", *f.To)
	}

	var rows []SalesReportRow
	if err := q.Scan(&rows).Error; err != nil {
		return SalesReport{}, err
	}

	var sum SalesReportSummary
	for _, r := range rows {
		sum.Invoices += r.Invoices
		sum.Total += r.Total
	}

	return SalesReport{Summary: sum, Rows: rows}, nil
}
