package service

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"go-postgres-restopos/models"
)

func TestComputeBill(t *testing.T) {
	// subtotal 200.00 -> tax 10.00 -> total 210.00
	bill := ComputeBill([]models.OrderItem{
		{Price: "50.00", Quantity: 2},
		{Price: "100.00", Quantity: 1},
	})

	if got := bill.Subtotal.StringFixed(2); got != "200.00" {
		t.Errorf("Subtotal = %s, ingin 200.00", got)
	}
	if got := bill.Tax.StringFixed(2); got != "10.00" {
		t.Errorf("Tax = %s, ingin 10.00", got)
	}
	if got := bill.Total.StringFixed(2); got != "210.00" {
		t.Errorf("Total = %s, ingin 210.00", got)
	}
}

func TestComputeBillEmpty(t *testing.T) {
	bill := ComputeBill(nil)
	if !bill.Total.IsZero() {
		t.Errorf("Total = %s, ingin 0", bill.Total)
	}
}

func TestValidateSplitPayments(t *testing.T) {
	total := decimal.RequireFromString("210.00")

	tests := []struct {
		name    string
		splits  []models.SplitPayment
		wantErr error
	}{
		{
			name:   "tanpa split selalu valid",
			splits: nil,
		},
		{
			name: "pas",
			splits: []models.SplitPayment{
				{Person: 1, Amount: 100.00},
				{Person: 2, Amount: 110.00},
			},
		},
		{
			name: "sisa pembulatan di bawah satu sen diterima",
			splits: []models.SplitPayment{
				{Person: 1, Amount: 105.00},
				{Person: 2, Amount: 104.995},
			},
		},
		{
			name: "kurang satu sen ditolak",
			splits: []models.SplitPayment{
				{Person: 1, Amount: 209.99},
			},
			wantErr: ErrSplitMismatch,
		},
		{
			name: "lebih satu sen ditolak",
			splits: []models.SplitPayment{
				{Person: 1, Amount: 210.01},
			},
			wantErr: ErrSplitMismatch,
		},
		{
			name: "selisih jauh ditolak",
			splits: []models.SplitPayment{
				{Person: 1, Amount: 100.00},
				{Person: 2, Amount: 109.00},
			},
			wantErr: ErrSplitMismatch,
		},
		{
			name: "nominal nol ditolak",
			splits: []models.SplitPayment{
				{Person: 1, Amount: 0},
				{Person: 2, Amount: 210.00},
			},
			wantErr: ErrSplitNonPositive,
		},
		{
			name: "nominal negatif ditolak",
			splits: []models.SplitPayment{
				{Person: 1, Amount: -5.00},
				{Person: 2, Amount: 215.00},
			},
			wantErr: ErrSplitNonPositive,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateSplitPayments(tt.splits, total)
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("ValidateSplitPayments err = %v, ingin nil", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateSplitPayments err = %v, ingin %v", err, tt.wantErr)
			}
		})
	}
}

func TestBuildInvoiceItems(t *testing.T) {
	notes := "extra pedas"
	raw, err := BuildInvoiceItems([]models.OrderItem{
		{Name: "Chicken Burger", Quantity: 2, Price: "199.00", IsVeg: false, Notes: &notes},
		{Name: "Coca Cola", Quantity: 1, Price: "50.00", IsVeg: true},
	})
	if err != nil {
		t.Fatalf("BuildInvoiceItems err = %v", err)
	}

	var rows []models.InvoiceItem
	if err := json.Unmarshal([]byte(raw), &rows); err != nil {
		t.Fatalf("snapshot bukan JSON valid: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("len = %d, ingin 2", len(rows))
	}
	if rows[0].Name != "Chicken Burger" || rows[0].Quantity != 2 || rows[0].Price != 199.00 {
		t.Errorf("baris pertama salah: %+v", rows[0])
	}
	if rows[0].Notes != notes {
		t.Errorf("Notes = %q, ingin %q", rows[0].Notes, notes)
	}
	if rows[1].Notes != "" {
		t.Errorf("Notes item kedua harus kosong, dapat %q", rows[1].Notes)
	}
}
