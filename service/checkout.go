package service

import (
	"encoding/json"
	"errors"

	"github.com/shopspring/decimal"

	"go-postgres-restopos/models"
)

var (
	ErrSplitMismatch    = errors.New("total split payment tidak sama dengan total tagihan")
	ErrSplitNonPositive = errors.New("nominal split payment harus lebih dari 0")
)

// PPN tetap 5%, tidak configurable.
var taxRate = decimal.NewFromFloat(0.05)

// toleransi selisih pembulatan split payment
var splitTolerance = decimal.NewFromFloat(0.01)

// Bill adalah rincian tagihan hasil hitung server. Total dari client tidak
// pernah dipakai.
type Bill struct {
	Subtotal decimal.Decimal
	Tax      decimal.Decimal
	Total    decimal.Decimal
}

// ComputeBill menghitung ulang subtotal dari item order saat ini,
// tax = subtotal x 5%, total = subtotal + tax.
func ComputeBill(items []models.OrderItem) Bill {
	subtotal := decimal.Zero
	for _, it := range items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			continue
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	subtotal = subtotal.Round(2)
	tax := subtotal.Mul(taxRate).Round(2)
	return Bill{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}

// ValidateSplitPayments memastikan setiap nominal > 0 dan jumlahnya sama
// dengan total tagihan. Selisih 0.01 atau lebih ditolak; hanya sisa
// pembulatan di bawah itu yang ditoleransi. Slice kosong selalu valid.
func ValidateSplitPayments(splits []models.SplitPayment, total decimal.Decimal) error {
	if len(splits) == 0 {
		return nil
	}
	sum := decimal.Zero
	for _, s := range splits {
		amount := decimal.NewFromFloat(s.Amount)
		if amount.LessThanOrEqual(decimal.Zero) {
			return ErrSplitNonPositive
		}
		sum = sum.Add(amount)
	}
	if sum.Sub(total).Abs().GreaterThanOrEqual(splitTolerance) {
		return ErrSplitMismatch
	}
	return nil
}

// BuildInvoiceItems membuat snapshot item untuk invoice (JSON string).
func BuildInvoiceItems(items []models.OrderItem) (string, error) {
	rows := make([]models.InvoiceItem, 0, len(items))
	for _, it := range items {
		price, _ := decimal.NewFromString(it.Price)
		priceF, _ := price.Float64()
		row := models.InvoiceItem{
			Name:     it.Name,
			Quantity: it.Quantity,
			Price:    priceF,
			IsVeg:    it.IsVeg,
		}
		if it.Notes != nil {
			row.Notes = *it.Notes
		}
		rows = append(rows, row)
	}
	raw, err := json.Marshal(rows)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}
