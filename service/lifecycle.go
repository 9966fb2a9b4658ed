package service

import (
	"github.com/shopspring/decimal"

	"go-postgres-restopos/models"
)

// DeriveTableStatus menurunkan status meja dari kumpulan status item order.
// Urutan prioritas:
//  1. semua served            -> served
//  2. semua ready/served      -> ready
//  3. ada yang preparing      -> preparing
//  4. ada yang new            -> occupied
//
// Kalau tidak ada aturan yang kena (atau item kosong), status meja dibiarkan —
// return kedua false. Fungsi ini dihitung ulang penuh setiap kali item
// berubah atau dihapus, bukan inkremental.
func DeriveTableStatus(items []models.OrderItem) (models.TableStatus, bool) {
	if len(items) == 0 {
		return "", false
	}

	hasNew := false
	hasPreparing := false
	allReady := true
	allServed := true
	for _, it := range items {
		switch it.Status {
		case models.ItemNew:
			hasNew = true
			allReady = false
			allServed = false
		case models.ItemPreparing:
			hasPreparing = true
			allReady = false
			allServed = false
		case models.ItemReady:
			allServed = false
		case models.ItemServed:
			// tetap ready & served
		default:
			allReady = false
			allServed = false
		}
	}

	switch {
	case allServed:
		return models.TableServed, true
	case allReady:
		return models.TableReady, true
	case hasPreparing:
		return models.TablePreparing, true
	case hasNew:
		return models.TableOccupied, true
	}
	return "", false
}

// CanReleaseReservedTable memutuskan apakah meja boleh dikembalikan ke free
// setelah sebuah reservasi dibatalkan/dipindah/dihapus. Syaratnya: statusnya
// masih reserved, tidak ada order aktif di atasnya, dan tidak tersisa
// reservasi aktif lain di meja itu.
func CanReleaseReservedTable(table models.Table, activeReservations int64) bool {
	return table.Status == models.TableReserved &&
		table.CurrentOrderID == nil &&
		activeReservations == 0
}

// OrderTotal menghitung total order = sum(harga x qty), 2 desimal.
// Harga item yang tidak bisa di-parse dianggap 0 (data lama).
func OrderTotal(items []models.OrderItem) string {
	total := decimal.Zero
	for _, it := range items {
		price, err := decimal.NewFromString(it.Price)
		if err != nil {
			continue
		}
		total = total.Add(price.Mul(decimal.NewFromInt(int64(it.Quantity))))
	}
	return total.Round(2).StringFixed(2)
}
