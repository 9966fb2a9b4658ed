package service

import (
	"testing"

	"go-postgres-restopos/models"
)

func items(statuses ...models.OrderItemStatus) []models.OrderItem {
	out := make([]models.OrderItem, 0, len(statuses))
	for _, s := range statuses {
		out = append(out, models.OrderItem{Status: s, Price: "10.00", Quantity: 1})
	}
	return out
}

func TestDeriveTableStatus(t *testing.T) {
	tests := []struct {
		name     string
		items    []models.OrderItem
		want     models.TableStatus
		wantSkip bool
	}{
		{
			name:     "tanpa item status dibiarkan",
			items:    nil,
			wantSkip: true,
		},
		{
			name:  "semua served",
			items: items(models.ItemServed, models.ItemServed),
			want:  models.TableServed,
		},
		{
			name:  "campuran ready dan served jadi ready",
			items: items(models.ItemReady, models.ItemServed),
			want:  models.TableReady,
		},
		{
			name:  "semua ready",
			items: items(models.ItemReady, models.ItemReady),
			want:  models.TableReady,
		},
		{
			name:  "preparing menang atas ready",
			items: items(models.ItemPreparing, models.ItemReady),
			want:  models.TablePreparing,
		},
		{
			name:  "new tanpa preparing jadi occupied",
			items: items(models.ItemNew, models.ItemReady, models.ItemServed),
			want:  models.TableOccupied,
		},
		{
			name:  "preparing menang atas new",
			items: items(models.ItemNew, models.ItemPreparing),
			want:  models.TablePreparing,
		},
		{
			name:  "satu item new",
			items: items(models.ItemNew),
			want:  models.TableOccupied,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := DeriveTableStatus(tt.items)
			if tt.wantSkip {
				if ok {
					t.Fatalf("DeriveTableStatus = %q, ok = true; harusnya dibiarkan", got)
				}
				return
			}
			if !ok {
				t.Fatalf("DeriveTableStatus ok = false; ingin %q", tt.want)
			}
			if got != tt.want {
				t.Errorf("DeriveTableStatus = %q, ingin %q", got, tt.want)
			}
		})
	}
}

// Urutan item tidak boleh mengubah hasil.
func TestDeriveTableStatusOrderIndependent(t *testing.T) {
	a := items(models.ItemNew, models.ItemPreparing, models.ItemServed)
	b := items(models.ItemServed, models.ItemNew, models.ItemPreparing)

	gotA, okA := DeriveTableStatus(a)
	gotB, okB := DeriveTableStatus(b)
	if okA != okB || gotA != gotB {
		t.Errorf("hasil beda untuk urutan beda: (%q, %v) vs (%q, %v)", gotA, okA, gotB, okB)
	}
}

func TestCanReleaseReservedTable(t *testing.T) {
	orderID := "order-1"

	tests := []struct {
		name   string
		table  models.Table
		active int64
		want   bool
	}{
		{
			name:  "reserved tanpa order dan tanpa reservasi aktif",
			table: models.Table{Status: models.TableReserved},
			want:  true,
		},
		{
			name:   "masih ada reservasi aktif lain di meja yang sama",
			table:  models.Table{Status: models.TableReserved},
			active: 1,
			want:   false,
		},
		{
			name:  "meja pegang order aktif",
			table: models.Table{Status: models.TableReserved, CurrentOrderID: &orderID},
			want:  false,
		},
		{
			name:  "status bukan reserved dibiarkan",
			table: models.Table{Status: models.TableOccupied},
			want:  false,
		},
		{
			name:  "meja free tidak disentuh",
			table: models.Table{Status: models.TableFree},
			want:  false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CanReleaseReservedTable(tt.table, tt.active); got != tt.want {
				t.Errorf("CanReleaseReservedTable = %v, ingin %v", got, tt.want)
			}
		})
	}
}

func TestOrderTotal(t *testing.T) {
	tests := []struct {
		name  string
		items []models.OrderItem
		want  string
	}{
		{
			name: "dua item",
			items: []models.OrderItem{
				{Price: "50.00", Quantity: 2},
				{Price: "100.00", Quantity: 1},
			},
			want: "200.00",
		},
		{
			name:  "tanpa item",
			items: nil,
			want:  "0.00",
		},
		{
			name: "harga rusak dianggap nol",
			items: []models.OrderItem{
				{Price: "abc", Quantity: 3},
				{Price: "99.00", Quantity: 1},
			},
			want: "99.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := OrderTotal(tt.items); got != tt.want {
				t.Errorf("OrderTotal = %q, ingin %q", got, tt.want)
			}
		})
	}
}
