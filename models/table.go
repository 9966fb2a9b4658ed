package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TableStatus string

const (
	TableFree      TableStatus = "free"
	TableOccupied  TableStatus = "occupied"
	TablePreparing TableStatus = "preparing"
	TableReady     TableStatus = "ready"
	TableServed    TableStatus = "served"
	TableReserved  TableStatus = "reserved"
)

func (s TableStatus) Valid() bool {
	switch s {
	case TableFree, TableOccupied, TablePreparing, TableReady, TableServed, TableReserved:
		return true
	}
	return false
}

// Table adalah meja fisik. Status TIDAK di-set bebas: diturunkan dari status
// item order yang aktif (lihat service.DeriveTableStatus), kecuali override
// admin lewat PATCH /api/tables/:id/status.
type Table struct {
	ID             string      `gorm:"primaryKey;size:36" json:"id"`
	TableNumber    string      `gorm:"uniqueIndex;not null" json:"tableNumber"`
	Seats          int         `gorm:"not null" json:"seats"`
	Status         TableStatus `gorm:"size:20;not null;default:'free'" json:"status"`
	CurrentOrderID *string     `gorm:"size:36" json:"currentOrderId"`
	FloorID        *string     `gorm:"size:36;index" json:"floorId"`
}

func (t *Table) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	return nil
}
