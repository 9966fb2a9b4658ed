package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderItemStatus string

const (
	ItemNew       OrderItemStatus = "new"
	ItemPreparing OrderItemStatus = "preparing"
	ItemReady     OrderItemStatus = "ready"
	ItemServed    OrderItemStatus = "served"
)

func (s OrderItemStatus) Valid() bool {
	switch s {
	case ItemNew, ItemPreparing, ItemReady, ItemServed:
		return true
	}
	return false
}

// OrderItem menyimpan snapshot nama & harga saat item ditambahkan, supaya
// perubahan harga menu tidak mengubah order yang sudah jalan.
type OrderItem struct {
	ID         string          `gorm:"primaryKey;size:36" json:"id"`
	OrderID    string          `gorm:"size:36;not null;index" json:"orderId"`
	MenuItemID string          `gorm:"size:36;not null" json:"menuItemId"`
	Name       string          `gorm:"not null" json:"name"`
	Quantity   int             `gorm:"not null" json:"quantity"`
	Price      string          `gorm:"type:decimal(10,2);not null" json:"price"`
	Notes      *string         `json:"notes"`
	Status     OrderItemStatus `gorm:"size:20;not null;default:'new'" json:"status"`
	IsVeg      bool            `gorm:"not null;default:true" json:"isVeg"`
}

func (i *OrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
