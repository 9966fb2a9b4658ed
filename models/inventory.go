package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InventoryItem struct {
	ID          string  `gorm:"primaryKey;size:36" json:"id"`
	Name        string  `gorm:"uniqueIndex;not null" json:"name"`
	Quantity    string  `gorm:"type:decimal(10,2);not null" json:"quantity"`
	Unit        string  `gorm:"not null" json:"unit"`
	MinQuantity *string `gorm:"type:decimal(10,2)" json:"minQuantity"`
}

func (i *InventoryItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}
