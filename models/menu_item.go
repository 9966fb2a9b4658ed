package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type MenuItem struct {
	ID          string         `gorm:"primaryKey;size:36" json:"id"`
	Name        string         `gorm:"not null" json:"name"`
	Category    string         `gorm:"not null;index" json:"category"`
	Price       string         `gorm:"type:decimal(10,2);not null" json:"price"`
	Cost        string         `gorm:"type:decimal(10,2);not null" json:"cost"`
	Available   bool           `gorm:"not null;default:true" json:"available"`
	IsVeg       bool           `gorm:"not null;default:true" json:"isVeg"`
	Variants    pq.StringArray `gorm:"type:text[]" json:"variants"`
	Image       *string        `json:"image"`
	Description *string        `json:"description"`
}

func (m *MenuItem) BeforeCreate(tx *gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
