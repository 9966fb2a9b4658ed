package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationActive    ReservationStatus = "active"
	ReservationCancelled ReservationStatus = "cancelled"
)

func (s ReservationStatus) Valid() bool {
	switch s {
	case ReservationActive, ReservationCancelled:
		return true
	}
	return false
}

// Maksimal satu reservasi aktif per meja — dicek di controller sebelum insert.
type Reservation struct {
	ID             string            `gorm:"primaryKey;size:36" json:"id"`
	TableID        string            `gorm:"size:36;not null;index" json:"tableId"`
	CustomerName   string            `gorm:"not null" json:"customerName"`
	CustomerPhone  string            `gorm:"not null" json:"customerPhone"`
	NumberOfPeople int               `gorm:"not null" json:"numberOfPeople"`
	TimeSlot       time.Time         `gorm:"not null;index" json:"timeSlot"`
	Notes          *string           `json:"notes"`
	Status         ReservationStatus `gorm:"size:12;not null;default:'active'" json:"status"`
	CreatedAt      time.Time         `json:"createdAt"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
