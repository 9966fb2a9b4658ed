package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderSaved         OrderStatus = "saved"
	OrderSentToKitchen OrderStatus = "sent_to_kitchen"
	OrderBilled        OrderStatus = "billed"
	OrderPaid          OrderStatus = "paid"
	OrderCompleted     OrderStatus = "completed"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderSaved, OrderSentToKitchen, OrderBilled, OrderPaid, OrderCompleted:
		return true
	}
	return false
}

type OrderType string

const (
	OrderDineIn   OrderType = "dine-in"
	OrderDelivery OrderType = "delivery"
	OrderPickup   OrderType = "pickup"
)

func (t OrderType) Valid() bool {
	switch t {
	case OrderDineIn, OrderDelivery, OrderPickup:
		return true
	}
	return false
}

type Order struct {
	ID                 string      `gorm:"primaryKey;size:36" json:"id"`
	TableID            *string     `gorm:"size:36;index" json:"tableId"`
	OrderType          OrderType   `gorm:"size:20;not null" json:"orderType"`
	Status             OrderStatus `gorm:"size:20;not null;default:'saved';index" json:"status"`
	Total              string      `gorm:"type:decimal(10,2);not null;default:0" json:"total"`
	CustomerName       *string     `json:"customerName"`
	CustomerPhone      *string     `json:"customerPhone"`
	CustomerAddress    *string     `json:"customerAddress"`
	PaymentMode        *string     `json:"paymentMode"`
	WaiterID           *string     `gorm:"size:36" json:"waiterId"`
	DeliveryPersonID   *string     `gorm:"size:36" json:"deliveryPersonId"`
	ExpectedPickupTime *time.Time  `json:"expectedPickupTime"`
	CreatedAt          time.Time   `json:"createdAt"`
	CompletedAt        *time.Time  `json:"completedAt"`
	BilledAt           *time.Time  `json:"billedAt"`
	PaidAt             *time.Time  `json:"paidAt"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	return nil
}
