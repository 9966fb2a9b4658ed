package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type InvoiceStatus string

const (
	InvoicePaid    InvoiceStatus = "Paid"
	InvoicePending InvoiceStatus = "Pending"
	InvoiceOverdue InvoiceStatus = "Overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoicePaid, InvoicePending, InvoiceOverdue:
		return true
	}
	return false
}

// Invoice adalah snapshot point-in-time dari order saat checkout.
// Items dan SplitPayments disimpan sebagai JSON string, sama seperti
// kontrak lama. InvoiceNumber unik (index) — nomor dihitung di dalam
// transaksi checkout dan di-retry kalau bentrok.
type Invoice struct {
	ID            string        `gorm:"primaryKey;size:36" json:"id"`
	InvoiceNumber string        `gorm:"uniqueIndex;size:40;not null" json:"invoiceNumber"`
	OrderID       string        `gorm:"size:36;not null" json:"orderId"`
	TableNumber   *string       `json:"tableNumber"`
	FloorName     *string       `json:"floorName"`
	CustomerName  *string       `json:"customerName"`
	CustomerPhone *string       `json:"customerPhone"`
	Subtotal      string        `gorm:"type:decimal(10,2);not null" json:"subtotal"`
	Tax           string        `gorm:"type:decimal(10,2);not null" json:"tax"`
	Discount      string        `gorm:"type:decimal(10,2);not null;default:0" json:"discount"`
	Total         string        `gorm:"type:decimal(10,2);not null" json:"total"`
	PaymentMode   string        `gorm:"not null" json:"paymentMode"`
	SplitPayments *string       `json:"splitPayments"`
	Status        InvoiceStatus `gorm:"size:12;not null;default:'Paid'" json:"status"`
	Items         string        `gorm:"type:text;not null" json:"items"`
	Notes         *string       `json:"notes"`
	CreatedAt     time.Time     `json:"createdAt"`
	UpdatedAt     time.Time     `json:"updatedAt"`
}

func (i *Invoice) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// InvoiceItem adalah satu baris di snapshot Items.
type InvoiceItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
	IsVeg    bool    `json:"isVeg"`
	Notes    string  `json:"notes,omitempty"`
}

// SplitPayment adalah pembagian pembayaran per orang saat checkout.
type SplitPayment struct {
	Person      int     `json:"person"`
	Amount      float64 `json:"amount"`
	PaymentMode string  `json:"paymentMode"`
}
