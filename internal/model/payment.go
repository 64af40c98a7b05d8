package model

import "time"

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusConfirmed PaymentStatus = "confirmed"
	PaymentStatusRejected  PaymentStatus = "rejected"
)

// Terminal reports whether the status admits no further transition.
func (s PaymentStatus) Terminal() bool {
	return s == PaymentStatusConfirmed || s == PaymentStatusRejected
}

type Payment struct {
	ID            uint64        `gorm:"primaryKey;autoIncrement"`
	BuyerID       uint64        `gorm:"column:buyer_id;index;not null"`
	SellerID      uint64        `gorm:"column:seller_id;index;not null"`
	ProductID     uint64        `gorm:"column:product_id;index;not null"`
	Amount        float64       `gorm:"not null"`
	PaymentMethod string        `gorm:"column:payment_method;size:64;not null"`
	Reference     string        `gorm:"size:120"`
	Status        PaymentStatus `gorm:"size:16;not null;default:pending"`
	CreatedAt     time.Time     `gorm:"autoCreateTime"`
	UpdatedAt     time.Time     `gorm:"autoUpdateTime"`
}

func (Payment) TableName() string {
	return "payments"
}
