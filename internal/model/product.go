package model

import "time"

type ProductStatus string

const (
	ProductStatusActive   ProductStatus = "active"
	ProductStatusSold     ProductStatus = "sold"
	ProductStatusDisabled ProductStatus = "disabled"
)

// DefaultProductImage is shown for listings submitted without a photo.
const DefaultProductImage = "https://images.unsplash.com/photo-1551754655-cd27e38d2076"

type Product struct {
	ID          uint64        `gorm:"primaryKey;autoIncrement"`
	SellerID    uint64        `gorm:"column:seller_id;index;not null"`
	Name        string        `gorm:"size:120;not null"`
	Description string        `gorm:"type:text"`
	Price       float64       `gorm:"not null"`
	Category    string        `gorm:"size:64"`
	Image       string        `gorm:"size:512"`
	Status      ProductStatus `gorm:"size:16;not null;default:active"`
	CreatedAt   time.Time     `gorm:"autoCreateTime"`
	UpdatedAt   time.Time     `gorm:"autoUpdateTime"`
}

func (Product) TableName() string {
	return "products"
}
