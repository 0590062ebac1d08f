package model

import (
	"time"

	"gorm.io/gorm"
)

type Product struct {
	ID              uint           `gorm:"primarykey" json:"id"`
	Name            string         `gorm:"not null" json:"name"`
	Description     string         `gorm:"type:text" json:"description"`
	Category        string         `gorm:"type:varchar(50);index" json:"category"`
	Price           float64        `gorm:"not null" json:"price"`
	DiscountedPrice *float64       `json:"discounted_price,omitempty"`
	AvailableStock  int            `gorm:"default:0" json:"available_stock"`
	SizeOptions     []string       `gorm:"serializer:json" json:"size_options"`
	ImageURL        string         `json:"image_url"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Product) TableName() string {
	return "products"
}

// UnitPrice resolves the effective price, preferring a discounted price
// over the base price.
func (p *Product) UnitPrice() float64 {
	if p.DiscountedPrice != nil {
		return *p.DiscountedPrice
	}
	return p.Price
}

// HasSize reports whether the given size is one of the product's
// declared options. Products without options accept only DefaultSize.
func (p *Product) HasSize(size string) bool {
	if len(p.SizeOptions) == 0 {
		return size == DefaultSize
	}
	for _, s := range p.SizeOptions {
		if s == size {
			return true
		}
	}
	return false
}
