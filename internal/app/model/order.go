package model

import (
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	OrderStatusSubmitted OrderStatus = "submitted"
	OrderStatusConfirmed OrderStatus = "confirmed"
	OrderStatusShipping  OrderStatus = "shipping"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusCancelled OrderStatus = "cancelled"
)

// Order is the local record of a draft that was accepted upstream.
// Pricing is deliberately absent: the upstream service owns prices at
// order time.
type Order struct {
	ID             uint           `gorm:"primarykey" json:"id"`
	UserID         uint           `gorm:"not null;index" json:"user_id"`
	CompanyID      uint           `gorm:"not null;index" json:"company_id"`
	EmployeeID     uint           `gorm:"not null;index" json:"employee_id"`
	RecipientName  string         `gorm:"not null" json:"recipient_name"`
	AdditionalInfo string         `gorm:"type:text" json:"additional_info"`
	Street         string         `json:"street"`
	City           string         `json:"city"`
	PostalCode     string         `json:"postal_code"`
	Status         OrderStatus    `gorm:"type:varchar(20);default:'submitted'" json:"status"`
	Reference      string         `gorm:"type:varchar(64);index" json:"reference,omitempty"`
	CreatedAt      time.Time      `json:"created_at"`
	UpdatedAt      time.Time      `json:"updated_at"`
	DeletedAt      gorm.DeletedAt `gorm:"index" json:"-"`

	User     User        `gorm:"foreignKey:UserID" json:"-"`
	Company  Company     `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
	Employee Employee    `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Items    []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

func (Order) TableName() string {
	return "orders"
}

type OrderItem struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	OrderID   uint           `gorm:"not null;index" json:"order_id"`
	ProductID uint           `gorm:"not null;index" json:"product_id"`
	Quantity  int            `gorm:"not null" json:"quantity"`
	Size      string         `gorm:"type:varchar(50)" json:"size"`
	CreatedAt time.Time      `json:"created_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Order   Order   `gorm:"foreignKey:OrderID" json:"-"`
	Product Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

func (OrderItem) TableName() string {
	return "order_items"
}
