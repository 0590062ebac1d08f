package model

import (
	"time"

	"gorm.io/gorm"
)

type NotificationType string

const (
	NotificationOrderCreated NotificationType = "order_created"
)

type Notification struct {
	ID        uint             `gorm:"primarykey" json:"id"`
	UserID    uint             `gorm:"not null;index" json:"user_id"`
	Type      NotificationType `gorm:"type:varchar(50)" json:"type"`
	Message   string           `gorm:"type:text" json:"message"`
	OrderID   *uint            `gorm:"index" json:"order_id,omitempty"`
	IsRead    bool             `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time        `json:"created_at"`
	DeletedAt gorm.DeletedAt   `gorm:"index" json:"-"`
}

func (Notification) TableName() string {
	return "notifications"
}
