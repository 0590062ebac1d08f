package model

import (
	"time"

	"gorm.io/gorm"
)

// Employee is an order recipient belonging to a company. Its address
// fields seed fresh draft orders.
type Employee struct {
	ID         uint           `gorm:"primarykey" json:"id"`
	CompanyID  uint           `gorm:"not null;index" json:"company_id"`
	Name       string         `gorm:"not null" json:"name"`
	Email      string         `gorm:"index" json:"email"`
	Street     string         `json:"street"`
	City       string         `json:"city"`
	PostalCode string         `json:"postal_code"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
	DeletedAt  gorm.DeletedAt `gorm:"index" json:"-"`

	Company Company `gorm:"foreignKey:CompanyID" json:"-"`
}

func (Employee) TableName() string {
	return "employees"
}
