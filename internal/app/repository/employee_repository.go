package repository

import (
	"github.com/arefin/procurehub-backend/internal/app/model"
	"gorm.io/gorm"
)

type EmployeeRepository interface {
	FindByID(id uint) (*model.Employee, error)
	FindByCompanyID(companyID uint) ([]model.Employee, error)
}

type employeeRepository struct {
	db *gorm.DB
}

func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindByID(id uint) (*model.Employee, error) {
	var employee model.Employee
	if err := r.db.First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

func (r *employeeRepository) FindByCompanyID(companyID uint) ([]model.Employee, error) {
	var employees []model.Employee
	err := r.db.Where("company_id = ?", companyID).
		Order("name").
		Find(&employees).Error
	if err != nil {
		return nil, err
	}
	return employees, nil
}
