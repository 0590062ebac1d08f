package service

import (
	"errors"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"gorm.io/gorm"
)

type CompanyService interface {
	GetAllCompanies() ([]model.Company, error)
	GetCompanyByID(id uint) (*model.Company, error)
	GetCompanyEmployees(companyID uint) ([]model.Employee, error)
}

type companyService struct {
	companyRepo  repository.CompanyRepository
	employeeRepo repository.EmployeeRepository
}

func NewCompanyService(
	companyRepo repository.CompanyRepository,
	employeeRepo repository.EmployeeRepository,
) CompanyService {
	return &companyService{
		companyRepo:  companyRepo,
		employeeRepo: employeeRepo,
	}
}

func (s *companyService) GetAllCompanies() ([]model.Company, error) {
	return s.companyRepo.FindAll()
}

func (s *companyService) GetCompanyByID(id uint) (*model.Company, error) {
	company, err := s.companyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return company, nil
}

func (s *companyService) GetCompanyEmployees(companyID uint) ([]model.Employee, error) {
	if _, err := s.companyRepo.FindByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCompanyNotFound
		}
		return nil, err
	}
	return s.employeeRepo.FindByCompanyID(companyID)
}
