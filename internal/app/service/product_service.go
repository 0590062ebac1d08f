package service

import (
	"errors"

	"github.com/arefin/procurehub-backend/internal/app/model"
	"github.com/arefin/procurehub-backend/internal/app/repository"
	"gorm.io/gorm"
)

type ProductService interface {
	GetAllProducts(category string) ([]model.Product, error)
	GetProductByID(id uint) (*model.Product, error)
	Snapshot(ids []uint) (CatalogSnapshot, error)
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) GetAllProducts(category string) ([]model.Product, error) {
	return s.productRepo.FindAll(category)
}

func (s *productService) GetProductByID(id uint) (*model.Product, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return product, nil
}

func (s *productService) Snapshot(ids []uint) (CatalogSnapshot, error) {
	products, err := s.productRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	return BuildSnapshot(products), nil
}
