package service

import (
	"context"

	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/product/model"
	"smarttrack-backend/internal/domains/product/repository"
)

// Service is the product business logic contract.
type Service interface {
	CreateProduct(ctx context.Context, req model.UpsertProductRequest) (*model.Product, error)
	GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error)
	ListProducts(ctx context.Context) ([]model.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req model.UpsertProductRequest) (*model.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
}

type productService struct {
	repo repository.Repository
}

// NewService creates a new product service
func NewService(repo repository.Repository) Service {
	return &productService{repo: repo}
}

func (s *productService) CreateProduct(ctx context.Context, req model.UpsertProductRequest) (*model.Product, error) {
	product := &model.Product{
		ID:          uuid.New(),
		Name:        req.Name,
		SKU:         req.SKU,
		Description: req.Description,
		Unit:        req.Unit,
		CategoryID:  req.CategoryID,
		SupplierID:  req.SupplierID,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) GetProduct(ctx context.Context, id uuid.UUID) (*model.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	return s.repo.ListAll(ctx)
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req model.UpsertProductRequest) (*model.Product, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	product.Name = req.Name
	product.SKU = req.SKU
	product.Description = req.Description
	product.Unit = req.Unit
	product.CategoryID = req.CategoryID
	product.SupplierID = req.SupplierID

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
