package service

import (
	"context"

	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/supplier/model"
	"smarttrack-backend/internal/domains/supplier/repository"
)

// Service is the supplier business logic contract.
type Service interface {
	CreateSupplier(ctx context.Context, req model.UpsertSupplierRequest) (*model.Supplier, error)
	GetSupplier(ctx context.Context, id uuid.UUID) (*model.Supplier, error)
	ListSuppliers(ctx context.Context) ([]model.Supplier, error)
	UpdateSupplier(ctx context.Context, id uuid.UUID, req model.UpsertSupplierRequest) (*model.Supplier, error)
	DeleteSupplier(ctx context.Context, id uuid.UUID) error
}

type supplierService struct {
	repo repository.Repository
}

// NewService creates a new supplier service
func NewService(repo repository.Repository) Service {
	return &supplierService{repo: repo}
}

func (s *supplierService) CreateSupplier(ctx context.Context, req model.UpsertSupplierRequest) (*model.Supplier, error) {
	supplier := &model.Supplier{
		ID:            uuid.New(),
		Name:          req.Name,
		ContactPerson: req.ContactPerson,
		Email:         req.Email,
		Phone:         req.Phone,
		Address:       req.Address,
	}

	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) GetSupplier(ctx context.Context, id uuid.UUID) (*model.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *supplierService) ListSuppliers(ctx context.Context) ([]model.Supplier, error) {
	return s.repo.ListAll(ctx)
}

func (s *supplierService) UpdateSupplier(ctx context.Context, id uuid.UUID, req model.UpsertSupplierRequest) (*model.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	supplier.Name = req.Name
	supplier.ContactPerson = req.ContactPerson
	supplier.Email = req.Email
	supplier.Phone = req.Phone
	supplier.Address = req.Address

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

func (s *supplierService) DeleteSupplier(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
