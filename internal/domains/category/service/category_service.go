package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"smarttrack-backend/internal/domains/category/model"
	"smarttrack-backend/internal/domains/category/repository"
)

// Service is the category business logic contract.
type Service interface {
	CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error)
	ListCategories(ctx context.Context) ([]model.Category, error)
}

type categoryService struct {
	repo repository.Repository
}

// NewService creates a new category service
func NewService(repo repository.Repository) Service {
	return &categoryService{repo: repo}
}

func (s *categoryService) CreateCategory(ctx context.Context, req model.CreateCategoryRequest) (*model.Category, error) {
	color := req.Color
	if color == "" {
		color = "#8884d8" // default chart color
	}

	category := &model.Category{
		ID:    uuid.New(),
		Name:  req.Name,
		Color: color,
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryService) ListCategories(ctx context.Context) ([]model.Category, error) {
	categories, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	return categories, nil
}
