package service

import (
	"context"
	"errors"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// ErrInvalidInput marks validation failures; callers wrap it with detail
var ErrInvalidInput = errors.New("invalid input")

// ProductInput carries create fields. Pointers distinguish a missing field
// from an explicit zero value.
type ProductInput struct {
	Name     *string
	Price    *float64
	Category *string
	Stock    *int64
}

// ProductPatch carries partial-update fields; nil means leave unchanged.
type ProductPatch struct {
	Name     *string
	Price    *float64
	Category *string
	Stock    *int64
}

func (p ProductPatch) empty() bool {
	return p.Name == nil && p.Price == nil && p.Category == nil && p.Stock == nil
}

func (p ProductPatch) apply(dst *domain.Product) {
	if p.Name != nil {
		dst.Name = *p.Name
	}
	if p.Price != nil {
		dst.Price = *p.Price
	}
	if p.Category != nil {
		dst.Category = *p.Category
	}
	if p.Stock != nil {
		dst.Stock = *p.Stock
	}
}

// ProductService encapsulates catalog business rules
type ProductService struct {
	repo repository.ProductRepository
}

func NewProductService(repo repository.ProductRepository) *ProductService {
	return &ProductService{repo: repo}
}

// Create requires name, price and category to be present. The price is not
// range-checked: order items are the strict side of that asymmetry.
func (s *ProductService) Create(ctx context.Context, in ProductInput) (*domain.Product, error) {
	if in.Name == nil || in.Price == nil || in.Category == nil {
		return nil, fmt.Errorf("%w: name, price and category are required", ErrInvalidInput)
	}
	p := domain.Product{Name: *in.Name, Price: *in.Price, Category: *in.Category}
	if in.Stock != nil {
		p.Stock = *in.Stock
	}
	if err := s.repo.Create(ctx, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (s *ProductService) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

// Update merges the patch over the stored record. An all-nil patch is
// rejected before the record is touched.
func (s *ProductService) Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error) {
	if patch.empty() {
		return nil, fmt.Errorf("%w: no fields provided", ErrInvalidInput)
	}
	p, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	patch.apply(p)
	if err := s.repo.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *ProductService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *ProductService) List(ctx context.Context, f repository.ProductFilter) ([]domain.Product, error) {
	return s.repo.List(ctx, f)
}
