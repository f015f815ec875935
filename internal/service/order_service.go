package service

import (
	"context"
	"fmt"

	"storefront/internal/domain"
	"storefront/internal/repository"
)

// OrderService encapsulates ledger business rules: the derived total and
// the status lifecycle.
type OrderService struct {
	repo repository.OrderRepository
}

func NewOrderService(repo repository.OrderRepository) *OrderService {
	return &OrderService{repo: repo}
}

// Create validates the items, derives the total and forces the initial
// status to pending. Item product ids are snapshots and are not checked
// against the catalog.
func (s *OrderService) Create(ctx context.Context, userID string, items []domain.OrderItem, shippingAddress string) (*domain.Order, error) {
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: items must not be empty", ErrInvalidInput)
	}
	for _, it := range items {
		if it.Quantity <= 0 {
			return nil, fmt.Errorf("%w: item quantity must be positive", ErrInvalidInput)
		}
		if it.Price <= 0 {
			return nil, fmt.Errorf("%w: item price must be positive", ErrInvalidInput)
		}
	}

	var total float64
	for _, it := range items {
		total += float64(it.Quantity) * it.Price
	}

	o := domain.Order{
		UserID:          userID,
		Items:           items,
		TotalAmount:     total,
		Status:          domain.OrderStatusPending,
		ShippingAddress: shippingAddress,
	}
	if err := s.repo.Create(ctx, &o); err != nil {
		return nil, err
	}
	return &o, nil
}

func (s *OrderService) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	return s.repo.GetByID(ctx, id)
}

// UpdateStatus checks set membership only. The transition graph is
// deliberately unrestricted: any valid status can follow any other,
// including moving a cancelled order back to shipped.
func (s *OrderService) UpdateStatus(ctx context.Context, id string, status domain.OrderStatus) (*domain.Order, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, status)
	}
	o, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	o.Status = status
	if err := s.repo.Update(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *OrderService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *OrderService) List(ctx context.Context, f repository.OrderFilter) ([]domain.Order, error) {
	return s.repo.List(ctx, f)
}
