package repository

import (
	"context"
	"errors"

	"storefront/internal/domain"
)

// ErrNotFound is returned when a record does not exist
var ErrNotFound = errors.New("not found")

// ProductFilter holds the list predicates. They are applied conjunctively
// in a fixed order: category, min price, max price. Nil/empty means no-op.
type ProductFilter struct {
	Category string
	MinPrice *float64
	MaxPrice *float64
}

// OrderFilter holds the order list predicates: exact user id and exact
// status match, applied conjunctively in that order.
type OrderFilter struct {
	UserID string
	Status string
}

// ProductRepository owns the product collection
type ProductRepository interface {
	Create(ctx context.Context, p *domain.Product) error
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, p *domain.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f ProductFilter) ([]domain.Product, error)
}

// OrderRepository owns the order collection
type OrderRepository interface {
	Create(ctx context.Context, o *domain.Order) error
	GetByID(ctx context.Context, id string) (*domain.Order, error)
	Update(ctx context.Context, o *domain.Order) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, f OrderFilter) ([]domain.Order, error)
}
