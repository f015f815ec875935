package repository

import (
	"time"

	"storefront/internal/domain"
)

// DefaultProducts is the catalog each process starts with. State is
// in-memory only, so every restart begins from these records.
func DefaultProducts() []domain.Product {
	now := time.Now().UTC()
	return []domain.Product{
		{ID: "1", Name: "Laptop", Price: 999.99, Category: "Electronics", Stock: 50, CreatedAt: now},
		{ID: "2", Name: "Phone", Price: 699.99, Category: "Electronics", Stock: 100, CreatedAt: now},
		{ID: "3", Name: "Book", Price: 19.99, Category: "Books", Stock: 200, CreatedAt: now},
		{ID: "4", Name: "Headphones", Price: 149.99, Category: "Electronics", Stock: 75, CreatedAt: now},
	}
}

// DefaultOrders is the ledger seed. order-1 deliberately keeps its historic
// "completed" status even though the status machine no longer issues it.
func DefaultOrders() []domain.Order {
	return []domain.Order{
		{
			ID:     "order-1",
			UserID: "1",
			Items: []domain.OrderItem{
				{ProductID: "1", Quantity: 1, Price: 999.99},
				{ProductID: "4", Quantity: 2, Price: 149.99},
			},
			TotalAmount:     1299.97,
			Status:          domain.OrderStatus("completed"),
			ShippingAddress: "123 Main St, City, State",
			CreatedAt:       time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		},
		{
			ID:     "order-2",
			UserID: "2",
			Items: []domain.OrderItem{
				{ProductID: "2", Quantity: 1, Price: 699.99},
			},
			TotalAmount:     699.99,
			Status:          domain.OrderStatusPending,
			ShippingAddress: "456 Oak Ave, Town, State",
			CreatedAt:       time.Date(2024, 1, 16, 14, 20, 0, 0, time.UTC),
		},
	}
}
