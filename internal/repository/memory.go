package repository

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"storefront/internal/domain"
)

// MemoryProducts is an in-memory product store: an id-indexed map plus an
// insertion-order list so List returns records in the order they were added.
// All read-then-write sequences run under the store mutex.
type MemoryProducts struct {
	mu    sync.RWMutex
	byID  map[string]domain.Product
	order []string
}

func NewMemoryProducts(seed ...domain.Product) *MemoryProducts {
	m := &MemoryProducts{byID: make(map[string]domain.Product)}
	for _, p := range seed {
		m.byID[p.ID] = p
		m.order = append(m.order, p.ID)
	}
	return m
}

var _ ProductRepository = (*MemoryProducts)(nil)

func (m *MemoryProducts) Create(_ context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p.ID = m.newID()
	p.CreatedAt = time.Now().UTC()
	m.byID[p.ID] = *p
	m.order = append(m.order, p.ID)
	return nil
}

func (m *MemoryProducts) GetByID(_ context.Context, id string) (*domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := p
	return &cp, nil
}

func (m *MemoryProducts) Update(_ context.Context, p *domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[p.ID]; !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	p.UpdatedAt = &now
	m.byID[p.ID] = *p
	return nil
}

// Delete is idempotent: removing an absent id is a silent no-op.
func (m *MemoryProducts) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return nil
	}
	delete(m.byID, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryProducts) List(_ context.Context, f ProductFilter) ([]domain.Product, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Product, 0, len(m.order))
	for _, id := range m.order {
		p := m.byID[id]
		if f.Category != "" && !strings.EqualFold(p.Category, f.Category) {
			continue
		}
		if f.MinPrice != nil && p.Price < *f.MinPrice {
			continue
		}
		if f.MaxPrice != nil && p.Price > *f.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	return out, nil
}

// newID re-rolls until the id is unused. Callers hold the write lock.
func (m *MemoryProducts) newID() string {
	for {
		id := uuid.NewString()
		if _, taken := m.byID[id]; !taken {
			return id
		}
	}
}

// MemoryOrders mirrors MemoryProducts for the order ledger. Order ids carry
// an "order-" prefix.
type MemoryOrders struct {
	mu    sync.RWMutex
	byID  map[string]domain.Order
	order []string
}

func NewMemoryOrders(seed ...domain.Order) *MemoryOrders {
	m := &MemoryOrders{byID: make(map[string]domain.Order)}
	for _, o := range seed {
		m.byID[o.ID] = o
		m.order = append(m.order, o.ID)
	}
	return m
}

var _ OrderRepository = (*MemoryOrders)(nil)

func (m *MemoryOrders) Create(_ context.Context, o *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for {
		id := "order-" + uuid.NewString()
		if _, taken := m.byID[id]; !taken {
			o.ID = id
			break
		}
	}
	o.CreatedAt = time.Now().UTC()
	m.byID[o.ID] = *o
	m.order = append(m.order, o.ID)
	return nil
}

func (m *MemoryOrders) GetByID(_ context.Context, id string) (*domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	o, ok := m.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := o
	return &cp, nil
}

func (m *MemoryOrders) Update(_ context.Context, o *domain.Order) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[o.ID]; !ok {
		return ErrNotFound
	}
	now := time.Now().UTC()
	o.UpdatedAt = &now
	m.byID[o.ID] = *o
	return nil
}

// Delete is idempotent: removing an absent id is a silent no-op.
func (m *MemoryOrders) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return nil
	}
	delete(m.byID, id)
	for i, v := range m.order {
		if v == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *MemoryOrders) List(_ context.Context, f OrderFilter) ([]domain.Order, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]domain.Order, 0, len(m.order))
	for _, id := range m.order {
		o := m.byID[id]
		if f.UserID != "" && o.UserID != f.UserID {
			continue
		}
		if f.Status != "" && string(o.Status) != f.Status {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}
