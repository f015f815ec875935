package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/repository"
)

func strp(s string) *string   { return &s }
func f64p(f float64) *float64 { return &f }
func i64p(i int64) *int64     { return &i }

func setupPS(t *testing.T) *ProductService {
	t.Helper()
	return NewProductService(repository.NewMemoryProducts())
}

func TestProduct_Create_Valid(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	p, err := ps.Create(ctx, ProductInput{Name: strp("Laptop"), Price: f64p(999.99), Category: strp("Electronics"), Stock: i64p(50)})
	require.NoError(t, err)
	assert.NotEmpty(t, p.ID)
	assert.Equal(t, int64(50), p.Stock)
	assert.False(t, p.CreatedAt.IsZero())
	assert.Nil(t, p.UpdatedAt)
}

func TestProduct_Create_DefaultsStock(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	p, err := ps.Create(ctx, ProductInput{Name: strp("Cable"), Price: f64p(9.99), Category: strp("Electronics")})
	require.NoError(t, err)
	assert.Zero(t, p.Stock)
}

func TestProduct_Create_MissingFields(t *testing.T) {
	ctx := context.Background()
	store := repository.NewMemoryProducts()
	ps := NewProductService(store)

	cases := []ProductInput{
		{Price: f64p(1), Category: strp("X")},
		{Name: strp("N"), Category: strp("X")},
		{Name: strp("N"), Price: f64p(1)},
	}
	for _, in := range cases {
		_, err := ps.Create(ctx, in)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}

	// nothing inserted on rejection
	list, err := store.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestProduct_Create_NonPositivePriceAccepted(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	// catalog side does not range-check price
	p, err := ps.Create(ctx, ProductInput{Name: strp("Freebie"), Price: f64p(0), Category: strp("Promo")})
	require.NoError(t, err)
	assert.Zero(t, p.Price)
}

func TestProduct_CreateGet_RoundTrip(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	created, err := ps.Create(ctx, ProductInput{Name: strp("Book"), Price: f64p(19.99), Category: strp("Books"), Stock: i64p(200)})
	require.NoError(t, err)

	got, err := ps.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, *created, *got)
	assert.Nil(t, got.UpdatedAt)
}

func TestProduct_Update_PartialMerge(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	created, err := ps.Create(ctx, ProductInput{Name: strp("Phone"), Price: f64p(699.99), Category: strp("Electronics"), Stock: i64p(100)})
	require.NoError(t, err)

	up, err := ps.Update(ctx, created.ID, ProductPatch{Price: f64p(649.99)})
	require.NoError(t, err)
	assert.Equal(t, 649.99, up.Price)
	assert.Equal(t, "Phone", up.Name)
	assert.Equal(t, "Electronics", up.Category)
	assert.Equal(t, int64(100), up.Stock)
	require.NotNil(t, up.UpdatedAt)
}

func TestProduct_Update_EmptyPatch(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	created, err := ps.Create(ctx, ProductInput{Name: strp("Phone"), Price: f64p(699.99), Category: strp("Electronics")})
	require.NoError(t, err)

	_, err = ps.Update(ctx, created.ID, ProductPatch{})
	assert.ErrorIs(t, err, ErrInvalidInput)

	got, err := ps.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, got.UpdatedAt)
}

func TestProduct_Update_NotFound(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	_, err := ps.Update(ctx, "missing", ProductPatch{Name: strp("X")})
	assert.ErrorIs(t, err, repository.ErrNotFound)
}

func TestProduct_Delete_ThenGet(t *testing.T) {
	ctx := context.Background()
	ps := setupPS(t)

	created, err := ps.Create(ctx, ProductInput{Name: strp("Phone"), Price: f64p(699.99), Category: strp("Electronics")})
	require.NoError(t, err)

	require.NoError(t, ps.Delete(ctx, created.ID))
	_, err = ps.GetByID(ctx, created.ID)
	assert.ErrorIs(t, err, repository.ErrNotFound)

	// second delete stays silent
	require.NoError(t, ps.Delete(ctx, created.ID))
}

func TestProduct_List_ConjunctiveFilters(t *testing.T) {
	ctx := context.Background()
	ps := NewProductService(repository.NewMemoryProducts(repository.DefaultProducts()...))

	// no filters: whole collection in insertion order
	list, err := ps.List(ctx, repository.ProductFilter{})
	require.NoError(t, err)
	require.Len(t, list, 4)
	assert.Equal(t, "1", list[0].ID)
	assert.Equal(t, "4", list[3].ID)

	// seeded scenario: electronics under 700 are Phone and Headphones
	maxP := 700.0
	list, err = ps.List(ctx, repository.ProductFilter{Category: "electronics", MaxPrice: &maxP})
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "2", list[0].ID)
	assert.Equal(t, "4", list[1].ID)

	// every returned record satisfies every predicate
	minP := 100.0
	list, err = ps.List(ctx, repository.ProductFilter{Category: "Electronics", MinPrice: &minP, MaxPrice: &maxP})
	require.NoError(t, err)
	for _, p := range list {
		assert.Equal(t, "Electronics", p.Category)
		assert.GreaterOrEqual(t, p.Price, minP)
		assert.LessOrEqual(t, p.Price, maxP)
	}
}
