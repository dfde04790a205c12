package productrepo_test

import (
	"testing"

	"butchermarket/internal/adapters/out/memory/productrepo"
	"butchermarket/internal/core/domain/model/product"
	"butchermarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func buildProduct(t *testing.T, id int, name string, price int64) *product.Product {
	t.Helper()
	p, err := product.NewProduct(id, name, decimal.NewFromInt(price))
	require.NoError(t, err)
	return p
}

func TestMemoryProductRepository_AddAndGet(t *testing.T) {
	ctx := t.Context()
	repo := productrepo.NewMemoryProductRepository()
	stored := buildProduct(t, 11, "Minced Beef", 400)

	require.NoError(t, repo.Add(ctx, stored))

	found, err := repo.Get(ctx, 11)
	require.NoError(t, err)
	assert.Same(t, stored, found)
}

func TestMemoryProductRepository_Add_DuplicateID(t *testing.T) {
	ctx := t.Context()
	repo := productrepo.NewMemoryProductRepository()
	require.NoError(t, repo.Add(ctx, buildProduct(t, 11, "Minced Beef", 400)))

	err := repo.Add(ctx, buildProduct(t, 11, "Shawarma", 430))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMemoryProductRepository_Get_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := productrepo.NewMemoryProductRepository()

	_, err := repo.Get(ctx, 999)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryProductRepository_Update(t *testing.T) {
	ctx := t.Context()
	repo := productrepo.NewMemoryProductRepository()
	require.NoError(t, repo.Add(ctx, buildProduct(t, 11, "Minced Beef", 400)))

	require.NoError(t, repo.Update(ctx, buildProduct(t, 11, "Minced Beef", 420)))

	found, err := repo.Get(ctx, 11)
	require.NoError(t, err)
	assert.True(t, found.PricePerKg().Equal(decimal.NewFromInt(420)))
}

func TestMemoryProductRepository_Update_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := productrepo.NewMemoryProductRepository()

	err := repo.Update(ctx, buildProduct(t, 11, "Minced Beef", 400))

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryProductRepository_Remove(t *testing.T) {
	ctx := t.Context()
	repo := productrepo.NewMemoryProductRepository()
	require.NoError(t, repo.Add(ctx, buildProduct(t, 11, "Minced Beef", 400)))
	require.NoError(t, repo.Add(ctx, buildProduct(t, 12, "Shawarma", 430)))

	require.NoError(t, repo.Remove(ctx, 11))

	_, err := repo.Get(ctx, 11)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 12, all[0].ID())
}

func TestMemoryProductRepository_Remove_NotFound(t *testing.T) {
	ctx := t.Context()
	repo := productrepo.NewMemoryProductRepository()

	err := repo.Remove(ctx, 11)

	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestMemoryProductRepository_GetAll_InsertionOrder(t *testing.T) {
	ctx := t.Context()
	repo := productrepo.NewMemoryProductRepository()
	require.NoError(t, repo.Add(ctx, buildProduct(t, 3, "Kofta", 410)))
	require.NoError(t, repo.Add(ctx, buildProduct(t, 1, "Minced Beef", 400)))
	require.NoError(t, repo.Add(ctx, buildProduct(t, 2, "Shawarma", 430)))

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 3, all[0].ID(), "insertion order, not id order")
	assert.Equal(t, 1, all[1].ID())
	assert.Equal(t, 2, all[2].ID())
}

func TestMemoryProductRepository_NextID(t *testing.T) {
	ctx := t.Context()
	repo := productrepo.NewMemoryProductRepository()

	next, err := repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, next, "empty catalog starts at 1")

	require.NoError(t, repo.Add(ctx, buildProduct(t, 7, "Kofta", 410)))
	require.NoError(t, repo.Add(ctx, buildProduct(t, 3, "Shawarma", 430)))

	next, err = repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 8, next)

	require.NoError(t, repo.Remove(ctx, 7))
	next, err = repo.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, 4, next, "NextID follows the current catalog contents")
}
