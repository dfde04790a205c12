package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"butchermarket/internal/core/application/usecases/commands"
	"butchermarket/internal/core/domain/model/kernel"
	"butchermarket/internal/core/domain/model/order"
	"butchermarket/internal/core/domain/model/product"
	"butchermarket/internal/core/domain/services"
	"butchermarket/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.OrderID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Order), args.Error(1)
}

func (m *MockOrderRepository) ExistingIDs(ctx context.Context) (map[kernel.OrderID]struct{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[kernel.OrderID]struct{}), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) Add(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Update(ctx context.Context, p *product.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockProductRepository) Remove(ctx context.Context, id int) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductRepository) Get(ctx context.Context, id int) (*product.Product, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*product.Product), args.Error(1)
}

func (m *MockProductRepository) GetAll(ctx context.Context) ([]*product.Product, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*product.Product), args.Error(1)
}

func (m *MockProductRepository) NextID(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

type MockOrderIDGenerator struct{ mock.Mock }

func (m *MockOrderIDGenerator) Generate(existing map[kernel.OrderID]struct{}) (kernel.OrderID, error) {
	args := m.Called(existing)
	return args.Get(0).(kernel.OrderID), args.Error(1)
}

func mincedBeef(t *testing.T) *product.Product {
	t.Helper()
	p, err := product.NewProduct(11, "Minced Beef", decimal.NewFromInt(400))
	require.NoError(t, err)
	return p
}

func TestPlaceOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(
		"Ahmed", "01234567890", "", "123 Example St, Cairo", "", "Cash",
		[]commands.CartLine{{ProductID: 11, Quantity: decimal.NewFromInt(2)}},
	)
	require.NoError(t, err)

	id, err := kernel.OrderIDFromString("BM-171700")
	require.NoError(t, err)
	createdAt := time.Date(2026, 8, 1, 10, 30, 0, 0, time.UTC)

	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	generator := new(MockOrderIDGenerator)

	products.On("Get", ctx, 11).Return(mincedBeef(t), nil).Once()
	orders.On("ExistingIDs", ctx).Return(map[kernel.OrderID]struct{}{}, nil).Once()
	generator.On("Generate", mock.Anything).Return(id, nil).Once()
	orders.On("Add", ctx, mock.AnythingOfType("*order.Order")).Return(nil).Once()

	h := commands.NewPlaceOrderCommandHandler(orders, products, generator, func() time.Time { return createdAt })
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, "BM-171700", created.ID().String())
	assert.Equal(t, order.Confirmed, created.Status())
	assert.True(t, created.TotalAmount().Equal(decimal.NewFromInt(800)),
		"total is 2kg * 400, got %s", created.TotalAmount())
	assert.Equal(t, createdAt, created.CreatedAt())

	items := created.Items()
	require.Len(t, items, 1)
	assert.Equal(t, "Minced Beef", items[0].Name())
	assert.True(t, items[0].UnitPrice().Equal(decimal.NewFromInt(400)))

	orders.AssertExpectations(t)
	products.AssertExpectations(t)
	generator.AssertExpectations(t)
}

func TestPlaceOrderCommandHandler_Handle_SnapshotsCatalogState(t *testing.T) {
	// The order captures the catalog name/price at build time; the items carry
	// their own copies, not references back to the product.
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(
		"Fatma", "01098765432", "", "45 Nasr St, Giza", "", "InstaPay",
		[]commands.CartLine{{ProductID: 14, Quantity: decimal.RequireFromString("1.5")}},
	)
	require.NoError(t, err)

	shawarma, err := product.NewProduct(14, "Shawarma", decimal.NewFromInt(430))
	require.NoError(t, err)
	id, err := kernel.OrderIDFromString("BM-171701")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	generator := new(MockOrderIDGenerator)

	products.On("Get", ctx, 14).Return(shawarma, nil).Once()
	orders.On("ExistingIDs", ctx).Return(map[kernel.OrderID]struct{}{}, nil).Once()
	generator.On("Generate", mock.Anything).Return(id, nil).Once()
	orders.On("Add", ctx, mock.Anything).Return(nil).Once()

	h := commands.NewPlaceOrderCommandHandler(orders, products, generator, nil)
	created, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.True(t, created.TotalAmount().Equal(decimal.RequireFromString("645")))
	items := created.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 14, items[0].ProductID())
	assert.Equal(t, "Shawarma", items[0].Name())
}

func TestPlaceOrderCommandHandler_Handle_UnknownProduct(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(
		"Ahmed", "01234567890", "", "123 Example St", "", "Cash",
		[]commands.CartLine{{ProductID: 999, Quantity: decimal.NewFromInt(1)}},
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	generator := new(MockOrderIDGenerator)

	products.On("Get", ctx, 999).Return(nil, errs.NewObjectNotFoundError("productId", 999)).Once()

	h := commands.NewPlaceOrderCommandHandler(orders, products, generator, nil)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_GenerationExhausted(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(
		"Ahmed", "01234567890", "", "123 Example St", "", "Cash",
		[]commands.CartLine{{ProductID: 11, Quantity: decimal.NewFromInt(1)}},
	)
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	generator := new(MockOrderIDGenerator)

	products.On("Get", ctx, 11).Return(mincedBeef(t), nil).Once()
	orders.On("ExistingIDs", ctx).Return(map[kernel.OrderID]struct{}{}, nil).Once()
	generator.On("Generate", mock.Anything).Return(kernel.OrderID{}, services.ErrGenerationExhausted).Once()

	h := commands.NewPlaceOrderCommandHandler(orders, products, generator, nil)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.ErrorIs(t, err, services.ErrGenerationExhausted)
	orders.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestPlaceOrderCommandHandler_Handle_NotConstructedCommand(t *testing.T) {
	ctx := t.Context()
	var cmd commands.PlaceOrderCommand // not constructed properly

	h := commands.NewPlaceOrderCommandHandler(new(MockOrderRepository), new(MockProductRepository), new(MockOrderIDGenerator), nil)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Equal(t, commands.ErrPlaceOrderCommandIsNotConstructed, err)
}

func TestPlaceOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewPlaceOrderCommand(
		"Ahmed", "01234567890", "", "123 Example St", "", "Cash",
		[]commands.CartLine{{ProductID: 11, Quantity: decimal.NewFromInt(1)}},
	)
	require.NoError(t, err)

	id, err := kernel.OrderIDFromString("BM-171700")
	require.NoError(t, err)

	orders := new(MockOrderRepository)
	products := new(MockProductRepository)
	generator := new(MockOrderIDGenerator)

	products.On("Get", ctx, 11).Return(mincedBeef(t), nil).Once()
	orders.On("ExistingIDs", ctx).Return(map[kernel.OrderID]struct{}{}, nil).Once()
	generator.On("Generate", mock.Anything).Return(id, nil).Once()
	orders.On("Add", ctx, mock.Anything).Return(errors.New("add error")).Once()

	h := commands.NewPlaceOrderCommandHandler(orders, products, generator, nil)
	_, err = h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "add error")
}
