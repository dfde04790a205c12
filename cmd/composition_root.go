package cmd

import (
	"log/slog"
	"time"

	httpin "butchermarket/internal/adapters/in/http"
	"butchermarket/internal/adapters/out/memory/orderrepo"
	"butchermarket/internal/adapters/out/memory/productrepo"
	"butchermarket/internal/core/application/usecases/commands"
	"butchermarket/internal/core/application/usecases/queries"
	"butchermarket/internal/core/domain/services"
	"butchermarket/internal/jobs"
)

// CompositionRoot wires the volatile in-memory stores to every use case.
// The repositories are shared: HTTP handlers and background jobs all see the
// same live collection.
type CompositionRoot struct {
	orders   *orderrepo.MemoryOrderRepository
	products *productrepo.MemoryProductRepository
	logger   *slog.Logger
}

func NewCompositionRoot(_ Config, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		orders:   orderrepo.NewMemoryOrderRepository(),
		products: productrepo.NewMemoryProductRepository(),
		logger:   logger,
	}
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() commands.PlaceOrderCommandHandler {
	return commands.NewPlaceOrderCommandHandler(
		c.orders,
		c.products,
		services.NewOrderIDGenerator(),
		time.Now,
	)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(c.orders)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateStatusSummaryQueryHandler() queries.StatusSummaryQueryHandler {
	return queries.NewStatusSummaryQueryHandler(c.orders)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreatePlaceOrderCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateListOrdersQueryHandler(),
		c.CreateGetOrderQueryHandler(),
		c.CreateStatusSummaryQueryHandler(),
		c.products,
	)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateStatusSummaryQueryHandler(), c.logger)
}
