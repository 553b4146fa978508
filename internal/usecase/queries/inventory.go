package queries

import (
	"context"
	"strings"

	"vas-broker/internal/pkg/catalog"
	"vas-broker/internal/pkg/errs"
)

type InventoryReadStore interface {
	Stock(ctx context.Context, pool string) (*StockView, error)
}

type PricingReadStore interface {
	ListPricing(ctx context.Context) ([]*PricingView, error)
}

type InventoryQueries interface {
	Stock(ctx context.Context, pool string) (*StockView, error)
	Pricing(ctx context.Context) ([]*PricingView, error)
}

type inventoryQueriesImpl struct {
	stock   InventoryReadStore
	pricing PricingReadStore
	catalog *catalog.Catalog
}

func NewInventoryQueries(stock InventoryReadStore, pricing PricingReadStore, cat *catalog.Catalog) InventoryQueries {
	return &inventoryQueriesImpl{stock: stock, pricing: pricing, catalog: cat}
}

func (q *inventoryQueriesImpl) Stock(ctx context.Context, pool string) (*StockView, error) {
	pool = strings.ToLower(strings.TrimSpace(pool))
	if !q.catalog.AllowedPool(pool) {
		return nil, errs.Wrapf(errs.ErrInvalidPayload, "unknown inventory pool %q", pool)
	}
	return q.stock.Stock(ctx, pool)
}

func (q *inventoryQueriesImpl) Pricing(ctx context.Context) ([]*PricingView, error) {
	return q.pricing.ListPricing(ctx)
}
