package readstore

import (
	"context"

	"vas-broker/internal/domain/money"
	"vas-broker/internal/infra"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/pgconv"
	"vas-broker/internal/usecase/queries"
)

type InventoryViewQueries interface {
	GetInventoryStock(ctx context.Context, db sqlc.DBTX, pool string) (sqlc.GetInventoryStockRow, error)
	ListPricing(ctx context.Context, db sqlc.DBTX) ([]sqlc.Pricing, error)
}

type InventoryReadStore struct {
	queries InventoryViewQueries
	db      sqlc.DBTX
}

func NewInventoryReadStore(queries InventoryViewQueries, db sqlc.DBTX) *InventoryReadStore {
	return &InventoryReadStore{
		queries: queries,
		db:      db,
	}
}

// Stock reports zero counts for a pool with no imported codes.
func (r *InventoryReadStore) Stock(ctx context.Context, pool string) (*queries.StockView, error) {
	row, err := r.queries.GetInventoryStock(ctx, r.db, pool)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to count inventory stock", err)
	}
	return &queries.StockView{
		Pool:     pool,
		Unused:   int(row.Unused),
		Reserved: int(row.Reserved),
		Used:     int(row.Used),
	}, nil
}

func (r *InventoryReadStore) ListPricing(ctx context.Context) ([]*queries.PricingView, error) {
	rows, err := r.queries.ListPricing(ctx, r.db)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pricing", err)
	}
	out := make([]*queries.PricingView, 0, len(rows))
	for _, row := range rows {
		out = append(out, &queries.PricingView{
			Category:  row.Category,
			Variant:   row.Variant,
			Fee:       money.FromKobo(row.FeeKobo),
			UpdatedAt: pgconv.TimeFromPgtype(row.UpdatedAt),
		})
	}
	return out, nil
}
