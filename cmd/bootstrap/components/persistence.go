package components

import (
	"context"
	"fmt"

	"vas-broker/internal/infra/db"
	"vas-broker/internal/infra/memstore"
	"vas-broker/internal/infra/readstore"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/infra/uow"
	"vas-broker/internal/pkg/config"
	"vas-broker/internal/usecase/queries"
	"vas-broker/internal/usecase/shared"

	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewPersistence,
	),
)

type Persistence struct {
	fx.Out

	UoW      shared.UnitOfWork
	Requests queries.RequestReadStore
	Agents   queries.AgentReadStore
	Wallets  queries.WalletReadStore
	Stock    queries.InventoryReadStore
	Pricing  queries.PricingReadStore
}

// NewPersistence wires the write and read sides against the store chosen by STORE_DRIVER.
func NewPersistence(lc fx.Lifecycle, cfg config.Config) (Persistence, error) {
	switch cfg.Store.Driver {
	case config.StoreDriverMemory:
		return newMemoryPersistence(), nil
	case config.StoreDriverPostgres, "":
		return newPostgresPersistence(lc, cfg)
	default:
		return Persistence{}, fmt.Errorf("unknown STORE_DRIVER %q", cfg.Store.Driver)
	}
}

func newPostgresPersistence(lc fx.Lifecycle, cfg config.Config) (Persistence, error) {
	pool, cleanup, err := db.Connect(context.Background(), cfg.DB)
	if err != nil {
		return Persistence{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			if cleanup != nil {
				cleanup()
			}
			return nil
		},
	})

	q := sqlc.New()
	stock := readstore.NewInventoryReadStore(q, pool)
	return Persistence{
		UoW:      uow.NewPostgresUoW(pool, q),
		Requests: readstore.NewRequestReadStore(q, pool),
		Agents:   readstore.NewAgentReadStore(q, pool),
		Wallets:  readstore.NewWalletReadStore(q, pool),
		Stock:    stock,
		Pricing:  stock,
	}, nil
}

func newMemoryPersistence() Persistence {
	store := memstore.New()
	return Persistence{
		UoW:      store,
		Requests: memstore.NewRequestReadStore(store),
		Agents:   memstore.NewAgentReadStore(store),
		Wallets:  memstore.NewWalletReadStore(store),
		Stock:    memstore.NewInventoryReadStore(store),
		Pricing:  memstore.NewPricingReadStore(store),
	}
}
