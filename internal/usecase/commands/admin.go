package commands

import (
	"context"
	"log/slog"
	"strings"

	"vas-broker/internal/domain/agent"
	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/catalog"
	"vas-broker/internal/pkg/clock"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterAgentParams struct {
	// UserID is the platform user the agent logs in as; uuid.Nil generates a fresh id.
	UserID      uuid.UUID
	DisplayName string
	Categories  []category.Category
	MaxActive   int
}

// UpdateAgentParams carries partial settings; nil fields are left unchanged.
type UpdateAgentParams struct {
	DisplayName *string
	Categories  []category.Category
	Available   *bool
	MaxActive   *int
}

type AgentAdminCommands interface {
	Register(ctx context.Context, p RegisterAgentParams) (*agent.Agent, error)
	Update(ctx context.Context, agentID uuid.UUID, p UpdateAgentParams) (*agent.Agent, error)
}

type agentAdminImpl struct {
	uow    shared.UnitOfWork
	clock  clock.Clock
	logger *slog.Logger
}

func NewAgentAdminCommands(uow shared.UnitOfWork, clk clock.Clock, logger *slog.Logger) AgentAdminCommands {
	return &agentAdminImpl{uow: uow, clock: clk, logger: logger}
}

func (uc *agentAdminImpl) Register(ctx context.Context, p RegisterAgentParams) (*agent.Agent, error) {
	a, err := agent.New(p.UserID, p.DisplayName, p.Categories, p.MaxActive, uc.clock.Now())
	if err != nil {
		return nil, errs.Mark(err, errs.ErrInvalidPayload)
	}
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Agents().Create(ctx, a)
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("agent registered",
		"agent_id", a.ID().String(),
		"categories", a.Categories(),
		"max_active", a.MaxActive())
	return a, nil
}

func (uc *agentAdminImpl) Update(ctx context.Context, agentID uuid.UUID, p UpdateAgentParams) (*agent.Agent, error) {
	var updated *agent.Agent
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		now := uc.clock.Now()
		a, err := tx.Agents().FindByID(ctx, agentID)
		if err != nil {
			return err
		}

		if p.DisplayName != nil {
			if err = a.Rename(*p.DisplayName, now); err != nil {
				return errs.Mark(err, errs.ErrInvalidPayload)
			}
		}
		if p.Categories != nil {
			if err = a.SetCategories(p.Categories, now); err != nil {
				return errs.Mark(err, errs.ErrInvalidPayload)
			}
		}
		if p.MaxActive != nil {
			if err = a.SetCapacity(*p.MaxActive, now); err != nil {
				if errs.Is(err, errs.ErrCapacityBelowLoad) {
					return err
				}
				return errs.Mark(err, errs.ErrInvalidPayload)
			}
		}
		if p.Available != nil {
			a.SetAvailability(*p.Available, now)
		}

		if err = tx.Agents().UpdateSettings(ctx, a); err != nil {
			return err
		}
		updated = a
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("agent updated",
		"agent_id", agentID.String(),
		"available", updated.Available(),
		"max_active", updated.MaxActive())
	return updated, nil
}

type InventoryAdminCommands interface {
	BulkAdd(ctx context.Context, pool string, entries []inventory.Entry) (*inventory.BulkAddReport, error)
	SetPricing(ctx context.Context, cat category.Category, variant string, fee money.Money) error
	// SeedDefaultPricing stores the catalog's default fees where no price exists yet.
	SeedDefaultPricing(ctx context.Context) (int, error)
}

type inventoryAdminImpl struct {
	uow     shared.UnitOfWork
	catalog *catalog.Catalog
	clock   clock.Clock
	logger  *slog.Logger
}

func NewInventoryAdminCommands(uow shared.UnitOfWork, cat *catalog.Catalog, clk clock.Clock, logger *slog.Logger) InventoryAdminCommands {
	return &inventoryAdminImpl{uow: uow, catalog: cat, clock: clk, logger: logger}
}

func (uc *inventoryAdminImpl) BulkAdd(ctx context.Context, pool string, entries []inventory.Entry) (*inventory.BulkAddReport, error) {
	pool = strings.ToLower(strings.TrimSpace(pool))
	if !uc.catalog.AllowedPool(pool) {
		return nil, errs.Wrapf(errs.ErrInvalidPayload, "unknown inventory pool %q", pool)
	}

	valid, report := inventory.Prepare(entries)
	if len(valid) > 0 {
		err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			added, dups, err := tx.Inventory().BulkAdd(ctx, pool, valid, uc.clock.Now())
			if err != nil {
				return err
			}
			report.Added = added
			report.Duplicates = append(report.Duplicates, dups...)
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	uc.logger.Info("inventory codes imported",
		"pool", pool,
		"added", report.Added,
		"duplicates", len(report.Duplicates),
		"invalid", len(report.Invalid))
	return &report, nil
}

func (uc *inventoryAdminImpl) SetPricing(ctx context.Context, cat category.Category, variant string, fee money.Money) error {
	variant = strings.ToLower(strings.TrimSpace(variant))
	if err := uc.validatePrice(cat, variant, fee); err != nil {
		return err
	}
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Pricing().Set(ctx, cat, variant, fee, uc.clock.Now())
	})
	if err != nil {
		return err
	}
	uc.logger.Info("pricing updated",
		"category", cat.String(),
		"variant", variant,
		"fee", fee.String())
	return nil
}

func (uc *inventoryAdminImpl) SeedDefaultPricing(ctx context.Context) (int, error) {
	seeded := 0
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		seeded = 0
		now := uc.clock.Now()
		for _, seed := range uc.catalog.DefaultPrices() {
			applied, err := tx.Pricing().SetIfAbsent(ctx, seed.Category, seed.Variant, seed.Fee, now)
			if err != nil {
				return err
			}
			if applied {
				seeded++
			}
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	if seeded > 0 {
		uc.logger.Info("default pricing seeded", "prices", seeded)
	}
	return seeded, nil
}

func (uc *inventoryAdminImpl) validatePrice(cat category.Category, variant string, fee money.Money) error {
	if !cat.IsValid() {
		return errs.Mark(category.ErrUnknownCategory, errs.ErrInvalidPayload)
	}
	if !fee.IsPositive() {
		return errs.Wrap(errs.ErrInvalidPayload, "fee must be positive")
	}
	if cat == category.PinOrder {
		if !uc.catalog.AllowedPool(variant) {
			return errs.Wrapf(errs.ErrInvalidPayload, "unknown inventory pool %q", variant)
		}
		return nil
	}
	if variant != "" {
		return errs.Wrapf(errs.ErrInvalidPayload, "category %s has no variants", cat)
	}
	return nil
}
