package repository

import (
	"context"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/infra"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/pgconv"
)

type PricingWriteQueries interface {
	GetPricing(ctx context.Context, db sqlc.DBTX, arg sqlc.GetPricingParams) (sqlc.Pricing, error)
	UpsertPricing(ctx context.Context, db sqlc.DBTX, arg sqlc.UpsertPricingParams) error
	InsertPricingIfAbsent(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertPricingIfAbsentParams) (int64, error)
}

type PricingRepository struct {
	queries PricingWriteQueries
	db      sqlc.DBTX
}

func NewPricingRepository(queries PricingWriteQueries, db sqlc.DBTX) *PricingRepository {
	return &PricingRepository{
		queries: queries,
		db:      db,
	}
}

func (r *PricingRepository) Get(ctx context.Context, cat category.Category, variant string) (money.Money, error) {
	row, err := r.queries.GetPricing(ctx, r.db, sqlc.GetPricingParams{Category: cat.String(), Variant: variant})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return money.Money{}, errs.Wrapf(errs.ErrPricingNotFound, "no price for %s/%s", cat, variant)
		}
		return money.Money{}, infra.WrapRepoErr("failed to get pricing", err)
	}
	return money.FromKobo(row.FeeKobo), nil
}

func (r *PricingRepository) Set(ctx context.Context, cat category.Category, variant string, fee money.Money, now time.Time) error {
	err := r.queries.UpsertPricing(ctx, r.db, sqlc.UpsertPricingParams{
		Category:  cat.String(),
		Variant:   variant,
		FeeKobo:   fee.Kobo(),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to set pricing", err)
	}
	return nil
}

func (r *PricingRepository) SetIfAbsent(ctx context.Context, cat category.Category, variant string, fee money.Money, now time.Time) (bool, error) {
	n, err := r.queries.InsertPricingIfAbsent(ctx, r.db, sqlc.InsertPricingIfAbsentParams{
		Category:  cat.String(),
		Variant:   variant,
		FeeKobo:   fee.Kobo(),
		UpdatedAt: pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return false, infra.WrapRepoErr("failed to seed pricing", err)
	}
	return n > 0, nil
}
