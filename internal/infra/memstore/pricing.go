package memstore

import (
	"context"
	"time"

	"vas-broker/internal/domain/category"
	"vas-broker/internal/domain/money"
	"vas-broker/internal/pkg/errs"
)

type pricing struct {
	fee       money.Money
	updatedAt time.Time
}

type pricingRepo struct {
	tx *memTx
}

func (r *pricingRepo) Get(_ context.Context, cat category.Category, variant string) (money.Money, error) {
	p, ok := r.tx.st.prices[priceKey{category: cat.String(), variant: variant}]
	if !ok {
		return money.Money{}, errs.Wrapf(errs.ErrPricingNotFound, "no price for %s/%s", cat, variant)
	}
	return p.fee, nil
}

func (r *pricingRepo) Set(_ context.Context, cat category.Category, variant string, fee money.Money, now time.Time) error {
	r.tx.st.prices[priceKey{category: cat.String(), variant: variant}] = pricing{fee: fee, updatedAt: now}
	return nil
}

func (r *pricingRepo) SetIfAbsent(_ context.Context, cat category.Category, variant string, fee money.Money, now time.Time) (bool, error) {
	key := priceKey{category: cat.String(), variant: variant}
	if _, ok := r.tx.st.prices[key]; ok {
		return false, nil
	}
	r.tx.st.prices[key] = pricing{fee: fee, updatedAt: now}
	return true, nil
}
