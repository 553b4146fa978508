package repository

import (
	"context"
	"time"

	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/infra"
	"vas-broker/internal/infra/repository/converter"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/errs"
	"vas-broker/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type InventoryWriteQueries interface {
	ClaimInventoryCode(ctx context.Context, db sqlc.DBTX, arg sqlc.ClaimInventoryCodeParams) (sqlc.InventoryCodes, error)
	FinalizeInventoryCode(ctx context.Context, db sqlc.DBTX, arg sqlc.FinalizeInventoryCodeParams) (int64, error)
	GetInventoryCode(ctx context.Context, db sqlc.DBTX, id uuid.UUID) (sqlc.InventoryCodes, error)
	InsertInventoryCode(ctx context.Context, db sqlc.DBTX, arg sqlc.InsertInventoryCodeParams) (int64, error)
}

type InventoryRepository struct {
	queries InventoryWriteQueries
	db      sqlc.DBTX
}

func NewInventoryRepository(queries InventoryWriteQueries, db sqlc.DBTX) *InventoryRepository {
	return &InventoryRepository{
		queries: queries,
		db:      db,
	}
}

func (r *InventoryRepository) Claim(ctx context.Context, pool string, requestID uuid.UUID, now time.Time) (*inventory.Code, error) {
	row, err := r.queries.ClaimInventoryCode(ctx, r.db, sqlc.ClaimInventoryCodeParams{
		RequestID: pgconv.UUIDToPgtype(requestID),
		Now:       pgconv.TimeToPgtype(now),
		Pool:      pool,
	})
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Wrapf(errs.ErrNoStockAvailable, "pool %s is empty", pool)
		}
		return nil, infra.WrapRepoErr("failed to claim inventory code", err)
	}
	return converter.CodeFromRow(row), nil
}

func (r *InventoryRepository) Finalize(ctx context.Context, codeID, requestID uuid.UUID, now time.Time) error {
	n, err := r.queries.FinalizeInventoryCode(ctx, r.db, sqlc.FinalizeInventoryCodeParams{
		Now:       pgconv.TimeToPgtype(now),
		ID:        codeID,
		RequestID: pgconv.UUIDToPgtype(requestID),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to finalize inventory code", err)
	}
	if n > 0 {
		return nil
	}

	// Nothing updated: either a replay for the same request or a code held by someone else
	code, err := r.FindByID(ctx, codeID)
	if err != nil {
		return err
	}
	if err := code.Finalize(requestID, now); err != nil && !errs.Is(err, inventory.ErrAlreadyUsed) {
		return err
	}
	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Code, error) {
	row, err := r.queries.GetInventoryCode(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, errs.Mark(infra.WrapRepoErr("inventory code not found", err, infra.KindNotFound), errs.ErrCodeNotFound)
		}
		return nil, infra.WrapRepoErr("failed to get inventory code", err)
	}
	return converter.CodeFromRow(row), nil
}

func (r *InventoryRepository) BulkAdd(ctx context.Context, pool string, entries []inventory.Entry, now time.Time) (int, []string, error) {
	added := 0
	duplicates := []string{}
	for _, e := range entries {
		code := inventory.NewCode(pool, e, now)
		n, err := r.queries.InsertInventoryCode(ctx, r.db, sqlc.InsertInventoryCodeParams{
			ID:        code.ID(),
			Pool:      pool,
			Code:      code.Value(),
			Serial:    pgconv.OptionalString(code.Serial()),
			CreatedAt: pgconv.TimeToPgtype(now),
		})
		if err != nil {
			return 0, nil, infra.WrapRepoErr("failed to insert inventory code", err)
		}
		if n == 0 {
			duplicates = append(duplicates, e.Code)
			continue
		}
		added++
	}
	return added, duplicates, nil
}
