package converter

import (
	"vas-broker/internal/domain/ledger"
	"vas-broker/internal/domain/money"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/pgconv"
)

func EntryFromRow(row sqlc.LedgerEntries) ledger.Entry {
	return ledger.Entry{
		ID:             row.ID,
		UserID:         row.UserID,
		Amount:         money.FromKobo(row.AmountKobo),
		IdempotencyKey: row.IdempotencyKey,
		Kind:           ledger.Kind(row.Kind),
		RequestID:      pgconv.UUIDPtrFromPgtype(row.RequestID),
		BalanceAfter:   money.FromKobo(row.BalanceAfterKobo),
		CreatedAt:      pgconv.TimeFromPgtype(row.CreatedAt),
	}
}
