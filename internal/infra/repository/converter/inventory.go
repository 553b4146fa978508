package converter

import (
	"vas-broker/internal/domain/inventory"
	sqlc "vas-broker/internal/infra/sqlc/generated"
	"vas-broker/internal/pkg/pgconv"
)

func CodeFromRow(row sqlc.InventoryCodes) *inventory.Code {
	return inventory.Reconstruct(inventory.Snapshot{
		ID:          row.ID,
		Pool:        row.Pool,
		Value:       row.Code,
		Serial:      pgconv.StringFromPgtype(row.Serial),
		Status:      inventory.Status(row.Status),
		ReservedFor: pgconv.UUIDPtrFromPgtype(row.ReservedFor),
		ReservedAt:  pgconv.TimePtrFromPgtype(row.ReservedAt),
		UsedAt:      pgconv.TimePtrFromPgtype(row.UsedAt),
		CreatedAt:   pgconv.TimeFromPgtype(row.CreatedAt),
	})
}
