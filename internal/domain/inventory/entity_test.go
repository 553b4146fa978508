//go:build unit

package inventory_test

import (
	"strings"
	"testing"
	"time"

	"vas-broker/internal/domain/inventory"
	"vas-broker/internal/pkg/errs"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

func TestCodeLifecycle(t *testing.T) {
	code := inventory.NewCode("waec", inventory.Entry{Code: "WAEC-0001", Serial: "SN1"}, now)
	assert.Equal(t, inventory.StatusUnused, code.Status())
	requestID := uuid.New()

	require.NoError(t, code.Reserve(requestID, now))
	assert.Equal(t, inventory.StatusReserved, code.Status())
	assert.Equal(t, requestID, *code.ReservedFor())

	assert.ErrorIs(t, code.Reserve(uuid.New(), now), inventory.ErrNotUnused, "never reserved twice")
	assert.True(t, errs.Is(code.Finalize(uuid.New(), now), errs.ErrNotReservedByCaller))

	require.NoError(t, code.Finalize(requestID, now))
	assert.Equal(t, inventory.StatusUsed, code.Status())
	assert.Equal(t, now, *code.UsedAt())

	assert.ErrorIs(t, code.Finalize(requestID, now), inventory.ErrAlreadyUsed)
	assert.ErrorIs(t, code.Reserve(requestID, now), inventory.ErrNotUnused)
	assert.Equal(t, inventory.StatusUsed, code.Status(), "used is terminal")
}

func TestFinalizeUnreserved(t *testing.T) {
	code := inventory.NewCode("neco", inventory.Entry{Code: "N1"}, now)
	assert.True(t, errs.Is(code.Finalize(uuid.New(), now), errs.ErrNotReservedByCaller))
}

func TestPrepare(t *testing.T) {
	valid, report := inventory.Prepare([]inventory.Entry{
		{Code: " WAEC-1 ", Serial: " S1 "},
		{Code: "WAEC-2"},
		{Code: "WAEC-1"},
		{Code: ""},
		{Code: "bad code!"},
		{Code: strings.Repeat("A", 65)},
	})

	assert.Equal(t, []inventory.Entry{{Code: "WAEC-1", Serial: "S1"}, {Code: "WAEC-2"}}, valid)
	assert.Equal(t, []string{"WAEC-1"}, report.Duplicates)
	require.Len(t, report.Invalid, 3)
	assert.Equal(t, "empty code", report.Invalid[0].Reason)
	assert.Equal(t, 0, report.Added)
}

func TestParseLines(t *testing.T) {
	input := "# exported from vendor\nWAEC-1,SN-1\n\n  WAEC-2  \nWAEC-3, SN-3\n"
	entries, err := inventory.ParseLines(strings.NewReader(input))
	require.NoError(t, err)
	assert.Equal(t, []inventory.Entry{
		{Code: "WAEC-1", Serial: "SN-1"},
		{Code: "WAEC-2"},
		{Code: "WAEC-3", Serial: "SN-3"},
	}, entries)
}
