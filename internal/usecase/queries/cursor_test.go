//go:build unit

package queries_test

import (
	"testing"
	"time"

	"vas-broker/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCursorRoundTrip(t *testing.T) {
	ts := time.Date(2025, 6, 2, 9, 0, 0, 123456789, time.UTC)
	id := uuid.New()

	gotTime, gotID, err := queries.DecodeAfterCursor(queries.EncodeAfterCursor(ts, id))

	require.NoError(t, err)
	assert.Equal(t, id, gotID)
	assert.Equal(t, ts.Truncate(time.Microsecond).UnixMicro(), gotTime.UnixMicro())
}

func TestDecodeAfterCursor_Invalid(t *testing.T) {
	for _, c := range []string{"", "not-base64!!", "djI6MTIzLXh5eg==", "djE6YWJjLTEyMw=="} {
		_, _, err := queries.DecodeAfterCursor(c)
		assert.Error(t, err, "cursor %q", c)
	}
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, queries.DefaultListLimit, queries.ValidateLimit(0))
	assert.Equal(t, 5, queries.ValidateLimit(5))
	assert.Equal(t, queries.MaxListLimit, queries.ValidateLimit(1000))
}
