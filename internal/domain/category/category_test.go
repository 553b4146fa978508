//go:build unit

package category_test

import (
	"testing"

	"vas-broker/internal/domain/category"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	for _, c := range category.All() {
		got, err := category.Parse(c.String())
		require.NoError(t, err)
		assert.Equal(t, c, got)
	}

	_, err := category.Parse("waec_pin")
	assert.ErrorIs(t, err, category.ErrUnknownCategory)
	_, err = category.Parse("")
	assert.ErrorIs(t, err, category.ErrUnknownCategory)
}

func TestFulfillment(t *testing.T) {
	assert.Equal(t, category.FulfillmentInventory, category.PinOrder.Fulfillment())
	assert.False(t, category.PinOrder.IsAgentServiced())

	assert.ElementsMatch(t,
		[]category.Category{category.Identity, category.BVN, category.Education, category.CAC, category.AirtimeToCash},
		category.AgentServiced(),
	)
	for _, c := range category.AgentServiced() {
		assert.Equal(t, category.FulfillmentAgent, c.Fulfillment(), c)
	}
}
