package handlers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"seelee/internal/models"
)

func TestBuildLineItems(t *testing.T) {
	products := []models.Product{
		{Base: models.Base{ID: 1}, Name: "Mug", PriceCents: 1250},
		{Base: models.Base{ID: 1}, Name: "Mug", PriceCents: 1250},
		{Base: models.Base{ID: 2}, Name: "Cap", PriceCents: 900},
	}

	items := buildLineItems(products)
	require.Len(t, items, 3)

	// duplicates stay separate entries with quantity 1
	for _, it := range items {
		assert.Equal(t, int64(1), it.Quantity)
		assert.Equal(t, "usd", it.Currency)
	}
	assert.Equal(t, "Mug", items[0].Name)
	assert.Equal(t, int64(1250), items[0].AmountCents)
	assert.Equal(t, "Mug", items[1].Name)
	assert.Equal(t, "Cap", items[2].Name)
	assert.Equal(t, int64(900), items[2].AmountCents)
}

func TestBuildLineItemsEmptyCart(t *testing.T) {
	assert.Empty(t, buildLineItems(nil))
}
