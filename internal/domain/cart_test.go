package domain_test

import (
	"testing"

	"github.com/nikolayk812/storefront-demo/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddRemove(t *testing.T) {
	cart := domain.NewCart()
	require.True(t, cart.IsEmpty())

	assert.Equal(t, 1, cart.Add(7))
	assert.Equal(t, 2, cart.Add(7))
	assert.Equal(t, 1, cart.Add(8))
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, 2, cart.Len())

	assert.True(t, cart.Remove(7))
	assert.Equal(t, 1, cart.Quantity(7))

	assert.True(t, cart.Remove(7))
	assert.Equal(t, 0, cart.Quantity(7))
	assert.NotContains(t, cart.Items(), 7)

	assert.False(t, cart.Remove(7))
	assert.False(t, cart.Remove(100))
	assert.Equal(t, map[int]int{8: 1}, cart.Items())
}

func TestCart_LinesAndTotal(t *testing.T) {
	c, err := domain.NewCatalog([]domain.Product{
		{ID: 1, Name: "Camera", Price: usd("499.99")},
		{ID: 3, Name: "Bluetooth Speaker", Price: usd("99.99")},
		{ID: 4, Name: "Smart Watch", Price: usd("199.99")},
	})
	require.NoError(t, err)

	cart := domain.NewCart()
	assert.Equal(t, "0.00", cart.Total(c).Fixed())
	assert.Empty(t, cart.Lines(c))

	cart.Add(4)
	cart.Add(1)
	cart.Add(1)
	cart.Add(42) // not in the catalog, ignored when pricing

	lines := cart.Lines(c)
	require.Len(t, lines, 2)

	assert.Equal(t, 4, lines[0].Product.ID, "first added comes first")
	assert.Equal(t, "199.99", lines[0].Subtotal.Fixed())
	assert.Equal(t, 1, lines[1].Product.ID)
	assert.Equal(t, 2, lines[1].Quantity)
	assert.Equal(t, "999.98", lines[1].Subtotal.Fixed())

	assert.Equal(t, "1199.97", cart.Total(c).Fixed())
	assert.Equal(t, "$1199.97", cart.Total(c).String())
}

func TestCart_Lines_firstAddedOrder(t *testing.T) {
	c, err := domain.NewCatalog([]domain.Product{
		{ID: 1, Name: "Camera", Price: usd("499.99")},
		{ID: 2, Name: "PlayStation", Price: usd("399.99")},
		{ID: 3, Name: "Bluetooth Speaker", Price: usd("99.99")},
	})
	require.NoError(t, err)

	lineIDs := func(cart *domain.Cart) []int {
		var ids []int
		for _, line := range cart.Lines(c) {
			ids = append(ids, line.Product.ID)
		}
		return ids
	}

	cart := domain.NewCart()
	cart.Add(3)
	cart.Add(1)
	cart.Add(3)
	cart.Add(2)
	assert.Equal(t, []int{3, 1, 2}, lineIDs(cart))

	cart.Remove(3)
	assert.Equal(t, []int{3, 1, 2}, lineIDs(cart), "still in the cart keeps its place")

	cart.Remove(3)
	assert.Equal(t, []int{1, 2}, lineIDs(cart))

	cart.Add(3)
	assert.Equal(t, []int{1, 2, 3}, lineIDs(cart), "added again goes last")
}

func TestCart_TotalNoDrift(t *testing.T) {
	c, err := domain.NewCatalog([]domain.Product{{ID: 1, Name: "Penny sweet", Price: usd("0.10")}})
	require.NoError(t, err)

	cart := domain.NewCart()
	for range 1000 {
		cart.Add(1)
	}

	assert.Equal(t, "100.00", cart.Total(c).Fixed())
}
