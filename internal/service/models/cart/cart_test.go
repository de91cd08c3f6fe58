package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCartIsEmptyButNotNil(t *testing.T) {
	c := New("user-1")

	assert.Equal(t, "user-1", c.UserID)
	assert.NotNil(t, c.Items)
	assert.Empty(t, c.Items)
	assert.Zero(t, c.TotalCents)
	assert.Zero(t, c.TotalItems)
}

func TestFindReturnsAliasedItem(t *testing.T) {
	c := New("user-1")
	c.Items = append(c.Items, Item{ProductID: "p1", Name: "Mug", PriceCents: 1099, Quantity: 1})

	item := c.Find("p1")
	require.NotNil(t, item)

	item.Quantity = 5
	assert.Equal(t, 5, c.Items[0].Quantity)

	assert.Nil(t, c.Find("p2"))
}

func TestRemoveKeepsItemOrder(t *testing.T) {
	c := New("user-1")
	c.Items = []Item{
		{ProductID: "p1", Quantity: 1},
		{ProductID: "p2", Quantity: 2},
		{ProductID: "p3", Quantity: 3},
	}

	assert.True(t, c.Remove("p2"))
	require.Len(t, c.Items, 2)
	assert.Equal(t, "p1", c.Items[0].ProductID)
	assert.Equal(t, "p3", c.Items[1].ProductID)

	assert.False(t, c.Remove("p2"))
}

func TestRecalculateSumsCentsAndQuantities(t *testing.T) {
	c := New("user-1")
	c.Items = []Item{
		{ProductID: "p1", PriceCents: 1099, Quantity: 2},
		{ProductID: "p2", PriceCents: 2550, Quantity: 1},
	}

	c.Recalculate()

	assert.Equal(t, int64(4748), c.TotalCents)
	assert.Equal(t, 3, c.TotalItems)

	c.Items = nil
	c.Recalculate()

	assert.Zero(t, c.TotalCents)
	assert.Zero(t, c.TotalItems)
}

func TestCloneIsIndependent(t *testing.T) {
	c := New("user-1")
	c.Items = []Item{{ProductID: "p1", PriceCents: 100, Quantity: 1}}
	c.Recalculate()

	clone := c.Clone()
	clone.Items[0].Quantity = 10
	clone.Recalculate()

	assert.Equal(t, 1, c.Items[0].Quantity)
	assert.Equal(t, int64(100), c.TotalCents)
	assert.Equal(t, int64(1000), clone.TotalCents)
}

func TestSummaryCarriesTotalsOnly(t *testing.T) {
	c := New("user-1")
	c.Items = []Item{{ProductID: "p1", PriceCents: 1099, Quantity: 3}}
	c.Recalculate()

	s := c.Summary()

	assert.Equal(t, "user-1", s.UserID)
	assert.Equal(t, int64(3297), s.TotalCents)
	assert.Equal(t, 3, s.TotalItems)
}
