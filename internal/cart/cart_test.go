package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshmart/grocery-bot/internal/model"
	"github.com/freshmart/grocery-bot/internal/parse"
)

func milk() model.Item {
	return model.Item{ID: "d1", Name: "Fresh Milk", Price: decimal.NewFromInt(55), Unit: "1L"}
}

func paneer() model.Item {
	return model.Item{ID: "d3", Name: "Paneer", Price: decimal.NewFromInt(80), Unit: "250g"}
}

func qty(t *testing.T, token string, it model.Item) parse.ParsedQuantity {
	t.Helper()
	q, err := parse.Quantity(token, it)
	require.NoError(t, err)
	return q
}

func assertTotalInvariant(t *testing.T, c *Cart) {
	t.Helper()
	sum := decimal.Zero
	for _, line := range c.Lines() {
		sum = sum.Add(line.LineTotal)
	}
	assert.True(t, c.Total().Equal(sum),
		"total %s drifted from line sum %s", c.Total(), sum)
}

func TestAddOrReplace(t *testing.T) {
	c := New()

	line := c.AddOrReplace(milk(), qty(t, "2", milk()))
	assert.Equal(t, "d1", line.ItemID)
	assert.True(t, line.LineTotal.Equal(decimal.NewFromInt(110)))
	assert.Equal(t, 1, c.Len())
	assertTotalInvariant(t, c)

	c.AddOrReplace(paneer(), qty(t, "500g", paneer()))
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Total().Equal(decimal.NewFromInt(270)), "total = %s", c.Total())
	assertTotalInvariant(t, c)
}

func TestReaddingSameQuantityIsIdempotent(t *testing.T) {
	c := New()

	c.AddOrReplace(milk(), qty(t, "2", milk()))
	before := c.Total()

	c.AddOrReplace(milk(), qty(t, "2", milk()))
	assert.Equal(t, 1, c.Len(), "duplicate add must not create a second line")
	assert.True(t, c.Total().Equal(before), "duplicate add must not change the total")
	assertTotalInvariant(t, c)
}

func TestReaddingReplacesQuantity(t *testing.T) {
	c := New()

	c.AddOrReplace(milk(), qty(t, "2", milk()))
	c.AddOrReplace(milk(), qty(t, "5", milk()))

	require.Equal(t, 1, c.Len())
	line := c.Lines()[0]
	assert.True(t, line.Multiplier.Equal(decimal.NewFromInt(5)),
		"last specified quantity wins, got %s", line.Multiplier)
	assert.True(t, c.Total().Equal(decimal.NewFromInt(275)), "total = %s", c.Total())
	assertTotalInvariant(t, c)
}

func TestRemove(t *testing.T) {
	c := New()
	c.AddOrReplace(milk(), qty(t, "1", milk()))
	c.AddOrReplace(paneer(), qty(t, "1", paneer()))

	assert.True(t, c.Remove("d1"))
	assert.False(t, c.Remove("d1"), "second remove of the same item reports absence")
	assert.Equal(t, 1, c.Len())
	assert.True(t, c.Total().Equal(decimal.NewFromInt(80)))
	assertTotalInvariant(t, c)
}

func TestClear(t *testing.T) {
	c := New()
	c.AddOrReplace(milk(), qty(t, "3", milk()))

	c.Clear()
	assert.True(t, c.Empty())
	assert.True(t, c.Total().IsZero())
}

func TestTotalInvariantAcrossOperations(t *testing.T) {
	c := New()

	ops := []func(){
		func() { c.AddOrReplace(milk(), qty(t, "2", milk())) },
		func() { c.AddOrReplace(paneer(), qty(t, "750g", paneer())) },
		func() { c.AddOrReplace(milk(), qty(t, "500ml", milk())) },
		func() { c.Remove("d3") },
		func() { c.AddOrReplace(paneer(), qty(t, "1", paneer())) },
		func() { c.Remove("nonexistent") },
	}

	for _, op := range ops {
		op()
		assertTotalInvariant(t, c)
	}
}

func TestLineTotalRoundsHalfUp(t *testing.T) {
	// 55 * 0.5 = 27.5 rounds up to 28.
	c := New()
	line := c.AddOrReplace(milk(), qty(t, "500ml", milk()))
	assert.True(t, line.LineTotal.Equal(decimal.NewFromInt(28)),
		"line total = %s, want 28", line.LineTotal)
	assertTotalInvariant(t, c)
}

func TestSnapshotIsDetached(t *testing.T) {
	c := New()
	c.AddOrReplace(milk(), qty(t, "1", milk()))

	snap := c.Snapshot()
	c.Clear()

	require.Len(t, snap.Lines, 1)
	assert.Equal(t, "Fresh Milk", snap.Lines[0].Name)
	assert.True(t, snap.Total.Equal(decimal.NewFromInt(55)))
}
