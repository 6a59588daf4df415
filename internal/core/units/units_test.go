package units

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToGrams(t *testing.T) {
	table := Default()

	tests := []struct {
		unit  string
		value float64
		want  float64
	}{
		{"cup", 1, 120},
		{"cups", 2, 240},
		{"CUPS", 0.5, 60},
		{"  tbsp ", 2, 30},
		{"tablespoon", 1, 15},
		{"tsp", 3, 15},
		{"teaspoons", 0.5, 2.5},
		{"oz", 1, 28.4}, // 28.35 rounds half up
		{"ounces", 2, 56.7},
		{"ml", 250, 250},
		{"l", 1.5, 1500},
		{"liters", 2, 2000},
		{"lb", 1, 453.6},
		{"lbs", 2, 907.2},
		{"pound", 0.25, 113.4},
		{"g", 113, 113},
		{"grams", 12.34, 12.3},
		{"kg", 1.2, 1200},
		{"kilograms", 0.001, 1},
	}

	for _, tt := range tests {
		t.Run(tt.unit, func(t *testing.T) {
			assert.InDelta(t, tt.want, table.ToGrams(tt.unit, tt.value), 1e-9)
		})
	}
}

func TestUnknownUnitIsIdentity(t *testing.T) {
	table := Default()

	for _, unit := range []string{"", "eggs", "pinch", "cloves", "large"} {
		assert.Equal(t, 3.0, table.ToGrams(unit, 3), "unit %q", unit)
		assert.Equal(t, 3.0, table.FromGrams(unit, 3), "unit %q", unit)
		assert.False(t, table.Known(unit))
	}

	// identity values are not rounded
	assert.Equal(t, 1.234, ConvertToGrams(1.234, "eggs"))
}

func TestFromGramsInvertsToGrams(t *testing.T) {
	for _, u := range Default().Units() {
		for _, x := range []float64{0, 1, 100, 1000} {
			assert.InDelta(t, x, u.FromGrams(u.ToGrams(x)), 1e-9, "%s %v", u, x)
		}
	}
}

func TestTableFromGrams(t *testing.T) {
	assert.InDelta(t, 2.0, ConvertFromGrams(240, "cups"), 1e-9)
	assert.InDelta(t, 1.0, ConvertFromGrams(453.592, "lb"), 1e-9)
	assert.InDelta(t, 0.5, ConvertFromGrams(500, "KG"), 1e-9)
}

func TestLookupAliases(t *testing.T) {
	table := Default()

	u, ok := table.Lookup("Tbsp")
	require.True(t, ok)
	assert.Equal(t, Tablespoon, u)

	assert.Equal(t, []string{"tablespoon", "tablespoons", "tbsp"}, table.Aliases(Tablespoon))
	assert.Equal(t, []string{"lb", "lbs", "pound", "pounds"}, table.Aliases(Pound))
	assert.Len(t, table.Units(), 9)
	assert.Equal(t, Cup, table.Units()[0])
}

func TestUnitString(t *testing.T) {
	assert.Equal(t, "kilogram", Kilogram.String())
	assert.Equal(t, "unknown", Unknown.String())
	assert.Equal(t, 1.0, Unknown.Factor())
	assert.Equal(t, 28.35, Ounce.Factor())
}

func TestRound1(t *testing.T) {
	assert.Equal(t, 0.2, Round1(0.15))
	assert.Equal(t, 200.0, Round1(200.04))
	assert.Equal(t, 200.1, Round1(200.05))
	assert.Equal(t, 0.0, Round1(0))
}
