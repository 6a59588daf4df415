// Package units converts recipe quantities to and from grams.
//
// Every unit is a fixed linear factor. Volume units use average densities
// (water for liquids, roughly flour for cups) rather than a per-ingredient table.
package units

import (
	"math"
	"sort"
	"strings"
)

// Unit canonical unit
type Unit int

const (
	// Unknown is any unit not in the table; conversions are the identity
	Unknown Unit = iota
	Cup
	Tablespoon
	Teaspoon
	Ounce
	Milliliter
	Liter
	Pound
	Gram
	Kilogram
)

// String returns the canonical unit name
func (u Unit) String() string {
	switch u {
	case Cup:
		return "cup"
	case Tablespoon:
		return "tablespoon"
	case Teaspoon:
		return "teaspoon"
	case Ounce:
		return "ounce"
	case Milliliter:
		return "milliliter"
	case Liter:
		return "liter"
	case Pound:
		return "pound"
	case Gram:
		return "gram"
	case Kilogram:
		return "kilogram"
	default:
		return "unknown"
	}
}

// ToGrams converts value in u to grams. Unknown units return value unchanged.
func (u Unit) ToGrams(value float64) float64 {
	f, ok := gramFactors[u]
	if !ok {
		return value
	}
	return value * f
}

// FromGrams is the inverse of ToGrams
func (u Unit) FromGrams(grams float64) float64 {
	f, ok := gramFactors[u]
	if !ok {
		return grams
	}
	return grams / f
}

// Factor grams per one u, 1 for Unknown
func (u Unit) Factor() float64 {
	if f, ok := gramFactors[u]; ok {
		return f
	}
	return 1
}

var gramFactors = map[Unit]float64{
	Cup:        120, // general dry ingredients
	Tablespoon: 15,
	Teaspoon:   5,
	Ounce:      28.35,
	Milliliter: 1, // water-like liquids
	Liter:      1000,
	Pound:      453.592,
	Gram:       1,
	Kilogram:   1000,
}

var defaultAliases = map[string]Unit{
	"cup":         Cup,
	"cups":        Cup,
	"tablespoon":  Tablespoon,
	"tablespoons": Tablespoon,
	"tbsp":        Tablespoon,
	"teaspoon":    Teaspoon,
	"teaspoons":   Teaspoon,
	"tsp":         Teaspoon,
	"ounce":       Ounce,
	"ounces":      Ounce,
	"oz":          Ounce,
	"milliliter":  Milliliter,
	"milliliters": Milliliter,
	"ml":          Milliliter,
	"liter":       Liter,
	"liters":      Liter,
	"l":           Liter,
	"pound":       Pound,
	"pounds":      Pound,
	"lb":          Pound,
	"lbs":         Pound,
	"gram":        Gram,
	"grams":       Gram,
	"g":           Gram,
	"kilogram":    Kilogram,
	"kilograms":   Kilogram,
	"kg":          Kilogram,
}

// Table read-only alias lookup. Safe for concurrent use.
type Table struct {
	aliases map[string]Unit
}

var defaultTable = newTable(defaultAliases)

// Default returns the process-wide table
func Default() *Table {
	return defaultTable
}

func newTable(aliases map[string]Unit) *Table {
	copied := make(map[string]Unit, len(aliases))
	for k, v := range aliases {
		copied[k] = v
	}
	return &Table{aliases: copied}
}

// Lookup resolves a unit token, case-insensitive and trimmed
func (t *Table) Lookup(unit string) (Unit, bool) {
	u, ok := t.aliases[strings.ToLower(strings.TrimSpace(unit))]
	return u, ok
}

// Known reports whether unit converts to grams
func (t *Table) Known(unit string) bool {
	_, ok := t.Lookup(unit)
	return ok
}

// ToGrams converts value in unit to grams, rounded to one decimal.
// Unrecognized units are treated as already canonical (a count such as eggs,
// or grams) and value is returned as is.
func (t *Table) ToGrams(unit string, value float64) float64 {
	u, ok := t.Lookup(unit)
	if !ok {
		return value
	}
	return Round1(u.ToGrams(value))
}

// FromGrams converts grams back to unit. Unrecognized units return grams unchanged.
func (t *Table) FromGrams(unit string, grams float64) float64 {
	u, ok := t.Lookup(unit)
	if !ok {
		return grams
	}
	return u.FromGrams(grams)
}

// Aliases returns every alias of u, sorted
func (t *Table) Aliases(u Unit) []string {
	var out []string
	for alias, v := range t.aliases {
		if v == u {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Units returns the canonical units present in the table, in declaration order
func (t *Table) Units() []Unit {
	seen := make(map[Unit]bool)
	for _, u := range t.aliases {
		seen[u] = true
	}
	out := make([]Unit, 0, len(seen))
	for u := Cup; u <= Kilogram; u++ {
		if seen[u] {
			out = append(out, u)
		}
	}
	return out
}

// ConvertToGrams converts with the default table
func ConvertToGrams(value float64, unit string) float64 {
	return defaultTable.ToGrams(unit, value)
}

// ConvertFromGrams converts with the default table
func ConvertFromGrams(grams float64, unit string) float64 {
	return defaultTable.FromGrams(unit, grams)
}

// Round1 rounds half up at 0.1 granularity
func Round1(v float64) float64 {
	return math.Floor(v*10+0.5) / 10
}
