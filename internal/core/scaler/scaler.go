// Package scaler rescales parsed ingredients and the quantities embedded in
// instruction text.
package scaler

import (
	"regexp"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"recipe-scaler/internal/core/units"
	"recipe-scaler/internal/pkg/common"
)

// instructionPattern number, the separator as written, and a whole unit word from a closed set
var instructionPattern = regexp.MustCompile(`(?i)(\d+\.?\d*)(\s*)(inch|inches|cm|centimeters|minutes?|mins?|hours?|hrs?|°F|°C|degrees?)\b`)

// Scaler applies multipliers using a unit table
type Scaler struct {
	table *units.Table
}

// New creates a Scaler. A nil table means units.Default().
func New(table *units.Table) *Scaler {
	if table == nil {
		table = units.Default()
	}
	return &Scaler{table: table}
}

// Table returns the unit table in use
func (s *Scaler) Table() *units.Table {
	return s.table
}

// ScaleIngredients returns a copy of ingredients with ScaledAmount set to the
// gram-converted amount times multiplier. Unmeasured lines pass through.
// Amount and Unit keep their original values.
func (s *Scaler) ScaleIngredients(ingredients []common.ParsedIngredient, multiplier float64) []common.ParsedIngredient {
	common.LogDebug("Scaling ingredients",
		zap.Int("count", len(ingredients)),
		zap.Float64("multiplier", multiplier),
	)

	out := make([]common.ParsedIngredient, len(ingredients))
	for i, ing := range ingredients {
		if ing.Amount == 0 {
			out[i] = ing
			continue
		}

		grams := s.table.ToGrams(ing.Unit, ing.Amount)
		scaled := ScaleValue(grams, multiplier)

		common.LogDebug("Scaled ingredient",
			zap.String("ingredient", ing.Ingredient),
			zap.Float64("amount", ing.Amount),
			zap.String("unit", ing.Unit),
			zap.Float64("grams", grams),
			zap.Float64("scaled", scaled),
		)

		ing.ScaledAmount = scaled
		out[i] = ing
	}
	return out
}

// ScaledUnit is the unit ScaledAmount is expressed in: grams for known
// units, the original unit (a count, or nothing) otherwise
func (s *Scaler) ScaledUnit(ing common.ParsedIngredient) string {
	if !ing.Measured() {
		return ""
	}
	if s.table.Known(ing.Unit) {
		return "g"
	}
	return ing.Unit
}

// ScaleInstructions multiplies every "<number> <unit-word>" in text. Only the
// number changes; the unit word, the separator and all other text are kept.
func (s *Scaler) ScaleInstructions(text string, multiplier float64) string {
	matches := instructionPattern.FindAllStringSubmatchIndex(text, -1)
	if len(matches) == 0 {
		return text
	}

	var sb strings.Builder
	sb.Grow(len(text))
	last := 0
	for _, m := range matches {
		value, err := strconv.ParseFloat(text[m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		sb.WriteString(text[last:m[2]])
		sb.WriteString(FormatValue(ScaleValue(value, multiplier)))
		sb.WriteString(text[m[4]:m[7]])
		last = m[1]
	}
	sb.WriteString(text[last:])

	common.LogDebug("Scaled instructions",
		zap.Int("quantities", len(matches)),
		zap.Float64("multiplier", multiplier),
	)
	return sb.String()
}

// ScaleValue multiplies and rounds to one decimal
func ScaleValue(value, multiplier float64) float64 {
	return units.Round1(value * multiplier)
}

// FormatValue prints v without trailing zeros: 60, 2.5
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

var defaultScaler = New(nil)

// ScaleIngredients scales with the default unit table
func ScaleIngredients(ingredients []common.ParsedIngredient, multiplier float64) []common.ParsedIngredient {
	return defaultScaler.ScaleIngredients(ingredients, multiplier)
}

// ScaleInstructions scales instruction text
func ScaleInstructions(text string, multiplier float64) string {
	return defaultScaler.ScaleInstructions(text, multiplier)
}
