// Package parser turns free-form ingredient lines into structured quantities.
//
// The grammar is fixed: "amount [unit] ingredient", where amount is a decimal,
// a fraction or a mixed number. A parenthetical gram weight such as "(113g)"
// anywhere in the line overrides whatever the grammar matched.
package parser

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"recipe-scaler/internal/pkg/common"
)

var (
	bulletPattern     = regexp.MustCompile(`^\s*[•▢\-\*\x{2022}]+\s*`)
	parenSpacePattern = regexp.MustCompile(`\s+\(`)
	gramsPattern      = regexp.MustCompile(`(?i)\((\s*\d+\.?\d*)\s*g\s*\)`)

	// mixed number is tried before the plain forms so "1 1/2" is not read as 1
	quantityPattern = regexp.MustCompile(`^(\d+\s+\d+/\d+|\d*/\d+|\d+\.?\d*)\s*([a-zA-Z]+)?\s+(.+)$`)
)

// ParseIngredients parses every line of text, dropping blank lines
func ParseIngredients(text string) []common.ParsedIngredient {
	lines := strings.Split(text, "\n")
	out := make([]common.ParsedIngredient, 0, len(lines))
	for _, line := range lines {
		if parsed, ok := ParseLine(line); ok {
			out = append(out, parsed)
		}
	}
	return out
}

// ParseLine parses one raw line. ok is false only when the line is blank
// after sanitizing.
func ParseLine(raw string) (common.ParsedIngredient, bool) {
	line := ReplaceUnicodeFractions(Sanitize(raw))
	if line == "" {
		return common.ParsedIngredient{}, false
	}

	grams, hasGrams := gramOverride(line)

	if m := quantityPattern.FindStringSubmatch(line); m != nil {
		if amount, ok := parseAmount(m[1]); ok {
			unit := m[2]
			ingredient := strings.TrimSpace(m[3])
			if hasGrams {
				amount = grams
				unit = "g"
				ingredient = stripGrams(ingredient)
			}
			return measured(line, amount, unit, ingredient), true
		}
	}

	if hasGrams {
		return measured(line, grams, "g", stripGrams(line)), true
	}

	return common.ParsedIngredient{
		Original:   line,
		Ingredient: line,
	}, true
}

// Sanitize strips a leading bullet or checkbox and tidies spacing before "("
func Sanitize(line string) string {
	line = bulletPattern.ReplaceAllString(line, "")
	line = parenSpacePattern.ReplaceAllString(line, " (")
	return strings.TrimSpace(line)
}

func measured(line string, amount float64, unit, ingredient string) common.ParsedIngredient {
	if amount == 0 {
		// a literal zero quantity carries nothing to scale
		return common.ParsedIngredient{Original: line, Ingredient: line}
	}
	return common.ParsedIngredient{
		Original:     line,
		Amount:       amount,
		Unit:         unit,
		Ingredient:   ingredient,
		ScaledAmount: amount,
	}
}

func gramOverride(line string) (float64, bool) {
	m := gramsPattern.FindStringSubmatch(line)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(m[1]), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// stripGrams removes the first gram override and collapses the gap it leaves
func stripGrams(s string) string {
	if loc := gramsPattern.FindStringIndex(s); loc != nil {
		s = s[:loc[0]] + " " + s[loc[1]:]
	}
	return strings.Join(strings.Fields(s), " ")
}

// parseAmount reads a decimal, "n/d" or "w n/d". Results that are not finite
// (zero denominator, missing numerator) are rejected.
func parseAmount(s string) (float64, bool) {
	s = strings.TrimSpace(s)

	var v float64
	if strings.Contains(s, "/") {
		parts := strings.Fields(s)
		if len(parts) == 2 {
			whole, err := strconv.ParseFloat(parts[0], 64)
			if err != nil {
				return 0, false
			}
			frac, ok := parseFraction(parts[1])
			if !ok {
				return 0, false
			}
			v = whole + frac
		} else {
			frac, ok := parseFraction(s)
			if !ok {
				return 0, false
			}
			v = frac
		}
	} else {
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = f
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

func parseFraction(s string) (float64, bool) {
	num, den, found := strings.Cut(s, "/")
	if !found {
		return 0, false
	}
	n, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return 0, false
	}
	d, err := strconv.ParseFloat(den, 64)
	if err != nil {
		return 0, false
	}
	return n / d, true
}
