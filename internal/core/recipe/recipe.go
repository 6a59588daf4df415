// Package recipe turns raw recipe text into a scaled display model.
package recipe

import (
	"recipe-scaler/internal/core/parser"
	"recipe-scaler/internal/core/scaler"
	"recipe-scaler/internal/pkg/common"
)

// ParseRecipe parses every ingredient line, scales amounts to grams and
// rewrites quantities in the instructions. Empty input yields an empty result.
func ParseRecipe(ingredientsText, instructionsText string, multiplier float64) common.ParsedRecipe {
	return parseRecipe(scaler.New(nil), ingredientsText, instructionsText, multiplier)
}

func parseRecipe(s *scaler.Scaler, ingredientsText, instructionsText string, multiplier float64) common.ParsedRecipe {
	return common.ParsedRecipe{
		Ingredients:        s.ScaleIngredients(parser.ParseIngredients(ingredientsText), multiplier),
		Instructions:       instructionsText,
		ScaledInstructions: s.ScaleInstructions(instructionsText, multiplier),
	}
}
