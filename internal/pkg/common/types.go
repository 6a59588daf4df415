package common

// ParsedIngredient one ingredient line after parsing.
// Amount == 0, Unit == "" and ScaledAmount == 0 go together: the line had no
// measurable quantity and Ingredient holds it verbatim.
type ParsedIngredient struct {
	Original     string  `json:"original"`
	Amount       float64 `json:"amount"`
	Unit         string  `json:"unit"`
	Ingredient   string  `json:"ingredient"`
	ScaledAmount float64 `json:"scaled_amount"`
}

// Measured reports whether a quantity was detected
func (p ParsedIngredient) Measured() bool {
	return p.Amount != 0
}

// ParsedRecipe parsed and scaled recipe
type ParsedRecipe struct {
	Ingredients        []ParsedIngredient `json:"ingredients"`
	Instructions       string             `json:"instructions"`
	ScaledInstructions string             `json:"scaled_instructions"`
}
