// Package pricing computes ingredient and recipe costs from package prices.
package pricing

import (
	"fmt"

	"recipe-scaler/internal/pkg/common"
)

// PackageUnit unit a package size or used amount is counted in
type PackageUnit string

const (
	UnitGrams  PackageUnit = "g"
	UnitSticks PackageUnit = "sticks"
	UnitCount  PackageUnit = "count"
)

// Valid reports whether u is a supported unit
func (u PackageUnit) Valid() bool {
	switch u {
	case UnitGrams, UnitSticks, UnitCount:
		return true
	}
	return false
}

// IngredientCost cost of one ingredient within a recipe
type IngredientCost struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	PackageCost float64     `json:"package_cost"`
	PackageSize float64     `json:"package_size"`
	PackageUnit PackageUnit `json:"package_unit"`
	CostPerUnit float64     `json:"cost_per_unit"`
	AmountUsed  float64     `json:"amount_used"`
	AmountUnit  PackageUnit `json:"amount_unit"`
	TotalCost   float64     `json:"total_cost"`
}

// Margin profit on a selling price
type Margin struct {
	Profit           float64 `json:"profit"`
	MarginPercentage float64 `json:"margin_percentage"`
}

// CostPerUnit returns 0 for a non-positive package size
func CostPerUnit(packageCost, packageSize float64) float64 {
	if packageSize <= 0 {
		return 0
	}
	return packageCost / packageSize
}

// TotalCost cost of amountUsed units
func TotalCost(costPerUnit, amountUsed float64) float64 {
	return costPerUnit * amountUsed
}

// NewIngredientCost prices amountUsed of an ingredient bought by the package
func NewIngredientCost(name string, packageCost, packageSize float64, packageUnit PackageUnit, amountUsed float64, amountUnit PackageUnit) IngredientCost {
	costPerUnit := CostPerUnit(packageCost, packageSize)

	return IngredientCost{
		ID:          common.GenerateUUID(),
		Name:        name,
		PackageCost: packageCost,
		PackageSize: packageSize,
		PackageUnit: packageUnit,
		CostPerUnit: costPerUnit,
		AmountUsed:  amountUsed,
		AmountUnit:  amountUnit,
		TotalCost:   TotalCost(costPerUnit, amountUsed),
	}
}

// TotalRecipeCost sums the ingredient costs
func TotalRecipeCost(costs []IngredientCost) float64 {
	total := 0.0
	for _, c := range costs {
		total += c.TotalCost
	}
	return total
}

// ProfitMargin margin is 0 unless both cost and price are positive
func ProfitMargin(totalCost, sellingPrice float64) Margin {
	profit := sellingPrice - totalCost

	margin := 0.0
	if totalCost > 0 && sellingPrice > 0 {
		margin = profit / sellingPrice * 100
	}

	return Margin{
		Profit:           profit,
		MarginPercentage: margin,
	}
}

// Validate checks the inputs a caller supplied for one ingredient
func Validate(name string, packageCost, packageSize float64, packageUnit PackageUnit, amountUsed float64, amountUnit PackageUnit) error {
	switch {
	case name == "":
		return common.NewValidationError("ingredient name is required")
	case packageCost <= 0:
		return common.NewValidationError(fmt.Sprintf("%s: package cost must be positive", name))
	case packageSize <= 0:
		return common.NewValidationError(fmt.Sprintf("%s: package size must be positive", name))
	case amountUsed < 0:
		return common.NewValidationError(fmt.Sprintf("%s: amount used cannot be negative", name))
	case !packageUnit.Valid():
		return common.NewValidationError(fmt.Sprintf("%s: unsupported package unit %q", name, packageUnit))
	case !amountUnit.Valid():
		return common.NewValidationError(fmt.Sprintf("%s: unsupported amount unit %q", name, amountUnit))
	}
	return nil
}
