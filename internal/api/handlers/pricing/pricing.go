package pricing

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-scaler/internal/api/handlers"
	pricingService "recipe-scaler/internal/core/pricing"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"
)

// IngredientInput one purchased ingredient and how much of it the recipe uses
type IngredientInput struct {
	Name        string                     `json:"name"`
	PackageCost float64                    `json:"package_cost"`
	PackageSize float64                    `json:"package_size"`
	PackageUnit pricingService.PackageUnit `json:"package_unit"`
	AmountUsed  float64                    `json:"amount_used"`
	AmountUnit  pricingService.PackageUnit `json:"amount_unit"`
}

// CalculateRequest ingredients and an optional selling price
type CalculateRequest struct {
	Ingredients  []IngredientInput `json:"ingredients" binding:"required,min=1,dive"`
	SellingPrice float64           `json:"selling_price"`
}

// CalculateResponse priced recipe
type CalculateResponse struct {
	Ingredients      []pricingService.IngredientCost `json:"ingredients"`
	TotalCost        float64                         `json:"total_cost"`
	SellingPrice     float64                         `json:"selling_price"`
	Profit           float64                         `json:"profit"`
	MarginPercentage float64                         `json:"margin_percentage"`
}

// Handler pricing endpoints
type Handler struct {
	cfg *config.Config
}

// NewHandler creates the pricing handler
func NewHandler(cfg *config.Config) *Handler {
	return &Handler{cfg: cfg}
}

// HandleCalculate prices every ingredient and the whole recipe
func (h *Handler) HandleCalculate(c *gin.Context) {
	var req CalculateRequest
	if err := handlers.BindJSON(c, &req); err != nil {
		handlers.RespondError(c, err, h.cfg.App.Debug)
		return
	}

	if req.SellingPrice < 0 {
		handlers.RespondError(c, invalidInput(common.NewValidationError("selling price cannot be negative")), h.cfg.App.Debug)
		return
	}

	costs := make([]pricingService.IngredientCost, 0, len(req.Ingredients))
	for _, in := range req.Ingredients {
		if err := pricingService.Validate(in.Name, in.PackageCost, in.PackageSize, in.PackageUnit, in.AmountUsed, in.AmountUnit); err != nil {
			handlers.RespondError(c, invalidInput(err), h.cfg.App.Debug)
			return
		}
		costs = append(costs, pricingService.NewIngredientCost(in.Name, in.PackageCost, in.PackageSize, in.PackageUnit, in.AmountUsed, in.AmountUnit))
	}

	total := pricingService.TotalRecipeCost(costs)
	margin := pricingService.ProfitMargin(total, req.SellingPrice)

	c.JSON(http.StatusOK, CalculateResponse{
		Ingredients:      costs,
		TotalCost:        total,
		SellingPrice:     req.SellingPrice,
		Profit:           margin.Profit,
		MarginPercentage: margin.MarginPercentage,
	})
}

func invalidInput(err error) error {
	return common.ErrInvalidPricingInput.WithMessage(err.Error()).WithErr(err)
}
