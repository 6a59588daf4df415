package recipe

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"recipe-scaler/internal/api/handlers"
	recipeService "recipe-scaler/internal/core/recipe"
	"recipe-scaler/internal/infrastructure/config"
	"recipe-scaler/internal/pkg/common"
)

// ParseRequest raw recipe text and an optional multiplier
type ParseRequest struct {
	Ingredients  string   `json:"ingredients" binding:"required"`
	Instructions string   `json:"instructions"`
	Multiplier   *float64 `json:"multiplier,omitempty"`
}

// ScaledIngredient parsed ingredient plus the unit its scaled amount is in
type ScaledIngredient struct {
	common.ParsedIngredient
	ScaledUnit string `json:"scaled_unit"`
	Measured   bool   `json:"measured"`
}

// ParseResponse parsed and scaled recipe
type ParseResponse struct {
	Multiplier         float64            `json:"multiplier"`
	Ingredients        []ScaledIngredient `json:"ingredients"`
	Instructions       string             `json:"instructions"`
	ScaledInstructions string             `json:"scaled_instructions"`
}

// Handler recipe endpoints
type Handler struct {
	service *recipeService.Service
	cfg     *config.Config
}

// NewHandler creates the recipe handler
func NewHandler(service *recipeService.Service, cfg *config.Config) *Handler {
	return &Handler{
		service: service,
		cfg:     cfg,
	}
}

// HandleParse parses and scales a recipe
func (h *Handler) HandleParse(c *gin.Context) {
	var req ParseRequest
	if err := handlers.BindJSON(c, &req); err != nil {
		handlers.RespondError(c, err, h.cfg.App.Debug)
		return
	}

	multiplier := h.cfg.Scaling.DefaultMultiplier
	if req.Multiplier != nil {
		multiplier = *req.Multiplier
	}
	if err := ValidateMultiplier(h.cfg.Scaling, multiplier); err != nil {
		handlers.RespondError(c, err, h.cfg.App.Debug)
		return
	}

	if n := countLines(req.Ingredients); n > h.cfg.Scaling.MaxIngredientLines {
		handlers.RespondError(c, common.NewValidationError(
			fmt.Sprintf("too many ingredient lines: %d (max %d)", n, h.cfg.Scaling.MaxIngredientLines),
		), h.cfg.App.Debug)
		return
	}

	parsed, err := h.service.Parse(c.Request.Context(), req.Ingredients, req.Instructions, multiplier)
	if err != nil {
		handlers.RespondError(c, err, h.cfg.App.Debug)
		return
	}

	s := h.service.Scaler()
	resp := ParseResponse{
		Multiplier:         multiplier,
		Ingredients:        make([]ScaledIngredient, len(parsed.Ingredients)),
		Instructions:       parsed.Instructions,
		ScaledInstructions: parsed.ScaledInstructions,
	}
	for i, ing := range parsed.Ingredients {
		resp.Ingredients[i] = ScaledIngredient{
			ParsedIngredient: ing,
			ScaledUnit:       s.ScaledUnit(ing),
			Measured:         ing.Measured(),
		}
	}

	common.LogDebug("Recipe parsed",
		zap.String("request_id", requestid.Get(c)),
		zap.Int("ingredients", len(resp.Ingredients)),
		zap.Float64("multiplier", multiplier),
	)

	c.JSON(http.StatusOK, resp)
}

// ValidateMultiplier checks m against the configured range
func ValidateMultiplier(s config.ScalingConfig, m float64) error {
	if !s.InRange(m) {
		return common.ErrInvalidMultiplier.WithMessage(
			fmt.Sprintf("multiplier must be between %g and %g", s.MinMultiplier, s.MaxMultiplier))
	}
	return nil
}

func countLines(text string) int {
	n := 0
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) != "" {
			n++
		}
	}
	return n
}
