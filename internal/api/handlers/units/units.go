package units

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"recipe-scaler/internal/api/handlers"
	recipeHandler "recipe-scaler/internal/api/handlers/recipe"
	"recipe-scaler/internal/core/scaler"
	unitTable "recipe-scaler/internal/core/units"
	"recipe-scaler/internal/infrastructure/config"
)

// ConvertRequest value in some unit
type ConvertRequest struct {
	Value *float64 `json:"value" binding:"required"`
	Unit  string   `json:"unit"`
}

// ConvertResponse grams for the value; Known is false when the unit was passed through
type ConvertResponse struct {
	Value     float64 `json:"value"`
	Unit      string  `json:"unit"`
	Canonical string  `json:"canonical,omitempty"`
	Known     bool    `json:"known"`
	Grams     float64 `json:"grams"`
}

// ScaleRequest value and multiplier
type ScaleRequest struct {
	Value      *float64 `json:"value" binding:"required"`
	Multiplier *float64 `json:"multiplier" binding:"required"`
}

// UnitInfo one canonical unit
type UnitInfo struct {
	Name         string   `json:"name"`
	GramsPerUnit float64  `json:"grams_per_unit"`
	Aliases      []string `json:"aliases"`
}

// Handler unit conversion endpoints
type Handler struct {
	table *unitTable.Table
	cfg   *config.Config
}

// NewHandler creates the units handler; a nil table means the default one
func NewHandler(table *unitTable.Table, cfg *config.Config) *Handler {
	if table == nil {
		table = unitTable.Default()
	}
	return &Handler{table: table, cfg: cfg}
}

// HandleConvert converts a value to grams
func (h *Handler) HandleConvert(c *gin.Context) {
	var req ConvertRequest
	if err := handlers.BindJSON(c, &req); err != nil {
		handlers.RespondError(c, err, h.cfg.App.Debug)
		return
	}

	resp := ConvertResponse{
		Value: *req.Value,
		Unit:  req.Unit,
		Grams: h.table.ToGrams(req.Unit, *req.Value),
	}
	if u, ok := h.table.Lookup(req.Unit); ok {
		resp.Known = true
		resp.Canonical = u.String()
	}

	c.JSON(http.StatusOK, resp)
}

// HandleScale multiplies a value, rounded to one decimal
func (h *Handler) HandleScale(c *gin.Context) {
	var req ScaleRequest
	if err := handlers.BindJSON(c, &req); err != nil {
		handlers.RespondError(c, err, h.cfg.App.Debug)
		return
	}
	if err := recipeHandler.ValidateMultiplier(h.cfg.Scaling, *req.Multiplier); err != nil {
		handlers.RespondError(c, err, h.cfg.App.Debug)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"value": scaler.ScaleValue(*req.Value, *req.Multiplier),
	})
}

// HandleList lists the canonical units
func (h *Handler) HandleList(c *gin.Context) {
	list := h.table.Units()
	out := make([]UnitInfo, 0, len(list))
	for _, u := range list {
		out = append(out, UnitInfo{
			Name:         u.String(),
			GramsPerUnit: u.Factor(),
			Aliases:      h.table.Aliases(u),
		})
	}

	c.JSON(http.StatusOK, gin.H{"units": out})
}
