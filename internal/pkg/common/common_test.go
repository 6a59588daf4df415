package common

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, zapcore.DebugLevel, ParseLevel("DEBUG"))
	assert.Equal(t, zapcore.WarnLevel, ParseLevel(" warning "))
	assert.Equal(t, zapcore.ErrorLevel, ParseLevel("error"))
	assert.Equal(t, zapcore.InfoLevel, ParseLevel("verbose"))
}

func TestFilterFieldsRedactsRecipeText(t *testing.T) {
	fields := filterFields([]zap.Field{
		zap.String("ingredients_text", "2 cups flour"),
		zap.String("path", "/api/v1/recipe/parse"),
		zap.String("body", "{}"),
	})

	require.Len(t, fields, 1)
	assert.Equal(t, "path", fields[0].Key)
}

func TestConciseAllowed(t *testing.T) {
	assert.True(t, conciseAllowed(MsgRequestCompleted))
	assert.True(t, conciseAllowed(MsgServerExited))
	assert.False(t, conciseAllowed("Cache hit"))
}

func TestCustomError(t *testing.T) {
	cause := errors.New("unexpected EOF")
	err := ErrInvalidRequest.WithErr(cause)

	assert.Equal(t, "unexpected EOF", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Nil(t, ErrInvalidRequest.Err)

	assert.Equal(t, ErrorResponse{Code: ErrCodeInvalidRequest, Message: "invalid request"}, err.Response(false))
	assert.Equal(t, "unexpected EOF", err.Response(true).Details)
	assert.Equal(t, "invalid request", ErrInvalidRequest.Error())
}

func TestCustomErrorWithMessage(t *testing.T) {
	cause := NewValidationError("flour: package cost must be positive")
	err := ErrInvalidPricingInput.WithMessage(cause.Error()).WithErr(cause)

	assert.Equal(t, ErrCodeInvalidPricingInput, err.Code)
	assert.Equal(t, http.StatusBadRequest, err.Status)
	assert.Equal(t, "flour: package cost must be positive", err.Response(false).Message)
	assert.True(t, IsValidationError(err))
	assert.Equal(t, "invalid pricing input", ErrInvalidPricingInput.Message)

	ranged := ErrInvalidMultiplier.WithMessage("multiplier must be between 0.3 and 3")
	assert.Equal(t, ErrCodeInvalidMultiplier, ranged.Code)
	assert.Nil(t, ranged.Err)
	assert.Equal(t, "multiplier out of range", ErrInvalidMultiplier.Message)
}

func TestIsValidationError(t *testing.T) {
	err := NewValidationError("bad")

	assert.True(t, IsValidationError(err))
	assert.True(t, IsValidationError(fmt.Errorf("wrapped: %w", err)))
	assert.False(t, IsValidationError(errors.New("bad")))
	assert.False(t, IsValidationError(nil))
}

func TestParseJSON(t *testing.T) {
	var recipe ParsedRecipe
	require.NoError(t, ParseJSON(`{"ingredients":[{"original":"3 eggs","amount":3,"ingredient":"eggs","scaled_amount":3}],"instructions":"Whisk"}`, &recipe))
	require.Len(t, recipe.Ingredients, 1)
	assert.Equal(t, 3.0, recipe.Ingredients[0].Amount)
	assert.True(t, recipe.Ingredients[0].Measured())
	assert.Equal(t, "Whisk", recipe.Instructions)

	assert.Error(t, ParseJSON(`{} {}`, &recipe))
	assert.Error(t, ParseJSON(`{`, &recipe))
}

func TestToJSON(t *testing.T) {
	out, err := ToJSON(ParsedIngredient{Original: "salt", Ingredient: "salt"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"original":"salt","amount":0,"unit":"","ingredient":"salt","scaled_amount":0}`, out)
}
