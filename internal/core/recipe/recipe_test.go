package recipe

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"recipe-scaler/internal/core/cache"
	"recipe-scaler/internal/pkg/common"
)

const (
	sampleIngredients  = "• 2 cups flour\n\n▢ 1 1/2 tsp salt\n3 eggs\n1 stick butter (113g)\nsalt to taste\n"
	sampleInstructions = "Bake for 30 minutes at 350°F.\nCool 10 min."
)

func TestParseRecipe(t *testing.T) {
	got := ParseRecipe(sampleIngredients, sampleInstructions, 2)

	require.Len(t, got.Ingredients, 5)
	assert.Equal(t, sampleInstructions, got.Instructions)
	assert.Equal(t, "Bake for 60 minutes at 700°F.\nCool 20 min.", got.ScaledInstructions)

	want := []common.ParsedIngredient{
		{Original: "2 cups flour", Amount: 2, Unit: "cups", Ingredient: "flour", ScaledAmount: 480},
		{Original: "1 1/2 tsp salt", Amount: 1.5, Unit: "tsp", Ingredient: "salt", ScaledAmount: 15},
		{Original: "3 eggs", Amount: 3, Unit: "", Ingredient: "eggs", ScaledAmount: 6},
		{Original: "1 stick butter (113g)", Amount: 113, Unit: "g", Ingredient: "butter", ScaledAmount: 226},
		{Original: "salt to taste", Ingredient: "salt to taste"},
	}
	assert.Equal(t, want, got.Ingredients)
}

func TestParseRecipeAtOneIsGramConversion(t *testing.T) {
	got := ParseRecipe("1 oz chocolate\n1 lb beef", "Rest 5 minutes", 1)

	require.Len(t, got.Ingredients, 2)
	assert.Equal(t, 28.4, got.Ingredients[0].ScaledAmount)
	assert.Equal(t, 453.6, got.Ingredients[1].ScaledAmount)
	assert.Equal(t, "Rest 5 minutes", got.ScaledInstructions)
}

func TestParseRecipeEmpty(t *testing.T) {
	got := ParseRecipe("", "", 1.5)

	assert.NotNil(t, got.Ingredients)
	assert.Empty(t, got.Ingredients)
	assert.Equal(t, "", got.Instructions)
	assert.Equal(t, "", got.ScaledInstructions)
}

func TestParseRecipePreservesOrder(t *testing.T) {
	got := ParseRecipe("c\n1 g b\na", "", 1)

	require.Len(t, got.Ingredients, 3)
	assert.Equal(t, "c", got.Ingredients[0].Ingredient)
	assert.Equal(t, "b", got.Ingredients[1].Ingredient)
	assert.Equal(t, "a", got.Ingredients[2].Ingredient)
}

func TestServiceParseWithoutCache(t *testing.T) {
	svc := NewService(nil, nil)

	got, err := svc.Parse(context.Background(), sampleIngredients, sampleInstructions, 2)
	require.NoError(t, err)
	assert.Equal(t, ParseRecipe(sampleIngredients, sampleInstructions, 2), got)
}

func TestServiceParseUsesCache(t *testing.T) {
	ctx := context.Background()
	store := cache.NewManager(cache.CacheConfig{Enabled: true, MaxSize: 10, TTL: time.Minute})
	t.Cleanup(func() { _ = store.Close() })
	svc := NewService(nil, store)

	first, err := svc.Parse(ctx, sampleIngredients, sampleInstructions, 1.5)
	require.NoError(t, err)
	second, err := svc.Parse(ctx, sampleIngredients, sampleInstructions, 1.5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	stats := store.Stats()
	assert.Equal(t, 1, stats["size"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])

	_, err = svc.Parse(ctx, sampleIngredients, sampleInstructions, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, store.Stats()["size"])
}

type failingStore struct{}

func (failingStore) Get(context.Context, string) (string, error) { return "", errors.New("down") }
func (failingStore) Set(context.Context, string, string) error { return common.ErrCacheFull }
func (failingStore) Stats() map[string]interface{} { return nil }
func (failingStore) Close() error { return nil }

func TestServiceParseIgnoresCacheErrors(t *testing.T) {
	svc := NewService(nil, failingStore{})

	got, err := svc.Parse(context.Background(), "2 cups flour", "", 1)
	require.NoError(t, err)
	require.Len(t, got.Ingredients, 1)
	assert.Equal(t, 240.0, got.Ingredients[0].ScaledAmount)
}

func TestServiceParseCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewService(nil, nil).Parse(ctx, "2 cups flour", "", 1)
	assert.ErrorIs(t, err, context.Canceled)
}
