package recipe

import (
	"context"
	"errors"
	"strconv"

	"go.uber.org/zap"

	"recipe-scaler/internal/core/cache"
	"recipe-scaler/internal/core/scaler"
	"recipe-scaler/internal/pkg/common"
)

const cachePrefix = "recipe"

// Service parses recipes, memoizing results in an optional cache
type Service struct {
	scaler *scaler.Scaler
	cache  cache.Store
}

// NewService creates the recipe service; store may be nil
func NewService(s *scaler.Scaler, store cache.Store) *Service {
	if s == nil {
		s = scaler.New(nil)
	}
	return &Service{
		scaler: s,
		cache:  store,
	}
}

// Scaler returns the scaler used for parsing
func (s *Service) Scaler() *scaler.Scaler {
	return s.scaler
}

// Parse is ParseRecipe with caching. Cache failures are logged and never
// fail the request.
func (s *Service) Parse(ctx context.Context, ingredientsText, instructionsText string, multiplier float64) (common.ParsedRecipe, error) {
	if err := ctx.Err(); err != nil {
		return common.ParsedRecipe{}, err
	}

	key := s.getCacheKey(ingredientsText, instructionsText, multiplier)

	if cached, err := s.getFromCache(ctx, key); err == nil && cached != "" {
		var result common.ParsedRecipe
		if err := common.ParseJSON(cached, &result); err == nil {
			return result, nil
		}
		common.LogWarn("Discarding unreadable cache entry", zap.String("key", key))
	} else if err != nil && !errors.Is(err, common.ErrCacheMiss) {
		common.LogWarn("Cache read failed", zap.Error(err))
	}

	result := parseRecipe(s.scaler, ingredientsText, instructionsText, multiplier)

	if data, err := common.ToJSON(result); err == nil {
		if err := s.setToCache(ctx, key, data); err != nil {
			common.LogWarn("Cache write failed", zap.Error(err))
		}
	}

	return result, nil
}

func (s *Service) getCacheKey(ingredientsText, instructionsText string, multiplier float64) string {
	return cache.Key(cachePrefix, ingredientsText, instructionsText, strconv.FormatFloat(multiplier, 'g', -1, 64))
}

func (s *Service) getFromCache(ctx context.Context, key string) (string, error) {
	if s.cache == nil {
		return "", nil
	}
	return s.cache.Get(ctx, key)
}

func (s *Service) setToCache(ctx context.Context, key, value string) error {
	if s.cache == nil {
		return nil
	}
	return s.cache.Set(ctx, key, value)
}
