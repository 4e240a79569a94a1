package services

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"community-backend/internal/cache"
	"community-backend/internal/models"
	"community-backend/internal/repositories"
)

const featureSwitchCacheTTL = 5 * time.Minute
const featureSwitchCacheKey = "feature_switches:all"

type FeatureSwitchService struct {
	Repo  *repositories.FeatureSwitchRepository
	Cache *cache.Cache
}

func NewFeatureSwitchService(repo *repositories.FeatureSwitchRepository, c *cache.Cache) *FeatureSwitchService {
	return &FeatureSwitchService{Repo: repo, Cache: c}
}

// GetAll returns the switch map, cached for five minutes. When the store
// is unreachable the built-in defaults are served so clients degrade
// gracefully instead of hard-failing
func (s *FeatureSwitchService) GetAll(ctx context.Context) map[string]bool {
	if data, ok := s.Cache.Get(ctx, featureSwitchCacheKey); ok {
		var switches map[string]bool
		if err := json.Unmarshal(data, &switches); err == nil {
			return switches
		}
	}

	rows, err := s.Repo.GetAll(ctx)
	if err != nil {
		log.Printf("Feature switch fetch failed, serving defaults: %v", err)
		return copyDefaults()
	}

	switches := copyDefaults()
	for _, row := range rows {
		switches[row.Key] = row.Enabled
	}

	if data, err := json.Marshal(switches); err == nil {
		s.Cache.Set(ctx, featureSwitchCacheKey, data, featureSwitchCacheTTL)
	}

	return switches
}

// IsEnabled reports one switch; unknown keys read as disabled unless a
// default says otherwise
func (s *FeatureSwitchService) IsEnabled(key string) bool {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	return s.GetAll(ctx)[key]
}

// Update sets a switch and invalidates the cache
func (s *FeatureSwitchService) Update(ctx context.Context, key string, enabled bool, updatedBy int) error {
	if err := s.Repo.Upsert(ctx, key, enabled, updatedBy); err != nil {
		return err
	}
	s.Cache.Invalidate(ctx, featureSwitchCacheKey)
	return nil
}

func copyDefaults() map[string]bool {
	switches := make(map[string]bool, len(models.DefaultFeatureSwitches))
	for k, v := range models.DefaultFeatureSwitches {
		switches[k] = v
	}
	return switches
}
