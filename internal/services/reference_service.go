package services

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"community-backend/internal/cache"
	"community-backend/internal/models"
	"community-backend/internal/repositories"
)

const referenceCacheTTL = 24 * time.Hour

type ReferenceService struct {
	Repo  *repositories.ReferenceRepository
	Cache *cache.Cache
}

func NewReferenceService(repo *repositories.ReferenceRepository, c *cache.Cache) *ReferenceService {
	return &ReferenceService{Repo: repo, Cache: c}
}

// IsKnownKind reports whether kind is a served reference list
func IsKnownKind(kind string) bool {
	for _, k := range models.ReferenceKinds {
		if k == kind {
			return true
		}
	}
	return false
}

// List returns all items of a kind, cached for 24 hours
func (s *ReferenceService) List(ctx context.Context, kind string) ([]models.ReferenceItem, error) {
	if !IsKnownKind(kind) {
		return nil, errors.New("unknown reference kind: " + kind)
	}

	cacheKey := "reference:" + kind
	if data, ok := s.Cache.Get(ctx, cacheKey); ok {
		var items []models.ReferenceItem
		if err := json.Unmarshal(data, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.Repo.ListByKind(ctx, kind)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(items); err == nil {
		s.Cache.Set(ctx, cacheKey, data, referenceCacheTTL)
	}

	return items, nil
}

// Children returns the cascade-filtered child list for a parent value.
// A parent with no recorded children falls back to the full unfiltered
// list so the user is never dead-ended. The parent match is exact
func (s *ReferenceService) Children(ctx context.Context, childKind, parentName string) ([]models.ReferenceItem, error) {
	parentKind, ok := models.CascadeParents[childKind]
	if !ok {
		return nil, errors.New("reference kind " + childKind + " has no cascade parent")
	}

	children, err := s.Repo.ListChildren(ctx, childKind, parentKind, parentName)
	if err != nil {
		return nil, err
	}

	if len(children) == 0 {
		return s.List(ctx, childKind)
	}

	return children, nil
}

// InvalidateAll clears the cached reference lists (admin data reloads)
func (s *ReferenceService) InvalidateAll(ctx context.Context) {
	s.Cache.InvalidatePrefix(ctx, "reference:")
}
