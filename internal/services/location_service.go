package services

import (
	"context"
	"encoding/json"
	"time"

	"community-backend/internal/cache"
	"community-backend/internal/models"
	"community-backend/internal/repositories"
)

const locationCacheTTL = 24 * time.Hour

type LocationService struct {
	Repo  *repositories.LocationRepository
	Cache *cache.Cache
}

func NewLocationService(repo *repositories.LocationRepository, c *cache.Cache) *LocationService {
	return &LocationService{Repo: repo, Cache: c}
}

// Districts returns every district, cached
func (s *LocationService) Districts(ctx context.Context) ([]models.District, error) {
	cacheKey := "locations:districts"
	if data, ok := s.Cache.Get(ctx, cacheKey); ok {
		var districts []models.District
		if err := json.Unmarshal(data, &districts); err == nil {
			return districts, nil
		}
	}

	districts, err := s.Repo.ListDistricts(ctx)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(districts); err == nil {
		s.Cache.Set(ctx, cacheKey, data, locationCacheTTL)
	}

	return districts, nil
}

// PostOffices resolves a validated 6-digit PIN code, cached per PIN
func (s *LocationService) PostOffices(ctx context.Context, pinCode string) ([]models.PostOffice, error) {
	if err := ValidatePinCode(pinCode); err != nil {
		return nil, err
	}

	cacheKey := "locations:pin:" + pinCode
	if data, ok := s.Cache.Get(ctx, cacheKey); ok {
		var offices []models.PostOffice
		if err := json.Unmarshal(data, &offices); err == nil {
			return offices, nil
		}
	}

	offices, err := s.Repo.ListPostOfficesByPin(ctx, pinCode)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(offices); err == nil {
		s.Cache.Set(ctx, cacheKey, data, locationCacheTTL)
	}

	return offices, nil
}
