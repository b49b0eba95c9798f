package service

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"

	apperrors "github.com/xautrade/meeting-server-go/internal/errors"
	"github.com/xautrade/meeting-server-go/internal/model"
	"github.com/xautrade/meeting-server-go/internal/repository"
)

const geoCacheKey = "geo:countries"

// GeoCache is the slice of the redis client the service needs. Satisfied by
// *redis.Client; a nil GeoCache disables caching entirely.
type GeoCache interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
}

// GeoService serves the countries/states reference list. The data is static
// after seeding, so when Redis is available the marshaled payload is cached
// under a TTL; cache errors silently fall back to the database.
type GeoService struct {
	repo     repository.GeoRepository
	cache    GeoCache
	cacheTTL time.Duration
}

func NewGeoService(repo repository.GeoRepository, cache GeoCache, cacheTTL time.Duration) *GeoService {
	return &GeoService{
		repo:     repo,
		cache:    cache,
		cacheTTL: cacheTTL,
	}
}

func (s *GeoService) CountriesWithStates(ctx context.Context) ([]model.Country, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, geoCacheKey).Bytes(); err == nil {
			var countries []model.Country
			if err := json.Unmarshal(cached, &countries); err == nil {
				return countries, nil
			}
			log.Warn().Msg("discarding unreadable cached reference data")
		}
	}

	countries, err := s.repo.CountriesWithStates(ctx)
	if err != nil {
		return nil, apperrors.Database(err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(countries); err == nil {
			if err := s.cache.Set(ctx, geoCacheKey, payload, s.cacheTTL).Err(); err != nil {
				log.Warn().Err(err).Msg("failed to cache reference data")
			}
		}
	}

	return countries, nil
}
