package api

import (
	"time"

	"github.com/bikalpokharel/portfolio-backend/database"
	"github.com/bikalpokharel/portfolio-backend/models"
	cache "github.com/patrickmn/go-cache"
)

const siteConfigCacheKey = "site_configuration"

// siteConfigSource is a read-through cache in front of the singleton
// configuration row, which every page handler fetches.
type siteConfigSource struct {
	repo  *database.SiteConfigurationRepo
	cache *cache.Cache
}

func newSiteConfigSource(repo *database.SiteConfigurationRepo) *siteConfigSource {
	return &siteConfigSource{
		repo:  repo,
		cache: cache.New(5*time.Minute, 10*time.Minute),
	}
}

// Get returns the configuration, creating the row on first access.
func (s *siteConfigSource) Get() (*models.SiteConfiguration, error) {
	if cached, found := s.cache.Get(siteConfigCacheKey); found {
		return cached.(*models.SiteConfiguration), nil
	}

	config, err := s.repo.Ensure()
	if err != nil {
		return nil, err
	}

	s.cache.Set(siteConfigCacheKey, config, cache.DefaultExpiration)
	return config, nil
}

// Invalidate drops the cached row after an admin update.
func (s *siteConfigSource) Invalidate() {
	s.cache.Delete(siteConfigCacheKey)
}
