package service

import (
	"github.com/emrgen/resourcesync/internal/cache"
	"github.com/emrgen/resourcesync/internal/metrics"
	"github.com/emrgen/resourcesync/internal/store"
)

// ResourceService keeps the resource catalog and the per-kind association
// tables in step with the text of their parents.
type ResourceService struct {
	store   store.Store
	cache   cache.ResourceCache
	metrics *metrics.Metrics
}

// NewResourceService creates a service. A nil cache disables caching and nil
// metrics records nothing.
func NewResourceService(store store.Store, resourceCache cache.ResourceCache, metrics *metrics.Metrics) *ResourceService {
	if resourceCache == nil {
		resourceCache = cache.NopResourceCache{}
	}

	return &ResourceService{
		store:   store,
		cache:   resourceCache,
		metrics: metrics,
	}
}

// WithStore returns a service running its passes on st, usually a store bound
// to the caller's own transaction so the pass commits or rolls back with it.
// The copy does not cache since the caller may still roll back.
func (s *ResourceService) WithStore(st store.Store) *ResourceService {
	return &ResourceService{
		store:   st,
		cache:   cache.NopResourceCache{},
		metrics: s.metrics,
	}
}
