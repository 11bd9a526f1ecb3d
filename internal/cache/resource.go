package cache

import (
	"context"

	"github.com/emrgen/resourcesync/internal/model"
)

// ResourceCache remembers which catalog id holds a url.
type ResourceCache interface {
	// GetResourceIDs returns the cached ids of the urls it knows about.
	GetResourceIDs(ctx context.Context, urls []string) (map[string]uint, error)
	// SetResources caches the url to id mapping of each resource.
	SetResources(ctx context.Context, resources []*model.Resource) error
}

var _ ResourceCache = NopResourceCache{}

// NopResourceCache caches nothing.
type NopResourceCache struct{}

func (NopResourceCache) GetResourceIDs(context.Context, []string) (map[string]uint, error) {
	return map[string]uint{}, nil
}

func (NopResourceCache) SetResources(context.Context, []*model.Resource) error {
	return nil
}
