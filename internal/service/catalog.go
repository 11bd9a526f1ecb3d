package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emrgen/resourcesync/internal/model"
	"github.com/emrgen/resourcesync/internal/resource"
	"github.com/emrgen/resourcesync/internal/store"
	"github.com/sirupsen/logrus"
)

// FindOrCreateResource returns the catalog entry for url, creating it when
// missing. An empty url yields nil.
func (s *ResourceService) FindOrCreateResource(ctx context.Context, url string) (*model.Resource, error) {
	resources, err := s.FindOrCreateResources(ctx, []string{url})
	if err != nil {
		return nil, err
	}
	if len(resources) == 0 {
		return nil, nil
	}

	return resources[0], nil
}

// FindOrCreateResources returns one catalog entry per distinct non-empty url,
// creating the missing ones.
func (s *ResourceService) FindOrCreateResources(ctx context.Context, urls []string) ([]*model.Resource, error) {
	var resources, created []*model.Resource
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		var err error
		resources, created, err = s.findOrCreate(ctx, tx, urls)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.remember(ctx, resources)
	s.metrics.ObserveResourcesCreated(len(created))

	return resources, nil
}

// findOrCreate resolves urls against tx. It returns every resolved entry in
// url order together with the ones it inserted.
func (s *ResourceService) findOrCreate(ctx context.Context, tx store.Store, urls []string) ([]*model.Resource, []*model.Resource, error) {
	unique := distinctURLs(urls)
	if len(unique) == 0 {
		return []*model.Resource{}, nil, nil
	}

	found := make(map[string]*model.Resource, len(unique))

	cached, err := s.cache.GetResourceIDs(ctx, unique)
	if err != nil {
		logrus.Warnf("resource cache lookup failed: %v", err)
		cached = nil
	}
	if err := verifyCached(ctx, tx, cached, found); err != nil {
		return nil, nil, err
	}

	var lookup []string
	for _, url := range unique {
		if _, ok := found[url]; !ok {
			lookup = append(lookup, url)
		}
	}

	existing, err := tx.ListResourcesByURL(ctx, lookup)
	if err != nil {
		return nil, nil, fmt.Errorf("list resources: %w", err)
	}
	for _, r := range existing {
		found[r.URL] = r
	}

	var created []*model.Resource
	for _, url := range unique {
		if _, ok := found[url]; ok {
			continue
		}

		r := &model.Resource{URL: url, Domain: resource.Domain(url)}
		err := tx.CreateResource(ctx, r)
		if errors.Is(err, store.ErrResourceExists) {
			// lost a race with a concurrent pass
			r, err = tx.GetResourceByURL(ctx, url)
		} else if err == nil {
			created = append(created, r)
		}
		if err != nil {
			return nil, nil, fmt.Errorf("create resource %s: %w", url, err)
		}
		found[url] = r
	}

	out := make([]*model.Resource, 0, len(unique))
	for _, url := range unique {
		out = append(out, found[url])
	}

	return out, created, nil
}

// verifyCached adds to found the cached entries that still exist in tx with
// the same url. Stale ids fall through to the url lookup.
func verifyCached(ctx context.Context, tx store.Store, cached map[string]uint, found map[string]*model.Resource) error {
	if len(cached) == 0 {
		return nil
	}

	ids := make([]uint, 0, len(cached))
	for _, id := range cached {
		ids = append(ids, id)
	}

	resources, err := tx.ListResourcesByID(ctx, ids)
	if err != nil {
		return fmt.Errorf("list cached resources: %w", err)
	}

	byID := make(map[uint]*model.Resource, len(resources))
	for _, r := range resources {
		byID[r.ID] = r
	}
	for url, id := range cached {
		if r, ok := byID[id]; ok && r.URL == url {
			found[url] = r
			continue
		}
		logrus.Debugf("dropping stale cached resource id %d for %s", id, url)
	}

	return nil
}

// remember caches committed catalog entries. Failures only cost a lookup later.
func (s *ResourceService) remember(ctx context.Context, resources []*model.Resource) {
	if err := s.cache.SetResources(ctx, resources); err != nil {
		logrus.Warnf("resource cache update failed: %v", err)
	}
}

func distinctURLs(urls []string) []string {
	out := make([]string, 0, len(urls))
	seen := make(map[string]struct{}, len(urls))
	for _, url := range urls {
		if url == "" {
			continue
		}
		if _, ok := seen[url]; ok {
			continue
		}
		seen[url] = struct{}{}
		out = append(out, url)
	}

	return out
}
