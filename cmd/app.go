package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/emrgen/resourcesync/internal/cache"
	"github.com/emrgen/resourcesync/internal/config"
	"github.com/emrgen/resourcesync/internal/metrics"
	"github.com/emrgen/resourcesync/internal/model"
	"github.com/emrgen/resourcesync/internal/service"
	"github.com/emrgen/resourcesync/internal/store"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"
)

type app struct {
	store   store.Store
	service *service.ResourceService
	close   func()
}

// newApp wires the store, cache and metrics described by cnf.
func newApp(cnf *config.Config, reg prometheus.Registerer) (*app, error) {
	db, err := config.GetDb(cnf)
	if err != nil {
		return nil, err
	}

	s := store.NewGormStore(db)
	closers := []func(){
		func() {
			if sqlDB, err := db.DB(); err == nil {
				_ = sqlDB.Close()
			}
		},
	}

	var resourceCache cache.ResourceCache = cache.NopResourceCache{}
	if cnf.Redis.Addr != "" {
		client := cache.NewRedisClient(cnf.Redis.Addr, cnf.Redis.Password, cnf.Redis.DB)
		resourceCache = cache.NewRedisResourceCache(client, cnf.Redis.TTL)
		closers = append(closers, func() { _ = client.Close() })
		logrus.Debugf("caching resource ids in redis at %s", cnf.Redis.Addr)
	}

	return &app{
		store:   s,
		service: service.NewResourceService(s, resourceCache, metrics.New(reg)),
		close: func() {
			for _, c := range closers {
				c()
			}
		},
	}, nil
}

func parseKind(name string) (model.ParentKind, error) {
	kind, ok := model.ParseParentKind(name)
	if !ok {
		names := make([]string, 0, len(model.ParentKinds))
		for _, k := range model.ParentKinds {
			names = append(names, k.String())
		}
		return "", fmt.Errorf("unknown kind %q, expected one of %s", name, strings.Join(names, ", "))
	}

	return kind, nil
}

func parseID(value string) (uint, error) {
	id, err := strconv.ParseUint(value, 10, 64)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", value)
	}

	return uint(id), nil
}
