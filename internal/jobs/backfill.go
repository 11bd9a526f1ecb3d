package jobs

import (
	"context"
	"fmt"

	"github.com/emrgen/resourcesync/internal/model"
	"github.com/emrgen/resourcesync/internal/service"
	"github.com/emrgen/resourcesync/internal/store"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

var _ CronJob = (*BackfillTask)(nil)

// BackfillTask resyncs every parent of the configured kinds, walking them in
// id order one batch at a time.
type BackfillTask struct {
	service     *service.ResourceService
	store       store.Store
	kinds       []model.ParentKind
	schedule    string
	batchSize   int
	concurrency int
}

func NewBackfillTask(service *service.ResourceService, store store.Store, kinds []model.ParentKind, schedule string, batchSize, concurrency int) *BackfillTask {
	if batchSize <= 0 {
		batchSize = 100
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	return &BackfillTask{
		service:     service,
		store:       store,
		kinds:       kinds,
		schedule:    schedule,
		batchSize:   batchSize,
		concurrency: concurrency,
	}
}

func (b *BackfillTask) ID() string {
	return "backfill"
}

func (b *BackfillTask) Schedule() string {
	return b.schedule
}

func (b *BackfillTask) Run() {
	n, err := b.Backfill(context.Background())
	if err != nil {
		logrus.Errorf("backfill stopped after %d parents: %v", n, err)
		return
	}

	logrus.Infof("backfill resynced %d parents", n)
}

// Backfill resyncs every parent and returns how many it processed.
func (b *BackfillTask) Backfill(ctx context.Context) (int, error) {
	total := 0
	for _, kind := range b.kinds {
		n, err := b.backfillKind(ctx, kind)
		total += n
		if err != nil {
			return total, err
		}
	}

	return total, nil
}

func (b *BackfillTask) backfillKind(ctx context.Context, kind model.ParentKind) (int, error) {
	var (
		after     uint
		processed int
	)

	for {
		ids, err := b.store.ListParentIDs(ctx, kind, after, b.batchSize)
		if err != nil {
			return processed, fmt.Errorf("list %s ids: %w", kind, err)
		}
		if len(ids) == 0 {
			return processed, nil
		}

		g, gctx := errgroup.WithContext(ctx)
		g.SetLimit(b.concurrency)
		for _, id := range ids {
			id := id
			g.Go(func() error {
				if _, err := b.service.ResyncByID(gctx, kind, id); err != nil {
					return fmt.Errorf("resync %s %d: %w", kind, id, err)
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return processed, err
		}

		processed += len(ids)
		after = ids[len(ids)-1]
		logrus.Debugf("backfilled %d %s parents up to id %d", processed, kind, after)

		if len(ids) < b.batchSize {
			return processed, nil
		}
	}
}
