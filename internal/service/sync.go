package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/emrgen/resourcesync/internal/model"
	"github.com/emrgen/resourcesync/internal/resource"
	"github.com/emrgen/resourcesync/internal/store"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// Sync runs one reconciliation pass for parent. The urls and resourceIDs are
// resources a user attached explicitly, on top of the links found in the
// parent's text. Every write of the pass commits or rolls back together.
//
// The parent's preloaded associations are used as the current state when
// present, otherwise they are read from the store. They are cleared after a
// committed pass so the next pass reads the store.
func (s *ResourceService) Sync(ctx context.Context, parent model.Parent, urls []string, resourceIDs []uint) (*resource.Plan, error) {
	if parent == nil || parent.Key() == 0 {
		return &resource.Plan{}, nil
	}

	kind := parent.Kind()
	profile, ok := resource.ProfileFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	log := logrus.WithFields(logrus.Fields{
		"kind":      kind,
		"parent_id": parent.Key(),
		"pass_id":   uuid.New(),
	})

	var (
		plan     resource.Plan
		resolved []*model.Resource
		created  []*model.Resource
	)
	err := s.store.Transaction(ctx, func(tx store.Store) error {
		current, loaded := parent.LoadedAssociations()
		if !loaded {
			var err error
			current, err = tx.ListAssociations(ctx, kind, []uint{parent.Key()})
			if err != nil {
				return fmt.Errorf("list associations: %w", err)
			}
		}

		candidates, found := resource.CollectCandidates(parent, profile, urls)

		var err error
		resolved, created, err = s.findOrCreate(ctx, tx, found)
		if err != nil {
			return err
		}

		explicit, err := existingResourceIDs(ctx, tx, resourceIDs)
		if err != nil {
			return err
		}

		incoming := resource.ResolveToResourceIDs(candidates, resolved)
		incoming = append(incoming, resource.ExplicitAssociations(parent.Key(), explicit, profile)...)
		incoming = resource.MergeByResourceAndParent(incoming)

		plan = resource.Reconcile(incoming, current, profile.AutoDetectedFields)

		return applyPlan(ctx, tx, kind, plan)
	})
	if err != nil {
		s.metrics.ObserveFailure(kind.String())
		log.Errorf("resource sync failed: %v", err)
		return nil, err
	}

	parent.ClearLoadedAssociations()
	s.remember(ctx, resolved)
	s.metrics.ObserveResourcesCreated(len(created))
	s.metrics.ObservePass(kind.String(), len(plan.Create), len(plan.Update), plan.Destroyed())

	log.WithFields(logrus.Fields{
		"create":  len(plan.Create),
		"update":  len(plan.Update),
		"destroy": plan.Destroyed(),
	}).Debug("resources synced")

	return &plan, nil
}

// SyncByID loads the parent and runs Sync on it. A missing parent is not an
// error and yields an empty plan.
func (s *ResourceService) SyncByID(ctx context.Context, kind model.ParentKind, id uint, urls []string, resourceIDs []uint) (*resource.Plan, error) {
	if _, ok := resource.ProfileFor(kind); !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	parent, err := s.store.GetParent(ctx, kind, id)
	if errors.Is(err, store.ErrParentNotFound) {
		logrus.Debugf("%s %d not found, skipping resource sync", kind, id)
		return &resource.Plan{}, nil
	}
	if err != nil {
		return nil, err
	}

	return s.Sync(ctx, parent, urls, resourceIDs)
}

// ResyncByID runs a pass from the parent's text alone, keeping the resources a
// user attached explicitly. A missing parent yields an empty plan.
func (s *ResourceService) ResyncByID(ctx context.Context, kind model.ParentKind, id uint) (*resource.Plan, error) {
	profile, ok := resource.ProfileFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	parent, err := s.store.GetParent(ctx, kind, id)
	if errors.Is(err, store.ErrParentNotFound) {
		logrus.Debugf("%s %d not found, skipping resource resync", kind, id)
		return &resource.Plan{}, nil
	}
	if err != nil {
		return nil, err
	}

	current, loaded := parent.LoadedAssociations()
	if !loaded {
		current, err = s.store.ListAssociations(ctx, kind, []uint{id})
		if err != nil {
			return nil, err
		}
	}

	var explicit []uint
	for _, association := range current {
		if association.HasSourceField(profile.ExplicitField) {
			explicit = append(explicit, association.ResourceID)
		}
	}

	return s.Sync(ctx, parent, nil, explicit)
}

func applyPlan(ctx context.Context, tx store.Store, kind model.ParentKind, plan resource.Plan) error {
	if err := tx.CreateAssociations(ctx, kind, plan.Create); err != nil {
		return fmt.Errorf("create associations: %w", err)
	}

	for _, association := range plan.Update {
		if err := tx.UpdateAssociation(ctx, kind, association); err != nil {
			return fmt.Errorf("update association %d/%d: %w", association.ParentID, association.ResourceID, err)
		}
	}

	for _, removal := range plan.Destroy {
		if err := tx.DeleteAssociations(ctx, kind, removal.ParentID, removal.ResourceIDs); err != nil {
			return fmt.Errorf("delete associations of %d: %w", removal.ParentID, err)
		}
	}

	return nil
}

// existingResourceIDs drops the ids that have no catalog entry.
func existingResourceIDs(ctx context.Context, tx store.Store, ids []uint) ([]uint, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	resources, err := tx.ListResourcesByID(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list resources: %w", err)
	}

	known := make(map[uint]struct{}, len(resources))
	for _, r := range resources {
		known[r.ID] = struct{}{}
	}

	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := known[id]; !ok {
			logrus.Warnf("ignoring unknown resource id %d", id)
			continue
		}
		out = append(out, id)
	}

	return out, nil
}
