package service

import (
	"context"
	"fmt"

	"github.com/emrgen/resourcesync/internal/model"
	"github.com/emrgen/resourcesync/internal/resource"
)

func (s *ResourceService) GetResourcesForActivityReports(ctx context.Context, ids []uint, includeAutoDetected bool) ([]model.Association, error) {
	return s.GetResources(ctx, model.KindActivityReport, ids, includeAutoDetected)
}

func (s *ResourceService) GetResourcesForActivityReportObjectives(ctx context.Context, ids []uint, includeAutoDetected bool) ([]model.Association, error) {
	return s.GetResources(ctx, model.KindActivityReportObjective, ids, includeAutoDetected)
}

func (s *ResourceService) GetResourcesForObjectives(ctx context.Context, ids []uint, includeAutoDetected bool) ([]model.Association, error) {
	return s.GetResources(ctx, model.KindObjective, ids, includeAutoDetected)
}

func (s *ResourceService) GetResourcesForNextSteps(ctx context.Context, ids []uint, includeAutoDetected bool) ([]model.Association, error) {
	return s.GetResources(ctx, model.KindNextStep, ids, includeAutoDetected)
}

func (s *ResourceService) GetResourcesForGoals(ctx context.Context, ids []uint, includeAutoDetected bool) ([]model.Association, error) {
	return s.GetResources(ctx, model.KindGoal, ids, includeAutoDetected)
}

func (s *ResourceService) GetResourcesForGoalTemplates(ctx context.Context, ids []uint, includeAutoDetected bool) ([]model.Association, error) {
	return s.GetResources(ctx, model.KindGoalTemplate, ids, includeAutoDetected)
}

func (s *ResourceService) GetResourcesForActivityReportGoals(ctx context.Context, ids []uint, includeAutoDetected bool) ([]model.Association, error) {
	return s.GetResources(ctx, model.KindActivityReportGoal, ids, includeAutoDetected)
}

func (s *ResourceService) GetResourcesForObjectiveTemplates(ctx context.Context, ids []uint, includeAutoDetected bool) ([]model.Association, error) {
	return s.GetResources(ctx, model.KindObjectiveTemplate, ids, includeAutoDetected)
}

// GetResources lists the associations of the given parents with their
// resources loaded. Unless includeAutoDetected is set, only associations a
// user attached explicitly are returned.
func (s *ResourceService) GetResources(ctx context.Context, kind model.ParentKind, ids []uint, includeAutoDetected bool) ([]model.Association, error) {
	profile, ok := resource.ProfileFor(kind)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	associations, err := s.store.ListAssociationsWithResources(ctx, kind, ids)
	if err != nil {
		return nil, err
	}
	if includeAutoDetected {
		return associations, nil
	}

	explicit := make([]model.Association, 0, len(associations))
	for _, association := range associations {
		if association.HasSourceField(profile.ExplicitField) {
			explicit = append(explicit, association)
		}
	}

	return explicit, nil
}
