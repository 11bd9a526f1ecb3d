package service

import (
	"context"

	"github.com/emrgen/resourcesync/internal/model"
)

// ProcessActivityReportForResources syncs the resources of a report with its
// context and additional notes. A nil report is ignored.
func (s *ResourceService) ProcessActivityReportForResources(ctx context.Context, report *model.ActivityReport, urls []string, resourceIDs ...uint) error {
	if report == nil {
		return nil
	}

	_, err := s.Sync(ctx, report, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessActivityReportForResourcesByID(ctx context.Context, id uint, urls []string, resourceIDs ...uint) error {
	_, err := s.SyncByID(ctx, model.KindActivityReport, id, urls, resourceIDs)
	return err
}

// ProcessActivityReportObjectiveForResources syncs the resources of a report
// objective with its title and TTA provided.
func (s *ResourceService) ProcessActivityReportObjectiveForResources(ctx context.Context, objective *model.ActivityReportObjective, urls []string, resourceIDs ...uint) error {
	if objective == nil {
		return nil
	}

	_, err := s.Sync(ctx, objective, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessActivityReportObjectiveForResourcesByID(ctx context.Context, id uint, urls []string, resourceIDs ...uint) error {
	_, err := s.SyncByID(ctx, model.KindActivityReportObjective, id, urls, resourceIDs)
	return err
}

// ProcessObjectiveForResources syncs the resources of an objective with its title.
func (s *ResourceService) ProcessObjectiveForResources(ctx context.Context, objective *model.Objective, urls []string, resourceIDs ...uint) error {
	if objective == nil {
		return nil
	}

	_, err := s.Sync(ctx, objective, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessObjectiveForResourcesByID(ctx context.Context, id uint, urls []string, resourceIDs ...uint) error {
	_, err := s.SyncByID(ctx, model.KindObjective, id, urls, resourceIDs)
	return err
}

// ProcessNextStepForResources syncs the resources of a next step with its note.
func (s *ResourceService) ProcessNextStepForResources(ctx context.Context, step *model.NextStep, urls []string, resourceIDs ...uint) error {
	if step == nil {
		return nil
	}

	_, err := s.Sync(ctx, step, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessNextStepForResourcesByID(ctx context.Context, id uint, urls []string, resourceIDs ...uint) error {
	_, err := s.SyncByID(ctx, model.KindNextStep, id, urls, resourceIDs)
	return err
}

// ProcessGoalForResources syncs the resources of a goal with its name and timeframe.
func (s *ResourceService) ProcessGoalForResources(ctx context.Context, goal *model.Goal, urls []string, resourceIDs ...uint) error {
	if goal == nil {
		return nil
	}

	_, err := s.Sync(ctx, goal, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessGoalForResourcesByID(ctx context.Context, id uint, urls []string, resourceIDs ...uint) error {
	_, err := s.SyncByID(ctx, model.KindGoal, id, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessGoalTemplateForResources(ctx context.Context, template *model.GoalTemplate, urls []string, resourceIDs ...uint) error {
	if template == nil {
		return nil
	}

	_, err := s.Sync(ctx, template, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessGoalTemplateForResourcesByID(ctx context.Context, id uint, urls []string, resourceIDs ...uint) error {
	_, err := s.SyncByID(ctx, model.KindGoalTemplate, id, urls, resourceIDs)
	return err
}

// ProcessActivityReportGoalForResources syncs the resources of a report goal
// with its name and timeframe.
func (s *ResourceService) ProcessActivityReportGoalForResources(ctx context.Context, goal *model.ActivityReportGoal, urls []string, resourceIDs ...uint) error {
	if goal == nil {
		return nil
	}

	_, err := s.Sync(ctx, goal, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessActivityReportGoalForResourcesByID(ctx context.Context, id uint, urls []string, resourceIDs ...uint) error {
	_, err := s.SyncByID(ctx, model.KindActivityReportGoal, id, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessObjectiveTemplateForResources(ctx context.Context, template *model.ObjectiveTemplate, urls []string, resourceIDs ...uint) error {
	if template == nil {
		return nil
	}

	_, err := s.Sync(ctx, template, urls, resourceIDs)
	return err
}

func (s *ResourceService) ProcessObjectiveTemplateForResourcesByID(ctx context.Context, id uint, urls []string, resourceIDs ...uint) error {
	_, err := s.SyncByID(ctx, model.KindObjectiveTemplate, id, urls, resourceIDs)
	return err
}
