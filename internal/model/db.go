package model

import "gorm.io/gorm"

// Migrate creates the catalog, the parent tables and one association table per parent kind.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&Resource{}); err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&ActivityReport{},
		&ActivityReportObjective{},
		&Objective{},
		&NextStep{},
		&Goal{},
		&GoalTemplate{},
		&ActivityReportGoal{},
		&ObjectiveTemplate{},
	); err != nil {
		return err
	}

	if err := db.AutoMigrate(
		&ActivityReportResource{},
		&ActivityReportObjectiveResource{},
		&ObjectiveResource{},
		&NextStepResource{},
		&GoalResource{},
		&GoalTemplateResource{},
		&ActivityReportGoalResource{},
		&ObjectiveTemplateResource{},
	); err != nil {
		return err
	}

	return nil
}
