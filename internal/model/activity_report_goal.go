package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityReportGoal is a goal as recorded on a single report.
type ActivityReportGoal struct {
	ID               uint `gorm:"primaryKey"`
	ActivityReportID uint `gorm:"index"`
	GoalID           uint `gorm:"index"`
	Name             string
	Timeframe        string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Resources []ActivityReportGoalResource `gorm:"foreignKey:ActivityReportGoalID"`
}

func (ActivityReportGoal) TableName() string {
	return "activity_report_goals"
}

func (g *ActivityReportGoal) Kind() ParentKind {
	return KindActivityReportGoal
}

func (g *ActivityReportGoal) Key() uint {
	return g.ID
}

func (g *ActivityReportGoal) TrackedText() []FieldText {
	return []FieldText{
		{Field: SourceFieldReportGoalName, Text: g.Name},
		{Field: SourceFieldReportGoalTimeframe, Text: g.Timeframe},
	}
}

func (g *ActivityReportGoal) LoadedAssociations() ([]Association, bool) {
	return associationsOf(g.Resources)
}

func (g *ActivityReportGoal) ClearLoadedAssociations() {
	g.Resources = nil
}

// ActivityReportGoalResource links a report goal to a catalog resource.
type ActivityReportGoalResource struct {
	ID                   uint                        `gorm:"primaryKey"`
	ActivityReportGoalID uint                        `gorm:"not null;uniqueIndex:idx_activity_report_goal_resources_parent_resource"`
	ResourceID           uint                        `gorm:"not null;uniqueIndex:idx_activity_report_goal_resources_parent_resource;index"`
	SourceFields         datatypes.JSONSlice[string] `gorm:"not null"`
	IsAutoDetected       bool                        `gorm:"not null;default:false"`
	Resource             *Resource                   `gorm:"foreignKey:ResourceID"`
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

func (ActivityReportGoalResource) TableName() string {
	return "activity_report_goal_resources"
}

func (r *ActivityReportGoalResource) ParentColumn() string {
	return "activity_report_goal_id"
}

func (r *ActivityReportGoalResource) ToAssociation() Association {
	return Association{
		ParentID:       r.ActivityReportGoalID,
		ResourceID:     r.ResourceID,
		SourceFields:   []string(r.SourceFields),
		IsAutoDetected: r.IsAutoDetected,
		Resource:       r.Resource,
	}
}

func (r *ActivityReportGoalResource) SetAssociation(a Association) {
	r.ActivityReportGoalID = a.ParentID
	r.ResourceID = a.ResourceID
	r.SourceFields = datatypes.NewJSONSlice(a.SourceFields)
	r.IsAutoDetected = a.IsAutoDetected
}
