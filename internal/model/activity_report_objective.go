package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityReportObjective is an objective as recorded on a single report.
type ActivityReportObjective struct {
	ID               uint `gorm:"primaryKey"`
	ActivityReportID uint `gorm:"index"`
	ObjectiveID      uint `gorm:"index"`
	Title            string
	TTAProvided      string
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Resources []ActivityReportObjectiveResource `gorm:"foreignKey:ActivityReportObjectiveID"`
}

func (ActivityReportObjective) TableName() string {
	return "activity_report_objectives"
}

func (o *ActivityReportObjective) Kind() ParentKind {
	return KindActivityReportObjective
}

func (o *ActivityReportObjective) Key() uint {
	return o.ID
}

func (o *ActivityReportObjective) TrackedText() []FieldText {
	return []FieldText{
		{Field: SourceFieldReportObjectiveTitle, Text: o.Title},
		{Field: SourceFieldReportObjectiveTTAProvided, Text: o.TTAProvided},
	}
}

func (o *ActivityReportObjective) LoadedAssociations() ([]Association, bool) {
	return associationsOf(o.Resources)
}

func (o *ActivityReportObjective) ClearLoadedAssociations() {
	o.Resources = nil
}

// ActivityReportObjectiveResource links a report objective to a catalog resource.
type ActivityReportObjectiveResource struct {
	ID                        uint                        `gorm:"primaryKey"`
	ActivityReportObjectiveID uint                        `gorm:"not null;uniqueIndex:idx_activity_report_objective_resources_parent_resource"`
	ResourceID                uint                        `gorm:"not null;uniqueIndex:idx_activity_report_objective_resources_parent_resource;index"`
	SourceFields              datatypes.JSONSlice[string] `gorm:"not null"`
	IsAutoDetected            bool                        `gorm:"not null;default:false"`
	Resource                  *Resource                   `gorm:"foreignKey:ResourceID"`
	CreatedAt                 time.Time
	UpdatedAt                 time.Time
}

func (ActivityReportObjectiveResource) TableName() string {
	return "activity_report_objective_resources"
}

func (r *ActivityReportObjectiveResource) ParentColumn() string {
	return "activity_report_objective_id"
}

func (r *ActivityReportObjectiveResource) ToAssociation() Association {
	return Association{
		ParentID:       r.ActivityReportObjectiveID,
		ResourceID:     r.ResourceID,
		SourceFields:   []string(r.SourceFields),
		IsAutoDetected: r.IsAutoDetected,
		Resource:       r.Resource,
	}
}

func (r *ActivityReportObjectiveResource) SetAssociation(a Association) {
	r.ActivityReportObjectiveID = a.ParentID
	r.ResourceID = a.ResourceID
	r.SourceFields = datatypes.NewJSONSlice(a.SourceFields)
	r.IsAutoDetected = a.IsAutoDetected
}
