package model

import (
	"time"

	"gorm.io/datatypes"
)

// ActivityReport holds the report fields links are collected from.
type ActivityReport struct {
	ID              uint `gorm:"primaryKey"`
	Context         string
	AdditionalNotes string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Resources []ActivityReportResource `gorm:"foreignKey:ActivityReportID"`
}

func (ActivityReport) TableName() string {
	return "activity_reports"
}

func (r *ActivityReport) Kind() ParentKind {
	return KindActivityReport
}

func (r *ActivityReport) Key() uint {
	return r.ID
}

func (r *ActivityReport) TrackedText() []FieldText {
	return []FieldText{
		{Field: SourceFieldReportContext, Text: r.Context},
		{Field: SourceFieldReportAdditionalNotes, Text: r.AdditionalNotes},
	}
}

func (r *ActivityReport) LoadedAssociations() ([]Association, bool) {
	return associationsOf(r.Resources)
}

func (r *ActivityReport) ClearLoadedAssociations() {
	r.Resources = nil
}

// ActivityReportResource links a report to a catalog resource.
type ActivityReportResource struct {
	ID               uint                        `gorm:"primaryKey"`
	ActivityReportID uint                        `gorm:"not null;uniqueIndex:idx_activity_report_resources_parent_resource"`
	ResourceID       uint                        `gorm:"not null;uniqueIndex:idx_activity_report_resources_parent_resource;index"`
	SourceFields     datatypes.JSONSlice[string] `gorm:"not null"`
	IsAutoDetected   bool                        `gorm:"not null;default:false"`
	Resource         *Resource                   `gorm:"foreignKey:ResourceID"`
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

func (ActivityReportResource) TableName() string {
	return "activity_report_resources"
}

func (r *ActivityReportResource) ParentColumn() string {
	return "activity_report_id"
}

func (r *ActivityReportResource) ToAssociation() Association {
	return Association{
		ParentID:       r.ActivityReportID,
		ResourceID:     r.ResourceID,
		SourceFields:   []string(r.SourceFields),
		IsAutoDetected: r.IsAutoDetected,
		Resource:       r.Resource,
	}
}

func (r *ActivityReportResource) SetAssociation(a Association) {
	r.ActivityReportID = a.ParentID
	r.ResourceID = a.ResourceID
	r.SourceFields = datatypes.NewJSONSlice(a.SourceFields)
	r.IsAutoDetected = a.IsAutoDetected
}
