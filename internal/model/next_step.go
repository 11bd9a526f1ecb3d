package model

import (
	"time"

	"gorm.io/datatypes"
)

// NextStep is a follow-up note attached to a report.
type NextStep struct {
	ID               uint `gorm:"primaryKey"`
	ActivityReportID uint `gorm:"index"`
	Note             string
	NoteType         string // SPECIALIST or RECIPIENT
	CreatedAt        time.Time
	UpdatedAt        time.Time

	Resources []NextStepResource `gorm:"foreignKey:NextStepID"`
}

func (NextStep) TableName() string {
	return "next_steps"
}

func (n *NextStep) Kind() ParentKind {
	return KindNextStep
}

func (n *NextStep) Key() uint {
	return n.ID
}

func (n *NextStep) TrackedText() []FieldText {
	return []FieldText{
		{Field: SourceFieldNextStepNote, Text: n.Note},
	}
}

func (n *NextStep) LoadedAssociations() ([]Association, bool) {
	return associationsOf(n.Resources)
}

func (n *NextStep) ClearLoadedAssociations() {
	n.Resources = nil
}

type NextStepResource struct {
	ID             uint                        `gorm:"primaryKey"`
	NextStepID     uint                        `gorm:"not null;uniqueIndex:idx_next_step_resources_parent_resource"`
	ResourceID     uint                        `gorm:"not null;uniqueIndex:idx_next_step_resources_parent_resource;index"`
	SourceFields   datatypes.JSONSlice[string] `gorm:"not null"`
	IsAutoDetected bool                        `gorm:"not null;default:false"`
	Resource       *Resource                   `gorm:"foreignKey:ResourceID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (NextStepResource) TableName() string {
	return "next_step_resources"
}

func (r *NextStepResource) ParentColumn() string {
	return "next_step_id"
}

func (r *NextStepResource) ToAssociation() Association {
	return Association{
		ParentID:       r.NextStepID,
		ResourceID:     r.ResourceID,
		SourceFields:   []string(r.SourceFields),
		IsAutoDetected: r.IsAutoDetected,
		Resource:       r.Resource,
	}
}

func (r *NextStepResource) SetAssociation(a Association) {
	r.NextStepID = a.ParentID
	r.ResourceID = a.ResourceID
	r.SourceFields = datatypes.NewJSONSlice(a.SourceFields)
	r.IsAutoDetected = a.IsAutoDetected
}
