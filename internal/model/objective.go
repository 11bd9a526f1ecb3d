package model

import (
	"time"

	"gorm.io/datatypes"
)

type Objective struct {
	ID        uint `gorm:"primaryKey"`
	GoalID    uint `gorm:"index"`
	Title     string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time

	Resources []ObjectiveResource `gorm:"foreignKey:ObjectiveID"`
}

func (Objective) TableName() string {
	return "objectives"
}

func (o *Objective) Kind() ParentKind {
	return KindObjective
}

func (o *Objective) Key() uint {
	return o.ID
}

func (o *Objective) TrackedText() []FieldText {
	return []FieldText{
		{Field: SourceFieldObjectiveTitle, Text: o.Title},
	}
}

func (o *Objective) LoadedAssociations() ([]Association, bool) {
	return associationsOf(o.Resources)
}

func (o *Objective) ClearLoadedAssociations() {
	o.Resources = nil
}

type ObjectiveResource struct {
	ID             uint                        `gorm:"primaryKey"`
	ObjectiveID    uint                        `gorm:"not null;uniqueIndex:idx_objective_resources_parent_resource"`
	ResourceID     uint                        `gorm:"not null;uniqueIndex:idx_objective_resources_parent_resource;index"`
	SourceFields   datatypes.JSONSlice[string] `gorm:"not null"`
	IsAutoDetected bool                        `gorm:"not null;default:false"`
	Resource       *Resource                   `gorm:"foreignKey:ResourceID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (ObjectiveResource) TableName() string {
	return "objective_resources"
}

func (r *ObjectiveResource) ParentColumn() string {
	return "objective_id"
}

func (r *ObjectiveResource) ToAssociation() Association {
	return Association{
		ParentID:       r.ObjectiveID,
		ResourceID:     r.ResourceID,
		SourceFields:   []string(r.SourceFields),
		IsAutoDetected: r.IsAutoDetected,
		Resource:       r.Resource,
	}
}

func (r *ObjectiveResource) SetAssociation(a Association) {
	r.ObjectiveID = a.ParentID
	r.ResourceID = a.ResourceID
	r.SourceFields = datatypes.NewJSONSlice(a.SourceFields)
	r.IsAutoDetected = a.IsAutoDetected
}
