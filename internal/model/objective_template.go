package model

import (
	"time"

	"gorm.io/datatypes"
)

type ObjectiveTemplate struct {
	ID             uint `gorm:"primaryKey"`
	TemplateTitle  string
	CreationMethod string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Resources []ObjectiveTemplateResource `gorm:"foreignKey:ObjectiveTemplateID"`
}

func (ObjectiveTemplate) TableName() string {
	return "objective_templates"
}

func (t *ObjectiveTemplate) Kind() ParentKind {
	return KindObjectiveTemplate
}

func (t *ObjectiveTemplate) Key() uint {
	return t.ID
}

func (t *ObjectiveTemplate) TrackedText() []FieldText {
	return []FieldText{
		{Field: SourceFieldObjectiveTemplateTitle, Text: t.TemplateTitle},
	}
}

func (t *ObjectiveTemplate) LoadedAssociations() ([]Association, bool) {
	return associationsOf(t.Resources)
}

func (t *ObjectiveTemplate) ClearLoadedAssociations() {
	t.Resources = nil
}

// ObjectiveTemplateResource links an objective template to a catalog resource.
type ObjectiveTemplateResource struct {
	ID                  uint                        `gorm:"primaryKey"`
	ObjectiveTemplateID uint                        `gorm:"not null;uniqueIndex:idx_objective_template_resources_parent_resource"`
	ResourceID          uint                        `gorm:"not null;uniqueIndex:idx_objective_template_resources_parent_resource;index"`
	SourceFields        datatypes.JSONSlice[string] `gorm:"not null"`
	IsAutoDetected      bool                        `gorm:"not null;default:false"`
	Resource            *Resource                   `gorm:"foreignKey:ResourceID"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

func (ObjectiveTemplateResource) TableName() string {
	return "objective_template_resources"
}

func (r *ObjectiveTemplateResource) ParentColumn() string {
	return "objective_template_id"
}

func (r *ObjectiveTemplateResource) ToAssociation() Association {
	return Association{
		ParentID:       r.ObjectiveTemplateID,
		ResourceID:     r.ResourceID,
		SourceFields:   []string(r.SourceFields),
		IsAutoDetected: r.IsAutoDetected,
		Resource:       r.Resource,
	}
}

func (r *ObjectiveTemplateResource) SetAssociation(a Association) {
	r.ObjectiveTemplateID = a.ParentID
	r.ResourceID = a.ResourceID
	r.SourceFields = datatypes.NewJSONSlice(a.SourceFields)
	r.IsAutoDetected = a.IsAutoDetected
}
