package model

import (
	"time"

	"gorm.io/datatypes"
)

// GoalTemplate is a curated goal that goals can be created from.
type GoalTemplate struct {
	ID             uint `gorm:"primaryKey"`
	TemplateName   string
	CreationMethod string
	CreatedAt      time.Time
	UpdatedAt      time.Time

	Resources []GoalTemplateResource `gorm:"foreignKey:GoalTemplateID"`
}

func (GoalTemplate) TableName() string {
	return "goal_templates"
}

func (t *GoalTemplate) Kind() ParentKind {
	return KindGoalTemplate
}

func (t *GoalTemplate) Key() uint {
	return t.ID
}

func (t *GoalTemplate) TrackedText() []FieldText {
	return []FieldText{
		{Field: SourceFieldGoalTemplateName, Text: t.TemplateName},
	}
}

func (t *GoalTemplate) LoadedAssociations() ([]Association, bool) {
	return associationsOf(t.Resources)
}

func (t *GoalTemplate) ClearLoadedAssociations() {
	t.Resources = nil
}

// GoalTemplateResource links a goal template to a catalog resource.
type GoalTemplateResource struct {
	ID             uint                        `gorm:"primaryKey"`
	GoalTemplateID uint                        `gorm:"not null;uniqueIndex:idx_goal_template_resources_parent_resource"`
	ResourceID     uint                        `gorm:"not null;uniqueIndex:idx_goal_template_resources_parent_resource;index"`
	SourceFields   datatypes.JSONSlice[string] `gorm:"not null"`
	IsAutoDetected bool                        `gorm:"not null;default:false"`
	Resource       *Resource                   `gorm:"foreignKey:ResourceID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (GoalTemplateResource) TableName() string {
	return "goal_template_resources"
}

func (r *GoalTemplateResource) ParentColumn() string {
	return "goal_template_id"
}

func (r *GoalTemplateResource) ToAssociation() Association {
	return Association{
		ParentID:       r.GoalTemplateID,
		ResourceID:     r.ResourceID,
		SourceFields:   []string(r.SourceFields),
		IsAutoDetected: r.IsAutoDetected,
		Resource:       r.Resource,
	}
}

func (r *GoalTemplateResource) SetAssociation(a Association) {
	r.GoalTemplateID = a.ParentID
	r.ResourceID = a.ResourceID
	r.SourceFields = datatypes.NewJSONSlice(a.SourceFields)
	r.IsAutoDetected = a.IsAutoDetected
}
