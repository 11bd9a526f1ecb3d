package model

import (
	"time"

	"gorm.io/datatypes"
)

// Goal is a grant goal. Its name and timeframe are scanned for links.
type Goal struct {
	ID        uint `gorm:"primaryKey"`
	GrantID   uint `gorm:"index"`
	Name      string
	Timeframe string
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time

	Resources []GoalResource `gorm:"foreignKey:GoalID"`
}

func (Goal) TableName() string {
	return "goals"
}

func (g *Goal) Kind() ParentKind {
	return KindGoal
}

func (g *Goal) Key() uint {
	return g.ID
}

func (g *Goal) TrackedText() []FieldText {
	return []FieldText{
		{Field: SourceFieldGoalName, Text: g.Name},
		{Field: SourceFieldGoalTimeframe, Text: g.Timeframe},
	}
}

func (g *Goal) LoadedAssociations() ([]Association, bool) {
	return associationsOf(g.Resources)
}

func (g *Goal) ClearLoadedAssociations() {
	g.Resources = nil
}

// GoalResource links a goal to a catalog resource.
type GoalResource struct {
	ID             uint                        `gorm:"primaryKey"`
	GoalID         uint                        `gorm:"not null;uniqueIndex:idx_goal_resources_parent_resource"`
	ResourceID     uint                        `gorm:"not null;uniqueIndex:idx_goal_resources_parent_resource;index"`
	SourceFields   datatypes.JSONSlice[string] `gorm:"not null"`
	IsAutoDetected bool                        `gorm:"not null;default:false"`
	Resource       *Resource                   `gorm:"foreignKey:ResourceID"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (GoalResource) TableName() string {
	return "goal_resources"
}

func (r *GoalResource) ParentColumn() string {
	return "goal_id"
}

func (r *GoalResource) ToAssociation() Association {
	return Association{
		ParentID:       r.GoalID,
		ResourceID:     r.ResourceID,
		SourceFields:   []string(r.SourceFields),
		IsAutoDetected: r.IsAutoDetected,
		Resource:       r.Resource,
	}
}

func (r *GoalResource) SetAssociation(a Association) {
	r.GoalID = a.ParentID
	r.ResourceID = a.ResourceID
	r.SourceFields = datatypes.NewJSONSlice(a.SourceFields)
	r.IsAutoDetected = a.IsAutoDetected
}
