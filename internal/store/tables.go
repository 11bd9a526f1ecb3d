package store

import (
	"errors"
	"fmt"

	"github.com/emrgen/resourcesync/internal/model"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type associationTable interface {
	list(db *gorm.DB, parentIDs []uint, withResources bool) ([]model.Association, error)
	create(db *gorm.DB, associations []model.Association) error
	update(db *gorm.DB, association model.Association) error
	delete(db *gorm.DB, parentID uint, resourceIDs []uint) error
}

type parentTable interface {
	get(db *gorm.DB, id uint) (model.Parent, error)
	listIDs(db *gorm.DB, afterID uint, limit int) ([]uint, error)
}

// linkTable maps Association onto one concrete association table.
type linkTable[T any, PT interface {
	*T
	model.AssociationRow
}] struct{}

func (linkTable[T, PT]) column() string {
	return PT(new(T)).ParentColumn()
}

func (t linkTable[T, PT]) list(db *gorm.DB, parentIDs []uint, withResources bool) ([]model.Association, error) {
	if len(parentIDs) == 0 {
		return []model.Association{}, nil
	}

	query := db.Where(t.column()+" IN ?", parentIDs).Order("id")
	if withResources {
		query = query.Preload("Resource")
	}

	var rows []T
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}

	out := make([]model.Association, 0, len(rows))
	for i := range rows {
		out = append(out, PT(&rows[i]).ToAssociation())
	}

	return out, nil
}

func (linkTable[T, PT]) create(db *gorm.DB, associations []model.Association) error {
	if len(associations) == 0 {
		return nil
	}

	rows := make([]T, len(associations))
	for i, a := range associations {
		PT(&rows[i]).SetAssociation(a)
	}

	return db.Create(&rows).Error
}

func (t linkTable[T, PT]) update(db *gorm.DB, association model.Association) error {
	return db.Model(PT(new(T))).
		Where(t.column()+" = ? AND resource_id = ?", association.ParentID, association.ResourceID).
		Updates(map[string]any{
			"source_fields":    datatypes.NewJSONSlice(association.SourceFields),
			"is_auto_detected": association.IsAutoDetected,
		}).Error
}

func (t linkTable[T, PT]) delete(db *gorm.DB, parentID uint, resourceIDs []uint) error {
	if len(resourceIDs) == 0 {
		return nil
	}

	return db.Where(t.column()+" = ? AND resource_id IN ?", parentID, resourceIDs).
		Delete(PT(new(T))).Error
}

// entityTable loads one concrete parent table.
type entityTable[T any, PT interface {
	*T
	model.Parent
}] struct{}

func (entityTable[T, PT]) get(db *gorm.DB, id uint) (model.Parent, error) {
	row := new(T)
	err := db.Preload("Resources").First(row, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrParentNotFound
	}
	if err != nil {
		return nil, err
	}

	return PT(row), nil
}

func (entityTable[T, PT]) listIDs(db *gorm.DB, afterID uint, limit int) ([]uint, error) {
	var ids []uint
	err := db.Model(PT(new(T))).
		Where("id > ?", afterID).
		Order("id").
		Limit(limit).
		Pluck("id", &ids).Error

	return ids, err
}

type tableSet struct {
	associations associationTable
	parents      parentTable
}

var tables = map[model.ParentKind]tableSet{
	model.KindActivityReport: {
		associations: linkTable[model.ActivityReportResource, *model.ActivityReportResource]{},
		parents:      entityTable[model.ActivityReport, *model.ActivityReport]{},
	},
	model.KindActivityReportObjective: {
		associations: linkTable[model.ActivityReportObjectiveResource, *model.ActivityReportObjectiveResource]{},
		parents:      entityTable[model.ActivityReportObjective, *model.ActivityReportObjective]{},
	},
	model.KindObjective: {
		associations: linkTable[model.ObjectiveResource, *model.ObjectiveResource]{},
		parents:      entityTable[model.Objective, *model.Objective]{},
	},
	model.KindNextStep: {
		associations: linkTable[model.NextStepResource, *model.NextStepResource]{},
		parents:      entityTable[model.NextStep, *model.NextStep]{},
	},
	model.KindGoal: {
		associations: linkTable[model.GoalResource, *model.GoalResource]{},
		parents:      entityTable[model.Goal, *model.Goal]{},
	},
	model.KindGoalTemplate: {
		associations: linkTable[model.GoalTemplateResource, *model.GoalTemplateResource]{},
		parents:      entityTable[model.GoalTemplate, *model.GoalTemplate]{},
	},
	model.KindActivityReportGoal: {
		associations: linkTable[model.ActivityReportGoalResource, *model.ActivityReportGoalResource]{},
		parents:      entityTable[model.ActivityReportGoal, *model.ActivityReportGoal]{},
	},
	model.KindObjectiveTemplate: {
		associations: linkTable[model.ObjectiveTemplateResource, *model.ObjectiveTemplateResource]{},
		parents:      entityTable[model.ObjectiveTemplate, *model.ObjectiveTemplate]{},
	},
}

func tablesFor(kind model.ParentKind) (tableSet, error) {
	set, ok := tables[kind]
	if !ok {
		return tableSet{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return set, nil
}
