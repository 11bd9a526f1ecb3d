package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func TestParseParentKind(t *testing.T) {
	for _, kind := range ParentKinds {
		got, ok := ParseParentKind(kind.String())
		assert.True(t, ok)
		assert.Equal(t, kind, got)
	}

	_, ok := ParseParentKind("grant")
	assert.False(t, ok)
}

func TestAssociation_HasSourceField(t *testing.T) {
	a := Association{SourceFields: []string{SourceFieldResource, SourceFieldObjectiveTitle}}

	assert.True(t, a.HasSourceField(SourceFieldResource))
	assert.False(t, a.HasSourceField(SourceFieldNextStepNote))
	assert.False(t, Association{}.HasSourceField(SourceFieldResource))
}

func TestLoadedAssociations(t *testing.T) {
	step := &NextStep{ID: 3}
	_, loaded := step.LoadedAssociations()
	assert.False(t, loaded)

	step.Resources = []NextStepResource{{
		NextStepID:     3,
		ResourceID:     9,
		SourceFields:   datatypes.NewJSONSlice([]string{SourceFieldNextStepNote}),
		IsAutoDetected: true,
	}}
	current, loaded := step.LoadedAssociations()
	assert.True(t, loaded)
	assert.Equal(t, []Association{{
		ParentID:       3,
		ResourceID:     9,
		SourceFields:   []string{SourceFieldNextStepNote},
		IsAutoDetected: true,
	}}, current)

	step.ClearLoadedAssociations()
	_, loaded = step.LoadedAssociations()
	assert.False(t, loaded)
}

func TestSetAssociation(t *testing.T) {
	var row ActivityReportObjectiveResource
	row.SetAssociation(Association{ParentID: 1, ResourceID: 2, SourceFields: []string{"title"}, IsAutoDetected: true})

	assert.Equal(t, uint(1), row.ActivityReportObjectiveID)
	assert.Equal(t, uint(2), row.ResourceID)
	assert.Equal(t, datatypes.JSONSlice[string]{"title"}, row.SourceFields)
	assert.Equal(t, "activity_report_objective_id", row.ParentColumn())
}
