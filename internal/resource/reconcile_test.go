package resource

import (
	"testing"

	"github.com/emrgen/resourcesync/internal/model"
	"github.com/stretchr/testify/assert"
)

func link(parentID, resourceID uint, fields ...string) model.Association {
	return model.Association{ParentID: parentID, ResourceID: resourceID, SourceFields: fields}
}

func TestReconcile(t *testing.T) {
	current := []model.Association{
		link(1, 2, "b"),
		link(1, 4, "f", "g"),
		link(1, 5, "h"),
	}
	incoming := []model.Association{
		link(1, 1, "a"),
		link(1, 2, "b", "c"),
		link(1, 4, "f"),
	}

	plan := Reconcile(incoming, current, nil)

	assert.Equal(t, []model.Association{link(1, 1, "a")}, plan.Create)
	assert.Equal(t, []model.Association{
		link(1, 2, "b", "c"),
		link(1, 4, "f"),
	}, plan.Update)
	assert.Equal(t, []Removal{{ParentID: 1, ResourceIDs: []uint{5}}}, plan.Destroy)
	assert.Equal(t, 1, plan.Destroyed())
	assert.False(t, plan.Empty())
}

func TestReconcile_Classification(t *testing.T) {
	tests := []struct {
		name     string
		current  []model.Association
		incoming []model.Association
		want     Plan
	}{
		{
			name: "unchanged",
			current: []model.Association{
				link(1, 1, "title", "resource"),
			},
			incoming: []model.Association{
				link(1, 1, "resource", "title"),
			},
			want: Plan{Destroy: []Removal{}},
		},
		{
			name:     "delta keeps retained tags then gained ones",
			current:  []model.Association{link(1, 1, "e", "x")},
			incoming: []model.Association{link(1, 1, "d", "x")},
			want: Plan{
				Update:  []model.Association{link(1, 1, "x", "d")},
				Destroy: []Removal{},
			},
		},
		{
			name:     "delta with no common tag",
			current:  []model.Association{link(1, 1, "e")},
			incoming: []model.Association{link(1, 1, "d")},
			want: Plan{
				Update:  []model.Association{link(1, 1, "d")},
				Destroy: []Removal{},
			},
		},
		{
			name:     "reduced to nothing is destroyed",
			current:  []model.Association{link(1, 1, "e"), link(1, 2, "f")},
			incoming: []model.Association{link(1, 1)},
			want: Plan{
				Destroy: []Removal{{ParentID: 1, ResourceIDs: []uint{2, 1}}},
			},
		},
		{
			name:     "new without tags is skipped",
			incoming: []model.Association{link(1, 1)},
			want:     Plan{Destroy: []Removal{}},
		},
		{
			name: "both empty",
			want: Plan{Destroy: []Removal{}},
		},
		{
			name:     "everything removed",
			current:  []model.Association{link(1, 1, "a"), link(2, 3, "b"), link(1, 2, "c")},
			incoming: nil,
			want: Plan{
				Destroy: []Removal{
					{ParentID: 1, ResourceIDs: []uint{1, 2}},
					{ParentID: 2, ResourceIDs: []uint{3}},
				},
			},
		},
		{
			name:     "duplicate incoming pairs are merged",
			incoming: []model.Association{link(1, 1, "a"), link(1, 1, "b")},
			want: Plan{
				Create:  []model.Association{link(1, 1, "a", "b")},
				Destroy: []Removal{},
			},
		},
		{
			name: "updates ordered expanded, delta, reduced",
			current: []model.Association{
				link(1, 1, "a", "b"),
				link(1, 2, "a"),
				link(1, 3, "a"),
			},
			incoming: []model.Association{
				link(1, 1, "a"),
				link(1, 2, "b"),
				link(1, 3, "a", "b"),
			},
			want: Plan{
				Update: []model.Association{
					link(1, 3, "a", "b"),
					link(1, 2, "b"),
					link(1, 1, "a"),
				},
				Destroy: []Removal{},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, withEmptySlices(tt.want), Reconcile(tt.incoming, tt.current, nil))
		})
	}
}

func withEmptySlices(p Plan) Plan {
	if p.Create == nil {
		p.Create = []model.Association{}
	}
	if p.Update == nil {
		p.Update = []model.Association{}
	}
	if p.Destroy == nil {
		p.Destroy = []Removal{}
	}

	return p
}

func TestReconcile_EmptyPlanSlices(t *testing.T) {
	plan := Reconcile(nil, nil, nil)

	assert.NotNil(t, plan.Create)
	assert.NotNil(t, plan.Update)
	assert.NotNil(t, plan.Destroy)
	assert.True(t, plan.Empty())
}

func TestReconcile_NeverUpdatesWithEmptyTags(t *testing.T) {
	current := []model.Association{link(7, 1, "title"), link(7, 2, "title", "resource")}
	incoming := []model.Association{link(7, 1), link(7, 2, "resource")}

	plan := Reconcile(incoming, current, []string{"title"})

	for _, update := range plan.Update {
		assert.NotEmpty(t, update.SourceFields)
	}
	assert.Equal(t, []Removal{{ParentID: 7, ResourceIDs: []uint{1}}}, plan.Destroy)
	assert.Equal(t, []model.Association{link(7, 2, "resource")}, plan.Update)
}

func TestReconcile_AutoDetected(t *testing.T) {
	profile, ok := ProfileFor(model.KindActivityReportObjective)
	assert.True(t, ok)

	current := []model.Association{link(1, 3, "resource")}
	incoming := []model.Association{
		link(1, 1, "resource"),
		link(1, 2, "title", "resource"),
		link(1, 3, "resource", "ttaProvided"),
	}

	plan := Reconcile(incoming, current, profile.AutoDetectedFields)

	assert.Len(t, plan.Create, 2)
	assert.False(t, plan.Create[0].IsAutoDetected)
	assert.True(t, plan.Create[1].IsAutoDetected)
	assert.Len(t, plan.Update, 1)
	assert.Equal(t, []string{"resource", "ttaProvided"}, plan.Update[0].SourceFields)
	assert.True(t, plan.Update[0].IsAutoDetected)
}

func TestReconcile_Idempotent(t *testing.T) {
	incoming := []model.Association{link(1, 1, "a"), link(1, 2, "b", "c")}

	first := Reconcile(incoming, nil, nil)
	assert.Len(t, first.Create, 2)

	second := Reconcile(incoming, first.Create, nil)
	assert.True(t, second.Empty())
}
