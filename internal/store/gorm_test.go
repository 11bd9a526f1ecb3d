package store

import (
	"context"
	"testing"

	"github.com/emrgen/resourcesync/internal/model"
	"github.com/emrgen/resourcesync/internal/tester"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormStore_CreateResource(t *testing.T) {
	ctx := context.TODO()
	s := NewGormStore(tester.NewDB(t))

	first := &model.Resource{URL: "http://x.com", Domain: "x.com"}
	require.NoError(t, s.CreateResource(ctx, first))
	assert.NotZero(t, first.ID)

	err := s.CreateResource(ctx, &model.Resource{URL: "http://x.com", Domain: "x.com"})
	assert.ErrorIs(t, err, ErrResourceExists)

	got, err := s.GetResourceByURL(ctx, "http://x.com")
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = s.GetResourceByURL(ctx, "http://y.com")
	assert.ErrorIs(t, err, ErrResourceNotFound)
}

func TestGormStore_CreateResourceInsideTransaction(t *testing.T) {
	ctx := context.TODO()
	s := NewGormStore(tester.NewDB(t))

	require.NoError(t, s.CreateResource(ctx, &model.Resource{URL: "http://x.com"}))

	err := s.Transaction(ctx, func(tx Store) error {
		err := tx.CreateResource(ctx, &model.Resource{URL: "http://x.com"})
		assert.ErrorIs(t, err, ErrResourceExists)

		// the transaction is still usable after the failed insert
		return tx.CreateResource(ctx, &model.Resource{URL: "http://y.com"})
	})
	require.NoError(t, err)

	resources, err := s.ListResourcesByURL(ctx, []string{"http://x.com", "http://y.com", "http://z.com"})
	require.NoError(t, err)
	assert.Len(t, resources, 2)
}

func newParent(kind model.ParentKind) model.Parent {
	switch kind {
	case model.KindActivityReport:
		return &model.ActivityReport{}
	case model.KindActivityReportObjective:
		return &model.ActivityReportObjective{}
	case model.KindObjective:
		return &model.Objective{}
	case model.KindGoal:
		return &model.Goal{}
	case model.KindGoalTemplate:
		return &model.GoalTemplate{}
	case model.KindActivityReportGoal:
		return &model.ActivityReportGoal{}
	case model.KindObjectiveTemplate:
		return &model.ObjectiveTemplate{}
	default:
		return &model.NextStep{}
	}
}

func TestGormStore_Associations(t *testing.T) {
	ctx := context.TODO()
	s := NewGormStore(tester.NewDB(t))

	for _, kind := range model.ParentKinds {
		t.Run(kind.String(), func(t *testing.T) {
			first, second := newParent(kind), newParent(kind)
			require.NoError(t, s.CreateParent(ctx, first))
			require.NoError(t, s.CreateParent(ctx, second))

			a := &model.Resource{URL: "http://a.com/" + kind.String()}
			b := &model.Resource{URL: "http://b.com/" + kind.String()}
			require.NoError(t, s.CreateResource(ctx, a))
			require.NoError(t, s.CreateResource(ctx, b))

			err := s.CreateAssociations(ctx, kind, []model.Association{
				{ParentID: first.Key(), ResourceID: a.ID, SourceFields: []string{"resource"}},
				{ParentID: first.Key(), ResourceID: b.ID, SourceFields: []string{"resource", "title"}, IsAutoDetected: true},
				{ParentID: second.Key(), ResourceID: a.ID, SourceFields: []string{"title"}, IsAutoDetected: true},
			})
			require.NoError(t, err)

			got, err := s.ListAssociations(ctx, kind, []uint{first.Key()})
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, []string{"resource"}, got[0].SourceFields)
			assert.False(t, got[0].IsAutoDetected)
			assert.Nil(t, got[0].Resource)

			err = s.UpdateAssociation(ctx, kind, model.Association{
				ParentID:       first.Key(),
				ResourceID:     a.ID,
				SourceFields:   []string{"resource", "title"},
				IsAutoDetected: true,
			})
			require.NoError(t, err)

			require.NoError(t, s.DeleteAssociations(ctx, kind, first.Key(), []uint{b.ID}))

			got, err = s.ListAssociationsWithResources(ctx, kind, []uint{first.Key(), second.Key()})
			require.NoError(t, err)
			require.Len(t, got, 2)
			assert.Equal(t, first.Key(), got[0].ParentID)
			assert.Equal(t, []string{"resource", "title"}, got[0].SourceFields)
			assert.True(t, got[0].IsAutoDetected)
			require.NotNil(t, got[0].Resource)
			assert.Equal(t, a.URL, got[0].Resource.URL)
			assert.Equal(t, second.Key(), got[1].ParentID)
		})
	}
}

func TestGormStore_Parents(t *testing.T) {
	ctx := context.TODO()
	s := NewGormStore(tester.NewDB(t))

	objective := &model.Objective{Title: "See http://a.com"}
	require.NoError(t, s.CreateParent(ctx, objective))
	require.NoError(t, s.CreateParent(ctx, &model.Objective{Title: "plain"}))
	require.NoError(t, s.CreateParent(ctx, &model.Objective{Title: "plain"}))

	parent, err := s.GetParent(ctx, model.KindObjective, objective.ID)
	require.NoError(t, err)
	assert.Equal(t, objective.ID, parent.Key())
	assert.Equal(t, "See http://a.com", parent.TrackedText()[0].Text)

	current, loaded := parent.LoadedAssociations()
	assert.True(t, loaded)
	assert.Empty(t, current)

	_, err = s.GetParent(ctx, model.KindObjective, 999999)
	assert.ErrorIs(t, err, ErrParentNotFound)

	ids, err := s.ListParentIDs(ctx, model.KindObjective, 0, 2)
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	rest, err := s.ListParentIDs(ctx, model.KindObjective, ids[1], 2)
	require.NoError(t, err)
	assert.Len(t, rest, 1)
}

func TestGormStore_UnknownKind(t *testing.T) {
	ctx := context.TODO()
	s := NewGormStore(tester.NewDB(t))

	_, err := s.ListAssociations(ctx, model.ParentKind("grant"), []uint{1})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = s.GetParent(ctx, model.ParentKind("grant"), 1)
	assert.ErrorIs(t, err, ErrUnknownKind)
}
