package resource

import "github.com/emrgen/resourcesync/internal/model"

// Removal lists the resources to unlink from one parent.
type Removal struct {
	ParentID    uint
	ResourceIDs []uint
}

// Plan is the set of writes that moves the stored associations of a parent
// to the incoming ones. Create, Update and Destroy never share a
// (parent, resource) pair.
type Plan struct {
	Create  []model.Association
	Update  []model.Association
	Destroy []Removal
}

// Empty reports whether applying the plan would change nothing.
func (p Plan) Empty() bool {
	return len(p.Create) == 0 && len(p.Update) == 0 && len(p.Destroy) == 0
}

// Destroyed counts the associations the plan removes.
func (p Plan) Destroyed() int {
	n := 0
	for _, removal := range p.Destroy {
		n += len(removal.ResourceIDs)
	}

	return n
}

type change int

const (
	unchanged change = iota
	expanded
	reduced
	delta
)

// Reconcile compares the incoming associations of a parent with the current
// ones and classifies every (parent, resource) pair:
//
//	new       only incoming                 create
//	expanded  gains tags                    update with current + gained
//	reduced   loses tags                    update with the retained tags
//	delta     gains and loses tags          update with retained + gained
//	removed   only current, or no tags left destroy
//
// Created and updated associations have IsAutoDetected derived from their
// final tags and autoDetectedFields. The slices of the plan are never nil.
func Reconcile(incoming, current []model.Association, autoDetectedFields []string) Plan {
	incoming = mergeKeepEmpty(incoming)
	current = mergeKeepEmpty(current)

	currentIndex := make(map[associationKey]int, len(current))
	for i, c := range current {
		currentIndex[associationKey{parentID: c.ParentID, resourceID: c.ResourceID}] = i
	}

	incomingKeys := make(map[associationKey]struct{}, len(incoming))

	plan := Plan{Create: []model.Association{}, Update: []model.Association{}}
	var (
		expandedSet, deltaSet, reducedSet []model.Association
		emptied                           []model.Association
	)

	finalize := func(a model.Association, fields []string) model.Association {
		return model.Association{
			ParentID:       a.ParentID,
			ResourceID:     a.ResourceID,
			SourceFields:   fields,
			IsAutoDetected: IsAutoDetected(fields, autoDetectedFields),
		}
	}

	for _, in := range incoming {
		key := associationKey{parentID: in.ParentID, resourceID: in.ResourceID}
		incomingKeys[key] = struct{}{}

		i, ok := currentIndex[key]
		if !ok {
			if len(in.SourceFields) > 0 {
				plan.Create = append(plan.Create, finalize(in, in.SourceFields))
			}
			continue
		}

		cur := current[i]
		fields, kind := diffFields(cur.SourceFields, in.SourceFields)
		switch kind {
		case expanded:
			expandedSet = append(expandedSet, finalize(cur, fields))
		case delta:
			deltaSet = append(deltaSet, finalize(cur, fields))
		case reduced:
			if len(fields) == 0 {
				emptied = append(emptied, cur)
				continue
			}
			reducedSet = append(reducedSet, finalize(cur, fields))
		}
	}

	var removed []model.Association
	for _, c := range current {
		key := associationKey{parentID: c.ParentID, resourceID: c.ResourceID}
		if _, ok := incomingKeys[key]; !ok {
			removed = append(removed, c)
		}
	}

	plan.Update = append(plan.Update, expandedSet...)
	plan.Update = append(plan.Update, deltaSet...)
	plan.Update = append(plan.Update, reducedSet...)
	plan.Destroy = groupRemovals(append(removed, emptied...))

	return plan
}

// diffFields returns the tags an existing association should end up with and
// how they differ from the current ones. Current tags keep their order; new
// tags follow in incoming order.
func diffFields(current, incoming []string) ([]string, change) {
	incomingSet := newFieldSet(incoming)
	currentSet := newFieldSet(current)

	retained := keepFields(current, incomingSet)
	gained := make([]string, 0, len(incoming))
	for _, field := range incoming {
		if !currentSet.ContainsOne(field) {
			gained = append(gained, field)
		}
	}
	gained = unionFields(nil, gained)

	lost := len(retained) < currentSet.Cardinality()
	switch {
	case len(gained) > 0 && lost:
		return append(retained, gained...), delta
	case len(gained) > 0:
		return append(retained, gained...), expanded
	case lost:
		return retained, reduced
	default:
		return current, unchanged
	}
}

// mergeKeepEmpty merges duplicate pairs but, unlike MergeByResourceAndParent,
// keeps associations with no tags so they can be reduced away.
func mergeKeepEmpty(records []model.Association) []model.Association {
	out := make([]model.Association, 0, len(records))
	index := make(map[associationKey]int, len(records))
	for _, record := range records {
		if record.ResourceID == 0 {
			continue
		}

		key := associationKey{parentID: record.ParentID, resourceID: record.ResourceID}
		if i, ok := index[key]; ok {
			out[i].SourceFields = unionFields(out[i].SourceFields, record.SourceFields)
			continue
		}

		index[key] = len(out)
		out = append(out, model.Association{
			ParentID:     record.ParentID,
			ResourceID:   record.ResourceID,
			SourceFields: unionFields(nil, record.SourceFields),
		})
	}

	return out
}

func groupRemovals(records []model.Association) []Removal {
	out := make([]Removal, 0)
	index := make(map[uint]int)
	for _, record := range records {
		i, ok := index[record.ParentID]
		if !ok {
			i = len(out)
			index[record.ParentID] = i
			out = append(out, Removal{ParentID: record.ParentID})
		}
		out[i].ResourceIDs = append(out[i].ResourceIDs, record.ResourceID)
	}

	return out
}
