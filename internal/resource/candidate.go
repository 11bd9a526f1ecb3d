package resource

import "github.com/emrgen/resourcesync/internal/model"

// Candidate is an association whose resource is still identified by url.
type Candidate struct {
	ParentID     uint
	URL          string
	SourceFields []string
}

type candidateKey struct {
	parentID uint
	url      string
}

type associationKey struct {
	parentID   uint
	resourceID uint
}

// BuildCandidates adds one candidate per url to seed, tagged with field. A url
// that already has a candidate for parentID in seed gains the tag instead.
// An empty field leaves seed unchanged.
func BuildCandidates(parentID uint, urls []string, field string, seed []Candidate) []Candidate {
	if field == "" {
		return seed
	}

	for _, url := range urls {
		if url == "" {
			continue
		}

		found := false
		for i := range seed {
			if seed[i].ParentID == parentID && seed[i].URL == url {
				seed[i].SourceFields = unionFields(seed[i].SourceFields, []string{field})
				found = true
				break
			}
		}

		if !found {
			seed = append(seed, Candidate{
				ParentID:     parentID,
				URL:          url,
				SourceFields: []string{field},
			})
		}
	}

	return seed
}

// MergeByURLAndParent collapses candidates sharing a parent and url into one
// carrying the union of their tags. Candidates without a url or tags are dropped.
func MergeByURLAndParent(records []Candidate) []Candidate {
	out := make([]Candidate, 0, len(records))
	index := make(map[candidateKey]int, len(records))
	for _, record := range records {
		if record.URL == "" || len(record.SourceFields) == 0 {
			continue
		}

		key := candidateKey{parentID: record.ParentID, url: record.URL}
		if i, ok := index[key]; ok {
			out[i].SourceFields = unionFields(out[i].SourceFields, record.SourceFields)
			continue
		}

		index[key] = len(out)
		out = append(out, Candidate{
			ParentID:     record.ParentID,
			URL:          record.URL,
			SourceFields: unionFields(nil, record.SourceFields),
		})
	}

	return out
}

// ResolveToResourceIDs swaps each candidate's url for the id of the matching
// catalog entry. Candidates whose url is not in resources are dropped.
func ResolveToResourceIDs(records []Candidate, resources []*model.Resource) []model.Association {
	ids := make(map[string]uint, len(resources))
	for _, r := range resources {
		if r != nil {
			ids[r.URL] = r.ID
		}
	}

	out := make([]model.Association, 0, len(records))
	for _, record := range records {
		id, ok := ids[record.URL]
		if !ok {
			continue
		}

		out = append(out, model.Association{
			ParentID:     record.ParentID,
			ResourceID:   id,
			SourceFields: record.SourceFields,
		})
	}

	return out
}

// MergeByResourceAndParent collapses associations sharing a parent and
// resource into one carrying the union of their tags. Associations without a
// resource or tags are dropped.
func MergeByResourceAndParent(records []model.Association) []model.Association {
	out := make([]model.Association, 0, len(records))
	index := make(map[associationKey]int, len(records))
	for _, record := range records {
		if record.ResourceID == 0 || len(record.SourceFields) == 0 {
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

// CollectCandidates scans the parent's tracked text and the explicitly
// attached urls. It returns the candidates along with every distinct url seen.
func CollectCandidates(parent model.Parent, profile Profile, explicitURLs []string) ([]Candidate, []string) {
	var (
		candidates []Candidate
		urls       []string
	)

	for _, field := range parent.TrackedText() {
		found := Extract(field.Text)
		urls = append(urls, found...)
		candidates = BuildCandidates(parent.Key(), found, field.Field, candidates)
	}

	explicit := ExtractFromAll(explicitURLs)
	urls = append(urls, explicit...)
	candidates = BuildCandidates(parent.Key(), explicit, profile.ExplicitField, candidates)

	return MergeByURLAndParent(candidates), dedupe(urls)
}

// ExplicitAssociations builds associations for resources attached by id.
func ExplicitAssociations(parentID uint, resourceIDs []uint, profile Profile) []model.Association {
	out := make([]model.Association, 0, len(resourceIDs))
	for _, id := range resourceIDs {
		out = append(out, model.Association{
			ParentID:     parentID,
			ResourceID:   id,
			SourceFields: []string{profile.ExplicitField},
		})
	}

	return out
}
