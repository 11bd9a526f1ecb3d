package resource

import mapset "github.com/deckarep/golang-set/v2"

func newFieldSet(fields []string) mapset.Set[string] {
	return mapset.NewThreadUnsafeSet(fields...)
}

// unionFields appends to a the members of b it does not already hold,
// keeping first-seen order.
func unionFields(a, b []string) []string {
	seen := newFieldSet(a)
	out := append(make([]string, 0, len(a)+len(b)), a...)
	for _, field := range b {
		if seen.Add(field) {
			out = append(out, field)
		}
	}

	return out
}

// keepFields returns the members of fields that are in keep, in the order of fields.
func keepFields(fields []string, keep mapset.Set[string]) []string {
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		if keep.ContainsOne(field) {
			out = append(out, field)
		}
	}

	return out
}
