package model

// FieldText is the current text of one tracked field of a parent.
type FieldText struct {
	Field string
	Text  string
}

// Parent is an entity whose tracked text fields are reconciled against its
// association table.
type Parent interface {
	Kind() ParentKind
	Key() uint
	// TrackedText returns the free text fields scanned for urls, in a fixed order.
	TrackedText() []FieldText
	// LoadedAssociations returns the associations preloaded with the entity, if any.
	LoadedAssociations() ([]Association, bool)
	// ClearLoadedAssociations drops the preloaded associations once they no
	// longer reflect the store.
	ClearLoadedAssociations()
}

func associationsOf[T any, PT interface {
	*T
	AssociationRow
}](rows []T) ([]Association, bool) {
	if rows == nil {
		return nil, false
	}

	out := make([]Association, 0, len(rows))
	for i := range rows {
		out = append(out, PT(&rows[i]).ToAssociation())
	}

	return out, true
}
