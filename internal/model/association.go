package model

// Association is the table independent form of a parent to resource link.
// ParentID holds whichever foreign key the owning table uses.
type Association struct {
	ParentID       uint
	ResourceID     uint
	SourceFields   []string
	IsAutoDetected bool
	Resource       *Resource
}

// HasSourceField reports whether field is one of the association's tags.
func (a Association) HasSourceField(field string) bool {
	for _, f := range a.SourceFields {
		if f == field {
			return true
		}
	}

	return false
}

// AssociationRow is implemented by the per-kind association tables so they can
// be converted to and from Association at the storage boundary.
type AssociationRow interface {
	TableName() string
	// ParentColumn is the name of the column holding the parent id.
	ParentColumn() string
	ToAssociation() Association
	SetAssociation(a Association)
}
