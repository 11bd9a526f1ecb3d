package store

import (
	"context"

	"github.com/emrgen/resourcesync/internal/model"
)

type Store interface {
	ResourceStore
	AssociationStore
	ParentStore
	// Transaction runs f against a store bound to one transaction. Calling
	// Transaction on that store nests a savepoint.
	Transaction(ctx context.Context, f func(tx Store) error) error
	Migrate() error
}

type ResourceStore interface {
	// ListResourcesByURL retrieves the catalog entries for the given urls.
	ListResourcesByURL(ctx context.Context, urls []string) ([]*model.Resource, error)
	// ListResourcesByID retrieves the catalog entries for the given ids.
	ListResourcesByID(ctx context.Context, ids []uint) ([]*model.Resource, error)
	// GetResourceByURL retrieves a catalog entry by url.
	GetResourceByURL(ctx context.Context, url string) (*model.Resource, error)
	// CreateResource inserts a catalog entry. It returns ErrResourceExists
	// when another entry already holds the url.
	CreateResource(ctx context.Context, resource *model.Resource) error
}

type AssociationStore interface {
	// ListAssociations retrieves the associations of the given parents.
	ListAssociations(ctx context.Context, kind model.ParentKind, parentIDs []uint) ([]model.Association, error)
	// ListAssociationsWithResources is ListAssociations with the linked resource loaded.
	ListAssociationsWithResources(ctx context.Context, kind model.ParentKind, parentIDs []uint) ([]model.Association, error)
	// CreateAssociations inserts new associations.
	CreateAssociations(ctx context.Context, kind model.ParentKind, associations []model.Association) error
	// UpdateAssociation rewrites the tags and auto-detected flag of an association.
	UpdateAssociation(ctx context.Context, kind model.ParentKind, association model.Association) error
	// DeleteAssociations unlinks resources from a parent.
	DeleteAssociations(ctx context.Context, kind model.ParentKind, parentID uint, resourceIDs []uint) error
}

type ParentStore interface {
	// GetParent retrieves a parent entity with its associations preloaded.
	GetParent(ctx context.Context, kind model.ParentKind, id uint) (model.Parent, error)
	// CreateParent inserts a parent entity.
	CreateParent(ctx context.Context, parent model.Parent) error
	// ListParentIDs pages through parent ids in ascending order.
	ListParentIDs(ctx context.Context, kind model.ParentKind, afterID uint, limit int) ([]uint, error)
}
