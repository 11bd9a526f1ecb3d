package store

import (
	"context"
	"errors"

	"github.com/emrgen/resourcesync/internal/model"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{
		db: db,
	}
}

var _ Store = (*GormStore)(nil)

type GormStore struct {
	db *gorm.DB
}

func (g *GormStore) ListResourcesByURL(ctx context.Context, urls []string) ([]*model.Resource, error) {
	var resources []*model.Resource
	if len(urls) == 0 {
		return resources, nil
	}

	err := g.db.WithContext(ctx).Where("url IN ?", urls).Find(&resources).Error
	return resources, err
}

func (g *GormStore) ListResourcesByID(ctx context.Context, ids []uint) ([]*model.Resource, error) {
	var resources []*model.Resource
	if len(ids) == 0 {
		return resources, nil
	}

	err := g.db.WithContext(ctx).Where("id IN ?", ids).Find(&resources).Error
	return resources, err
}

func (g *GormStore) GetResourceByURL(ctx context.Context, url string) (*model.Resource, error) {
	var resource model.Resource
	err := g.db.WithContext(ctx).Where("url = ?", url).First(&resource).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrResourceNotFound
	}
	if err != nil {
		return nil, err
	}

	return &resource, nil
}

// CreateResource inserts inside a savepoint so a unique violation leaves an
// enclosing transaction usable.
func (g *GormStore) CreateResource(ctx context.Context, resource *model.Resource) error {
	err := g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(resource).Error
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		logrus.Debugf("resource %s already exists", resource.URL)
		return ErrResourceExists
	}

	return err
}

func (g *GormStore) ListAssociations(ctx context.Context, kind model.ParentKind, parentIDs []uint) ([]model.Association, error) {
	set, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	return set.associations.list(g.db.WithContext(ctx), parentIDs, false)
}

func (g *GormStore) ListAssociationsWithResources(ctx context.Context, kind model.ParentKind, parentIDs []uint) ([]model.Association, error) {
	set, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	return set.associations.list(g.db.WithContext(ctx), parentIDs, true)
}

func (g *GormStore) CreateAssociations(ctx context.Context, kind model.ParentKind, associations []model.Association) error {
	set, err := tablesFor(kind)
	if err != nil {
		return err
	}

	return set.associations.create(g.db.WithContext(ctx), associations)
}

func (g *GormStore) UpdateAssociation(ctx context.Context, kind model.ParentKind, association model.Association) error {
	set, err := tablesFor(kind)
	if err != nil {
		return err
	}

	return set.associations.update(g.db.WithContext(ctx), association)
}

func (g *GormStore) DeleteAssociations(ctx context.Context, kind model.ParentKind, parentID uint, resourceIDs []uint) error {
	set, err := tablesFor(kind)
	if err != nil {
		return err
	}

	return set.associations.delete(g.db.WithContext(ctx), parentID, resourceIDs)
}

func (g *GormStore) GetParent(ctx context.Context, kind model.ParentKind, id uint) (model.Parent, error) {
	set, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	return set.parents.get(g.db.WithContext(ctx), id)
}

func (g *GormStore) CreateParent(ctx context.Context, parent model.Parent) error {
	if _, err := tablesFor(parent.Kind()); err != nil {
		return err
	}

	return g.db.WithContext(ctx).Create(parent).Error
}

func (g *GormStore) ListParentIDs(ctx context.Context, kind model.ParentKind, afterID uint, limit int) ([]uint, error) {
	set, err := tablesFor(kind)
	if err != nil {
		return nil, err
	}

	return set.parents.listIDs(g.db.WithContext(ctx), afterID, limit)
}

func (g *GormStore) Migrate() error {
	return model.Migrate(g.db)
}

func (g *GormStore) Transaction(ctx context.Context, f func(tx Store) error) error {
	return g.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return f(&GormStore{db: tx})
	})
}
