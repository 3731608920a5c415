package repo

import (
	"context"

	"ShopAdmin/internal/model"

	"gorm.io/gorm"
)

// CategoryRepository определяет контракт доступа к категориям.
type CategoryRepository interface {
	Create(ctx context.Context, c *model.Category) error
	GetByID(ctx context.Context, id string) (*model.Category, error)
	List(ctx context.Context) ([]model.Category, error)
	// Children возвращает живые прямые потомки категории.
	Children(ctx context.Context, parentID string) ([]model.Category, error)
	Update(ctx context.Context, c *model.Category) error
	SoftDelete(ctx context.Context, id string) error
}

type categoryRepo struct {
	db *gorm.DB
}

// NewCategoryRepository создаёт реализацию репозитория для Category.
func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepo{db: db}
}

func (r *categoryRepo) Create(ctx context.Context, c *model.Category) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *categoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	var c model.Category
	if err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *categoryRepo) List(ctx context.Context) ([]model.Category, error) {
	var out []model.Category
	err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *categoryRepo) Children(ctx context.Context, parentID string) ([]model.Category, error) {
	var out []model.Category
	err := r.db.WithContext(ctx).
		Where("parent_id = ? AND is_deleted = ?", parentID, false).
		Order("name ASC").
		Find(&out).Error
	return out, err
}

func (r *categoryRepo) Update(ctx context.Context, c *model.Category) error {
	return updateLive(ctx, r.db, c, "name", "slug", "description", "icon", "parent_id")
}

func (r *categoryRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, &model.Category{}, id)
}
