package repo

import (
	"context"

	"ShopAdmin/internal/model"

	"gorm.io/gorm"
)

// PermissionRepository определяет контракт доступа к правам.
type PermissionRepository interface {
	Create(ctx context.Context, p *model.Permission) error
	GetByID(ctx context.Context, id string) (*model.Permission, error)
	// FindByIDs возвращает живые права из списка; отсутствующие id просто не попадают в результат.
	FindByIDs(ctx context.Context, ids []string) ([]model.Permission, error)
	List(ctx context.Context) ([]model.Permission, error)
	Update(ctx context.Context, p *model.Permission) error
	SoftDelete(ctx context.Context, id string) error
}

type permissionRepo struct {
	db *gorm.DB
}

// NewPermissionRepository создаёт реализацию репозитория для Permission.
func NewPermissionRepository(db *gorm.DB) PermissionRepository {
	return &permissionRepo{db: db}
}

func (r *permissionRepo) Create(ctx context.Context, p *model.Permission) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *permissionRepo) GetByID(ctx context.Context, id string) (*model.Permission, error) {
	var p model.Permission
	if err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&p).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *permissionRepo) FindByIDs(ctx context.Context, ids []string) ([]model.Permission, error) {
	var out []model.Permission
	if len(ids) == 0 {
		return out, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ? AND is_deleted = ?", ids, false).Find(&out).Error
	return out, err
}

func (r *permissionRepo) List(ctx context.Context) ([]model.Permission, error) {
	var out []model.Permission
	err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Order("group_name ASC, name ASC").Find(&out).Error
	return out, err
}

func (r *permissionRepo) Update(ctx context.Context, p *model.Permission) error {
	return updateLive(ctx, r.db, p, "name", "label", "group_name", "description")
}

func (r *permissionRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, &model.Permission{}, id)
}
