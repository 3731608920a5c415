package repo

import (
	"context"

	"ShopAdmin/internal/model"

	"gorm.io/gorm"
)

// RoleRepository определяет контракт доступа к ролям. Роли читаются
// вместе с живыми правами.
type RoleRepository interface {
	Create(ctx context.Context, role *model.Role) error
	GetByID(ctx context.Context, id string) (*model.Role, error)
	List(ctx context.Context) ([]model.Role, error)
	// Update перезаписывает поля роли и заменяет набор прав на role.Permissions.
	Update(ctx context.Context, role *model.Role) error
	SoftDelete(ctx context.Context, id string) error
}

type roleRepo struct {
	db *gorm.DB
}

// NewRoleRepository создаёт реализацию репозитория для Role.
func NewRoleRepository(db *gorm.DB) RoleRepository {
	return &roleRepo{db: db}
}

func (r *roleRepo) withPermissions(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Preload("Permissions", "is_deleted = ?", false)
}

func (r *roleRepo) Create(ctx context.Context, role *model.Role) error {
	// права уже существуют — пишем только связи role_permissions
	return r.db.WithContext(ctx).Omit("Permissions.*").Create(role).Error
}

func (r *roleRepo) GetByID(ctx context.Context, id string) (*model.Role, error) {
	var role model.Role
	if err := r.withPermissions(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *roleRepo) List(ctx context.Context) ([]model.Role, error) {
	var out []model.Role
	err := r.withPermissions(ctx).Where("is_deleted = ?", false).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *roleRepo) Update(ctx context.Context, role *model.Role) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := updateLive(ctx, tx, role, "name", "description"); err != nil {
			return err
		}
		return tx.Model(role).Omit("Permissions.*").Association("Permissions").Replace(role.Permissions)
	})
}

func (r *roleRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, &model.Role{}, id)
}
