package repo

import (
	"context"

	"ShopAdmin/internal/model"

	"gorm.io/gorm"
)

// BrandRepository определяет контракт доступа к брендам для слоя сервиса.
type BrandRepository interface {
	Create(ctx context.Context, b *model.Brand) error
	// GetByID возвращает живую (не удалённую) запись или gorm.ErrRecordNotFound.
	GetByID(ctx context.Context, id string) (*model.Brand, error)
	List(ctx context.Context) ([]model.Brand, error)
	Update(ctx context.Context, b *model.Brand) error
	SoftDelete(ctx context.Context, id string) error
}

type brandRepo struct {
	db *gorm.DB
}

// NewBrandRepository создаёт реализацию репозитория для Brand.
func NewBrandRepository(db *gorm.DB) BrandRepository {
	return &brandRepo{db: db}
}

func (r *brandRepo) Create(ctx context.Context, b *model.Brand) error {
	return r.db.WithContext(ctx).Create(b).Error
}

func (r *brandRepo) GetByID(ctx context.Context, id string) (*model.Brand, error) {
	var b model.Brand
	if err := r.db.WithContext(ctx).Where("id = ? AND is_deleted = ?", id, false).First(&b).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *brandRepo) List(ctx context.Context) ([]model.Brand, error) {
	var out []model.Brand
	err := r.db.WithContext(ctx).Where("is_deleted = ?", false).Order("name ASC").Find(&out).Error
	return out, err
}

func (r *brandRepo) Update(ctx context.Context, b *model.Brand) error {
	return updateLive(ctx, r.db, b, "name", "slug", "description", "logo", "website", "email")
}

func (r *brandRepo) SoftDelete(ctx context.Context, id string) error {
	return softDelete(ctx, r.db, &model.Brand{}, id)
}
