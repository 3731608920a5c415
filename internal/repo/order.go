package repo

import (
	"context"

	"ShopAdmin/internal/model"

	"gorm.io/gorm"
)

// OrderRepository определяет контракт доступа к заказам.
type OrderRepository interface {
	Create(ctx context.Context, o *model.Order) error
	GetByID(ctx context.Context, id string) (*model.Order, error)
	// List возвращает заказы, новые первыми. Пустой status — без фильтра.
	List(ctx context.Context, status model.OrderStatus) ([]model.Order, error)
	UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error
}

type orderRepo struct {
	db *gorm.DB
}

// NewOrderRepository создаёт реализацию репозитория для Order.
func NewOrderRepository(db *gorm.DB) OrderRepository {
	return &orderRepo{db: db}
}

func (r *orderRepo) Create(ctx context.Context, o *model.Order) error {
	return r.db.WithContext(ctx).Create(o).Error
}

func (r *orderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	if err := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&o).Error; err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *orderRepo) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	q := r.db.WithContext(ctx).Preload("Items").Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	var out []model.Order
	err := q.Find(&out).Error
	return out, err
}

func (r *orderRepo) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	tx := r.db.WithContext(ctx).Model(&model.Order{}).Where("id = ?", id).Update("status", status)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
