package service

import (
	"context"

	"ShopAdmin/internal/model"
	"ShopAdmin/internal/repo"

	"github.com/stretchr/testify/mock"
)

// моки repo-интерфейсов для тестов сервиса

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetUserByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	args := m.Called(ctx, identifier)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]model.User, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.User); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

var _ repo.UserRepository = (*mockUserRepo)(nil)

type mockBrandRepo struct{ mock.Mock }

func (m *mockBrandRepo) Create(ctx context.Context, b *model.Brand) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBrandRepo) GetByID(ctx context.Context, id string) (*model.Brand, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Brand); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBrandRepo) List(ctx context.Context) ([]model.Brand, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Brand); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockBrandRepo) Update(ctx context.Context, b *model.Brand) error {
	return m.Called(ctx, b).Error(0)
}
func (m *mockBrandRepo) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.BrandRepository = (*mockBrandRepo)(nil)

type mockCategoryRepo struct{ mock.Mock }

func (m *mockCategoryRepo) Create(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCategoryRepo) GetByID(ctx context.Context, id string) (*model.Category, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) List(ctx context.Context) ([]model.Category, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) Children(ctx context.Context, parentID string) ([]model.Category, error) {
	args := m.Called(ctx, parentID)
	if v, ok := args.Get(0).([]model.Category); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCategoryRepo) Update(ctx context.Context, c *model.Category) error {
	return m.Called(ctx, c).Error(0)
}
func (m *mockCategoryRepo) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.CategoryRepository = (*mockCategoryRepo)(nil)

type mockPermissionRepo struct{ mock.Mock }

func (m *mockPermissionRepo) Create(ctx context.Context, p *model.Permission) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPermissionRepo) GetByID(ctx context.Context, id string) (*model.Permission, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Permission); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPermissionRepo) FindByIDs(ctx context.Context, ids []string) ([]model.Permission, error) {
	args := m.Called(ctx, ids)
	if v, ok := args.Get(0).([]model.Permission); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPermissionRepo) List(ctx context.Context) ([]model.Permission, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Permission); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockPermissionRepo) Update(ctx context.Context, p *model.Permission) error {
	return m.Called(ctx, p).Error(0)
}
func (m *mockPermissionRepo) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.PermissionRepository = (*mockPermissionRepo)(nil)

type mockRoleRepo struct{ mock.Mock }

func (m *mockRoleRepo) Create(ctx context.Context, r *model.Role) error {
	return m.Called(ctx, r).Error(0)
}
func (m *mockRoleRepo) GetByID(ctx context.Context, id string) (*model.Role, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Role); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRoleRepo) List(ctx context.Context) ([]model.Role, error) {
	args := m.Called(ctx)
	if v, ok := args.Get(0).([]model.Role); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockRoleRepo) Update(ctx context.Context, r *model.Role) error {
	return m.Called(ctx, r).Error(0)
}
func (m *mockRoleRepo) SoftDelete(ctx context.Context, id string) error {
	return m.Called(ctx, id).Error(0)
}

var _ repo.RoleRepository = (*mockRoleRepo)(nil)

type mockOrderRepo struct{ mock.Mock }

func (m *mockOrderRepo) Create(ctx context.Context, o *model.Order) error {
	return m.Called(ctx, o).Error(0)
}
func (m *mockOrderRepo) GetByID(ctx context.Context, id string) (*model.Order, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*model.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderRepo) List(ctx context.Context, status model.OrderStatus) ([]model.Order, error) {
	args := m.Called(ctx, status)
	if v, ok := args.Get(0).([]model.Order); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockOrderRepo) UpdateStatus(ctx context.Context, id string, status model.OrderStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

var _ repo.OrderRepository = (*mockOrderRepo)(nil)
