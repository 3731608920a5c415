package service

import (
	"context"
	"fmt"
	"sort"

	"ShopAdmin/internal/model"
	"ShopAdmin/internal/repo"
	"ShopAdmin/internal/validation"

	"go.uber.org/zap"
)

// AccessService управляет правами и ролями.
type AccessService struct {
	permissions repo.PermissionRepository
	roles       repo.RoleRepository
	engine      *validation.Engine
	logger      *zap.SugaredLogger
}

func NewAccessService(p repo.PermissionRepository, r repo.RoleRepository, engine *validation.Engine, logger *zap.SugaredLogger) *AccessService {
	return &AccessService{permissions: p, roles: r, engine: engine, logger: logger}
}

// ListPermissions returns live permissions ordered by group then name.
func (s *AccessService) ListPermissions(ctx context.Context) ([]model.Permission, error) {
	return s.permissions.List(ctx)
}

// CreatePermission validates the candidate and stores a new permission.
func (s *AccessService) CreatePermission(ctx context.Context, candidate map[string]any, locale string) (*model.Permission, error) {
	in, err := s.engine.Permission(candidate, locale)
	if err != nil {
		return nil, err
	}
	p := &model.Permission{}
	applyPermission(p, in)
	if err := s.permissions.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create permission: %w", err)
	}
	s.logger.Infow("permission created", "id", p.ID, "name", p.Name, "group", p.Group)
	return p, nil
}

// UpdatePermission validates the candidate and overwrites the permission.
func (s *AccessService) UpdatePermission(ctx context.Context, id string, candidate map[string]any, locale string) (*model.Permission, error) {
	in, err := s.engine.Permission(candidate, locale)
	if err != nil {
		return nil, err
	}
	p, err := s.permissions.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	applyPermission(p, in)
	if err := s.permissions.Update(ctx, p); err != nil {
		return nil, notFound(err)
	}
	return p, nil
}

// DeletePermission soft-deletes a permission. Roles stop seeing it on read.
func (s *AccessService) DeletePermission(ctx context.Context, id string) error {
	return notFound(s.permissions.SoftDelete(ctx, id))
}

func applyPermission(p *model.Permission, in validation.PermissionInput) {
	p.Name = in.Name
	p.Label = in.Label
	p.Group = in.Group
	p.Description = deref(in.Description)
}

// ListRoles returns live roles with their permissions.
func (s *AccessService) ListRoles(ctx context.Context) ([]model.Role, error) {
	return s.roles.List(ctx)
}

// GetRole returns a live role with its permissions.
func (s *AccessService) GetRole(ctx context.Context, id string) (*model.Role, error) {
	r, err := s.roles.GetByID(ctx, id)
	return r, notFound(err)
}

// CreateRole validates the candidate, resolves every permission reference
// and stores the role.
func (s *AccessService) CreateRole(ctx context.Context, candidate map[string]any, locale string) (*model.Role, error) {
	in, err := s.engine.Role(candidate, locale)
	if err != nil {
		return nil, err
	}
	perms, err := s.resolvePermissions(ctx, in.Permissions)
	if err != nil {
		return nil, err
	}
	role := &model.Role{Name: in.Name, Description: deref(in.Description), Permissions: perms}
	if err := s.roles.Create(ctx, role); err != nil {
		return nil, fmt.Errorf("create role: %w", err)
	}
	s.logger.Infow("role created", "id", role.ID, "permissions", role.PermissionIDs())
	return role, nil
}

// UpdateRole validates the candidate and replaces the role fields and
// permission set.
func (s *AccessService) UpdateRole(ctx context.Context, id string, candidate map[string]any, locale string) (*model.Role, error) {
	in, err := s.engine.Role(candidate, locale)
	if err != nil {
		return nil, err
	}
	role, err := s.roles.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	perms, err := s.resolvePermissions(ctx, in.Permissions)
	if err != nil {
		return nil, err
	}
	role.Name = in.Name
	role.Description = deref(in.Description)
	role.Permissions = perms
	if err := s.roles.Update(ctx, role); err != nil {
		return nil, notFound(err)
	}
	s.logger.Infow("role updated", "id", role.ID, "permissions", role.PermissionIDs())
	return role, nil
}

// DeleteRole soft-deletes a role.
func (s *AccessService) DeleteRole(ctx context.Context, id string) error {
	return notFound(s.roles.SoftDelete(ctx, id))
}

// resolvePermissions loads the referenced permissions. Duplicate ids collapse;
// any id without a live permission fails with ErrUnknownPermission.
func (s *AccessService) resolvePermissions(ctx context.Context, ids []string) ([]model.Permission, error) {
	unique := make([]string, 0, len(ids))
	seen := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		unique = append(unique, id)
	}
	found, err := s.permissions.FindByIDs(ctx, unique)
	if err != nil {
		return nil, err
	}
	if len(found) == len(unique) {
		return found, nil
	}
	for _, p := range found {
		delete(seen, p.ID)
	}
	missing := make([]string, 0, len(seen))
	for id := range seen {
		missing = append(missing, id)
	}
	sort.Strings(missing)
	return nil, &UnknownPermissionsError{IDs: missing}
}
