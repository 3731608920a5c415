package service

import (
	"context"
	"errors"
	"fmt"

	"ShopAdmin/internal/model"
	"ShopAdmin/internal/repo"
	"ShopAdmin/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService — вход в панель и чтение пользователей.
type UserService struct {
	users  repo.UserRepository
	engine *validation.Engine
}

func NewUserService(r repo.UserRepository, engine *validation.Engine) *UserService {
	return &UserService{users: r, engine: engine}
}

// Login validates the login candidate and checks the password against the
// stored bcrypt hash. Only admins, moderators and sellers may sign in.
func (s *UserService) Login(ctx context.Context, candidate map[string]any, locale string) (*model.User, error) {
	in, err := s.engine.Login(candidate, locale)
	if err != nil {
		return nil, err
	}
	user, err := s.users.GetUserByIdentifier(ctx, in.Identifier)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	password := ""
	if in.Password != nil {
		password = *in.Password
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	if user.Role == model.RoleUser {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// Get returns a live user.
func (s *UserService) Get(ctx context.Context, id string) (*model.User, error) {
	u, err := s.users.GetByID(ctx, id)
	return u, notFound(err)
}

// List returns live users, optionally only those with the given role. An
// empty role lists everyone.
func (s *UserService) List(ctx context.Context, role string) ([]model.User, error) {
	var want model.UserRole
	if role != "" {
		var ok bool
		if want, ok = model.ParseUserRole(role); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidRole, role)
		}
	}
	users, err := s.users.List(ctx)
	if err != nil || want == "" {
		return users, err
	}
	out := users[:0]
	for _, u := range users {
		if u.Role == want {
			out = append(out, u)
		}
	}
	return out, nil
}

// EnsureAdmin creates the first admin account when the user table is empty.
// It reports whether an account was created.
func (s *UserService) EnsureAdmin(ctx context.Context, username, email, password string) (bool, error) {
	n, err := s.users.Count(ctx)
	if err != nil {
		return false, err
	}
	if n > 0 {
		return false, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}
	_, err = s.users.CreateUser(ctx, &model.User{
		Username: username,
		Email:    email,
		FullName: "Administrator",
		Password: string(hash),
		Role:     model.RoleAdmin,
	})
	if err != nil {
		return false, fmt.Errorf("create admin: %w", err)
	}
	return true, nil
}
