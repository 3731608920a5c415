package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserRole is drawn from a closed set.
type UserRole string

const (
	RoleUser      UserRole = "user"
	RoleAdmin     UserRole = "admin"
	RoleModerator UserRole = "moderator"
	RoleSeller    UserRole = "seller"
)

// ParseUserRole maps a string onto the closed role set.
func ParseUserRole(s string) (UserRole, bool) {
	switch r := UserRole(strings.ToLower(strings.TrimSpace(s))); r {
	case RoleUser, RoleAdmin, RoleModerator, RoleSeller:
		return r, true
	}
	return "", false
}

// User — пользователь панели. Вход возможен по Username или Email.
type User struct {
	ID       string   `gorm:"primaryKey;type:uuid" json:"id"`
	Username string   `gorm:"uniqueIndex;not null" json:"username"`
	Email    string   `gorm:"uniqueIndex;not null" json:"email"`
	FullName string   `json:"fullName"`
	Password string   `gorm:"not null" json:"-"` // bcrypt hash
	Role     UserRole `gorm:"type:varchar(16);not null;default:user" json:"role"`

	IsDeleted bool `gorm:"not null;default:false;index" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns the identifier on first insert.
func (u *User) BeforeCreate(*gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
