package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Role — роль. При чтении Permissions раскрываются в полные записи.
type Role struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Description string `json:"description"`

	Permissions []Permission `gorm:"many2many:role_permissions" json:"permissions"`

	IsDeleted bool `gorm:"not null;default:false;index" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns the identifier.
func (r *Role) BeforeCreate(*gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}

// PermissionIDs returns the ids of the attached permissions.
func (r *Role) PermissionIDs() []string {
	ids := make([]string, 0, len(r.Permissions))
	for _, p := range r.Permissions {
		ids = append(ids, p.ID)
	}
	return ids
}
