package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Category — серверная модель категории, ParentID ссылается на другую категорию.
type Category struct {
	ID          string  `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"not null;index" json:"slug"`
	Description string  `json:"description"`
	Icon        string  `json:"icon"`
	ParentID    *string `gorm:"type:uuid;index" json:"parentId,omitempty"`

	IsDeleted bool `gorm:"not null;default:false;index" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns the identifier.
func (c *Category) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
