package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Brand — серверная модель бренда.
type Brand struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string `gorm:"not null" json:"name"`
	Slug        string `gorm:"not null;index" json:"slug"`
	Description string `json:"description"`
	Logo        string `json:"logo"`
	Website     string `json:"website"`
	Email       string `json:"email"`

	IsDeleted bool `gorm:"not null;default:false;index" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns the identifier on first insert.
func (b *Brand) BeforeCreate(*gorm.DB) error {
	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	return nil
}
