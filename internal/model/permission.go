package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Permission — право доступа, сгруппированное по Group.
type Permission struct {
	ID          string `gorm:"primaryKey;type:uuid" json:"id"`
	Name        string `gorm:"not null;index" json:"name"`
	Label       string `gorm:"not null" json:"label"`
	Group       string `gorm:"column:group_name;not null;index" json:"group"`
	Description string `json:"description"`

	IsDeleted bool `gorm:"not null;default:false;index" json:"isDeleted"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// BeforeCreate assigns the identifier.
func (p *Permission) BeforeCreate(*gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
