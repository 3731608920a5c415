package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Cart — корзина пользователя.
type Cart struct {
	ID     string     `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string     `gorm:"type:uuid;not null;index" json:"userId"`
	Items  []CartItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// CartItem is one {productId, quantity} line of a cart.
type CartItem struct {
	ID        uint   `gorm:"primaryKey" json:"-"`
	CartID    string `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string `gorm:"not null" json:"productId"`
	Quantity  int    `gorm:"not null" json:"quantity"`
}

// BeforeCreate assigns the identifier on first insert.
func (c *Cart) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}

// Quantity returns the number of units across all lines.
func (c *Cart) Quantity() int {
	n := 0
	for _, it := range c.Items {
		n += it.Quantity
	}
	return n
}
