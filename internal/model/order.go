package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrderStatus is drawn from a closed set.
type OrderStatus string

const (
	OrderPending    OrderStatus = "pending"
	OrderProcessing OrderStatus = "processing"
	OrderShipped    OrderStatus = "shipped"
	OrderDelivered  OrderStatus = "delivered"
	OrderCancelled  OrderStatus = "cancelled"
)

// OrderStatuses lists the closed status set in lifecycle order.
func OrderStatuses() []OrderStatus {
	return []OrderStatus{OrderPending, OrderProcessing, OrderShipped, OrderDelivered, OrderCancelled}
}

// ParseOrderStatus maps a string onto the closed status set.
func ParseOrderStatus(s string) (OrderStatus, bool) {
	st := OrderStatus(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range OrderStatuses() {
		if st == known {
			return st, true
		}
	}
	return "", false
}

// Order — заказ. Total вычисляется из позиций при создании.
type Order struct {
	ID     string      `gorm:"primaryKey;type:uuid" json:"id"`
	UserID string      `gorm:"type:uuid;not null;index" json:"userId"`
	Items  []OrderItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE" json:"items"`
	Status OrderStatus `gorm:"type:varchar(16);not null;default:pending;index" json:"status"`
	Total  float64     `gorm:"not null;default:0" json:"total"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updatedAt"`
}

// OrderItem is one {productId, quantity, price} line of an order.
type OrderItem struct {
	ID        uint    `gorm:"primaryKey" json:"-"`
	OrderID   string  `gorm:"type:uuid;not null;index" json:"-"`
	ProductID string  `gorm:"not null" json:"productId"`
	Quantity  int     `gorm:"not null" json:"quantity"`
	Price     float64 `gorm:"not null" json:"price"`
}

// RecalculateTotal sets Total to the sum of price*quantity over all items.
func (o *Order) RecalculateTotal() {
	var total float64
	for _, it := range o.Items {
		total += it.Price * float64(it.Quantity)
	}
	o.Total = total
}

// BeforeCreate assigns the identifier, defaults the status and computes Total.
func (o *Order) BeforeCreate(*gorm.DB) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	if o.Status == "" {
		o.Status = OrderPending
	}
	o.RecalculateTotal()
	return nil
}
