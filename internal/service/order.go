package service

import (
	"context"
	"fmt"

	"ShopAdmin/internal/model"
	"ShopAdmin/internal/repo"

	"go.uber.org/zap"
)

// OrderService — просмотр заказов и смена статуса.
type OrderService struct {
	orders repo.OrderRepository
	logger *zap.SugaredLogger
}

func NewOrderService(r repo.OrderRepository, logger *zap.SugaredLogger) *OrderService {
	return &OrderService{orders: r, logger: logger}
}

// List returns orders, optionally filtered by status. An empty status lists
// every order.
func (s *OrderService) List(ctx context.Context, status string) ([]model.Order, error) {
	var st model.OrderStatus
	if status != "" {
		var ok bool
		if st, ok = model.ParseOrderStatus(status); !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
		}
	}
	return s.orders.List(ctx, st)
}

// Get returns one order with its items.
func (s *OrderService) Get(ctx context.Context, id string) (*model.Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	return o, notFound(err)
}

// UpdateStatus moves an order to a status from the closed set. Delivered and
// cancelled orders are final.
func (s *OrderService) UpdateStatus(ctx context.Context, id, status string) (*model.Order, error) {
	st, ok := model.ParseOrderStatus(status)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err)
	}
	if o.Status == model.OrderDelivered || o.Status == model.OrderCancelled {
		return nil, ErrOrderClosed
	}
	if err := s.orders.UpdateStatus(ctx, id, st); err != nil {
		return nil, notFound(err)
	}
	s.logger.Infow("order status changed", "id", id, "from", o.Status, "to", st)
	o.Status = st
	return o, nil
}
