package handlers_test

import (
	"context"
	"net/http"
	"testing"

	"ShopAdmin/internal/model"
	"ShopAdmin/internal/repo"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrders_StatusFlow(t *testing.T) {
	env := newTestEnv(t)
	uid := env.seedAdmin(t)

	o := &model.Order{UserID: uid, Items: []model.OrderItem{{ProductID: "p1", Quantity: 2, Price: 10}}}
	require.NoError(t, repo.NewOrderRepository(env.db).Create(context.Background(), o))

	rr := env.do(t, http.MethodGet, "/api/orders?status=pending", nil, uid)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode[[]model.Order](t, rr)
	require.Len(t, list, 1)
	assert.Equal(t, 20.0, list[0].Total)

	rr = env.do(t, http.MethodGet, "/api/orders?status=lost", nil, uid)
	assert.Equal(t, http.StatusUnprocessableEntity, rr.Code)

	rr = env.do(t, http.MethodPatch, "/api/orders/"+o.ID+"/status?lang=vi", map[string]any{"status": "teleported"}, uid)
	require.Equal(t, http.StatusUnprocessableEntity, rr.Code)
	assert.Equal(t, []string{"Trạng thái đơn hàng không hợp lệ"}, decode[errorBody](t, rr).Errors["status"])

	rr = env.do(t, http.MethodPatch, "/api/orders/"+o.ID+"/status", map[string]any{"status": "delivered"}, uid)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	assert.Equal(t, model.OrderDelivered, decode[model.Order](t, rr).Status)

	rr = env.do(t, http.MethodPatch, "/api/orders/"+o.ID+"/status", map[string]any{"status": "pending"}, uid)
	assert.Equal(t, http.StatusConflict, rr.Code)

	rr = env.do(t, http.MethodPatch, "/api/orders/nope/status", map[string]any{"status": "pending"}, uid)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
