package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ShopAdmin/internal/config"
	"ShopAdmin/internal/handlers"
	"ShopAdmin/internal/middleware"
	"ShopAdmin/internal/repo"
	"ShopAdmin/internal/service"
	"ShopAdmin/internal/validation"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type testEnv struct {
	router http.Handler
	cfg    *config.Config
	db     *gorm.DB
	users  *service.UserService
}

// newTestEnv собирает роутер поверх отдельной in-memory SQLite.
func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db, err := repo.InitDB("file:" + uuid.NewString() + "?mode=memory&cache=shared")
	require.NoError(t, err)
	sqlDB, _ := db.DB()
	t.Cleanup(func() { _ = sqlDB.Close() })

	cfg := &config.Config{AuthSecret: "test-secret", TokenTTL: time.Hour, DefaultLocale: "en"}
	logger := zap.NewNop().Sugar()
	engine := validation.NewEngine(nil)

	users := service.NewUserService(repo.NewUserRepository(db), engine)
	svc := handlers.Services{
		Users:   users,
		Catalog: service.NewCatalogService(repo.NewBrandRepository(db), repo.NewCategoryRepository(db), engine, logger),
		Access:  service.NewAccessService(repo.NewPermissionRepository(db), repo.NewRoleRepository(db), engine, logger),
		Orders:  service.NewOrderService(repo.NewOrderRepository(db), logger),
		Engine:  engine,
	}
	h := handlers.NewHandler(svc, logger, cfg)
	return &testEnv{router: h.Router, cfg: cfg, db: db, users: users}
}

// seedAdmin создаёт администратора admin/secret и возвращает его id.
func (e *testEnv) seedAdmin(t *testing.T) string {
	t.Helper()
	created, err := e.users.EnsureAdmin(context.Background(), "admin", "admin@shop.local", "secret")
	require.NoError(t, err)
	require.True(t, created)
	u, err := repo.NewUserRepository(e.db).GetUserByIdentifier(context.Background(), "admin")
	require.NoError(t, err)
	return u.ID
}

// do выполняет запрос; userID != "" добавляет auth cookie.
func (e *testEnv) do(t *testing.T, method, path string, body any, userID string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if userID != "" {
		rr := httptest.NewRecorder()
		require.NoError(t, middleware.SetLoginCookie(rr, userID, e.cfg.AuthSecret))
		for _, c := range rr.Result().Cookies() {
			req.AddCookie(c)
		}
	}
	rr := httptest.NewRecorder()
	e.router.ServeHTTP(rr, req)
	return rr
}

func decode[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), rr.Body.String())
	return v
}

type errorBody struct {
	Errors map[string][]string `json:"errors"`
}
