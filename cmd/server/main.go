package main

import (
	"ShopAdmin/internal/config"
	"ShopAdmin/internal/handlers"
	"ShopAdmin/internal/middleware"
	"ShopAdmin/internal/repo"
	"ShopAdmin/internal/service"
	"ShopAdmin/internal/validation"
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	engine := validation.NewEngine(nil)

	userService := service.NewUserService(repo.NewUserRepository(gormDB), engine)
	catalogService := service.NewCatalogService(repo.NewBrandRepository(gormDB), repo.NewCategoryRepository(gormDB), engine, sugar)
	accessService := service.NewAccessService(repo.NewPermissionRepository(gormDB), repo.NewRoleRepository(gormDB), engine, sugar)
	orderService := service.NewOrderService(repo.NewOrderRepository(gormDB), sugar)

	if cfg.AdminIdentifier != "" && cfg.AdminPassword != "" {
		created, err := userService.EnsureAdmin(ctx, cfg.AdminIdentifier, cfg.AdminEmail, cfg.AdminPassword)
		if err != nil {
			sugar.Fatalw("failed to seed admin", "error", err)
		}
		if created {
			sugar.Infow("admin account created", "username", cfg.AdminIdentifier)
		}
	}

	h := handlers.NewHandler(handlers.Services{
		Users:   userService,
		Catalog: catalogService,
		Access:  accessService,
		Orders:  orderService,
		Engine:  engine,
	}, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DefaultLocale", cfg.DefaultLocale,
		"TokenTTL", cfg.TokenTTL,
	)

	srv := &http.Server{Addr: addr, Handler: h.Router}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		sugar.Fatalw("Server failed", "error", err)
	}
	sugar.Infow("Server stopped")
}
