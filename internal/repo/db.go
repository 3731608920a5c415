package repo

import (
	"context"
	"fmt"
	"strings"

	"ShopAdmin/internal/model"

	"gorm.io/driver/postgres"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	_ "modernc.org/sqlite"
)

// InitDB открывает БД и прогоняет миграции. DSN вида postgres://... или
// "host=..." уходит в PostgreSQL, всё остальное считается путём SQLite
// (драйвер modernc.org/sqlite, без cgo).
func InitDB(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(dialectorFor(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

func dialectorFor(dsn string) gorm.Dialector {
	if strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://") || strings.Contains(dsn, "host=") {
		return postgres.Open(dsn)
	}
	if dsn == "" {
		dsn = "file:shopadmin.db"
	}
	return gormsqlite.Dialector{DriverName: "sqlite", DSN: dsn}
}

// Migrate создаёт/обновляет таблицы всех серверных моделей.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&model.Brand{},
		&model.Category{},
		&model.Permission{},
		&model.Role{},
		&model.User{},
		&model.Cart{},
		&model.CartItem{},
		&model.Order{},
		&model.OrderItem{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}
	return nil
}

// softDelete marks a live row of the given model as deleted.
// Returns gorm.ErrRecordNotFound when no live row has that id.
func softDelete(ctx context.Context, db *gorm.DB, m any, id string) error {
	tx := db.WithContext(ctx).Model(m).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// updateLive writes the selected columns of m (zero values included) to its
// live row. Returns gorm.ErrRecordNotFound when the row is missing or deleted.
func updateLive(ctx context.Context, db *gorm.DB, m any, columns ...string) error {
	tx := db.WithContext(ctx).Model(m).
		Where("is_deleted = ?", false).
		Select(columns).
		Updates(m)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
