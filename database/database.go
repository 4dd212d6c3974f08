package database

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"timesheet/config"
	"timesheet/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to Postgres, migrates the schema and seeds the first admin.
func Open(ctx context.Context, cfg *config.Config, log *slog.Logger) (*gorm.DB, error) {
	logLevel := logger.Warn
	if !cfg.IsProd() {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("database handle: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.DBMaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.DBMaxIdleConns)

	if err := Migrate(db); err != nil {
		return nil, err
	}

	if err := seedDefaultAdmin(ctx, db, cfg.AdminEmail, cfg.AdminPassword, log); err != nil {
		return nil, err
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Project{}, &models.User{}, &models.TimeEntry{}); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}
	return nil
}

// seedDefaultAdmin creates an admin account when the database has none, so a
// fresh install can log in and create everyone else.
func seedDefaultAdmin(ctx context.Context, db *gorm.DB, email, password string, log *slog.Logger) error {
	var count int64
	if err := db.WithContext(ctx).Model(&models.User{}).Where("is_admin = ?", true).Count(&count).Error; err != nil {
		return fmt.Errorf("count admins: %w", err)
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := models.User{
		Email:        strings.ToLower(strings.TrimSpace(email)),
		Name:         "Administrator",
		PasswordHash: string(hashedPassword),
		IsAdmin:      true,
	}

	if err := db.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}

	log.Info("default admin user created", "email", admin.Email)
	return nil
}

// Ping checks the connection pool; used by the health endpoint.
func Ping(ctx context.Context, db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}
