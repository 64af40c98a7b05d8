package main

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/agrimarket/marketplace-backend/internal/config"
	"github.com/agrimarket/marketplace-backend/internal/db"
	"github.com/agrimarket/marketplace-backend/internal/model"
	"github.com/joho/godotenv"
	"gorm.io/gorm"
)

// Seeds the root admin account and the platform config row. Safe to run
// repeatedly; existing rows are left alone.
func main() {
	if err := run(); err != nil {
		log.Fatalf("seed failed: %v", err)
	}
}

func run() error {
	ctx := context.Background()
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	gdb, err := db.Connect(cfg)
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	if err := gdb.AutoMigrate(
		&model.User{},
		&model.Product{},
		&model.Payment{},
		&model.Dispute{},
		&model.GraduateProfile{},
		&model.PlatformConfig{},
		&model.AuditLog{},
	); err != nil {
		return fmt.Errorf("auto migrate: %w", err)
	}

	if err := seedAdmin(ctx, gdb, cfg); err != nil {
		return err
	}
	return seedConfig(ctx, gdb)
}

func seedAdmin(ctx context.Context, gdb *gorm.DB, cfg *config.Config) error {
	var existing model.User
	err := gdb.WithContext(ctx).
		Where("email = ?", cfg.SeedAdminEmail).
		First(&existing).Error
	if err == nil {
		log.Printf("admin %s already exists; skipping", cfg.SeedAdminEmail)
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup admin: %w", err)
	}

	admin := model.User{
		Name:     "System Administrator",
		Email:    cfg.SeedAdminEmail,
		Password: cfg.SeedAdminPassword,
		Role:     model.RoleAdmin,
	}
	if err := gdb.WithContext(ctx).Create(&admin).Error; err != nil {
		return fmt.Errorf("create admin: %w", err)
	}
	log.Printf("seeded admin account %s (id=%d)", admin.Email, admin.ID)
	return nil
}

func seedConfig(ctx context.Context, gdb *gorm.DB) error {
	var existing model.PlatformConfig
	err := gdb.WithContext(ctx).First(&existing).Error
	if err == nil {
		log.Printf("platform config already exists; skipping")
		return nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("lookup config: %w", err)
	}

	row := model.DefaultPlatformConfig()
	if err := gdb.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("create config: %w", err)
	}
	log.Printf("seeded platform config (payment number %s)", row.PaymentNumber)
	return nil
}
