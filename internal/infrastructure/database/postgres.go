package database

import (
	"fmt"

	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/config"
	"github.com/mattherndon/Pet-Health-Monitoring-App-8869/internal/domain/entity"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func NewPostgresConnection(cfg config.DBConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	// The registry rewrites one row per mutation, a small pool is plenty
	sqlDB.SetMaxIdleConns(2)
	sqlDB.SetMaxOpenConns(10)

	if err := db.AutoMigrate(&entity.StorageSlot{}); err != nil {
		return nil, fmt.Errorf("failed to migrate storage slots: %w", err)
	}

	logrus.Info("Successfully connected to PostgreSQL database")

	return db, nil
}
