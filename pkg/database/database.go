package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"tasktracker-backend/pkg/config"
)

// NewPostgresConnection opens the GORM connection to the task database
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseURL), &gorm.Config{})
}
