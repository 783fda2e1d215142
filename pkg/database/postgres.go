package database

import (
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"github.com/suryaprakash0010/InfantCareCompass/pkg/config"
)

// NewPostgresConnection opens the application database.
func NewPostgresConnection(cfg *config.Config) (*gorm.DB, error) {
	return gorm.Open(postgres.Open(cfg.DatabaseDSN), &gorm.Config{})
}
