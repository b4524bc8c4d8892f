package config

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// ConnectDatabase opens the GORM connection. DATABASE_URL wins when set,
// otherwise the discrete DB_* variables are assembled into a dsn.
func ConnectDatabase(cfg DatabaseConfig) (*gorm.DB, error) {
	if cfg.URL != "" {
		return gorm.Open(postgres.Open(cfg.URL), &gorm.Config{})
	}

	dsn := fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		cfg.Host, cfg.User, cfg.Password, cfg.Name, cfg.Port,
	)
	return gorm.Open(postgres.Open(dsn), &gorm.Config{})
}
