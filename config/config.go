package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port      string
	JWTSecret string
	UploadDir string
	RedisAddr string
	Database  DatabaseConfig

	// LegacyOrderOwnerCheck keeps the historical ownership predicate on
	// GET /api/orders/user/:userId until product owners sign off on the
	// corrected one. See controllers/order.CanViewUserOrders.
	LegacyOrderOwnerCheck bool
}

type DatabaseConfig struct {
	URL      string
	Host     string
	Port     string
	User     string
	Password string
	Name     string
}

var App *Config

// Load reads .env (when present) and the process environment into App.
func Load() {
	viper.SetConfigFile(".env")
	viper.SetConfigType("env")

	if err := viper.ReadInConfig(); err != nil {
		log.Printf("no .env file, falling back to environment variables: %v", err)
	}
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("ORDER_OWNER_CHECK_LEGACY", true)

	App = &Config{
		Port:      viper.GetString("PORT"),
		JWTSecret: viper.GetString("JWT_SECRET"),
		UploadDir: viper.GetString("UPLOAD_DIR"),
		RedisAddr: viper.GetString("REDIS_ADDR"),
		Database: DatabaseConfig{
			URL:      viper.GetString("DATABASE_URL"),
			Host:     viper.GetString("DB_HOST"),
			Port:     viper.GetString("DB_PORT"),
			User:     viper.GetString("DB_USER"),
			Password: viper.GetString("DB_PASSWORD"),
			Name:     viper.GetString("DB_NAME"),
		},
		LegacyOrderOwnerCheck: viper.GetBool("ORDER_OWNER_CHECK_LEGACY"),
	}
}
