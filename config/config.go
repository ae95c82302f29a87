package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/abreai/abreai-api/utils"
)

// Config holds all configuration for the application
type Config struct {
	Port          string
	Env           string
	JWTSecret     string
	SessionSecret string
	DataDir       string
	LogsDir       string
	WhatsAppPhone string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
}

// LoadConfig loads configuration from the environment. A .env file is
// honored when present but not required.
func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		utils.LogInfo("No .env file loaded: %v", err)
	}

	cfg := &Config{
		Port:          os.Getenv("PORT"),
		Env:           os.Getenv("ENV"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		SessionSecret: os.Getenv("SESSION_SECRET"),
		DataDir:       os.Getenv("DATA_DIR"),
		LogsDir:       os.Getenv("LOGS_DIR"),
		WhatsAppPhone: os.Getenv("WHATSAPP_PHONE"),
		DBHost:        os.Getenv("DB_HOST"),
		DBPort:        os.Getenv("DB_PORT"),
		DBUser:        os.Getenv("DB_USER"),
		DBPassword:    os.Getenv("DB_PASSWORD"),
		DBName:        os.Getenv("DB_NAME"),
	}

	if cfg.Port == "" {
		cfg.Port = utils.DefaultPort
	}
	if cfg.DataDir == "" {
		cfg.DataDir = "data"
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = "abreai-dev-session-secret"
	}
	if cfg.WhatsAppPhone == "" {
		cfg.WhatsAppPhone = "5511999999999"
	}
	return cfg
}

// UsePostgres reports whether the key-value state should live in Postgres
// instead of the data directory.
func (c *Config) UsePostgres() bool {
	return c.DBHost != ""
}
