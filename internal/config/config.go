package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDSN       string
	HTTPPort    string
	Environment string
	CORSOrigins []string
}

func Load() (*Config, error) {
	// Пытаемся загрузить .env файл (игнорируем ошибку, если файла нет)
	if err := godotenv.Load(".env"); err != nil {
		log.Println("⚠️  No .env file found, using environment variables")
	} else {
		log.Println("✅ Loaded configuration from .env file")
	}

	cfg := &Config{
		DBDSN:       os.Getenv("DB_DSN"),
		HTTPPort:    os.Getenv("HTTP_PORT"),
		Environment: os.Getenv("ENV"),
	}

	// Дефолтные значения
	if cfg.HTTPPort == "" {
		cfg.HTTPPort = "3000"
	}
	if cfg.Environment == "" {
		cfg.Environment = "development"
	}

	// CORS_ORIGINS - список через запятую; по умолчанию открыто для SPA
	origins := os.Getenv("CORS_ORIGINS")
	if origins == "" {
		cfg.CORSOrigins = []string{"*"}
	} else {
		for _, origin := range strings.Split(origins, ",") {
			cfg.CORSOrigins = append(cfg.CORSOrigins, strings.TrimSpace(origin))
		}
	}

	// Проверяем обязательные поля
	if cfg.DBDSN == "" {
		return nil, fmt.Errorf("DB_DSN is required but not set")
	}

	return cfg, nil
}
