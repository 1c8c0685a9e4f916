package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds application configuration loaded from environment.
type Config struct {
	Server  ServerConfig
	Email   EmailConfig
	Catalog CatalogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	CORSAllowedOrigins string // comma-separated, or "*" for all
}

// EmailConfig holds credentials for the templated transactional-email API
// (service ID + template IDs + public key).
type EmailConfig struct {
	BaseURL                string
	ServiceID              string
	SupportTemplateID      string
	ConfirmationTemplateID string
	PublicKey              string
	SupportAddress         string // fixed operations mailbox, also the reply-to on confirmations
	BrandName              string // sender name on confirmation emails
	TimeoutSeconds         int
}

// CatalogConfig holds event catalog settings.
type CatalogConfig struct {
	Path string // optional YAML file; empty = built-in default catalog
}

// Load reads configuration from environment, with optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			ReadTimeout:        getEnvInt("READ_TIMEOUT_SEC", 30),
			WriteTimeout:       getEnvInt("WRITE_TIMEOUT_SEC", 30),
			CORSAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "*"),
		},
		Email: EmailConfig{
			BaseURL:                getEnv("EMAIL_API_BASE_URL", "https://api.emailjs.com"),
			ServiceID:              getEnv("EMAIL_SERVICE_ID", "service_lx7m2wb"),
			SupportTemplateID:      getEnv("EMAIL_SUPPORT_TEMPLATE_ID", "template_knkhvfb"),
			ConfirmationTemplateID: getEnv("EMAIL_CONFIRMATION_TEMPLATE_ID", "template_zs9kpwf"),
			PublicKey:              getEnv("EMAIL_PUBLIC_KEY", ""),
			SupportAddress:         getEnv("EMAIL_SUPPORT_ADDRESS", "support@stevenbartlett.info"),
			BrandName:              getEnv("EMAIL_BRAND_NAME", "Steven Bartlett Team"),
			TimeoutSeconds:         getEnvInt("EMAIL_TIMEOUT_SEC", 15),
		},
		Catalog: CatalogConfig{
			Path: getEnv("CATALOG_PATH", ""),
		},
	}
	return cfg, nil
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
