package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	TouristDBHost    string
	TouristDBPort    string
	RequestCacheHost string
	RequestCachePort string
	JaegerAddress    string
	ServiceName      string
	LogFile          string
	CasbinModel      string
	CasbinPolicy     string
	SMTPHost         string
	SMTPPort         int
	SMTPUser         string
	SMTPPass         string
	SMTPFrom         string
}

func NewConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Port:             getEnv("PORT", "8000"),
		TouristDBHost:    getEnv("TOURIST_DB_HOST", "localhost"),
		TouristDBPort:    getEnv("TOURIST_DB_PORT", "27017"),
		RequestCacheHost: getEnv("REQUEST_CACHE_HOST", "localhost"),
		RequestCachePort: getEnv("REQUEST_CACHE_PORT", "6379"),
		JaegerAddress:    os.Getenv("JAEGER_ADDRESS"),
		ServiceName:      getEnv("SERVICE_NAME", "tourist-guide-service"),
		LogFile:          getEnv("LOG_FILE", "logs/logfile.log"),
		CasbinModel:      getEnv("CASBIN_MODEL", "./rbac_model.conf"),
		CasbinPolicy:     getEnv("CASBIN_POLICY", "./policy.csv"),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUser:         os.Getenv("SMTP_AUTH_MAIL"),
		SMTPPass:         os.Getenv("SMTP_AUTH_PASSWORD"),
		SMTPFrom:         getEnv("SMTP_FROM", "noreply@touristguide.com"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}
