package config

import (
	"os"
	"time"
)

const DefaultPIXAPIURL = "https://apipixlinecut.com/"

type Config struct {
	ServiceName  string
	HTTPAddr     string
	PIXAPIURL    string
	PIXTimeout   time.Duration
	DatabaseURL  string
	LogLevel     string
	OTLPEndpoint string
}

func Load() *Config {
	return &Config{
		ServiceName:  getEnv("SERVICE_NAME", "pix_gateway"),
		HTTPAddr:     getEnv("HTTP_ADDR", ":8080"),
		PIXAPIURL:    getEnv("PIX_API_URL", DefaultPIXAPIURL),
		PIXTimeout:   getDuration("PIX_API_TIMEOUT", 30*time.Second),
		DatabaseURL:  getEnv("DATABASE_URL", ""),
		LogLevel:     getEnv("LOG_LEVEL", "INFO"),
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
