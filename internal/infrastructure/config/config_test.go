package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Xausdorf/qr-pay-hub/pix-gateway/internal/infrastructure/config"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"SERVICE_NAME", "HTTP_ADDR", "PIX_API_URL", "PIX_API_TIMEOUT", "DATABASE_URL", "LOG_LEVEL"} {
		t.Setenv(key, "")
	}

	cfg := config.Load()

	assert.Equal(t, "pix_gateway", cfg.ServiceName)
	assert.Equal(t, ":8080", cfg.HTTPAddr)
	assert.Equal(t, config.DefaultPIXAPIURL, cfg.PIXAPIURL)
	assert.Equal(t, 30*time.Second, cfg.PIXTimeout)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, "INFO", cfg.LogLevel)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PIX_API_URL", "https://pix.internal/charges")
	t.Setenv("PIX_API_TIMEOUT", "2500ms")
	t.Setenv("DATABASE_URL", "postgres://localhost/pix")

	cfg := config.Load()

	assert.Equal(t, "https://pix.internal/charges", cfg.PIXAPIURL)
	assert.Equal(t, 2500*time.Millisecond, cfg.PIXTimeout)
	assert.Equal(t, "postgres://localhost/pix", cfg.DatabaseURL)
}

func TestLoad_InvalidTimeoutFallsBack(t *testing.T) {
	for _, v := range []string{"soon", "-1s", "0"} {
		t.Setenv("PIX_API_TIMEOUT", v)
		assert.Equal(t, 30*time.Second, config.Load().PIXTimeout, v)
	}
}
