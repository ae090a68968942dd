package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	t.Run("Success loading from env", func(t *testing.T) {
		t.Setenv("DB_HOST", "dbhost")
		t.Setenv("DB_USER", "testuser")
		t.Setenv("DB_PASSWORD", "testpass")
		t.Setenv("DB_NAME", "testdb")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("APP_ENV", "test")
		t.Setenv("REDIS_ADDR", "redis:6379")
		t.Setenv("REDIS_DB", "2")
		t.Setenv("JWT_SECRET", "supersecret")

		cfg := LoadConfig()

		assert.NotNil(t, cfg)
		assert.Equal(t, "dbhost", cfg.DBHost)
		assert.Equal(t, "testuser", cfg.DBUser)
		assert.Equal(t, "testpass", cfg.DBPassword)
		assert.Equal(t, "testdb", cfg.DBName)
		assert.Equal(t, "5433", cfg.DBPort)
		assert.Equal(t, "9090", cfg.AppPort)
		assert.Equal(t, "test", cfg.AppEnv)
		assert.Equal(t, "redis:6379", cfg.RedisAddr)
		assert.Equal(t, 2, cfg.RedisDB)
		assert.Equal(t, "supersecret", cfg.JWTSecret)
	})

	t.Run("Defaults when unset", func(t *testing.T) {
		t.Setenv("DB_HOST", "")
		t.Setenv("APP_PORT", "")
		t.Setenv("SELLER_USERNAME", "")

		cfg := LoadConfig()

		assert.Equal(t, "localhost", cfg.DBHost)
		assert.Equal(t, "8080", cfg.AppPort)
		assert.Equal(t, "admin", cfg.DefaultSellerUsername)
		assert.Equal(t, 587, cfg.MailPort)
	})
}

func TestMailConfigured(t *testing.T) {
	cfg := &Config{}
	assert.False(t, cfg.MailConfigured())

	cfg = &Config{
		SellerEmail:  "seller@example.com",
		MailServer:   "smtp.example.com",
		MailUsername: "mailer",
		MailPassword: "secret",
	}
	assert.True(t, cfg.MailConfigured())

	cfg.MailPassword = ""
	assert.False(t, cfg.MailConfigured())
}
