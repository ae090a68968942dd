package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv  string
	AppPort string

	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	JWTSecret string

	UploadDir string

	ShopName    string
	ShopAddress string
	PaymentNote string

	MailServer   string
	MailPort     int
	MailUsername string
	MailPassword string
	SellerEmail  string

	DefaultSellerUsername string
	DefaultSellerPassword string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:  getEnv("APP_ENV", "development"),
		AppPort: getEnv("APP_PORT", "8080"),

		DBHost:     getEnv("DB_HOST", "localhost"),
		DBUser:     getEnv("DB_USER", "grosirku"),
		DBPassword: getEnv("DB_PASSWORD", "grosirku"),
		DBName:     getEnv("DB_NAME", "grosirku"),
		DBPort:     getEnv("DB_PORT", "5432"),

		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getEnvInt("REDIS_DB", 0),

		JWTSecret: os.Getenv("JWT_SECRET"),

		UploadDir: getEnv("UPLOAD_DIR", "static/uploads"),

		ShopName:    getEnv("SHOP_NAME", "Grosirku"),
		ShopAddress: os.Getenv("SHOP_ADDRESS"),
		PaymentNote: os.Getenv("PAYMENT_NOTE"),

		MailServer:   os.Getenv("MAIL_SERVER"),
		MailPort:     getEnvInt("MAIL_PORT", 587),
		MailUsername: os.Getenv("MAIL_USERNAME"),
		MailPassword: os.Getenv("MAIL_PASSWORD"),
		SellerEmail:  os.Getenv("SELLER_EMAIL"),

		DefaultSellerUsername: getEnv("SELLER_USERNAME", "admin"),
		DefaultSellerPassword: getEnv("SELLER_PASSWORD", "admin123"),
	}

	return cfg
}

// MailConfigured reports whether every setting needed to send seller
// order notifications is present.
func (c *Config) MailConfigured() bool {
	return c.SellerEmail != "" && c.MailServer != "" &&
		c.MailUsername != "" && c.MailPassword != ""
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
