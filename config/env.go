package config

import (
	"crypto/rand"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig holds every configuration value of the application.
type AppConfig struct {
	Port        string
	Env         string
	CorsOrigins []string

	StoreDriver string
	BoltPath    string
	MongoMode   string
	MongoURI    string
	MongoDB     string
	RedisAddr   string
	RedisPass   string
	RedisDB     int

	PasetoSecretKey []byte
	AdminPasscode   string

	CloudinaryURL string

	GeminiAPIKey  string
	GeminiModel   string
	GeminiBaseURL string

	LogLevel string
	LogFile  string
}

// Load reads configuration from a .env file when present, then from the
// environment.
func Load() *AppConfig {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &AppConfig{
		Port:          getEnv("PORT", "5000"),
		Env:           getEnv("ENVIRONMENT", "development"),
		CorsOrigins:   splitList(getEnv("CORS_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000,http://localhost:5173")),
		StoreDriver:   strings.ToLower(getEnv("STORE_DRIVER", "bolt")),
		BoltPath:      getEnv("BOLT_PATH", "connectfit.db"),
		MongoMode:     getEnv("MONGO_MODE", "local"),
		MongoDB:       getEnv("MONGO_DB", "connectfit"),
		RedisAddr:     getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPass:     getEnv("REDIS_PASSWORD", ""),
		AdminPasscode: getEnv("ADMIN_PASSCODE", "1234"),
		CloudinaryURL: getEnv("CLOUDINARY_URL", ""),
		GeminiAPIKey:  getEnv("GEMINI_API_KEY", getEnv("API_KEY", "")),
		GeminiModel:   getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiBaseURL: getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		LogFile:       getEnv("LOG_FILE", ""),
	}

	if db, err := strconv.Atoi(getEnv("REDIS_DB", "0")); err == nil {
		cfg.RedisDB = db
	}

	// Pick the MongoDB URI for the configured mode
	if cfg.MongoMode == "atlas" {
		cfg.MongoURI = getEnv("MONGO_URI_ATLAS", "")
	} else {
		cfg.MongoURI = getEnv("MONGO_URI_LOCAL", "mongodb://localhost:27017/connectfit")
	}

	if key := getEnv("PASETO_SECRET_KEY", ""); key != "" {
		cfg.PasetoSecretKey = []byte(key)
	} else {
		// Tokens will not survive a restart.
		log.Println("PASETO_SECRET_KEY not set, generating an ephemeral key")
		cfg.PasetoSecretKey = make([]byte, 32)
		if _, err := rand.Read(cfg.PasetoSecretKey); err != nil {
			log.Fatal("failed to generate PASETO key: ", err)
		}
	}

	return cfg
}

// Validate checks values that would otherwise fail later at startup.
func (c *AppConfig) Validate() error {
	if len(c.PasetoSecretKey) != 32 {
		return fmt.Errorf("PASETO_SECRET_KEY must be 32 characters long, got %d", len(c.PasetoSecretKey))
	}
	if c.AdminPasscode == "" {
		return fmt.Errorf("ADMIN_PASSCODE must not be empty")
	}
	switch c.StoreDriver {
	case "memory":
	case "bolt":
		if c.BoltPath == "" {
			return fmt.Errorf("BOLT_PATH is required for the bolt driver")
		}
	case "mongo":
		if c.MongoURI == "" {
			return fmt.Errorf("MONGO_MODE %q but no MongoDB URI is set", c.MongoMode)
		}
	case "redis":
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis driver")
		}
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	return nil
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
