// Env loader
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Corpus size shipped with the seeded bible table. Must stay in sync with
// the actual row count of the corpus table if it is reloaded.
const DefaultTotalVerses = 31435

type Config struct {
	AppEnv           string
	Port             string
	DBHost           string
	DBPort           string
	DBName           string
	DBUser           string
	DBPassword       string
	DBSchema         string
	RedisURL         string
	CorpusTable      string
	DailyTable       string
	ImageBucket      string
	ImageBaseURL     string
	TotalVerses      int
	OpenAISecretName string
	AppTimezone      string
	SecretsDir       string
}

// LoadConfig loads environment variables from the .env file
func LoadConfig() *Config {

	appEnv := os.Getenv("APP_ENV")

	switch appEnv {
	case "production":
		if err := godotenv.Load(".env.production"); err == nil {
			fmt.Println("Loaded .env.production")
		}
	default:
		if err := godotenv.Load(".env.development"); err == nil {
			fmt.Println("Loaded .env.development")
		}
	}

	cfg := &Config{
		AppEnv:           getEnv("APP_ENV", "development"),
		Port:             getEnv("PORT", "8080"),
		DBHost:           getEnv("BLUEPRINT_DB_HOST", "localhost"),
		DBPort:           getEnv("BLUEPRINT_DB_PORT", "5432"),
		DBName:           getEnv("BLUEPRINT_DB_DATABASE", "bible"),
		DBUser:           getEnv("BLUEPRINT_DB_USERNAME", "postgres"),
		DBPassword:       getEnv("BLUEPRINT_DB_PASSWORD", ""),
		DBSchema:         getEnv("BLUEPRINT_DB_SCHEMA", "public"),
		RedisURL:         getEnv("REDIS_URL", "redis://localhost:6379"),
		CorpusTable:      getEnv("CORPUS_TABLE", ""),
		DailyTable:       getEnv("DAILY_TABLE", ""),
		ImageBucket:      getEnv("IMAGE_BUCKET", ""),
		ImageBaseURL:     getEnv("IMAGE_BASE_URL", "http://localhost:8080/images"),
		TotalVerses:      getEnvInt("TOTAL_VERSES", DefaultTotalVerses),
		OpenAISecretName: getEnv("OPENAI_SECRET_NAME", "openai-api-key"),
		AppTimezone:      getEnv("APP_TIMEZONE", "America/Chicago"),
		SecretsDir:       getEnv("SECRETS_DIR", ""),
	}

	return cfg
}

// Validate reports startup-time configuration errors. The table and bucket
// names carry no sane default, so their absence is fatal.
func (c *Config) Validate() error {
	var missing []string
	if c.CorpusTable == "" {
		missing = append(missing, "CORPUS_TABLE")
	}
	if c.DailyTable == "" {
		missing = append(missing, "DAILY_TABLE")
	}
	if c.ImageBucket == "" {
		missing = append(missing, "IMAGE_BUCKET")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %s", strings.Join(missing, ", "))
	}

	if c.TotalVerses < 1 {
		return fmt.Errorf("TOTAL_VERSES must be a positive integer, got %d", c.TotalVerses)
	}

	if _, err := time.LoadLocation(c.AppTimezone); err != nil {
		return fmt.Errorf("invalid APP_TIMEZONE %q: %w", c.AppTimezone, err)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	value, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return n
}

func GetAppEnv() string {
	if value, exists := os.LookupEnv("APP_ENV"); exists {
		return value
	}
	return "development"
}
