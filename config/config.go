package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	BaseURL    string
	CutoffYear int

	Headless  bool
	ChromeBin string

	NavSettleMs       int
	LoadMoreTimeoutMs int
	ScrollSettleMs    int
	MaxProductPages   int
	MaxRetries        int

	OutputPath string

	PostgresHost     string
	PostgresPort     string
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresSSLMode  string
}

// Load reads the .env file and returns a populated Config struct.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("[config] No .env file found, falling back to system env vars")
	}

	return &Config{
		BaseURL:    getEnv("BASE_URL", "https://web-scraping.dev"),
		CutoffYear: getEnvInt("CUTOFF_YEAR", 2023),

		Headless:  getEnvBool("HEADLESS", true),
		ChromeBin: getEnv("CHROME_BIN", ""),

		NavSettleMs:       getEnvInt("NAV_SETTLE_MS", 1500),
		LoadMoreTimeoutMs: getEnvInt("LOAD_MORE_TIMEOUT_MS", 10000),
		ScrollSettleMs:    getEnvInt("SCROLL_SETTLE_MS", 2000),
		MaxProductPages:   getEnvInt("MAX_PRODUCT_PAGES", 50),
		MaxRetries:        getEnvInt("MAX_RETRIES", 3),

		OutputPath: getEnv("OUTPUT_PATH", "./scraped_data.json"),

		PostgresHost:     getEnv("POSTGRES_HOST", ""),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresUser:     getEnv("POSTGRES_USER", "scraper"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", "scraper123"),
		PostgresDB:       getEnv("POSTGRES_DB", "shop_db"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "disable"),
	}
}

// PostgresEnabled reports whether the optional PostgreSQL sink is configured.
func (c *Config) PostgresEnabled() bool {
	return c.PostgresHost != ""
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return "host=" + c.PostgresHost +
		" port=" + c.PostgresPort +
		" user=" + c.PostgresUser +
		" password=" + c.PostgresPassword +
		" dbname=" + c.PostgresDB +
		" sslmode=" + c.PostgresSSLMode
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		n, err := strconv.Atoi(val)
		if err == nil {
			return n
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if val := os.Getenv(key); val != "" {
		b, err := strconv.ParseBool(val)
		if err == nil {
			return b
		}
	}
	return fallback
}
