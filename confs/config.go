package confs

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds application settings read from the environment.
type Config struct {
	AppName string
	Env     string // development, staging, production
	Port    string
	GinMode string

	// Database
	DBDriver       string // postgres or sqlite
	DBURL          string
	DBHost         string
	DBPort         string
	DBUser         string
	DBPassword     string
	DBName         string
	DBPath         string
	DBMaxIdleConns int
	DBMaxOpenConns int
	DBLogLevel     string // silent, error, warn, info

	BcryptCost int

	// CORS, comma-separated. Empty allows all origins.
	CORSAllowedOrigins string

	ShutdownTimeout time.Duration
	HTTPLogEnabled  bool
}

// LoadConfig loads environment variables from a .env file if present.
// A missing file is not an error.
func LoadConfig() error {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("load .env: %w", err)
	}
	return nil
}

// envReader reads typed values and remembers which ones fell back to defaults.
type envReader struct {
	warnings []string
}

func (r *envReader) warn(format string, args ...interface{}) {
	r.warnings = append(r.warnings, fmt.Sprintf(format, args...))
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (r *envReader) getbool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			r.warn("invalid boolean for %s: %v, using default %v", key, err, def)
			return def
		}
		return b
	}
	return def
}

func (r *envReader) getint(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			r.warn("invalid int for %s: %v, using default %d", key, err, def)
			return def
		}
		return i
	}
	return def
}

func (r *envReader) getdur(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			r.warn("invalid duration for %s: %v, using default %v", key, err, def)
			return def
		}
		return d
	}
	return def
}

// Load reads the configuration from environment variables. Invalid values
// fall back to their defaults and are reported in the returned warnings, for
// the caller to log once a logger exists.
func Load() (*Config, []string) {
	r := &envReader{}
	cfg := &Config{
		AppName: getenv("APP_NAME", "blog-server"),
		Env:     getenv("APP_ENV", "development"),
		Port:    getenv("PORT", "8000"),
		GinMode: getenv("GIN_MODE", "release"),

		DBDriver:       strings.ToLower(getenv("DB_DRIVER", "postgres")),
		DBURL:          os.Getenv("DB_URL"),
		DBHost:         os.Getenv("DB_HOST"),
		DBPort:         os.Getenv("DB_PORT"),
		DBUser:         os.Getenv("DB_USER"),
		DBPassword:     os.Getenv("DB_PASSWORD"),
		DBName:         os.Getenv("DB_NAME"),
		DBPath:         getenv("DB_PATH", "blog.db"),
		DBMaxIdleConns: r.getint("DB_MAX_IDLE_CONNS", 10),
		DBMaxOpenConns: r.getint("DB_MAX_OPEN_CONNS", 100),
		DBLogLevel:     strings.ToLower(getenv("DB_LOG_LEVEL", "warn")),

		// 0 selects bcrypt.DefaultCost
		BcryptCost: r.getint("BCRYPT_COST", 0),

		CORSAllowedOrigins: getenv("CORS_ALLOWED_ORIGINS", ""),

		ShutdownTimeout: r.getdur("SHUTDOWN_TIMEOUT", 10*time.Second),
		HTTPLogEnabled:  r.getbool("HTTP_LOG_ENABLED", true),
	}
	return cfg, r.warnings
}

// CORSOrigins returns the allowed origins as slice
func (c *Config) CORSOrigins() []string {
	parts := strings.Split(c.CORSAllowedOrigins, ",")
	res := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			res = append(res, p)
		}
	}
	return res
}
