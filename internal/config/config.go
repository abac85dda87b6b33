package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	LogDir      string // Optional; when set logs are also written to rotating files there
	Environment string
	ServiceName string
	Version     string
	APIKey      string // Optional; when set the API requires X-API-Key

	// Proxies whose X-Forwarded-For is trusted for client IPs
	TrustedProxies []string

	// Progress persistence
	StoreBackend string // "memory", "file", "postgres"
	PrefsPath    string
	PlayerID     string // Row key for the postgres backend

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBMaxConns        int
	DBMaxConnIdleTime time.Duration
	DBMaxConnLifetime time.Duration

	// Game content
	GameConfigPath string
	CatalogPath    string
	Seed           uint64 // 0 means crypto-seeded
	SpinMode       string // "timed", "manual", "instant"
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "text"),
		LogDir:            getEnv("LOG_DIR", ""),
		Environment:       getEnv("ENVIRONMENT", "dev"),
		ServiceName:       getEnv("SERVICE_NAME", DefaultServiceName),
		Version:           getEnv("VERSION", "dev"),
		APIKey:            getEnv("API_KEY", ""),
		StoreBackend:      strings.ToLower(getEnv("STORE_BACKEND", StoreBackendMemory)),
		PrefsPath:         getEnv("PREFS_PATH", DefaultPrefsPath),
		PlayerID:          getEnv("PLAYER_ID", DefaultPlayerID),
		DBUser:            getEnv("DB_USER", "postgres"),
		DBPassword:        getEnv("DB_PASSWORD", "postgres"),
		DBHost:            getEnv("DB_HOST", "localhost"),
		DBPort:            getEnv("DB_PORT", "5432"),
		DBName:            getEnv("DB_NAME", "wheel"),
		DBMaxConns:        getEnvAsInt("DB_MAX_CONNS", 10),
		DBMaxConnIdleTime: getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
		DBMaxConnLifetime: getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
		GameConfigPath:    getEnv("GAME_CONFIG_PATH", ""),
		CatalogPath:       getEnv("CATALOG_PATH", ""),
		SpinMode:          strings.ToLower(getEnv("SPIN_MODE", SpinModeTimed)),
	}

	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if seedStr := getEnv("SEED", ""); seedStr != "" {
		seed, err := strconv.ParseUint(seedStr, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid SEED value: %w", err)
		}
		cfg.Seed = seed
	}

	for _, proxy := range strings.Split(getEnv("TRUSTED_PROXIES", ""), ",") {
		if proxy = strings.TrimSpace(proxy); proxy != "" {
			cfg.TrustedProxies = append(cfg.TrustedProxies, proxy)
		}
	}

	switch cfg.StoreBackend {
	case StoreBackendMemory, StoreBackendFile, StoreBackendPostgres:
	default:
		return nil, fmt.Errorf("invalid STORE_BACKEND %q: expected one of %s, %s, %s",
			cfg.StoreBackend, StoreBackendMemory, StoreBackendFile, StoreBackendPostgres)
	}

	switch cfg.SpinMode {
	case SpinModeTimed, SpinModeManual, SpinModeInstant:
	default:
		return nil, fmt.Errorf("invalid SPIN_MODE %q: expected one of %s, %s, %s",
			cfg.SpinMode, SpinModeTimed, SpinModeManual, SpinModeInstant)
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}
