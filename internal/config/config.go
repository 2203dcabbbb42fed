package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

func init() {
	// Load .env file - ignore error if file doesn't exist
	if err := godotenv.Load(); err != nil {
		fmt.Printf("Note: .env file not found or could not be loaded: %v\n", err)
	}
}

type Config struct {
	Primary       PrimaryConfig
	Server        ServerConfig
	QR            QRConfig
	Observability *ObservabilityConfig
}

type PrimaryConfig struct {
	Env string
}

type ServerConfig struct {
	Port               string
	ReadTimeout        int
	WriteTimeout       int
	IdleTimeout        int
	CORSAllowedOrigins []string
}

// QRConfig holds the defaults and bounds of the image endpoint, plus the
// optional path of a deployed frame image.
type QRConfig struct {
	DefaultSize int
	MinSize     int
	MaxSize     int
	WithFrame   bool
	FramePath   string
}

type ObservabilityConfig struct {
	ServiceName string
	Environment string
	Logging     LoggingConfig
	NewRelic    NewRelicConfig
}

type LoggingConfig struct {
	Level  string
	Format string
}

type NewRelicConfig struct {
	LicenseKey                string
	AppLogForwardingEnabled   bool
	DistributedTracingEnabled bool
	DebugLogging              bool
}

// Helper functions for parsing env vars
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

func getEnvSlice(key string, fallback []string) []string {
	if value := os.Getenv(key); value != "" {
		return strings.Split(value, ",")
	}
	return fallback
}

func (c *ObservabilityConfig) GetLogLevel() string {
	if c.Logging.Level == "" {
		switch c.Environment {
		case "production":
			return "info"
		case "development":
			return "debug"
		default:
			return "info"
		}
	}
	return c.Logging.Level
}

func (c *ObservabilityConfig) IsProduction() bool {
	return c.Environment == "production"
}

func LoadConfig() (*Config, error) {
	cfg := &Config{
		Primary: PrimaryConfig{
			Env: getEnv("PAYSQUARE_ENV", "development"),
		},
		Server: ServerConfig{
			Port:               getEnv("PAYSQUARE_SERVER_PORT", "3000"),
			ReadTimeout:        getEnvInt("PAYSQUARE_SERVER_READ_TIMEOUT", 30),
			WriteTimeout:       getEnvInt("PAYSQUARE_SERVER_WRITE_TIMEOUT", 30),
			IdleTimeout:        getEnvInt("PAYSQUARE_SERVER_IDLE_TIMEOUT", 60),
			CORSAllowedOrigins: getEnvSlice("PAYSQUARE_SERVER_CORS_ORIGINS", []string{"*"}),
		},
		QR: QRConfig{
			DefaultSize: getEnvInt("PAYSQUARE_QR_DEFAULT_SIZE", 300),
			MinSize:     getEnvInt("PAYSQUARE_QR_MIN_SIZE", 64),
			MaxSize:     getEnvInt("PAYSQUARE_QR_MAX_SIZE", 2048),
			WithFrame:   getEnvBool("PAYSQUARE_QR_WITH_FRAME", true),
			FramePath:   getEnv("PAYSQUARE_FRAME_PATH", ""),
		},
		Observability: &ObservabilityConfig{
			ServiceName: "pay-by-square",
			Environment: getEnv("PAYSQUARE_ENV", "development"),
			Logging: LoggingConfig{
				Level:  getEnv("PAYSQUARE_LOG_LEVEL", "debug"),
				Format: getEnv("PAYSQUARE_LOG_FORMAT", "console"),
			},
			NewRelic: NewRelicConfig{
				LicenseKey:                getEnv("PAYSQUARE_NEWRELIC_LICENSE_KEY", ""),
				AppLogForwardingEnabled:   getEnvBool("PAYSQUARE_NEWRELIC_LOG_FORWARDING", true),
				DistributedTracingEnabled: getEnvBool("PAYSQUARE_NEWRELIC_DISTRIBUTED_TRACING", true),
				DebugLogging:              getEnvBool("PAYSQUARE_NEWRELIC_DEBUG", false),
			},
		},
	}

	if cfg.QR.MinSize <= 0 || cfg.QR.MaxSize < cfg.QR.MinSize {
		return nil, fmt.Errorf("invalid QR size bounds: min=%d max=%d", cfg.QR.MinSize, cfg.QR.MaxSize)
	}
	if cfg.QR.DefaultSize < cfg.QR.MinSize || cfg.QR.DefaultSize > cfg.QR.MaxSize {
		return nil, fmt.Errorf("PAYSQUARE_QR_DEFAULT_SIZE must be within [%d, %d]", cfg.QR.MinSize, cfg.QR.MaxSize)
	}

	return cfg, nil
}

// LoadFrame reads the configured frame image, or returns nil when no frame
// path is set.
func (c *Config) LoadFrame() ([]byte, error) {
	if c.QR.FramePath == "" {
		return nil, nil
	}
	data, err := os.ReadFile(c.QR.FramePath)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read frame image %s", c.QR.FramePath)
	}
	return data, nil
}
