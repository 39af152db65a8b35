package config

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"watex/internal"
	"watex/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Data     DataConfig
	Sounding SoundingConfig
	Anomaly  AnomalyConfig
	Features FeatureConfig
	LogLevel string
}

// DataConfig holds file system paths
type DataConfig struct {
	Dir string
}

// SoundingConfig holds the ohmic-area pipeline settings
type SoundingConfig struct {
	SampleCount  int
	SlopeDegrees float64
	// KeyDepth is kept raw so "none" and "45m" are resolved against the sounding.
	KeyDepth   string
	ReduceMode string
	Seed       int64
}

// AnomalyConfig holds ERP line settings
type AnomalyConfig struct {
	DipoleLength float64
	ZoneExtent   int
}

// FeatureConfig holds feature table settings
type FeatureConfig struct {
	Workers    int
	FlowBounds []float64
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	flowBounds, err := getEnvFloatsOrDefault("WATEX_FLOW_BOUNDS", []float64{0, 1, 3})
	if err != nil {
		return nil, errors.Wrap(err, "failed to load feature configuration")
	}

	config := &Config{
		Data: DataConfig{
			Dir: getEnvOrDefault("WATEX_DATA_DIR", "data"),
		},
		Sounding: SoundingConfig{
			SampleCount:  getEnvIntOrDefault("WATEX_SAMPLE_COUNT", 1000),
			SlopeDegrees: getEnvFloatOrDefault("WATEX_SLOPE_DEGREES", 45),
			KeyDepth:     getEnvOrDefault("WATEX_OHMS_KEY_DEPTH", "none"),
			ReduceMode:   getEnvOrDefault("WATEX_REDUCE_MODE", "mean"),
			Seed:         int64(getEnvIntOrDefault("WATEX_SEED", 0)),
		},
		Anomaly: AnomalyConfig{
			DipoleLength: getEnvFloatOrDefault("WATEX_DIPOLE_LENGTH", 10),
			ZoneExtent:   getEnvIntOrDefault("WATEX_ZONE_EXTENT", 7),
		},
		Features: FeatureConfig{
			Workers:    getEnvIntOrDefault("WATEX_WORKERS", 4),
			FlowBounds: flowBounds,
		},
		LogLevel: getEnvOrDefault("WATEX_LOG_LEVEL", "INFO"),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	config.ApplyLogging(os.Stderr)
	return config, nil
}

// ApplyLogging installs the global console logger at the configured level.
// Component loggers created afterwards inherit it.
func (c *Config) ApplyLogging(out io.Writer) {
	internal.SetGlobal(internal.NewLogger(out, internal.ParseLogLevel(c.LogLevel)))
}

// LoadFile loads a .env file into the environment, then reads the configuration.
// A missing file is not an error; system environment variables are used instead.
func LoadFile(paths ...string) (*Config, error) {
	envErr := godotenv.Load(paths...)
	config, err := Load()
	if err != nil {
		return nil, err
	}
	if envErr != nil {
		log.Debug().Str("component", "config").Err(envErr).Msg("no .env file found, using system environment variables")
	}
	return config, nil
}

func validateConfig(config *Config) error {
	if config.Sounding.SampleCount < 2 {
		return errors.ConfigInvalid("WATEX_SAMPLE_COUNT must be at least 2")
	}
	if config.Anomaly.DipoleLength <= 0 {
		return errors.ConfigInvalid("WATEX_DIPOLE_LENGTH must be positive")
	}
	if config.Anomaly.ZoneExtent < 1 {
		return errors.ConfigInvalid("WATEX_ZONE_EXTENT must be positive")
	}
	if config.Features.Workers < 1 {
		return errors.ConfigInvalid("WATEX_WORKERS must be positive")
	}
	for i := 1; i < len(config.Features.FlowBounds); i++ {
		if config.Features.FlowBounds[i] <= config.Features.FlowBounds[i-1] {
			return errors.ConfigInvalid("WATEX_FLOW_BOUNDS must be strictly increasing")
		}
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}

// getEnvFloatsOrDefault parses a comma separated list such as "0,1,3"
func getEnvFloatsOrDefault(key string, defaultValue []float64) ([]float64, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	parts := strings.Split(value, ",")
	out := make([]float64, 0, len(parts))
	for _, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return nil, errors.ConfigInvalid(key + " must be a comma separated list of numbers")
		}
		out = append(out, f)
	}
	return out, nil
}
