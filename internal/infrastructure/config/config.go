// internal/infrastructure/config/config.go
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Data source backends
const (
	SourceFile     = "file"
	SourceMongo    = "mongo"
	SourcePostgres = "postgres"
	SourceAPI      = "api"
)

// Config holds all configuration for the application
type Config struct {
	// App
	AppVersion       string
	LogLevel         string
	MetricsNamespace string

	// Server
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Data sources
	DataSource       string
	InventorySource  string
	DisruptionFile   string
	ProfileFile      string
	FlightSearchFile string
	SeatMapFile      string

	// MongoDB
	MongoURI      string
	MongoDB       string
	MongoUser     string
	MongoPassword string

	// PostgreSQL
	PostgresURI string

	// Airline API
	FlightSearchURL string
	SeatMapURL      string
	AirlineUserKey  string
	AirlineToken    string
	AirlineTimeout  time.Duration
}

// fileConfig mirrors the optional YAML config file. Secrets are never read from it.
type fileConfig struct {
	Server struct {
		Port         string `yaml:"port"`
		ReadTimeout  int    `yaml:"read_timeout"`
		WriteTimeout int    `yaml:"write_timeout"`
	} `yaml:"server"`
	Data struct {
		Source           string `yaml:"source"`
		InventorySource  string `yaml:"inventory_source"`
		DisruptionFile   string `yaml:"disruption_file"`
		ProfileFile      string `yaml:"profile_file"`
		FlightSearchFile string `yaml:"flight_search_file"`
		SeatMapFile      string `yaml:"seat_map_file"`
	} `yaml:"data"`
	Mongo struct {
		URI      string `yaml:"uri"`
		Database string `yaml:"database"`
	} `yaml:"mongo"`
	Postgres struct {
		DSN string `yaml:"dsn"`
	} `yaml:"postgres"`
	Airline struct {
		FlightSearchURL string `yaml:"flight_search_url"`
		SeatMapURL      string `yaml:"seat_map_url"`
		Timeout         int    `yaml:"timeout"`
	} `yaml:"airline"`
}

// LoadConfig loads configuration from the YAML file and environment variables.
// Environment variables win over the file, the file wins over defaults.
func LoadConfig() (*Config, error) {
	// Load .env file if it exists
	godotenv.Load()

	fc, err := loadFileConfig(getEnv("CONFIG_FILE", "config/config.yaml"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		AppVersion:       getEnv("APP_VERSION", "1.0.0"),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "flight_recovery"),

		Port:         getEnv("PORT", orDefault(fc.Server.Port, "8080")),
		ReadTimeout:  time.Duration(getEnvAsInt("READ_TIMEOUT", intOrDefault(fc.Server.ReadTimeout, 30))) * time.Second,
		WriteTimeout: time.Duration(getEnvAsInt("WRITE_TIMEOUT", intOrDefault(fc.Server.WriteTimeout, 30))) * time.Second,

		DataSource:       getEnv("DATA_SOURCE", orDefault(fc.Data.Source, SourceFile)),
		InventorySource:  getEnv("INVENTORY_SOURCE", orDefault(fc.Data.InventorySource, SourceFile)),
		DisruptionFile:   getEnv("DISRUPTION_FILE", orDefault(fc.Data.DisruptionFile, "data/cancell_trigger.json")),
		ProfileFile:      getEnv("PROFILE_FILE", orDefault(fc.Data.ProfileFile, "data/cdp.json")),
		FlightSearchFile: getEnv("FLIGHT_SEARCH_FILE", orDefault(fc.Data.FlightSearchFile, "data/flights.json")),
		SeatMapFile:      getEnv("SEAT_MAP_FILE", orDefault(fc.Data.SeatMapFile, "data/available_seats.json")),

		MongoURI:      getEnv("MONGODB_DSN", orDefault(fc.Mongo.URI, "mongodb://localhost:27017")),
		MongoDB:       getEnv("MONGO_DB", orDefault(fc.Mongo.Database, "flight_recovery")),
		MongoUser:     getEnv("MONGO_USER", ""),
		MongoPassword: getEnv("MONGO_PASSWORD", ""),

		PostgresURI: getEnv("POSTGRES_DSN", fc.Postgres.DSN),

		FlightSearchURL: getEnv("AIRLINE_FLIGHT_SEARCH_URL", fc.Airline.FlightSearchURL),
		SeatMapURL:      getEnv("AIRLINE_SEAT_MAP_URL", fc.Airline.SeatMapURL),
		AirlineUserKey:  getEnv("AIRLINE_USER_KEY", ""),
		AirlineToken:    getEnv("AIRLINE_AUTH_TOKEN", ""),
		AirlineTimeout:  time.Duration(getEnvAsInt("AIRLINE_TIMEOUT", intOrDefault(fc.Airline.Timeout, 30))) * time.Second,
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks that the selected backends have what they need
func (c *Config) Validate() error {
	switch c.DataSource {
	case SourceFile, SourceMongo:
	case SourcePostgres:
		if c.PostgresURI == "" {
			return errors.New("POSTGRES_DSN is required when DATA_SOURCE=postgres")
		}
	default:
		return fmt.Errorf("unknown DATA_SOURCE %q", c.DataSource)
	}

	switch c.InventorySource {
	case SourceFile:
	case SourceAPI:
		var missing []string
		if c.FlightSearchURL == "" {
			missing = append(missing, "AIRLINE_FLIGHT_SEARCH_URL")
		}
		if c.SeatMapURL == "" {
			missing = append(missing, "AIRLINE_SEAT_MAP_URL")
		}
		if c.AirlineUserKey == "" {
			missing = append(missing, "AIRLINE_USER_KEY")
		}
		if c.AirlineToken == "" {
			missing = append(missing, "AIRLINE_AUTH_TOKEN")
		}
		if len(missing) > 0 {
			return fmt.Errorf("missing required airline settings: %v", missing)
		}
	default:
		return fmt.Errorf("unknown INVENTORY_SOURCE %q", c.InventorySource)
	}

	return nil
}

func loadFileConfig(path string) (*fileConfig, error) {
	fc := &fileConfig{}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, fc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	return fc, nil
}

// Helper functions to get environment variables
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func orDefault(value, defaultValue string) string {
	if value == "" {
		return defaultValue
	}
	return value
}

func intOrDefault(value, defaultValue int) int {
	if value == 0 {
		return defaultValue
	}
	return value
}
