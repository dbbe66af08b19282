package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	Storage  StorageConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Auth     AuthConfig
	Annotate AnnotateConfig
}

// ServerConfig holds the server configuration
type ServerConfig struct {
	Port int `envconfig:"SERVER_PORT" default:"8080"`
}

// StorageConfig selects and tunes the collection-store driver.
type StorageConfig struct {
	// Driver is one of: memory, file, postgres, redis.
	Driver string `envconfig:"STORAGE_DRIVER" default:"file"`
	// DataDir is the file driver's directory.
	DataDir string `envconfig:"STORAGE_DATA_DIR" default:"./data"`
	// SeedDemoData installs the demo fixture into an empty store.
	SeedDemoData bool `envconfig:"SEED_DEMO_DATA" default:"false"`
}

// DatabaseConfig holds the postgres driver configuration.
type DatabaseConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     int    `envconfig:"DB_PORT" default:"5432"`
	Username string `envconfig:"DB_USERNAME" default:"postgres"`
	Password string `envconfig:"DB_PASSWORD" default:"password"`
	DBName   string `envconfig:"DB_NAME" default:"toolshare"`
	SSLMode  string `envconfig:"DB_SSLMODE" default:"disable"`
}

// RedisConfig holds the redis driver configuration.
type RedisConfig struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

// AuthConfig holds the authentication configuration
type AuthConfig struct {
	JWTSecret string `envconfig:"JWT_SECRET" default:"your-secret-key-here"`
}

// AnnotateConfig holds the image annotation service configuration. An empty
// key disables annotation; tool creation works regardless.
type AnnotateConfig struct {
	GeminiAPIKey string `envconfig:"GEMINI_API_KEY" default:""`
}

// GetDSN returns the database connection string
func (c *DatabaseConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.Username, c.Password, c.DBName, c.SSLMode,
	)
}

// LoadConfig loads the configuration from the environment, reading a .env
// file first when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("loading configuration: %w", err)
	}
	return &cfg, nil
}
