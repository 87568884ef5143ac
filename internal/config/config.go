package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// File storage backends supported by the storage layer.
const (
	FileSystemLocal = "local"
	FileSystemS3    = "s3"
)

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Event configuration
	EventYear string `mapstructure:"EVENT_YEAR"`
	DataDir   string `mapstructure:"DATA_DIR"`

	// File storage configuration
	FileSystem  string `mapstructure:"FILE_SYSTEM"`
	FSBucket    string `mapstructure:"FS_BUCKET"`
	S3Endpoint  string `mapstructure:"S3_ENDPOINT"`
	S3Region    string `mapstructure:"S3_REGION"`
	S3AccessKey string `mapstructure:"S3_ACCESS_KEY"`
	S3SecretKey string `mapstructure:"S3_SECRET_KEY"`
	S3UseSSL    bool   `mapstructure:"S3_USE_SSL"`

	// Login accounts file (credentials + extra allow-list)
	AccountsPath string `mapstructure:"ACCOUNTS_PATH"`

	// Directory holding restorable database backup archives
	BackupDir string `mapstructure:"BACKUP_DIR"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7010")
	viper.SetDefault("LOG_LEVEL", "info")

	viper.SetDefault("EVENT_YEAR", "2024")
	viper.SetDefault("DATA_DIR", "db")

	// File storage defaults
	viper.SetDefault("FILE_SYSTEM", FileSystemLocal)
	viper.SetDefault("FS_BUCKET", "")
	viper.SetDefault("S3_ENDPOINT", "s3.amazonaws.com")
	viper.SetDefault("S3_REGION", "eu-central-1")
	viper.SetDefault("S3_USE_SSL", true)

	viper.SetDefault("ACCOUNTS_PATH", "accounts.yaml")
	viper.SetDefault("BACKUP_DIR", "backups")

	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})
}

func validate(config *Config) error {
	if config.EventYear == "" {
		return fmt.Errorf("event year is required")
	}

	switch config.FileSystem {
	case FileSystemLocal:
	case FileSystemS3:
		if config.FSBucket == "" {
			return fmt.Errorf("FS_BUCKET is required when FILE_SYSTEM=s3")
		}
	default:
		// Unknown backends are rejected again at storage construction;
		// failing here keeps the message close to the bad setting.
		return fmt.Errorf("unknown file system: %s, use %s or %s",
			config.FileSystem, FileSystemS3, FileSystemLocal)
	}

	return nil
}

// DatabasePath returns the per-event SQLite database location
func (c *Config) DatabasePath() string {
	return filepath.Join(c.DataDir, c.EventYear, "database.db")
}

// FilesTopDir returns the per-event root of all stored files
func (c *Config) FilesTopDir() string {
	return strings.Join([]string{"files", c.EventYear}, "/")
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
