package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config represents application configuration
type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Report  ReportConfig  `mapstructure:"report"`
	Log     LogConfig     `mapstructure:"log"`
}

// StorageConfig represents roster storage configuration
type StorageConfig struct {
	Type       string `mapstructure:"type"` // "file" or "sqlite"
	File       string `mapstructure:"file"`
	SQLitePath string `mapstructure:"sqlite_path"`
	Key        string `mapstructure:"key"` // key of the roster blob in the sqlite kv table
}

// ReportConfig represents report export configuration
type ReportConfig struct {
	OutputDir    string `mapstructure:"output_dir"`
	Format       string `mapstructure:"format"` // "pdf" or "xlsx"
	RepeatHeader bool   `mapstructure:"repeat_header"`
}

// LogConfig represents logging configuration
type LogConfig struct {
	File  string `mapstructure:"file"` // empty logs to console
	Level string `mapstructure:"level"`
}

// Load loads configuration from file. A missing file leaves the defaults;
// ATTENDANCE_* environment variables (and a .env file) override both.
func Load(configPath string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("ATTENDANCE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			v.SetConfigFile(configPath)
			if err := v.ReadInConfig(); err != nil {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to stat config: %w", err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	// Validate config
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &config, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("storage.type", "file")
	v.SetDefault("storage.file", "data/attendance.json")
	v.SetDefault("storage.sqlite_path", "data/attendance.db")
	v.SetDefault("storage.key", "attendanceData")
	v.SetDefault("report.output_dir", "reports")
	v.SetDefault("report.format", "pdf")
	v.SetDefault("report.repeat_header", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
}

// Validate validates the configuration
func (c *Config) Validate() error {
	switch c.Storage.Type {
	case "file":
		if c.Storage.File == "" {
			return fmt.Errorf("storage.file is required for file storage")
		}
	case "sqlite":
		if c.Storage.SQLitePath == "" {
			return fmt.Errorf("storage.sqlite_path is required for sqlite storage")
		}
		if c.Storage.Key == "" {
			return fmt.Errorf("storage.key is required for sqlite storage")
		}
	default:
		return fmt.Errorf("storage.type must be 'file' or 'sqlite', got '%s'", c.Storage.Type)
	}

	if err := ValidateFormat(c.Report.Format); err != nil {
		return err
	}
	if c.Report.OutputDir == "" {
		return fmt.Errorf("report.output_dir is required")
	}

	return nil
}

// ValidateFormat checks a report format name
func ValidateFormat(format string) error {
	switch format {
	case "pdf", "xlsx":
		return nil
	}
	return fmt.Errorf("report.format must be 'pdf' or 'xlsx', got '%s'", format)
}

// GetLogLevel returns the log level, "info" when unset
func (c *LogConfig) GetLogLevel() string {
	if c.Level == "" {
		return "info"
	}
	return c.Level
}
