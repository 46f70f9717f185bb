package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "ADDRESSBOOK"

// Defaults applied before any file or environment value.
const (
	DefaultStorageDriver = "file"
	DefaultStoragePath   = "addressbook.json"
	DefaultLogLevel      = "info"
	DefaultLogFormat     = "json"
	DefaultWindowDays    = 7
	DefaultLeapDay       = "feb28"
)

// Load configuration from environment variables and optionally a config file.
// Environment variables take precedence over values from the file. An empty
// configFile means no file is read.
// Returns a populated Config struct or an error if loading/validation fails.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetDefault("storage.driver", DefaultStorageDriver)
	v.SetDefault("storage.path", DefaultStoragePath)
	v.SetDefault("storage.database_url", "")
	v.SetDefault("log.level", DefaultLogLevel)
	v.SetDefault("log.format", DefaultLogFormat)
	v.SetDefault("log.file", "")
	v.SetDefault("birthdays.window_days", DefaultWindowDays)
	v.SetDefault("birthdays.leap_day", DefaultLeapDay)

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error reading config file %s: %w", configFile, err)
		}
	}

	// ADDRESSBOOK_STORAGE_PATH overrides storage.path, and so on.
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Storage.Driver = strings.ToLower(strings.TrimSpace(cfg.Storage.Driver))
	cfg.Log.Level = strings.ToLower(strings.TrimSpace(cfg.Log.Level))
	cfg.Log.Format = strings.ToLower(strings.TrimSpace(cfg.Log.Format))
	cfg.Birthdays.LeapDay = strings.ToLower(strings.TrimSpace(cfg.Birthdays.LeapDay))

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks cfg against its struct tags.
func Validate(cfg *Config) error {
	validate := validator.New()
	if err := validate.Struct(cfg); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return fmt.Errorf("validation failed: %s failed on %q: %w", fe.Namespace(), fe.Tag(), err)
		}
		return fmt.Errorf("validation failed: %w", err)
	}
	return nil
}
