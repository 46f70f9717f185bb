package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Storage   StorageConfig   `mapstructure:"storage" validate:"required"`
	Log       LogConfig       `mapstructure:"log" validate:"required"`
	Birthdays BirthdaysConfig `mapstructure:"birthdays" validate:"required"`
}

// StorageConfig selects and configures the persistence backend.
type StorageConfig struct {
	Driver      string `mapstructure:"driver" validate:"required,oneof=file postgres"`
	Path        string `mapstructure:"path" validate:"required_if=Driver file"`
	DatabaseURL string `mapstructure:"database_url" validate:"required_if=Driver postgres,omitempty,url"`
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level" validate:"required,oneof=debug info warn error"`
	Format string `mapstructure:"format" validate:"required,oneof=json text"`
	// File receives log output; empty means stderr.
	File string `mapstructure:"file"`
}

// BirthdaysConfig tunes the upcoming-birthdays query.
type BirthdaysConfig struct {
	WindowDays int    `mapstructure:"window_days" validate:"gte=1,lte=366"`
	LeapDay    string `mapstructure:"leap_day" validate:"required,oneof=feb28 mar1"`
}
