package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every configuration key looked up in the environment
// (e.g. STAFFY_DATABASE_DSN for database.dsn).
const EnvPrefix = "STAFFY"

// RestConfig is the root configuration of the REST API process
type RestConfig struct {
	Port              string           `mapstructure:"port" validate:"required,numeric"`
	ShutdownTimeout   time.Duration    `mapstructure:"shutdown_timeout" validate:"gt=0s"`
	ReadHeaderTimeout time.Duration    `mapstructure:"read_header_timeout" validate:"gt=0s"`
	Database          DatabaseSettings `mapstructure:"database"`
	Logger            LoggerSettings   `mapstructure:"logger"`
	CORS              CORSSettings     `mapstructure:"cors"`
}

// Validate checks every section of the configuration
func (c *RestConfig) Validate() error {
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.CORS.Validate(); err != nil {
		return err
	}

	if err := validator.New().StructPartial(c, "Port", "ShutdownTimeout", "ReadHeaderTimeout"); err != nil {
		return fmt.Errorf("validation failed for RestConfig: %w", err)
	}
	return nil
}

// Load reads config from the optional YAML file at path, then overlays
// environment variables with the STAFFY_ prefix. The unprefixed PORT,
// DATABASE_URL and CORS_ORIGINS variables are honoured as fallbacks.
func Load(path string) (*RestConfig, error) {
	v := viper.New()

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := bindLegacyEnv(v); err != nil {
		return nil, err
	}

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg RestConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.Database.ResolveType()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8000")
	v.SetDefault("shutdown_timeout", 15*time.Second)
	v.SetDefault("read_header_timeout", 10*time.Second)

	v.SetDefault("database.type", "")
	v.SetDefault("database.dsn", "staffy.db")
	v.SetDefault("database.name", "")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 0)
	v.SetDefault("logger.max_backups", 0)
	v.SetDefault("logger.max_age", 0)

	v.SetDefault("cors.origins", []string{AllowAllOrigins})
}

func bindLegacyEnv(v *viper.Viper) error {
	bindings := map[string][]string{
		"port":         {EnvPrefix + "_PORT", "PORT"},
		"database.dsn": {EnvPrefix + "_DATABASE_DSN", "DATABASE_URL"},
		"cors.origins": {EnvPrefix + "_CORS_ORIGINS", "CORS_ORIGINS"},
	}

	for key, envs := range bindings {
		if err := v.BindEnv(append([]string{key}, envs...)...); err != nil {
			return fmt.Errorf("binding env for %s: %w", key, err)
		}
	}
	return nil
}
