package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the runtime configuration for the server.
type Config struct {
	Server struct {
		Address string `mapstructure:"address"`
		Port    string `mapstructure:"port"`
		GinMode string `mapstructure:"gin_mode"`
	} `mapstructure:"server"`

	Database struct {
		Driver   string `mapstructure:"driver"` // "postgres" | "mysql"
		Host     string `mapstructure:"host"`
		Port     string `mapstructure:"port"`
		User     string `mapstructure:"user"`
		Password string `mapstructure:"password"`
		Name     string `mapstructure:"name"`
	} `mapstructure:"database"`

	Redis struct {
		Host string `mapstructure:"host"`
		Port string `mapstructure:"port"`
	} `mapstructure:"redis"`

	Session struct {
		Secret string `mapstructure:"secret"`
	} `mapstructure:"session"`

	Mail struct {
		Endpoint string `mapstructure:"endpoint"`
		From     string `mapstructure:"from"`
	} `mapstructure:"mail"`

	Logging struct {
		Level  string `mapstructure:"level"`  // trace|debug|info|warning|error|fatal
		Format string `mapstructure:"format"` // text|json
	} `mapstructure:"logging"`
}

// Load reads configuration from the environment and an optional yaml file.
func Load() (*Config, error) {
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("server.address", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.gin_mode", "debug")

	viper.SetDefault("database.driver", "postgres")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "5432")
	viper.SetDefault("database.user", "pianifica")
	viper.SetDefault("database.password", "pianifica")
	viper.SetDefault("database.name", "pianifica")

	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", "6379")

	viper.SetDefault("session.secret", "default-secret-key-change-me")

	viper.SetDefault("mail.endpoint", "")
	viper.SetDefault("mail.from", "no-reply@pianifica.local")

	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "text")

	if cfgFile := os.Getenv("CONFIG_FILE"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
	}

	if err := viper.ReadInConfig(); err != nil {
		var nf viper.ConfigFileNotFoundError
		if !errors.As(err, &nf) {
			return nil, fmt.Errorf("config read error: %w", err)
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// MustLoad is Load that panics on failure. Used from main.
func MustLoad() *Config {
	cfg, err := Load()
	if err != nil {
		panic(err)
	}
	return cfg
}

func validate(c *Config) error {
	switch c.Database.Driver {
	case "postgres", "mysql":
	default:
		return fmt.Errorf("database.driver must be postgres or mysql, got %q", c.Database.Driver)
	}
	if strings.TrimSpace(c.Database.Name) == "" {
		return errors.New("database.name must not be empty")
	}
	return nil
}
