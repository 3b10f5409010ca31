package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	Platform Platform `mapstructure:"platform"`
	Rooms    Rooms    `mapstructure:"rooms"`
	Logger   Logger   `mapstructure:"logger"`
	Server   Server   `mapstructure:"server"`
	Database Database `mapstructure:"database"`
}

// Platform holds the configuration for the platform REST API.
type Platform struct {
	BaseURL        string  `mapstructure:"base_url"`
	AuthToken      string  `mapstructure:"auth_token"`
	RateLimit      float64 `mapstructure:"rate_limit"`
	RateLimitBurst int     `mapstructure:"rate_limit_burst"`
	// UseMockData switches the dashboard onto the in-process fixture
	// store instead of the live API. Environment-overridable, never a
	// hardcoded constant.
	UseMockData bool `mapstructure:"use_mock_data"`
}

// Rooms holds the trading rooms served by the dashboard.
type Rooms struct {
	Slugs        []string `mapstructure:"slugs"`
	DefaultLimit int      `mapstructure:"default_limit"`
}

// Server holds the configuration for the web servers.
type Server struct {
	Port     int `mapstructure:"port"`
	MockPort int `mapstructure:"mock_port"`
}

// Database holds the configuration for the fixture database.
type Database struct {
	DSN string `mapstructure:"dsn"`
}

// Logger holds the configuration for the logger.
type Logger struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// LoadConfig reads configuration from file or environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config") // name of config file (without extension)
	viper.SetConfigType("yml")    // or yaml, json

	// Allow environment variables to override config file
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Set default values
	viper.SetDefault("platform.rate_limit", 10) // requests per second
	viper.SetDefault("platform.rate_limit_burst", 5)
	viper.SetDefault("rooms.default_limit", 50)
	viper.SetDefault("server.mock_port", 8081)
	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.format", "console")

	err = viper.ReadInConfig()
	if err != nil {
		return
	}

	err = viper.Unmarshal(&config)
	return
}
