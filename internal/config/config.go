package config

import (
	"fmt"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API    *APIConfig    `mapstructure:"api"`
	Gin    *GinConfig    `mapstructure:"gin"`
	Auth   *AuthConfig   `mapstructure:"auth"`
	Export *ExportConfig `mapstructure:"export"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	BaseURL            string   `mapstructure:"base_url"`
	Port               string   `mapstructure:"port"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

// AuthConfig points at the external auth provider. Credentials are never
// checked in this service, only delegated.
type AuthConfig struct {
	ProviderURL string `mapstructure:"provider_url"`
	APIKey      string `mapstructure:"api_key"`
	JWTSecret   string `mapstructure:"jwt_secret"`
}

type ExportConfig struct {
	LogoPath string `mapstructure:"logo_path"`
}

func Load(configPath string) (*AppConfig, error) {
	viper.SetConfigFile(configPath)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.WatchConfig()
	viper.OnConfigChange(func(e fsnotify.Event) {
		zap.L().Info(fmt.Sprintf("config file changed: %v", e.Name))

		if err := viper.Unmarshal(&conf); err != nil {
			zap.L().Error(fmt.Sprintf("failed to reload config: %v", err))
		}
	})

	return &conf, nil
}
