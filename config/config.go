package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

/* Config é um pacote auxiliar. Poderia ser uma lib externa*/

type Config struct {
	Port        string `mapstructure:"PORT"`
	DBDriver    string `mapstructure:"DB_DRIVER"`
	DBName      string `mapstructure:"DBNAME"`
	PostgresDSN string `mapstructure:"POSTGRES_DSN"`

	/* WebhookSecret enables the optional shared-secret gate on ingestion
	 * routes when non-empty. Empty means the gate is off.
	 */
	WebhookSecret string `mapstructure:"WEBHOOK_SECRET"`

	// EndpointsFile optionally points at an endpoints.yaml to pre-register at startup
	EndpointsFile string `mapstructure:"ENDPOINTS_FILE"`
}

func GetConfig() (*Config, error) {
	viper.SetConfigName(".env")
	viper.SetConfigType("toml")
	viper.AddConfigPath(".")
	viper.AutomaticEnv()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_DRIVER", "sqlite3")
	viper.SetDefault("DBNAME", "hookview.db")

	err := viper.ReadInConfig()
	if err != nil {
		// Running without a .env file is fine; env vars and defaults apply
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
	}
	var config Config
	err = viper.Unmarshal(&config)
	if err != nil {
		return nil, fmt.Errorf("parsing config data: %w", err)
	}
	return &config, nil
}
