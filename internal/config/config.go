package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port         string
	Debug        bool
	RatesTTL     time.Duration
	RatesBaseURL string
}

// Load reads configuration from environment variables, with a .env file
// as an optional lower-priority source.
func Load() (*Config, error) {
	_ = godotenv.Load()

	viper.SetDefault("PORT", "5000")
	viper.SetDefault("DEBUG", false)
	viper.SetDefault("RATES_TTL", "60s")
	viper.SetDefault("RATES_BASE_URL", "https://api.coinbase.com/v2")

	viper.AutomaticEnv()

	ttl, err := time.ParseDuration(viper.GetString("RATES_TTL"))
	if err != nil || ttl <= 0 {
		ttl = 60 * time.Second
	}

	return &Config{
		Port:         viper.GetString("PORT"),
		Debug:        viper.GetBool("DEBUG"),
		RatesTTL:     ttl,
		RatesBaseURL: viper.GetString("RATES_BASE_URL"),
	}, nil
}
