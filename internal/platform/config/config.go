package config

import (
	"log"
	"strings"

	"github.com/continental-snooker/snooker_booking_app/internal/core/domain"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Port               string
	LedgerFile         string
	IsProduction       bool
	CORSAllowedOrigins []string
	CurrencySymbol     string
	Rates              domain.RateTable
}

// LoadConfig loads configuration from environment variables and a .env
// file if present. The rate table is assembled here and stays fixed for
// the lifetime of the process.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PORT", "8080")
	viper.SetDefault("LEDGER_FILE", "snooker_bookings.xlsx")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	viper.SetDefault("CURRENCY_SYMBOL", "₹")
	viper.SetDefault("RATE_ENGLISH_TABLE_1", "200")
	viper.SetDefault("RATE_ENGLISH_TABLE_2", "200")
	viper.SetDefault("RATE_FRENCH_TABLE", "250")

	viper.AutomaticEnv()

	cfg := &Config{
		Port:           viper.GetString("PORT"),
		LedgerFile:     viper.GetString("LEDGER_FILE"),
		IsProduction:   viper.GetBool("IS_PRODUCTION"),
		CurrencySymbol: viper.GetString("CURRENCY_SYMBOL"),
	}

	cfg.CORSAllowedOrigins = strings.Split(viper.GetString("CORS_ALLOWED_ORIGINS"), ",")
	for i := range cfg.CORSAllowedOrigins {
		cfg.CORSAllowedOrigins[i] = strings.TrimSpace(cfg.CORSAllowedOrigins[i])
	}

	cfg.Rates = domain.RateTable{
		domain.EnglishTable1: loadRate("RATE_ENGLISH_TABLE_1", "200"),
		domain.EnglishTable2: loadRate("RATE_ENGLISH_TABLE_2", "200"),
		domain.FrenchTable:   loadRate("RATE_FRENCH_TABLE", "250"),
	}

	return cfg, nil
}

// loadRate reads an hourly rate from the environment, falling back to
// the built-in default when the value is not a valid decimal.
func loadRate(key, fallback string) decimal.Decimal {
	raw := viper.GetString(key)
	rate, err := decimal.NewFromString(raw)
	if err != nil || rate.IsNegative() {
		log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		rate = decimal.RequireFromString(fallback)
	}
	return rate
}
