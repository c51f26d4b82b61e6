package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stabilis-labs/tes_engine/internal/core/domain"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL  string
	Port         string
	IsProduction bool

	// TickInterval is the wall-clock duration of one tick.
	TickInterval time.Duration
	// AdjustmentFrequency is the number of ticks between adjustments.
	AdjustmentFrequency uint64
	// TrackedCurrencies is the raw "CODE=BASE_UNIT" list from the environment.
	TrackedCurrencies string

	StabilizationRatio   decimal.Decimal
	MarketMakerRatio     decimal.Decimal
	StabilizationAccount string
	MarketMakerAccount   string

	// PriceRateLimit is the ulule/limiter formatted rate for the
	// price-submission endpoint, e.g. "60-M".
	PriceRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if
// present, then validates it eagerly. A configuration error here is fatal:
// the engine must never start on invalid parameters and discover it mid-cycle.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("TICK_INTERVAL", "6s")
	viper.SetDefault("ADJUSTMENT_FREQUENCY", 10)
	viper.SetDefault("TRACKED_CURRENCIES", "SETT=1000,JUSD=1000")
	viper.SetDefault("STABILIZATION_RATIO", "0.4")
	viper.SetDefault("MARKET_MAKER_RATIO", "0.4")
	viper.SetDefault("STABILIZATION_ACCOUNT", "stabilization-fund")
	viper.SetDefault("MARKET_MAKER_ACCOUNT", "market-maker")
	viper.SetDefault("PRICE_RATE_LIMIT", "60-M")

	viper.AutomaticEnv()

	cfg := &Config{}
	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.AdjustmentFrequency = viper.GetUint64("ADJUSTMENT_FREQUENCY")
	cfg.TrackedCurrencies = viper.GetString("TRACKED_CURRENCIES")
	cfg.StabilizationAccount = viper.GetString("STABILIZATION_ACCOUNT")
	cfg.MarketMakerAccount = viper.GetString("MARKET_MAKER_ACCOUNT")
	cfg.PriceRateLimit = viper.GetString("PRICE_RATE_LIMIT")

	tickIntervalStr := viper.GetString("TICK_INTERVAL")
	tickInterval, err := time.ParseDuration(tickIntervalStr)
	if err != nil || tickInterval <= 0 {
		return nil, fmt.Errorf("%w: invalid TICK_INTERVAL '%s'", apperrors.ErrConfigurationInvalid, tickIntervalStr)
	}
	cfg.TickInterval = tickInterval

	stabilizationRatio, err := decimal.NewFromString(viper.GetString("STABILIZATION_RATIO"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid STABILIZATION_RATIO: %v", apperrors.ErrConfigurationInvalid, err)
	}
	cfg.StabilizationRatio = stabilizationRatio

	marketMakerRatio, err := decimal.NewFromString(viper.GetString("MARKET_MAKER_RATIO"))
	if err != nil {
		return nil, fmt.Errorf("%w: invalid MARKET_MAKER_RATIO: %v", apperrors.ErrConfigurationInvalid, err)
	}
	cfg.MarketMakerRatio = marketMakerRatio

	// Build and validate the engine configuration eagerly; LoadConfig is the
	// single place a bad configuration can be rejected.
	if _, err := cfg.EngineConfig(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// EngineConfig builds the validated, immutable configuration value the
// adjustment scheduler is constructed with.
func (c *Config) EngineConfig() (domain.EngineConfig, error) {
	currencies, err := parseTrackedCurrencies(c.TrackedCurrencies)
	if err != nil {
		return domain.EngineConfig{}, err
	}

	engineConfig := domain.EngineConfig{
		AdjustmentFrequency: c.AdjustmentFrequency,
		Currencies:          currencies,
		Ratios: domain.DistributionRatios{
			Stabilization: c.StabilizationRatio,
			MarketMaker:   c.MarketMakerRatio,
		},
		StabilizationAccount: domain.AccountID(c.StabilizationAccount),
		MarketMakerAccount:   domain.AccountID(c.MarketMakerAccount),
	}
	if err := engineConfig.Validate(); err != nil {
		return domain.EngineConfig{}, err
	}
	return engineConfig, nil
}

// parseTrackedCurrencies parses a "CODE=BASE_UNIT" comma-separated list,
// e.g. "SETT=1000,JUSD=1000".
func parseTrackedCurrencies(raw string) ([]domain.TrackedCurrency, error) {
	var currencies []domain.TrackedCurrency
	for _, entry := range strings.Split(raw, ",") {
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		code, baseUnitStr, found := strings.Cut(entry, "=")
		if !found {
			return nil, fmt.Errorf("%w: tracked currency entry '%s' is not CODE=BASE_UNIT", apperrors.ErrConfigurationInvalid, entry)
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		baseUnit, err := decimal.NewFromString(strings.TrimSpace(baseUnitStr))
		if err != nil {
			return nil, fmt.Errorf("%w: invalid base unit for %s: %v", apperrors.ErrConfigurationInvalid, code, err)
		}
		currencies = append(currencies, domain.TrackedCurrency{
			ID:       domain.CurrencyID(code),
			Name:     code,
			BaseUnit: baseUnit,
		})
	}
	return currencies, nil
}
