package config

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stabilis-labs/tes_engine/internal/apperrors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTrackedCurrencies(t *testing.T) {
	currencies, err := parseTrackedCurrencies("SETT=1000, jusd=250.5")
	require.NoError(t, err)
	require.Len(t, currencies, 2)

	assert.Equal(t, "SETT", string(currencies[0].ID))
	assert.True(t, currencies[0].BaseUnit.Equal(decimal.NewFromInt(1000)))
	assert.Equal(t, "JUSD", string(currencies[1].ID))
	assert.True(t, currencies[1].BaseUnit.Equal(decimal.RequireFromString("250.5")))
}

func TestParseTrackedCurrencies_BadEntry(t *testing.T) {
	_, err := parseTrackedCurrencies("SETT:1000")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfigurationInvalid)
}

func TestEngineConfig_RatioSumValidation(t *testing.T) {
	cfg := &Config{
		AdjustmentFrequency:  10,
		TrackedCurrencies:    "SETT=1000",
		StabilizationRatio:   decimal.RequireFromString("0.6"),
		MarketMakerRatio:     decimal.RequireFromString("0.5"),
		StabilizationAccount: "stabilization-fund",
		MarketMakerAccount:   "market-maker",
	}

	_, err := cfg.EngineConfig()

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfigurationInvalid)
}

func TestEngineConfig_ZeroBaseUnitRejected(t *testing.T) {
	cfg := &Config{
		AdjustmentFrequency:  10,
		TrackedCurrencies:    "SETT=0",
		StabilizationRatio:   decimal.RequireFromString("0.4"),
		MarketMakerRatio:     decimal.RequireFromString("0.4"),
		StabilizationAccount: "stabilization-fund",
		MarketMakerAccount:   "market-maker",
	}

	_, err := cfg.EngineConfig()

	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfigurationInvalid)
}

func TestEngineConfig_Valid(t *testing.T) {
	cfg := &Config{
		AdjustmentFrequency:  10,
		TrackedCurrencies:    "SETT=1000,JUSD=1000",
		StabilizationRatio:   decimal.RequireFromString("0.4"),
		MarketMakerRatio:     decimal.RequireFromString("0.4"),
		StabilizationAccount: "stabilization-fund",
		MarketMakerAccount:   "market-maker",
	}

	engineConfig, err := cfg.EngineConfig()

	require.NoError(t, err)
	assert.Len(t, engineConfig.Currencies, 2)
	assert.EqualValues(t, 10, engineConfig.AdjustmentFrequency)
}
