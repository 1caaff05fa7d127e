package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{
		"PORT", "PAYMENT_GATEWAY_BASE_URL", "PAYMENT_GATEWAY_TIMEOUT", "PAYMENT_GATEWAY_MOCK",
		"CONFIRMATION_INITIAL_WAIT", "CONFIRMATION_RETRY_WAIT", "CONFIRMATION_MAX_ROUNDS",
		"REGISTRATION_STORE", "NOTIFIER", "PAYMENT_COUNTRY_CODE",
	} {
		t.Setenv(key, "")
	}

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 30*time.Second, cfg.Gateway.Timeout)
	assert.False(t, cfg.Gateway.Mock)
	assert.Equal(t, "233", cfg.Gateway.CountryCode)
	assert.Equal(t, 15*time.Second, cfg.Confirmation.InitialWait)
	assert.Equal(t, 5*time.Second, cfg.Confirmation.RetryWait)
	assert.Equal(t, 30, cfg.Confirmation.MaxRounds)
	assert.Equal(t, StoreDynamoDB, cfg.Store.Kind)
	assert.Equal(t, NotifierLog, cfg.Notifier.Kind)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("PAYMENT_GATEWAY_BASE_URL", "https://gateway.example.com/")
	t.Setenv("PAYMENT_GATEWAY_MOCK", "yes")
	t.Setenv("CONFIRMATION_INITIAL_WAIT", "2s")
	t.Setenv("CONFIRMATION_MAX_ROUNDS", "3")
	t.Setenv("REGISTRATION_STORE", "Postgres")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_NAME", "tickets")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://gateway.example.com", cfg.Gateway.BaseURL)
	assert.True(t, cfg.Gateway.Mock)
	assert.Equal(t, 2*time.Second, cfg.Confirmation.InitialWait)
	assert.Equal(t, 3, cfg.Confirmation.MaxRounds)
	assert.Equal(t, StorePostgres, cfg.Store.Kind)
	assert.Contains(t, cfg.Store.Postgres.DSN(), "host=db port=5432")
	assert.Contains(t, cfg.Store.Postgres.DSN(), "dbname=tickets")
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("CONFIRMATION_RETRY_WAIT", "soon")
	t.Setenv("CONFIRMATION_MAX_ROUNDS", "-1")
	t.Setenv("REGISTRATION_STORE", "redis")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFIRMATION_RETRY_WAIT")
	assert.Contains(t, err.Error(), "CONFIRMATION_MAX_ROUNDS")
	assert.Contains(t, err.Error(), "REGISTRATION_STORE")
}
