package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	StoreDynamoDB = "dynamodb"
	StorePostgres = "postgres"
	StoreMemory   = "memory"

	NotifierLog      = "log"
	NotifierMailtrap = "mailtrap"
)

// Config holds the process configuration. It is read once at startup; nothing else
// in the service reads the environment.
type Config struct {
	Port string

	Gateway      GatewayConfig
	Confirmation ConfirmationConfig
	Store        StoreConfig
	Notifier     NotifierConfig
}

type GatewayConfig struct {
	BaseURL        string
	Timeout        time.Duration
	Mock           bool
	CountryCode    string
	DefaultNetwork string
}

type ConfirmationConfig struct {
	InitialWait time.Duration
	RetryWait   time.Duration
	MaxRounds   int
}

type StoreConfig struct {
	Kind string

	RegistrationsTable string
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string

	Postgres PostgresConfig
}

type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// DSN builds a libpq-compatible connection string.
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Name, p.SSLMode,
	)
}

type NotifierConfig struct {
	Kind          string
	MailtrapURL   string
	MailtrapToken string
	FromEmail     string
	FromName      string
}

// Load reads the configuration from environment variables, applying defaults for
// anything unset. Malformed numbers and durations are reported as errors.
func Load() (Config, error) {
	var errs []string

	duration := func(key string, def time.Duration) time.Duration {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d < 0 {
			errs = append(errs, fmt.Sprintf("%s: invalid duration %q", key, raw))
			return def
		}
		return d
	}
	integer := func(key string, def int) int {
		raw := os.Getenv(key)
		if raw == "" {
			return def
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			errs = append(errs, fmt.Sprintf("%s: invalid positive integer %q", key, raw))
			return def
		}
		return n
	}

	cfg := Config{
		Port: getenvDefault("PORT", "8080"),
		Gateway: GatewayConfig{
			BaseURL:        strings.TrimRight(os.Getenv("PAYMENT_GATEWAY_BASE_URL"), "/"),
			Timeout:        duration("PAYMENT_GATEWAY_TIMEOUT", 30*time.Second),
			Mock:           isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")),
			CountryCode:    getenvDefault("PAYMENT_COUNTRY_CODE", "233"),
			DefaultNetwork: getenvDefault("PAYMENT_DEFAULT_NETWORK", "mtn"),
		},
		Confirmation: ConfirmationConfig{
			InitialWait: duration("CONFIRMATION_INITIAL_WAIT", 15*time.Second),
			RetryWait:   duration("CONFIRMATION_RETRY_WAIT", 5*time.Second),
			MaxRounds:   integer("CONFIRMATION_MAX_ROUNDS", 30),
		},
		Store: StoreConfig{
			Kind:               strings.ToLower(getenvDefault("REGISTRATION_STORE", StoreDynamoDB)),
			RegistrationsTable: getenvDefault("REGISTRATIONS_TABLE", "registrations"),
			AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
			AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
			Postgres: PostgresConfig{
				Host:     getenvDefault("DB_HOST", "localhost"),
				Port:     getenvDefault("DB_PORT", "5432"),
				User:     getenvDefault("DB_USER", "postgres"),
				Password: getenvDefault("DB_PASSWORD", "postgres"),
				Name:     getenvDefault("DB_NAME", "ticket_checkout"),
				SSLMode:  getenvDefault("DB_SSLMODE", "disable"),
			},
		},
		Notifier: NotifierConfig{
			Kind:          strings.ToLower(getenvDefault("NOTIFIER", NotifierLog)),
			MailtrapURL:   getenvDefault("MAILTRAP_API_URL", "https://send.api.mailtrap.io/api/send"),
			MailtrapToken: os.Getenv("MAILTRAP_API_TOKEN"),
			FromEmail:     getenvDefault("EMAIL_FROM", "tickets@example.com"),
			FromName:      getenvDefault("EMAIL_FROM_NAME", "Ticket Checkout"),
		},
	}

	switch cfg.Store.Kind {
	case StoreDynamoDB, StorePostgres, StoreMemory:
	default:
		errs = append(errs, fmt.Sprintf("REGISTRATION_STORE: unknown store %q", cfg.Store.Kind))
	}
	switch cfg.Notifier.Kind {
	case NotifierLog, NotifierMailtrap:
	default:
		errs = append(errs, fmt.Sprintf("NOTIFIER: unknown notifier %q", cfg.Notifier.Kind))
	}

	if len(errs) > 0 {
		return cfg, fmt.Errorf("invalid configuration: %s", strings.Join(errs, "; "))
	}
	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
