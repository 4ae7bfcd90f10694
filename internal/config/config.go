package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v6"
)

// Supported ORDER_STORE values.
const (
	StoreMemory    = "memory"
	StoreDynamoDB  = "dynamodb"
	StoreMongoDB   = "mongodb"
	StoreFirestore = "firestore"
)

// Config is read from the environment (a .env file is autoloaded by cmd/api).
type Config struct {
	Port               int    `env:"PORT" envDefault:"8080"`
	OrderStore         string `env:"ORDER_STORE" envDefault:"memory"`
	OrdersCollection   string `env:"ORDERS_COLLECTION" envDefault:"pedidos"`
	PaymentsCollection string `env:"PAYMENTS_COLLECTION" envDefault:"pagamentos"`
	BusinessTimezone   string `env:"BUSINESS_TIMEZONE" envDefault:"America/Sao_Paulo"`

	AWS      AWSConfig
	Mongo    MongoConfig
	Firebase FirebaseConfig
	NATS     NATSConfig
	Feed     FeedConfig
	Payments PaymentsConfig
	Log      LogConfig
}

type AWSConfig struct {
	Region           string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID      string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey  string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint string `env:"DYNAMODB_ENDPOINT"`
}

type MongoConfig struct {
	URI      string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	Database string `env:"MONGODB_DATABASE" envDefault:"gashub"`
}

// FirebaseConfig enables Firestore storage and ID token verification.
// Without a project id, sessions are anonymous.
type FirebaseConfig struct {
	ProjectID       string `env:"FIREBASE_PROJECT_ID"`
	CredentialsPath string `env:"FIREBASE_CREDENTIALS_PATH"`
}

type NATSConfig struct {
	URL     string `env:"NATS_URL"`
	Subject string `env:"NATS_SUBJECT" envDefault:"pedidos.changed"`
}

type FeedConfig struct {
	RefreshInterval time.Duration `env:"FEED_REFRESH_INTERVAL" envDefault:"30s"`
}

type PaymentsConfig struct {
	MercadoPagoAccessToken string `env:"MERCADOPAGO_ACCESS_TOKEN"`
	TestPayerEmail         string `env:"MERCADOPAGO_TEST_PAYER_EMAIL"`
	GatewayMock            bool   `env:"PAYMENT_GATEWAY_MOCK" envDefault:"false"`
}

type LogConfig struct {
	Level      string `env:"LOG_LEVEL" envDefault:"info"`
	Format     string `env:"LOG_FORMAT" envDefault:"json"`
	File       string `env:"LOG_FILE"`
	MaxSize    int    `env:"LOG_MAX_SIZE" envDefault:"100"`
	MaxBackups int    `env:"LOG_MAX_BACKUPS" envDefault:"7"`
	MaxAge     int    `env:"LOG_MAX_AGE" envDefault:"7"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	cfg.OrderStore = strings.ToLower(strings.TrimSpace(cfg.OrderStore))

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("PORT must be between 1 and 65535")
	}
	switch c.OrderStore {
	case StoreMemory, StoreDynamoDB, StoreMongoDB:
	case StoreFirestore:
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("FIREBASE_PROJECT_ID is required for the firestore store")
		}
	default:
		return fmt.Errorf("unknown ORDER_STORE %q", c.OrderStore)
	}
	if strings.TrimSpace(c.OrdersCollection) == "" {
		return fmt.Errorf("ORDERS_COLLECTION is required")
	}
	if strings.TrimSpace(c.PaymentsCollection) == "" {
		return fmt.Errorf("PAYMENTS_COLLECTION is required")
	}
	if c.Feed.RefreshInterval < 0 {
		return fmt.Errorf("FEED_REFRESH_INTERVAL cannot be negative")
	}
	if c.NATS.URL != "" && strings.TrimSpace(c.NATS.Subject) == "" {
		return fmt.Errorf("NATS_SUBJECT is required when NATS_URL is set")
	}
	return nil
}

// Location resolves BUSINESS_TIMEZONE, the zone in which "today" is evaluated.
func (c *Config) Location() (*time.Location, error) {
	return time.LoadLocation(c.BusinessTimezone)
}
