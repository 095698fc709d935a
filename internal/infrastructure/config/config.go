package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/shopspring/decimal"
)

const (
	StorageDriverDynamoDB = "dynamodb"
	StorageDriverMemory   = "memory"
)

// Config is the process configuration, read once at startup and passed down
// explicitly.
type Config struct {
	Port          int    `env:"PORT" envDefault:"8080"`
	StorageDriver string `env:"STORAGE_DRIVER" envDefault:"dynamodb"`

	// TaxRate is applied on top of the line sum when an order includes tax.
	TaxRate         string `env:"TAX_RATE" envDefault:"0.19"`
	ConflictRetries int    `env:"CONFLICT_RETRIES" envDefault:"3"`

	DynamoDB DynamoDB
}

// DynamoDB holds the connection and table settings. Local DynamoDB does not
// validate credentials, but the AWS SDK requires them.
type DynamoDB struct {
	Region          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	SecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	Endpoint        string `env:"DYNAMODB_ENDPOINT"`

	OrdersTable      string `env:"ORDERS_TABLE" envDefault:"orders"`
	ChargeLinesTable string `env:"CHARGE_LINES_TABLE" envDefault:"charge_lines"`
	InventoryTable   string `env:"INVENTORY_TABLE" envDefault:"inventory"`
	CatalogTable     string `env:"CATALOG_TABLE" envDefault:"catalog"`
	CountersTable    string `env:"COUNTERS_TABLE" envDefault:"counters"`
	IdempotencyTable string `env:"IDEMPOTENCY_TABLE" envDefault:"idempotency_keys"`
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.StorageDriver != StorageDriverDynamoDB && cfg.StorageDriver != StorageDriverMemory {
		return Config{}, fmt.Errorf("unsupported STORAGE_DRIVER %q", cfg.StorageDriver)
	}
	if _, err := cfg.TaxRateDecimal(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) TaxRateDecimal() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(c.TaxRate)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid TAX_RATE %q: %w", c.TaxRate, err)
	}
	if rate.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("invalid TAX_RATE %q: must not be negative", c.TaxRate)
	}
	return rate, nil
}
