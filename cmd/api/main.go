package main

import (
	"context"
	"log"

	_ "taller_ledger/docs"
	"taller_ledger/internal/adapter/http/routes"
	"taller_ledger/internal/adapter/persistence/memory"
	"taller_ledger/internal/adapter/persistence/repository"
	"taller_ledger/internal/infrastructure/config"
	"taller_ledger/internal/infrastructure/database"
	"taller_ledger/internal/usecase"
	"taller_ledger/internal/usecase/interfaces"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Taller Ledger API
// @version         1.0
// @description     Work order ledger for a repair shop: charge lines, nested parts, stock, totals and labor time.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	taxRate, err := cfg.TaxRateDecimal()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	store, err := newLedgerStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to connect to storage: %v", err)
	}

	workOrders := usecase.NewWorkOrderUseCase(store,
		usecase.WithTaxRate(taxRate),
		usecase.WithConflictRetries(cfg.ConflictRetries),
	)

	log.Printf("[app] starting port=%d storage=%s tax_rate=%s", cfg.Port, cfg.StorageDriver, taxRate.String())
	routes.Run(routes.NewRouter(workOrders), cfg.Port)
}

func newLedgerStore(ctx context.Context, cfg config.Config) (interfaces.ILedgerStore, error) {
	switch cfg.StorageDriver {
	case config.StorageDriverMemory:
		log.Printf("[app] using in-memory ledger store, data is lost on restart")
		return memory.NewLedgerMemoryRepository(), nil
	default:
		ddb, err := database.ConnectDynamoDB(ctx, cfg.DynamoDB)
		if err != nil {
			return nil, err
		}
		return repository.NewLedgerDynamoRepository(ddb, cfg.DynamoDB), nil
	}
}
