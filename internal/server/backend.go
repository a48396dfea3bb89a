package server

import (
	"context"
	"fmt"

	"personalfinance/internal/config"
	"personalfinance/internal/database"
	"personalfinance/internal/ledger"
	"personalfinance/internal/logger"
	"personalfinance/internal/services"
	"personalfinance/internal/store"
)

// Backend is an opened ledger session together with its audit trail.
type Backend struct {
	Ledger services.LedgerServicer
	Audit  services.AuditServicer

	db *database.Manager
}

// Open selects the KV backend named by cfg.StoreDriver, loads the ledger
// from it and returns the ready services. source tags audit entries with
// the surface that produced them ("api", "cli").
func Open(ctx context.Context, cfg *config.Config, source string) (*Backend, error) {
	log := logger.Get()

	var (
		kv    store.KV
		audit services.AuditServicer
		dbm   *database.Manager
	)

	switch cfg.StoreDriver {
	case config.DriverSQLite, config.DriverPostgres:
		m, err := database.NewManager(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := m.Migrate(); err != nil {
			_ = m.Close()
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		dbm = m
		kv = store.NewGormKV(m.DB())
		audit = services.NewAuditService(m.DB(), source)
	case config.DriverDynamoDB:
		d, err := store.OpenDynamoKV(ctx, store.DynamoConfig{
			Region:    cfg.AWSRegion,
			TableName: cfg.DynamoTable,
			Endpoint:  cfg.DynamoEndpoint,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to open dynamodb store: %w", err)
		}
		kv = d
		audit = services.NewAuditService(nil, source)
	case config.DriverMemory:
		kv = store.NewMemoryKV()
		audit = services.NewAuditService(nil, source)
	default:
		return nil, fmt.Errorf("unsupported store driver %q", cfg.StoreDriver)
	}

	ledgerService, err := services.NewLedgerService(ctx, store.New(kv, nil), ledger.New(), audit)
	if err != nil {
		if dbm != nil {
			_ = dbm.Close()
		}
		return nil, err
	}

	log.Infow("Ledger loaded", "store_driver", cfg.StoreDriver)
	return &Backend{Ledger: ledgerService, Audit: audit, db: dbm}, nil
}

// Close releases the database connection, if any.
func (b *Backend) Close() error {
	if b.db == nil {
		return nil
	}
	return b.db.Close()
}
