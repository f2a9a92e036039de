package testutil

import (
	"database/sql"
	"testing"

	"github.com/google/uuid"

	"github.com/brickfolio/property-portfolio-backend/internal/repository"
	"github.com/brickfolio/property-portfolio-backend/internal/service"
)

// MakeID returns a fresh UUID string for test fixtures.
func MakeID() string {
	return uuid.New().String()
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestOwnerService(t *testing.T, db *sql.DB) *service.OwnerService {
	t.Helper()

	ownerRepo := repository.NewOwnerRepository(db)

	return service.NewOwnerService(ownerRepo)
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	return service.NewTransactionService(
		transactionRepo,
		propertyRepo,
	)
}

func NewTestPropertyService(t *testing.T, db *sql.DB) *service.PropertyService {
	t.Helper()

	propertyRepo := repository.NewPropertyRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	liquidationRepo := repository.NewLiquidationRepository(db)

	return service.NewPropertyService(
		db,
		propertyRepo,
		transactionRepo,
		liquidationRepo,
	)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	propertyRepo := repository.NewPropertyRepository(db)
	transactionService := NewTestTransactionService(t, db)

	return service.NewPortfolioService(
		propertyRepo,
		transactionService,
	)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	propertyRepo := repository.NewPropertyRepository(db)

	return service.NewSnapshotService(
		snapshotRepo,
		propertyRepo,
	)
}
