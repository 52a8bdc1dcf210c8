package inventory

import (
	"context"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/warehouse"
)

// TransactionScope provides transactional access to the inventory repositories.
// When a function is executed within a transaction scope, all repository operations
// will be part of the same database transaction and will be committed or rolled back atomically.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the repositories touched by
// location assignment and ledger queries within a transaction. All
// repositories returned share the same underlying database transaction.
type TransactionalRepositories interface {
	// StockRepo returns the stock ledger repository scoped to the current transaction
	StockRepo() warehouse.StockRepository
	// LocationRepo returns the location repository scoped to the current transaction
	LocationRepo() warehouse.LocationRepository
	// ProductLocationRepo returns the placement repository scoped to the current transaction
	ProductLocationRepo() warehouse.ProductLocationRepository
	// MovementRepo returns the movement audit repository scoped to the current transaction
	MovementRepo() warehouse.ProductMovementRepository
	// ReceivingNoteRepo returns the receiving note repository scoped to the current transaction
	ReceivingNoteRepo() document.ReceivingNoteRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	stockRepo           warehouse.StockRepository
	locationRepo        warehouse.LocationRepository
	productLocationRepo warehouse.ProductLocationRepository
	movementRepo        warehouse.ProductMovementRepository
	receivingNoteRepo   document.ReceivingNoteRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	stockRepo warehouse.StockRepository,
	locationRepo warehouse.LocationRepository,
	productLocationRepo warehouse.ProductLocationRepository,
	movementRepo warehouse.ProductMovementRepository,
	receivingNoteRepo document.ReceivingNoteRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		stockRepo:           stockRepo,
		locationRepo:        locationRepo,
		productLocationRepo: productLocationRepo,
		movementRepo:        movementRepo,
		receivingNoteRepo:   receivingNoteRepo,
	}
}

// Execute runs the function without a real transaction (for testing).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockRepo returns the stock ledger repository.
func (s *NoOpTransactionScope) StockRepo() warehouse.StockRepository {
	return s.stockRepo
}

// LocationRepo returns the location repository.
func (s *NoOpTransactionScope) LocationRepo() warehouse.LocationRepository {
	return s.locationRepo
}

// ProductLocationRepo returns the placement repository.
func (s *NoOpTransactionScope) ProductLocationRepo() warehouse.ProductLocationRepository {
	return s.productLocationRepo
}

// MovementRepo returns the movement audit repository.
func (s *NoOpTransactionScope) MovementRepo() warehouse.ProductMovementRepository {
	return s.movementRepo
}

// ReceivingNoteRepo returns the receiving note repository.
func (s *NoOpTransactionScope) ReceivingNoteRepo() document.ReceivingNoteRepository {
	return s.receivingNoteRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
