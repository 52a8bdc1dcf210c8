package custody

import (
	"context"

	"github.com/wms/backend/internal/domain/custody"
	"github.com/wms/backend/internal/domain/warehouse"
)

// TransactionScope provides transactional access to the custody repositories.
// Return creation and item adjudication validate and mutate across
// aggregates, so they run inside one transaction.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the custody, return and
// ledger repositories within a transaction.
type TransactionalRepositories interface {
	// CustodyRepo returns the custody repository scoped to the current transaction
	CustodyRepo() custody.CustodyRepository
	// CustodyReturnRepo returns the return repository scoped to the current transaction
	CustodyReturnRepo() custody.CustodyReturnRepository
	// StockRepo returns the stock ledger repository scoped to the current transaction
	StockRepo() warehouse.StockRepository
	// MovementRepo returns the movement audit repository scoped to the current transaction
	MovementRepo() warehouse.ProductMovementRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	custodyRepo       custody.CustodyRepository
	custodyReturnRepo custody.CustodyReturnRepository
	stockRepo         warehouse.StockRepository
	movementRepo      warehouse.ProductMovementRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	custodyRepo custody.CustodyRepository,
	custodyReturnRepo custody.CustodyReturnRepository,
	stockRepo warehouse.StockRepository,
	movementRepo warehouse.ProductMovementRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		custodyRepo:       custodyRepo,
		custodyReturnRepo: custodyReturnRepo,
		stockRepo:         stockRepo,
		movementRepo:      movementRepo,
	}
}

// Execute runs the function without a real transaction (for testing).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// CustodyRepo returns the custody repository.
func (s *NoOpTransactionScope) CustodyRepo() custody.CustodyRepository { return s.custodyRepo }

// CustodyReturnRepo returns the return repository.
func (s *NoOpTransactionScope) CustodyReturnRepo() custody.CustodyReturnRepository {
	return s.custodyReturnRepo
}

// StockRepo returns the stock ledger repository.
func (s *NoOpTransactionScope) StockRepo() warehouse.StockRepository { return s.stockRepo }

// MovementRepo returns the movement audit repository.
func (s *NoOpTransactionScope) MovementRepo() warehouse.ProductMovementRepository {
	return s.movementRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
