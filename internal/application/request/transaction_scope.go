package request

import (
	"context"

	"github.com/wms/backend/internal/domain/document"
)

// TransactionScope provides transactional access to the request repositories.
// Approval and rejection lock the request row, so they must run inside a
// transaction.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the request repositories
// within a transaction.
type TransactionalRepositories interface {
	// MaterialRequestRepo returns the material request repository scoped to the current transaction
	MaterialRequestRepo() document.MaterialRequestRepository
	// PurchaseRequestRepo returns the purchase request repository scoped to the current transaction
	PurchaseRequestRepo() document.PurchaseRequestRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	materialRequestRepo document.MaterialRequestRepository
	purchaseRequestRepo document.PurchaseRequestRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	materialRequestRepo document.MaterialRequestRepository,
	purchaseRequestRepo document.PurchaseRequestRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		materialRequestRepo: materialRequestRepo,
		purchaseRequestRepo: purchaseRequestRepo,
	}
}

// Execute runs the function without a real transaction (for testing).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// MaterialRequestRepo returns the material request repository.
func (s *NoOpTransactionScope) MaterialRequestRepo() document.MaterialRequestRepository {
	return s.materialRequestRepo
}

// PurchaseRequestRepo returns the purchase request repository.
func (s *NoOpTransactionScope) PurchaseRequestRepo() document.PurchaseRequestRepository {
	return s.purchaseRequestRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
