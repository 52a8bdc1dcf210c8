package note

import (
	"context"

	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/warehouse"
)

// TransactionScope provides transactional access to the repositories touched
// by note issuance. Serial minting, note insertion, ledger mutation and the
// movement audit all commit or roll back together.
type TransactionScope interface {
	// Execute runs the given function within a database transaction.
	// If the function returns an error, the transaction is rolled back.
	// If the function succeeds, the transaction is committed.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories provides access to the note, ledger and sequence
// repositories within a transaction.
type TransactionalRepositories interface {
	// StockRepo returns the stock ledger repository scoped to the current transaction
	StockRepo() warehouse.StockRepository
	// MovementRepo returns the movement audit repository scoped to the current transaction
	MovementRepo() warehouse.ProductMovementRepository
	// SequenceRepo returns the serial sequence repository scoped to the current transaction
	SequenceRepo() warehouse.DocumentSequenceRepository
	// EntryNoteRepo returns the entry note repository scoped to the current transaction
	EntryNoteRepo() document.EntryNoteRepository
	// ReceivingNoteRepo returns the receiving note repository scoped to the current transaction
	ReceivingNoteRepo() document.ReceivingNoteRepository
	// ExitNoteRepo returns the exit note repository scoped to the current transaction
	ExitNoteRepo() document.ExitNoteRepository
	// ScrapNoteRepo returns the scrap note repository scoped to the current transaction
	ScrapNoteRepo() document.ScrapNoteRepository
	// InstallationReportRepo returns the installation report repository scoped to the current transaction
	InstallationReportRepo() document.InstallationReportRepository
	// MaterialRequestRepo returns the material request repository scoped to the current transaction
	MaterialRequestRepo() document.MaterialRequestRepository
}

// NoOpTransactionScope is a transaction scope that doesn't actually use
// transactions. This is useful for testing.
type NoOpTransactionScope struct {
	stockRepo              warehouse.StockRepository
	movementRepo           warehouse.ProductMovementRepository
	sequenceRepo           warehouse.DocumentSequenceRepository
	entryNoteRepo          document.EntryNoteRepository
	receivingNoteRepo      document.ReceivingNoteRepository
	exitNoteRepo           document.ExitNoteRepository
	scrapNoteRepo          document.ScrapNoteRepository
	installationReportRepo document.InstallationReportRepository
	materialRequestRepo    document.MaterialRequestRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope with the given repositories.
func NewNoOpTransactionScope(
	stockRepo warehouse.StockRepository,
	movementRepo warehouse.ProductMovementRepository,
	sequenceRepo warehouse.DocumentSequenceRepository,
	entryNoteRepo document.EntryNoteRepository,
	receivingNoteRepo document.ReceivingNoteRepository,
	exitNoteRepo document.ExitNoteRepository,
	scrapNoteRepo document.ScrapNoteRepository,
	installationReportRepo document.InstallationReportRepository,
	materialRequestRepo document.MaterialRequestRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		stockRepo:              stockRepo,
		movementRepo:           movementRepo,
		sequenceRepo:           sequenceRepo,
		entryNoteRepo:          entryNoteRepo,
		receivingNoteRepo:      receivingNoteRepo,
		exitNoteRepo:           exitNoteRepo,
		scrapNoteRepo:          scrapNoteRepo,
		installationReportRepo: installationReportRepo,
		materialRequestRepo:    materialRequestRepo,
	}
}

// Execute runs the function without a real transaction (for testing).
func (s *NoOpTransactionScope) Execute(_ context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// StockRepo returns the stock ledger repository.
func (s *NoOpTransactionScope) StockRepo() warehouse.StockRepository { return s.stockRepo }

// MovementRepo returns the movement audit repository.
func (s *NoOpTransactionScope) MovementRepo() warehouse.ProductMovementRepository {
	return s.movementRepo
}

// SequenceRepo returns the serial sequence repository.
func (s *NoOpTransactionScope) SequenceRepo() warehouse.DocumentSequenceRepository {
	return s.sequenceRepo
}

// EntryNoteRepo returns the entry note repository.
func (s *NoOpTransactionScope) EntryNoteRepo() document.EntryNoteRepository { return s.entryNoteRepo }

// ReceivingNoteRepo returns the receiving note repository.
func (s *NoOpTransactionScope) ReceivingNoteRepo() document.ReceivingNoteRepository {
	return s.receivingNoteRepo
}

// ExitNoteRepo returns the exit note repository.
func (s *NoOpTransactionScope) ExitNoteRepo() document.ExitNoteRepository { return s.exitNoteRepo }

// ScrapNoteRepo returns the scrap note repository.
func (s *NoOpTransactionScope) ScrapNoteRepo() document.ScrapNoteRepository { return s.scrapNoteRepo }

// InstallationReportRepo returns the installation report repository.
func (s *NoOpTransactionScope) InstallationReportRepo() document.InstallationReportRepository {
	return s.installationReportRepo
}

// MaterialRequestRepo returns the material request repository.
func (s *NoOpTransactionScope) MaterialRequestRepo() document.MaterialRequestRepository {
	return s.materialRequestRepo
}

// Ensure NoOpTransactionScope implements both interfaces
var _ TransactionScope = (*NoOpTransactionScope)(nil)
var _ TransactionalRepositories = (*NoOpTransactionScope)(nil)
