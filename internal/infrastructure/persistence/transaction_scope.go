package persistence

import (
	"context"

	"gorm.io/gorm"

	appcustody "github.com/wms/backend/internal/application/custody"
	appinv "github.com/wms/backend/internal/application/inventory"
	appnote "github.com/wms/backend/internal/application/note"
	apprequest "github.com/wms/backend/internal/application/request"
	"github.com/wms/backend/internal/domain/custody"
	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/warehouse"
)

// gormTxRepos hands out repositories bound to one transaction. It backs every
// application-layer TransactionalRepositories interface; each scope below
// exposes the subset its package asked for.
type gormTxRepos struct {
	tx *gorm.DB
}

func (r *gormTxRepos) StockRepo() warehouse.StockRepository {
	return NewGormStockRepository(r.tx)
}

func (r *gormTxRepos) LocationRepo() warehouse.LocationRepository {
	return NewGormLocationRepository(r.tx)
}

func (r *gormTxRepos) ProductLocationRepo() warehouse.ProductLocationRepository {
	return NewGormProductLocationRepository(r.tx)
}

func (r *gormTxRepos) MovementRepo() warehouse.ProductMovementRepository {
	return NewGormProductMovementRepository(r.tx)
}

func (r *gormTxRepos) SequenceRepo() warehouse.DocumentSequenceRepository {
	return NewGormDocumentSequenceRepository(r.tx)
}

func (r *gormTxRepos) MaterialRequestRepo() document.MaterialRequestRepository {
	return NewGormMaterialRequestRepository(r.tx)
}

func (r *gormTxRepos) PurchaseRequestRepo() document.PurchaseRequestRepository {
	return NewGormPurchaseRequestRepository(r.tx)
}

func (r *gormTxRepos) EntryNoteRepo() document.EntryNoteRepository {
	return NewGormEntryNoteRepository(r.tx)
}

func (r *gormTxRepos) ReceivingNoteRepo() document.ReceivingNoteRepository {
	return NewGormReceivingNoteRepository(r.tx)
}

func (r *gormTxRepos) ExitNoteRepo() document.ExitNoteRepository {
	return NewGormExitNoteRepository(r.tx)
}

func (r *gormTxRepos) ScrapNoteRepo() document.ScrapNoteRepository {
	return NewGormScrapNoteRepository(r.tx)
}

func (r *gormTxRepos) InstallationReportRepo() document.InstallationReportRepository {
	return NewGormInstallationReportRepository(r.tx)
}

func (r *gormTxRepos) CustodyRepo() custody.CustodyRepository {
	return NewGormCustodyRepository(r.tx)
}

func (r *gormTxRepos) CustodyReturnRepo() custody.CustodyReturnRepository {
	return NewGormCustodyReturnRepository(r.tx)
}

// GormInventoryTransactionScope implements the inventory package's
// TransactionScope using GORM transactions
type GormInventoryTransactionScope struct {
	db *gorm.DB
}

// NewGormInventoryTransactionScope creates a new GormInventoryTransactionScope
func NewGormInventoryTransactionScope(db *gorm.DB) *GormInventoryTransactionScope {
	return &GormInventoryTransactionScope{db: db}
}

// Execute runs the function within a database transaction
func (s *GormInventoryTransactionScope) Execute(ctx context.Context, fn func(repos appinv.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTxRepos{tx: tx})
	})
}

// GormRequestTransactionScope implements the request package's
// TransactionScope using GORM transactions
type GormRequestTransactionScope struct {
	db *gorm.DB
}

// NewGormRequestTransactionScope creates a new GormRequestTransactionScope
func NewGormRequestTransactionScope(db *gorm.DB) *GormRequestTransactionScope {
	return &GormRequestTransactionScope{db: db}
}

// Execute runs the function within a database transaction
func (s *GormRequestTransactionScope) Execute(ctx context.Context, fn func(repos apprequest.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTxRepos{tx: tx})
	})
}

// GormNoteTransactionScope implements the note package's TransactionScope
// using GORM transactions
type GormNoteTransactionScope struct {
	db *gorm.DB
}

// NewGormNoteTransactionScope creates a new GormNoteTransactionScope
func NewGormNoteTransactionScope(db *gorm.DB) *GormNoteTransactionScope {
	return &GormNoteTransactionScope{db: db}
}

// Execute runs the function within a database transaction
func (s *GormNoteTransactionScope) Execute(ctx context.Context, fn func(repos appnote.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTxRepos{tx: tx})
	})
}

// GormCustodyTransactionScope implements the custody package's
// TransactionScope using GORM transactions
type GormCustodyTransactionScope struct {
	db *gorm.DB
}

// NewGormCustodyTransactionScope creates a new GormCustodyTransactionScope
func NewGormCustodyTransactionScope(db *gorm.DB) *GormCustodyTransactionScope {
	return &GormCustodyTransactionScope{db: db}
}

// Execute runs the function within a database transaction
func (s *GormCustodyTransactionScope) Execute(ctx context.Context, fn func(repos appcustody.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTxRepos{tx: tx})
	})
}

var (
	_ appinv.TransactionScope     = (*GormInventoryTransactionScope)(nil)
	_ apprequest.TransactionScope = (*GormRequestTransactionScope)(nil)
	_ appnote.TransactionScope    = (*GormNoteTransactionScope)(nil)
	_ appcustody.TransactionScope = (*GormCustodyTransactionScope)(nil)

	_ appinv.TransactionalRepositories     = (*gormTxRepos)(nil)
	_ apprequest.TransactionalRepositories = (*gormTxRepos)(nil)
	_ appnote.TransactionalRepositories    = (*gormTxRepos)(nil)
	_ appcustody.TransactionalRepositories = (*gormTxRepos)(nil)
)
