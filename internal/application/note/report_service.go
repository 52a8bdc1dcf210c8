package note

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/wms/backend/internal/application/inventory"
	"github.com/wms/backend/internal/domain/document"
	"github.com/wms/backend/internal/domain/shared"
	"github.com/wms/backend/internal/domain/warehouse"
)

// ReportService handles scrap notes and installation reports. Both share the
// pending -> approved | rejected lifecycle; stock only moves on approval, in
// the approving transaction.
type ReportService struct {
	txScope TransactionScope
	logger  *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(txScope TransactionScope, logger *zap.Logger) *ReportService {
	return &ReportService{txScope: txScope, logger: logger}
}

// CreateScrapNote creates a pending scrap note. No stock moves until approval.
func (s *ReportService) CreateScrapNote(ctx context.Context, actor shared.Actor, input CreateScrapNoteInput) (*ScrapNoteResponse, error) {
	var note *document.ScrapNote

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		serial, err := mintSerial(ctx, repos.SequenceRepo(), document.DocTypeScrapNote)
		if err != nil {
			return err
		}

		lines := make([]document.ScrapLine, 0, len(input.Items))
		for _, item := range input.Items {
			lines = append(lines, document.ScrapLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Reason:    item.Reason,
			})
		}

		note, err = document.NewScrapNote(serial, input.WarehouseID, actor.ID, lines)
		if err != nil {
			return err
		}
		return repos.ScrapNoteRepo().Save(ctx, note)
	})
	if err != nil {
		return nil, err
	}

	response := ToScrapNoteResponse(note)
	return &response, nil
}

// ApproveScrapNote approves a pending scrap note and writes off its items
// from the ledger, all-or-nothing.
func (s *ReportService) ApproveScrapNote(ctx context.Context, actor shared.Actor, noteID uuid.UUID) (*ScrapNoteResponse, error) {
	var note *document.ScrapNote

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.ScrapNoteRepo().FindByIDForUpdate(ctx, noteID)
		if err != nil {
			return err
		}
		note = found

		if err := note.Approve(actor.ID); err != nil {
			return err
		}

		for _, item := range note.Items {
			err := inventory.DecreaseStock(ctx,
				repos.StockRepo(), repos.MovementRepo(),
				note.WarehouseID, item.ProductID, item.Quantity,
				warehouse.MovementTypeScrap, document.DocTypeScrapNote, note.ID, actor,
			)
			if err != nil {
				return err
			}
		}
		return repos.ScrapNoteRepo().Save(ctx, note)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("scrap note approved",
		zap.String("note_id", note.ID.String()),
		zap.String("decided_by", actor.ID.String()),
	)

	response := ToScrapNoteResponse(note)
	return &response, nil
}

// RejectScrapNote rejects a pending scrap note. Nothing moves.
func (s *ReportService) RejectScrapNote(ctx context.Context, actor shared.Actor, noteID uuid.UUID) (*ScrapNoteResponse, error) {
	var note *document.ScrapNote

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.ScrapNoteRepo().FindByIDForUpdate(ctx, noteID)
		if err != nil {
			return err
		}
		note = found
		if err := note.Reject(actor.ID); err != nil {
			return err
		}
		return repos.ScrapNoteRepo().Save(ctx, note)
	})
	if err != nil {
		return nil, err
	}

	response := ToScrapNoteResponse(note)
	return &response, nil
}

// GetScrapNote retrieves a scrap note by ID
func (s *ReportService) GetScrapNote(ctx context.Context, noteID uuid.UUID) (*ScrapNoteResponse, error) {
	var note *document.ScrapNote
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.ScrapNoteRepo().FindByID(ctx, noteID)
		if err != nil {
			return err
		}
		note = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	response := ToScrapNoteResponse(note)
	return &response, nil
}

// ListScrapNotesByWarehouse retrieves the scrap notes of a warehouse
func (s *ReportService) ListScrapNotesByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]ScrapNoteResponse, error) {
	var notes []document.ScrapNote
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.ScrapNoteRepo().FindByWarehouse(ctx, warehouseID, filter)
		if err != nil {
			return err
		}
		notes = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToScrapNoteResponses(notes), nil
}

// CreateInstallationReport creates a pending installation report
func (s *ReportService) CreateInstallationReport(ctx context.Context, actor shared.Actor, input CreateInstallationReportInput) (*InstallationReportResponse, error) {
	var report *document.InstallationReport

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		serial, err := mintSerial(ctx, repos.SequenceRepo(), document.DocTypeInstallationReport)
		if err != nil {
			return err
		}

		lines := make([]document.InstallationLine, 0, len(input.Items))
		for _, item := range input.Items {
			lines = append(lines, document.InstallationLine{
				ProductID: item.ProductID,
				Quantity:  item.Quantity,
				Source:    document.InstallationSource(item.Source),
			})
		}

		report, err = document.NewInstallationReport(serial, input.WarehouseID, actor.ID, input.Site, lines)
		if err != nil {
			return err
		}
		return repos.InstallationReportRepo().Save(ctx, report)
	})
	if err != nil {
		return nil, err
	}

	response := ToInstallationReportResponse(report)
	return &response, nil
}

// ApproveInstallationReport approves a pending report. Only stock-sourced
// items draw down the ledger; direct-purchase items never touched it.
func (s *ReportService) ApproveInstallationReport(ctx context.Context, actor shared.Actor, reportID uuid.UUID) (*InstallationReportResponse, error) {
	var report *document.InstallationReport

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.InstallationReportRepo().FindByIDForUpdate(ctx, reportID)
		if err != nil {
			return err
		}
		report = found

		if err := report.Approve(actor.ID); err != nil {
			return err
		}

		for _, item := range report.StockItems() {
			err := inventory.DecreaseStock(ctx,
				repos.StockRepo(), repos.MovementRepo(),
				report.WarehouseID, item.ProductID, item.Quantity,
				warehouse.MovementTypeInstall, document.DocTypeInstallationReport, report.ID, actor,
			)
			if err != nil {
				return err
			}
		}
		return repos.InstallationReportRepo().Save(ctx, report)
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("installation report approved",
		zap.String("report_id", report.ID.String()),
		zap.String("decided_by", actor.ID.String()),
	)

	response := ToInstallationReportResponse(report)
	return &response, nil
}

// RejectInstallationReport rejects a pending report
func (s *ReportService) RejectInstallationReport(ctx context.Context, actor shared.Actor, reportID uuid.UUID) (*InstallationReportResponse, error) {
	var report *document.InstallationReport

	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.InstallationReportRepo().FindByIDForUpdate(ctx, reportID)
		if err != nil {
			return err
		}
		report = found
		if err := report.Reject(actor.ID); err != nil {
			return err
		}
		return repos.InstallationReportRepo().Save(ctx, report)
	})
	if err != nil {
		return nil, err
	}

	response := ToInstallationReportResponse(report)
	return &response, nil
}

// GetInstallationReport retrieves a report by ID
func (s *ReportService) GetInstallationReport(ctx context.Context, reportID uuid.UUID) (*InstallationReportResponse, error) {
	var report *document.InstallationReport
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.InstallationReportRepo().FindByID(ctx, reportID)
		if err != nil {
			return err
		}
		report = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	response := ToInstallationReportResponse(report)
	return &response, nil
}

// ListInstallationReportsByWarehouse retrieves the reports of a warehouse
func (s *ReportService) ListInstallationReportsByWarehouse(ctx context.Context, warehouseID uuid.UUID, filter shared.Filter) ([]InstallationReportResponse, error) {
	var reports []document.InstallationReport
	err := s.txScope.Execute(ctx, func(repos TransactionalRepositories) error {
		found, err := repos.InstallationReportRepo().FindByWarehouse(ctx, warehouseID, filter)
		if err != nil {
			return err
		}
		reports = found
		return nil
	})
	if err != nil {
		return nil, err
	}
	return ToInstallationReportResponses(reports), nil
}
