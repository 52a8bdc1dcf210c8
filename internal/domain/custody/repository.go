package custody

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/wms/backend/internal/domain/shared"
)

// CustodyRepository defines persistence operations for custodies
type CustodyRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*Custody, error)
	FindItemByID(ctx context.Context, itemID uuid.UUID) (*CustodyItem, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]Custody, error)
	Save(ctx context.Context, c *Custody) error
}

// CustodyReturnRepository defines persistence operations for return batches.
// FindByIDForUpdate locks the parent row so two keepers adjudicating items
// of the same batch serialize on the parent status recomputation.
type CustodyReturnRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*CustodyReturn, error)
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*CustodyReturn, error)
	FindByUser(ctx context.Context, userID uuid.UUID, filter shared.Filter) ([]CustodyReturn, error)
	// HasPendingReviewForCustodyItem reports whether any return item in
	// pending_review already references the custody item, optionally
	// excluding one return batch.
	HasPendingReviewForCustodyItem(ctx context.Context, custodyItemID uuid.UUID) (bool, error)
	// SumAcceptedForCustodyItem sums accepted quantities across all return
	// items referencing the custody item.
	SumAcceptedForCustodyItem(ctx context.Context, custodyItemID uuid.UUID) (decimal.Decimal, error)
	Save(ctx context.Context, r *CustodyReturn) error
}
