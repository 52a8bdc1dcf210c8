package custody

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/shared"
)

func newTestReturn(t *testing.T, lines int) *CustodyReturn {
	t.Helper()
	rl := make([]CustodyReturnLine, 0, lines)
	for i := 0; i < lines; i++ {
		rl = append(rl, CustodyReturnLine{CustodyItemID: uuid.New(), ReturnedQuantity: decimal.NewFromInt(3)})
	}
	r, err := NewCustodyReturn(uuid.New(), rl)
	require.NoError(t, err)
	return r
}

func TestNewCustodyReturn(t *testing.T) {
	r := newTestReturn(t, 2)

	assert.Equal(t, CustodyReturnStatusPending, r.Status)
	require.Len(t, r.Items, 2)
	for _, item := range r.Items {
		assert.Equal(t, CustodyReturnItemStatusPendingReview, item.Status)
		assert.True(t, item.ReturnedQuantityAccepted.IsZero())
	}
}

func TestNewCustodyReturn_Validation(t *testing.T) {
	_, err := NewCustodyReturn(uuid.Nil, []CustodyReturnLine{{CustodyItemID: uuid.New(), ReturnedQuantity: decimal.NewFromInt(1)}})
	assert.Error(t, err)

	_, err = NewCustodyReturn(uuid.New(), nil)
	assert.Error(t, err)

	_, err = NewCustodyReturn(uuid.New(), []CustodyReturnLine{{CustodyItemID: uuid.New(), ReturnedQuantity: decimal.Zero}})
	assert.Error(t, err)
}

func TestCustodyReturnItem_Accept(t *testing.T) {
	r := newTestReturn(t, 1)
	item := &r.Items[0] // claimed 3
	keeperID := uuid.New()

	require.NoError(t, item.Accept(decimal.NewFromInt(2), keeperID))

	assert.Equal(t, CustodyReturnItemStatusAccepted, item.Status)
	assert.True(t, item.ReturnedQuantityAccepted.Equal(decimal.NewFromInt(2)))
	require.NotNil(t, item.ProcessedByID)
	assert.Equal(t, keeperID, *item.ProcessedByID)
	assert.NotNil(t, item.ProcessedAt)
}

func TestCustodyReturnItem_Accept_ExceedsClaimed(t *testing.T) {
	r := newTestReturn(t, 1)
	item := &r.Items[0]

	err := item.Accept(decimal.NewFromInt(4), uuid.New())
	require.Error(t, err)

	var domainErr *shared.DomainError
	require.ErrorAs(t, err, &domainErr)
	assert.Equal(t, "ACCEPTED_QUANTITY_EXCEEDS_CLAIMED", domainErr.Code)
	assert.Equal(t, CustodyReturnItemStatusPendingReview, item.Status)
}

func TestCustodyReturnItem_Accept_Twice(t *testing.T) {
	r := newTestReturn(t, 1)
	item := &r.Items[0]
	require.NoError(t, item.Accept(decimal.NewFromInt(3), uuid.New()))

	assert.ErrorIs(t, item.Accept(decimal.NewFromInt(1), uuid.New()), shared.ErrInvalidState)
}

func TestCustodyReturnItem_Decline(t *testing.T) {
	for _, status := range []CustodyReturnItemStatus{
		CustodyReturnItemStatusRejected,
		CustodyReturnItemStatusDamaged,
		CustodyReturnItemStatusTotalLoss,
	} {
		r := newTestReturn(t, 1)
		item := &r.Items[0]

		require.NoError(t, item.Decline(status, uuid.New()))
		assert.Equal(t, status, item.Status)
		assert.True(t, item.ReturnedQuantityAccepted.IsZero())
	}
}

func TestCustodyReturnItem_Decline_InvalidOutcome(t *testing.T) {
	r := newTestReturn(t, 1)
	item := &r.Items[0]

	assert.Error(t, item.Decline(CustodyReturnItemStatusAccepted, uuid.New()))
	assert.Error(t, item.Decline(CustodyReturnItemStatusPendingReview, uuid.New()))
}

func TestCustodyReturn_RecomputeStatus(t *testing.T) {
	keeperID := uuid.New()

	t.Run("stays pending while items in review", func(t *testing.T) {
		r := newTestReturn(t, 2)
		require.NoError(t, r.Items[0].Accept(decimal.NewFromInt(3), keeperID))
		r.RecomputeStatus()
		assert.Equal(t, CustodyReturnStatusPending, r.Status)
	})

	t.Run("completed when all accepted", func(t *testing.T) {
		r := newTestReturn(t, 2)
		require.NoError(t, r.Items[0].Accept(decimal.NewFromInt(3), keeperID))
		require.NoError(t, r.Items[1].Accept(decimal.NewFromInt(1), keeperID))
		r.RecomputeStatus()
		assert.Equal(t, CustodyReturnStatusCompleted, r.Status)
	})

	t.Run("partially completed when any item declined", func(t *testing.T) {
		r := newTestReturn(t, 2)
		require.NoError(t, r.Items[0].Accept(decimal.NewFromInt(3), keeperID))
		require.NoError(t, r.Items[1].Decline(CustodyReturnItemStatusDamaged, keeperID))
		r.RecomputeStatus()
		assert.Equal(t, CustodyReturnStatusPartiallyCompleted, r.Status)
	})

	t.Run("partially completed when all declined", func(t *testing.T) {
		r := newTestReturn(t, 2)
		require.NoError(t, r.Items[0].Decline(CustodyReturnItemStatusRejected, keeperID))
		require.NoError(t, r.Items[1].Decline(CustodyReturnItemStatusTotalLoss, keeperID))
		r.RecomputeStatus()
		assert.Equal(t, CustodyReturnStatusPartiallyCompleted, r.Status)
	})
}

func TestCustodyReturnItemStatus_IsTerminal(t *testing.T) {
	assert.False(t, CustodyReturnItemStatusPendingReview.IsTerminal())
	assert.True(t, CustodyReturnItemStatusAccepted.IsTerminal())
	assert.True(t, CustodyReturnItemStatusRejected.IsTerminal())
	assert.True(t, CustodyReturnItemStatusDamaged.IsTerminal())
	assert.True(t, CustodyReturnItemStatusTotalLoss.IsTerminal())
	assert.False(t, CustodyReturnItemStatus("lost").IsTerminal())
}
