package document

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/shared"
)

func newTestPurchaseRequest(t *testing.T) *PurchaseRequest {
	t.Helper()
	request, err := NewPurchaseRequest(
		uuid.New(), uuid.New(), uuid.New(),
		"replenish fasteners",
		[]PurchaseRequestLine{
			{ProductID: uuid.New(), Quantity: decimal.NewFromInt(100)},
		},
	)
	require.NoError(t, err)
	return request
}

func TestNewPurchaseRequest(t *testing.T) {
	request := newTestPurchaseRequest(t)

	assert.Equal(t, PurchaseRequestStatusPending, request.Status)
	require.Len(t, request.Items, 1)
	assert.True(t, request.Items[0].ApprovedQuantity.IsZero())
	assert.Len(t, request.GetDomainEvents(), 1)
}

func TestNewPurchaseRequest_Validation(t *testing.T) {
	lines := []PurchaseRequestLine{{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1)}}

	_, err := NewPurchaseRequest(uuid.Nil, uuid.New(), uuid.New(), "", lines)
	assert.Error(t, err)

	_, err = NewPurchaseRequest(uuid.New(), uuid.New(), uuid.Nil, "", lines)
	assert.ErrorIs(t, err, shared.ErrManagerNotFound)

	_, err = NewPurchaseRequest(uuid.New(), uuid.New(), uuid.New(), "", nil)
	assert.Error(t, err)
}

func TestPurchaseRequest_Approve(t *testing.T) {
	request := newTestPurchaseRequest(t)

	require.NoError(t, request.Approve(request.ManagerID))

	assert.Equal(t, PurchaseRequestStatusApproved, request.Status)
	assert.NotNil(t, request.DecidedAt)
	assert.True(t, request.Items[0].ApprovedQuantity.Equal(request.Items[0].RequestedQuantity))

	// Terminal.
	assert.ErrorIs(t, request.Approve(request.ManagerID), shared.ErrInvalidState)
	assert.ErrorIs(t, request.Reject(request.ManagerID), shared.ErrInvalidState)
}

func TestPurchaseRequest_Approve_WrongManager(t *testing.T) {
	request := newTestPurchaseRequest(t)
	assert.ErrorIs(t, request.Approve(uuid.New()), shared.ErrForbidden)
}

func TestPurchaseRequest_Reject(t *testing.T) {
	request := newTestPurchaseRequest(t)

	require.NoError(t, request.Reject(request.ManagerID))
	assert.Equal(t, PurchaseRequestStatusRejected, request.Status)
	assert.ErrorIs(t, request.Approve(request.ManagerID), shared.ErrInvalidState)
}

func TestPurchaseRequestStatus_CanTransitionTo(t *testing.T) {
	assert.True(t, PurchaseRequestStatusPending.CanTransitionTo(PurchaseRequestStatusApproved))
	assert.True(t, PurchaseRequestStatusPending.CanTransitionTo(PurchaseRequestStatusRejected))
	assert.False(t, PurchaseRequestStatusApproved.CanTransitionTo(PurchaseRequestStatusRejected))
	assert.False(t, PurchaseRequestStatusRejected.CanTransitionTo(PurchaseRequestStatusApproved))
}
