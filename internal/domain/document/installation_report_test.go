package document

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wms/backend/internal/domain/shared"
)

func TestNewInstallationReport(t *testing.T) {
	report, err := NewInstallationReport("(1/1)", uuid.New(), uuid.New(), "building 4", []InstallationLine{
		{ProductID: uuid.New(), Quantity: decimal.NewFromInt(2), Source: InstallationSourceStock},
		{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1), Source: InstallationSourcePurchase},
	})
	require.NoError(t, err)

	assert.Equal(t, ReportStatusPending, report.Status)
	assert.Equal(t, "building 4", report.Site)
	assert.Len(t, report.Items, 2)
}

func TestNewInstallationReport_UnknownSource(t *testing.T) {
	_, err := NewInstallationReport("(1/1)", uuid.New(), uuid.New(), "", []InstallationLine{
		{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1), Source: InstallationSource("custody")},
	})
	assert.Error(t, err)
}

func TestInstallationReport_StockItems(t *testing.T) {
	stockProduct := uuid.New()
	report, err := NewInstallationReport("(1/1)", uuid.New(), uuid.New(), "", []InstallationLine{
		{ProductID: stockProduct, Quantity: decimal.NewFromInt(2), Source: InstallationSourceStock},
		{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1), Source: InstallationSourcePurchase},
	})
	require.NoError(t, err)

	stockItems := report.StockItems()
	require.Len(t, stockItems, 1)
	assert.Equal(t, stockProduct, stockItems[0].ProductID)
}

func TestInstallationReport_Decide(t *testing.T) {
	deciderID := uuid.New()
	line := InstallationLine{ProductID: uuid.New(), Quantity: decimal.NewFromInt(1), Source: InstallationSourceStock}

	report, err := NewInstallationReport("(1/1)", uuid.New(), uuid.New(), "", []InstallationLine{line})
	require.NoError(t, err)
	require.NoError(t, report.Approve(deciderID))
	assert.Equal(t, ReportStatusApproved, report.Status)
	assert.ErrorIs(t, report.Approve(deciderID), shared.ErrInvalidState)

	report, err = NewInstallationReport("(1/2)", uuid.New(), uuid.New(), "", []InstallationLine{line})
	require.NoError(t, err)
	require.NoError(t, report.Reject(deciderID))
	assert.Equal(t, ReportStatusRejected, report.Status)
	assert.ErrorIs(t, report.Reject(deciderID), shared.ErrInvalidState)
}

func TestInstallationSource_IsValid(t *testing.T) {
	assert.True(t, InstallationSourceStock.IsValid())
	assert.True(t, InstallationSourcePurchase.IsValid())
	assert.False(t, InstallationSource("").IsValid())
	assert.False(t, InstallationSource("custody").IsValid())
}
