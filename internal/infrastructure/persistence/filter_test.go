package persistence

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/wms/backend/internal/domain/catalog"
	"github.com/wms/backend/internal/domain/shared"
)

func TestValidateSortOrder(t *testing.T) {
	assert.Equal(t, "ASC", ValidateSortOrder("asc"))
	assert.Equal(t, "ASC", ValidateSortOrder(" ASC "))
	assert.Equal(t, "DESC", ValidateSortOrder("desc"))
	assert.Equal(t, "DESC", ValidateSortOrder(""))
	assert.Equal(t, "DESC", ValidateSortOrder("sideways"))
}

func TestValidateSortField(t *testing.T) {
	assert.Equal(t, "code", ValidateSortField("code", ProductSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("", ProductSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("password", ProductSortFields, "created_at"))
	assert.Equal(t, "created_at", ValidateSortField("code; DROP TABLE products", ProductSortFields, "created_at"))
}

// newDryRunDB builds a gorm handle over sqlmock that renders SQL without
// executing it, so the generated clauses can be inspected.
func newDryRunDB(t *testing.T) *gorm.DB {
	t.Helper()

	sqlDB, _, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	return db
}

func TestApplyFilter_OrderAndPagination(t *testing.T) {
	db := newDryRunDB(t)

	filter := shared.Filter{Page: 3, PageSize: 20, OrderBy: "code", OrderDir: "asc"}
	var products []catalog.Product
	tx := applyFilter(db.Model(&catalog.Product{}), filter, ProductSortFields).Find(&products)
	require.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "ORDER BY code ASC")
	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
	assert.Equal(t, []interface{}{20, 40}, tx.Statement.Vars)
}

func TestApplyFilter_RejectsUnknownSortField(t *testing.T) {
	db := newDryRunDB(t)

	filter := shared.Filter{Page: 1, PageSize: 10, OrderBy: "1; DELETE FROM stocks", OrderDir: "asc"}
	var products []catalog.Product
	tx := applyFilter(db.Model(&catalog.Product{}), filter, ProductSortFields).Find(&products)
	require.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.Contains(t, sql, "ORDER BY created_at ASC")
	assert.NotContains(t, sql, "DELETE")
}

func TestApplyFilter_NoPaginationWhenUnset(t *testing.T) {
	db := newDryRunDB(t)

	var products []catalog.Product
	tx := applyFilter(db.Model(&catalog.Product{}), shared.Filter{}, ProductSortFields).Find(&products)
	require.NoError(t, tx.Error)

	sql := tx.Statement.SQL.String()
	assert.NotContains(t, sql, "LIMIT")
	assert.NotContains(t, sql, "OFFSET")
}
