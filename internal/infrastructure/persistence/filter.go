package persistence

import (
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/wms/backend/internal/domain/shared"
)

// ValidateSortOrder normalizes the sort order to ASC or DESC, defaulting to DESC
func ValidateSortOrder(orderDir string) string {
	if strings.ToUpper(strings.TrimSpace(orderDir)) == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed
// fields and falls back to defaultField. Sort fields are interpolated into the
// ORDER BY clause, so they must never come from user input unvalidated.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" || !allowedFields[trimmed] {
		return defaultField
	}
	return trimmed
}

// CommonSortFields contains fields common to most entities
var CommonSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
}

// ProductSortFields contains allowed sort fields for products
var ProductSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"updated_at": true,
	"code":       true,
	"name":       true,
	"unit":       true,
}

// StockSortFields contains allowed sort fields for stock ledger rows
var StockSortFields = map[string]bool{
	"id":           true,
	"created_at":   true,
	"updated_at":   true,
	"product_id":   true,
	"warehouse_id": true,
	"quantity":     true,
}

// DocumentSortFields contains allowed sort fields for notes and requests
var DocumentSortFields = map[string]bool{
	"id":            true,
	"created_at":    true,
	"updated_at":    true,
	"serial_number": true,
	"status":        true,
	"warehouse_id":  true,
}

// applyFilter applies ordering and pagination from the filter. The sort field
// is validated against the whitelist before being interpolated.
func applyFilter(db *gorm.DB, filter shared.Filter, allowedSortFields map[string]bool) *gorm.DB {
	sortField := ValidateSortField(filter.OrderBy, allowedSortFields, "created_at")
	db = db.Order(fmt.Sprintf("%s %s", sortField, ValidateSortOrder(filter.OrderDir)))

	if filter.Page > 0 && filter.PageSize > 0 {
		db = db.Offset((filter.Page - 1) * filter.PageSize).Limit(filter.PageSize)
	}
	return db
}
