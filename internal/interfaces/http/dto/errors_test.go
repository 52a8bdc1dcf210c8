package dto

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetHTTPStatus(t *testing.T) {
	tests := []struct {
		code   string
		status int
	}{
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeNotFound, http.StatusNotFound},
		{"NOT_FOUND", http.StatusNotFound},
		{"FORBIDDEN", http.StatusForbidden},
		{"EMPTY_ITEMS", http.StatusBadRequest},
		{"DUPLICATE_PRODUCT", http.StatusBadRequest},
		{"DUPLICATE_ITEM", http.StatusBadRequest},
		{"INVALID_STATE", http.StatusUnprocessableEntity},
		{"INSUFFICIENT_STOCK", http.StatusUnprocessableEntity},
		{"INSUFFICIENT_CAPACITY", http.StatusUnprocessableEntity},
		{"CONSUMABLE_NOT_RETURNABLE", http.StatusUnprocessableEntity},
		{"RETURN_ALREADY_PENDING", http.StatusUnprocessableEntity},
		{"PRODUCT_NOT_REQUESTED", http.StatusUnprocessableEntity},
		// Unlisted INVALID_* codes come from field validation.
		{"INVALID_QUANTITY", http.StatusBadRequest},
		{"INVALID_ROLE", http.StatusBadRequest},
		// Anything else unknown must not leak as a client error.
		{"SOMETHING_NEW", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.status, GetHTTPStatus(tt.code))
		})
	}
}

func TestLocalize(t *testing.T) {
	assert.Equal(t, "insufficient stock", Localize("en-US", "INSUFFICIENT_STOCK", "insufficient stock"))
	assert.Equal(t, "الكمية المتوفرة في المخزن غير كافية", Localize("ar", "INSUFFICIENT_STOCK", "insufficient stock"))
	assert.Equal(t, "الكمية المتوفرة في المخزن غير كافية", Localize("AR-SA,ar;q=0.9", "INSUFFICIENT_STOCK", "insufficient stock"))

	// Codes without a translation keep the English message.
	assert.Equal(t, "weird", Localize("ar", "SOMETHING_NEW", "weird"))
	assert.Equal(t, "fallback", Localize("", "INSUFFICIENT_STOCK", "fallback"))
}
