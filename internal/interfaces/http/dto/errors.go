package dto

import (
	"net/http"
	"strings"
)

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeForbidden is used when the caller's role does not permit the operation
	ErrCodeForbidden = "ERR_FORBIDDEN"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
	// ErrCodeTokenRevoked is used when the auth token has been revoked
	ErrCodeTokenRevoked = "ERR_TOKEN_REVOKED"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes. Domain codes
// keep their original spelling so API clients can branch on them; only the
// generic plumbing codes wear the ERR_ prefix.
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeValidationFormat: http.StatusBadRequest,
	ErrCodeBadRequest:       http.StatusBadRequest,
	ErrCodeInvalidInput:     http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,
	ErrCodeTokenRevoked: http.StatusUnauthorized,
	ErrCodeForbidden:    http.StatusForbidden,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Domain resource errors
	"NOT_FOUND":            http.StatusNotFound,
	"ITEM_NOT_FOUND":       http.StatusNotFound,
	"ALREADY_EXISTS":       http.StatusConflict,
	"CONCURRENCY_CONFLICT": http.StatusConflict,
	"UNAUTHORIZED":         http.StatusUnauthorized,
	"FORBIDDEN":            http.StatusForbidden,
	"INVALID_INPUT":        http.StatusBadRequest,
	"EMPTY_ITEMS":          http.StatusBadRequest,
	"DUPLICATE_PRODUCT":    http.StatusBadRequest,
	"DUPLICATE_ITEM":       http.StatusBadRequest,

	// Domain business rule errors -> 422 Unprocessable Entity
	"INVALID_STATE":                       http.StatusUnprocessableEntity,
	"INSUFFICIENT_STOCK":                  http.StatusUnprocessableEntity,
	"INSUFFICIENT_CAPACITY":               http.StatusUnprocessableEntity,
	"INSUFFICIENT_APPROVED_QUANTITY":      http.StatusUnprocessableEntity,
	"INSUFFICIENT_SOURCE_QUANTITY":        http.StatusUnprocessableEntity,
	"INSUFFICIENT_RETURNABLE_QUANTITY":    http.StatusUnprocessableEntity,
	"MANAGER_NOT_FOUND":                   http.StatusUnprocessableEntity,
	"UNIT_MISMATCH":                       http.StatusUnprocessableEntity,
	"APPROVED_QUANTITY_EXCEEDS_REQUESTED": http.StatusUnprocessableEntity,
	"ACCEPTED_QUANTITY_EXCEEDS_CLAIMED":   http.StatusUnprocessableEntity,
	"CONSUMABLE_NOT_RETURNABLE":           http.StatusUnprocessableEntity,
	"RETURN_ALREADY_PENDING":              http.StatusUnprocessableEntity,
	"PRODUCT_NOT_REQUESTED":               http.StatusUnprocessableEntity,
}

// GetHTTPStatus returns the HTTP status code for an error code. Unknown
// INVALID_* codes are field validation failures; everything else unknown is
// treated as an internal error.
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	if strings.HasPrefix(code, "INVALID_") {
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

// arabicMessages localizes the error codes surfaced to end users. Codes
// missing here fall back to the domain's English message.
var arabicMessages = map[string]string{
	"NOT_FOUND":                           "العنصر غير موجود",
	"ITEM_NOT_FOUND":                      "البند غير موجود",
	"FORBIDDEN":                           "غير مصرح لك بتنفيذ هذه العملية",
	"UNAUTHORIZED":                        "يجب تسجيل الدخول أولاً",
	"INVALID_STATE":                       "العملية غير مسموحة في الحالة الحالية",
	"INSUFFICIENT_STOCK":                  "الكمية المتوفرة في المخزن غير كافية",
	"INSUFFICIENT_CAPACITY":               "السعة المتبقية في الموقع غير كافية",
	"INSUFFICIENT_APPROVED_QUANTITY":      "الكمية تتجاوز الكمية المعتمدة",
	"INSUFFICIENT_SOURCE_QUANTITY":        "الكمية تتجاوز الكمية غير الموزعة",
	"INSUFFICIENT_RETURNABLE_QUANTITY":    "الكمية تتجاوز الكمية القابلة للإرجاع",
	"MANAGER_NOT_FOUND":                   "تعذر تحديد المدير المسؤول عن الاعتماد",
	"UNIT_MISMATCH":                       "وحدة الصنف لا تطابق وحدة سعة الموقع",
	"APPROVED_QUANTITY_EXCEEDS_REQUESTED": "الكمية المعتمدة تتجاوز الكمية المطلوبة",
	"ACCEPTED_QUANTITY_EXCEEDS_CLAIMED":   "الكمية المقبولة تتجاوز الكمية المرتجعة",
	"CONSUMABLE_NOT_RETURNABLE":           "الأصناف الاستهلاكية غير قابلة للإرجاع",
	"RETURN_ALREADY_PENDING":              "يوجد طلب إرجاع قيد المراجعة لهذا البند",
	"PRODUCT_NOT_REQUESTED":               "الصنف غير موجود في الطلب",
	"EMPTY_ITEMS":                         "يجب إضافة بند واحد على الأقل",
	"DUPLICATE_PRODUCT":                   "لا يمكن تكرار الصنف في نفس المستند",
	"DUPLICATE_ITEM":                      "لا يمكن تكرار البند في نفس المستند",
}

// Localize picks the message for the Accept-Language preference. Only
// Arabic is localized; all other languages get the fallback.
func Localize(acceptLanguage, code, fallback string) string {
	if !strings.HasPrefix(strings.ToLower(acceptLanguage), "ar") {
		return fallback
	}
	if msg, ok := arabicMessages[code]; ok {
		return msg
	}
	return fallback
}
