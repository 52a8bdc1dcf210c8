package shared

// DomainError represents a domain-level error
type DomainError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Error implements the error interface
func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrNotFound            = NewDomainError("NOT_FOUND", "Resource not found")
	ErrAlreadyExists       = NewDomainError("ALREADY_EXISTS", "Resource already exists")
	ErrInvalidInput        = NewDomainError("INVALID_INPUT", "Invalid input provided")
	ErrConcurrencyConflict = NewDomainError("CONCURRENCY_CONFLICT", "Resource was modified by another process")
	ErrUnauthorized        = NewDomainError("UNAUTHORIZED", "Not authorized to perform this action")
	ErrForbidden           = NewDomainError("FORBIDDEN", "Access to this resource is forbidden")
	ErrInvalidState        = NewDomainError("INVALID_STATE", "Operation not allowed in current state")
)

// Stock and capacity errors shared by the ledger and the document workflows
var (
	ErrInsufficientStock            = NewDomainError("INSUFFICIENT_STOCK", "Insufficient stock available")
	ErrInsufficientCapacity         = NewDomainError("INSUFFICIENT_CAPACITY", "Insufficient location capacity")
	ErrInsufficientApprovedQuantity = NewDomainError("INSUFFICIENT_APPROVED_QUANTITY", "Quantity exceeds the approved quantity")
	ErrInsufficientSourceQuantity   = NewDomainError("INSUFFICIENT_SOURCE_QUANTITY", "Quantity exceeds the unassigned source quantity")
	ErrManagerNotFound              = NewDomainError("MANAGER_NOT_FOUND", "No approving manager could be resolved")
	ErrUnitMismatch                 = NewDomainError("UNIT_MISMATCH", "Product unit does not match location capacity unit")
)
