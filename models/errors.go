package models

// Standard error codes for API responses
const (
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeInvalidDate  = "INVALID_DATE"
	ErrCodeDependency   = "DEPENDENCY_FAILURE"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// ErrorResponse is the JSON body sent for every failed request.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// DomainError carries an error code alongside a client-safe message.
// Dependency internals never go into Message; they are logged instead.
type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// NewDomainError creates a new domain error.
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
	}
}

// Common domain errors
var (
	ErrUserNotFound   = NewDomainError(ErrCodeNotFound, "User not found")
	ErrFoodNotFound   = NewDomainError(ErrCodeNotFound, "Food item not found")
	ErrReviewNotFound = NewDomainError(ErrCodeNotFound, "Review not found")
	ErrForbidden      = NewDomainError(ErrCodeForbidden, "You do not own this resource")
	ErrNameRequired   = NewDomainError(ErrCodeValidation, "Name is required")
	ErrRateOutOfRange = NewDomainError(ErrCodeValidation, "Rate must be between 1 and 5")
	ErrInvalidScale   = NewDomainError(ErrCodeValidation, "Taste and digestion must be one of: bad, ok, great")
	ErrInvalidDate    = NewDomainError(ErrCodeInvalidDate, "Invalid date format")
	ErrBadCredentials = NewDomainError(ErrCodeUnauthorized, "Invalid email or password")
	ErrStoreFailure   = NewDomainError(ErrCodeDependency, "Storage backend unavailable")
	ErrAssetFailure   = NewDomainError(ErrCodeDependency, "Image storage unavailable")
)
