// Package errors defines the application error taxonomy. Every error that can
// cross the usecase boundary maps to an HTTP status, a stable business code and
// a user-facing message.
package errors

import (
	"fmt"
	"net/http"

	"market/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Authentication-related errors
	ErrUnauthenticated = NewBaseError(
		http.StatusUnauthorized,
		"UNAUTHENTICATED",
		"not authenticated",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"wrong email or password",
		"",
	)

	// Registration-related errors
	ErrEmailAlreadyExists = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_EXISTS",
		"a user with this email already exists",
		"",
	)

	ErrPasswordMismatch = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_MISMATCH",
		"passwords do not match",
		"",
	)

	// Role and ownership gates. A principal whose account has no profile at
	// all is blocked from acting, which is a permission failure rather than
	// a lookup failure.
	ErrNoProfile = NewBaseError(
		http.StatusForbidden,
		"NO_PROFILE",
		"no profile found",
		"",
	)

	ErrNotBusinessOffer = NewBaseError(
		http.StatusForbidden,
		"NOT_BUSINESS",
		"only business profiles may create offers",
		"",
	)

	ErrNotCustomerOrder = NewBaseError(
		http.StatusForbidden,
		"NOT_CUSTOMER",
		"only customer profiles may create orders",
		"",
	)

	ErrNotCustomerReview = NewBaseError(
		http.StatusForbidden,
		"NOT_CUSTOMER",
		"only customer profiles may create reviews",
		"",
	)

	ErrNotOrderBusiness = NewBaseError(
		http.StatusForbidden,
		"NOT_ORDER_BUSINESS",
		"only the business partner may change order status",
		"",
	)

	ErrNotOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_OWNER",
		"you do not have permission to modify this resource",
		"",
	)

	ErrAdminOnly = NewBaseError(
		http.StatusForbidden,
		"ADMIN_ONLY",
		"only administrators may delete orders",
		"",
	)

	// Offer validation errors
	ErrDetailCount = NewBaseError(
		http.StatusBadRequest,
		"DETAIL_COUNT",
		"an offer must contain exactly 3 details",
		"",
	)

	ErrTierSet = NewBaseError(
		http.StatusBadRequest,
		"TIER_SET",
		"offer details must contain exactly the offer types 'basic', 'standard' and 'premium'",
		"",
	)

	ErrTierRequired = NewBaseError(
		http.StatusBadRequest,
		"TIER_REQUIRED",
		"'offer_type' is required for every detail",
		"",
	)

	// Order validation errors
	ErrOfferDetailNotFound = NewBaseError(
		http.StatusNotFound,
		"OFFER_DETAIL_NOT_FOUND",
		"the specified offer detail was not found",
		"",
	)

	ErrOfferWithoutOwner = NewBaseError(
		http.StatusBadRequest,
		"OFFER_WITHOUT_OWNER",
		"the offer has no associated business user",
		"",
	)

	ErrBusinessUserNotFound = NewBaseError(
		http.StatusNotFound,
		"BUSINESS_USER_NOT_FOUND",
		"no business user found with the given id",
		"",
	)

	// Review errors. The same error covers both the application-level
	// fast-path check and a concurrent insert rejected by the unique index.
	ErrAlreadyReviewed = NewBaseError(
		http.StatusBadRequest,
		"ALREADY_REVIEWED",
		"you have already reviewed this business user",
		"",
	)

	ErrInvalidRating = NewBaseError(
		http.StatusBadRequest,
		"INVALID_RATING",
		fmt.Sprintf("rating must be between %d and %d", 1, 5),
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"invalid request data",
		"",
	)

	// General errors
	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)

	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)
)

// NewInvalidTierError reports a detail payload carrying an unknown tier tag.
func NewInvalidTierError(tier string) AppError {
	return NewBaseError(
		http.StatusBadRequest,
		"INVALID_TIER",
		fmt.Sprintf("invalid offer_type: '%s'. Allowed values: ['basic', 'standard', 'premium']", tier),
		"",
	)
}

// NewDuplicateTierError reports two details in one payload naming the same tier.
func NewDuplicateTierError(tier string) AppError {
	return NewBaseError(
		http.StatusBadRequest,
		"DUPLICATE_TIER",
		fmt.Sprintf("duplicate offer_type: '%s'", tier),
		"",
	)
}

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
