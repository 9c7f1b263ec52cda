package errors

import (
	"net/http"

	"detailers/internal/errors"
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
	// Company-related errors
	ErrCompanyNotFound = NewBaseError(
		http.StatusNotFound,
		"COMPANY_NOT_FOUND",
		"Company listing not found",
		"",
	)

	ErrSlugAlreadyExists = NewBaseError(
		http.StatusConflict,
		"SLUG_ALREADY_EXISTS",
		"A listing with this slug already exists",
		"",
	)

	ErrCompanyUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"COMPANY_UPDATE_FAILED",
		"Failed to update company listing",
		"",
	)

	// Search-related errors
	ErrInvalidCoordinate = NewBaseError(
		http.StatusBadRequest,
		"INVALID_COORDINATE",
		"Latitude or longitude is out of range",
		"",
	)

	ErrUnknownAirport = NewBaseError(
		http.StatusNotFound,
		"UNKNOWN_AIRPORT",
		"No airport with this code in the directory",
		"",
	)

	// Account-related errors
	ErrOwnerNotFound = NewBaseError(
		http.StatusNotFound,
		"OWNER_NOT_FOUND",
		"Account not found",
		"",
	)

	ErrOwnerAlreadyExists = NewBaseError(
		http.StatusConflict,
		"OWNER_ALREADY_EXISTS",
		"This email is already registered",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"Email or password is incorrect",
		"",
	)

	ErrRefreshTokenInvalid = NewBaseError(
		http.StatusUnauthorized,
		"REFRESH_TOKEN_INVALID",
		"Invalid or expired refresh token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"Failed to process password",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"Password does not meet strength requirements",
		"",
	)

	ErrPasswordForbiddenWords = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_FORBIDDEN_WORDS",
		"Password contains forbidden words or patterns",
		"",
	)

	// Claim-related errors
	ErrClaimNotFound = NewBaseError(
		http.StatusNotFound,
		"CLAIM_NOT_FOUND",
		"Claim not found",
		"",
	)

	ErrCompanyAlreadyClaimed = NewBaseError(
		http.StatusConflict,
		"COMPANY_ALREADY_CLAIMED",
		"This listing has already been claimed",
		"",
	)

	ErrVerificationCodeMismatch = NewBaseError(
		http.StatusUnprocessableEntity,
		"VERIFICATION_CODE_MISMATCH",
		"Verification code does not match",
		"",
	)

	// Lead-related errors
	ErrLeadNotFound = NewBaseError(
		http.StatusNotFound,
		"LEAD_NOT_FOUND",
		"Lead not found",
		"",
	)

	// Authorization errors
	ErrNotListingOwner = NewBaseError(
		http.StatusForbidden,
		"NOT_LISTING_OWNER",
		"You do not manage this listing",
		"",
	)

	// Media-related errors
	ErrMediaNotFound = NewBaseError(
		http.StatusNotFound,
		"MEDIA_NOT_FOUND",
		"Media asset not found",
		"",
	)

	ErrMediaTooLarge = NewBaseError(
		http.StatusRequestEntityTooLarge,
		"MEDIA_TOO_LARGE",
		"Uploaded file exceeds the size limit",
		"",
	)
)

// NewDatabaseExecuteError wraps an unexpected database error as an AppError.
func NewDatabaseExecuteError(err error, details string) *BaseError {
	return NewBaseError(
		http.StatusInternalServerError,
		"DATABASE_ERROR",
		"Database operation failed",
		details+": "+err.Error(),
	)
}
