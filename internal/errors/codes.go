package errors

// ErrorCode represents a standardized error code returned by the status API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
)

// Account error codes (ACCOUNT_*)
const (
	AccountNotFound ErrorCode = "ACCOUNT_001"
)

// Route error codes (ROUTE_*)
const (
	RouteNotFound         ErrorCode = "ROUTE_001"
	RouteMethodNotAllowed ErrorCode = "ROUTE_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	ValidationGeneral:       "Validation failed",
	ValidationInvalidFormat: "Invalid field format",

	AccountNotFound: "Account not found",

	RouteNotFound:         "Resource not found",
	RouteMethodNotAllowed: "Method not allowed",

	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Journal database error",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
}

// GetErrorMessage returns the default message for a given error code
// If the error code is not found, it returns a generic error message
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}
	return "An error occurred"
}

// IsValidErrorCode checks if the provided error code is a valid registered code
func IsValidErrorCode(code ErrorCode) bool {
	_, ok := errorMessages[code]
	return ok
}
