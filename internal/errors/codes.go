package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationOutOfRange    ErrorCode = "VALIDATION_004"
)

// Client error codes (CLIENT_*)
const (
	ClientNotFound  ErrorCode = "CLIENT_001"
	ClientInvalidID ErrorCode = "CLIENT_002"
)

// Sheet error codes (SHEET_*)
const (
	SheetUnavailable ErrorCode = "SHEET_001"
	SheetUnknown     ErrorCode = "SHEET_002"
	SheetEmpty       ErrorCode = "SHEET_003"
	SheetMalformed   ErrorCode = "SHEET_004"
)

// View error codes (VIEW_*)
const (
	ViewSuperseded ErrorCode = "VIEW_001"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemConfigurationError ErrorCode = "SYSTEM_004"
	SystemUnexpectedError    ErrorCode = "SYSTEM_005"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_006"
	SystemResourceNotFound   ErrorCode = "SYSTEM_007"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationOutOfRange:    "Field value is out of allowed range",

	// Client errors
	ClientNotFound:  "Client not found. Check the client ID",
	ClientInvalidID: "Invalid client ID format",

	// Sheet errors
	SheetUnavailable: "Spreadsheet source is unavailable",
	SheetUnknown:     "Unknown sheet name",
	SheetEmpty:       "Spreadsheet source returned an empty sheet",
	SheetMalformed:   "Spreadsheet source returned a malformed sheet",

	// View errors
	ViewSuperseded: "A newer request for this view superseded this one",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemServiceUnavailable: "Service temporarily unavailable",
	SystemConfigurationError: "System configuration error",
	SystemUnexpectedError:    "An unexpected error occurred",
	SystemRateLimitExceeded:  "Rate limit exceeded. Please try again later",
	SystemResourceNotFound:   "Resource not found",
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
