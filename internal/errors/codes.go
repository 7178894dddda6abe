package errors

// ErrorCode represents a standardized error code used throughout the API
type ErrorCode string

// Authentication error codes (AUTH_*)
const (
	AuthInvalidCredentials ErrorCode = "AUTH_001"
	AuthMissingToken       ErrorCode = "AUTH_002"
	AuthExpiredToken       ErrorCode = "AUTH_003"
	AuthInvalidTokenFormat ErrorCode = "AUTH_004"
	AuthNotAuthenticated   ErrorCode = "AUTH_005"
)

// Validation error codes (VALIDATION_*)
const (
	ValidationGeneral       ErrorCode = "VALIDATION_001"
	ValidationRequiredField ErrorCode = "VALIDATION_002"
	ValidationInvalidFormat ErrorCode = "VALIDATION_003"
	ValidationInvalidEmail  ErrorCode = "VALIDATION_004"
	ValidationInvalidDate   ErrorCode = "VALIDATION_005"
)

// Customer error codes (CUSTOMER_*)
const (
	CustomerNotFound    ErrorCode = "CUSTOMER_001"
	CustomerInvalidID   ErrorCode = "CUSTOMER_002"
	CustomerEmailTaken  ErrorCode = "CUSTOMER_003"
	CustomerHasInvoices ErrorCode = "CUSTOMER_004"
)

// Invoice error codes (INVOICE_*)
const (
	InvoiceNotFound      ErrorCode = "INVOICE_001"
	InvoiceInvalidID     ErrorCode = "INVOICE_002"
	InvoiceInvalidAmount ErrorCode = "INVOICE_003"
	InvoiceInvalidStatus ErrorCode = "INVOICE_004"
)

// Upload error codes (UPLOAD_*)
const (
	UploadMissingFile ErrorCode = "UPLOAD_001"
	UploadNotAnImage  ErrorCode = "UPLOAD_002"
	UploadTooLarge    ErrorCode = "UPLOAD_003"
)

// User error codes (USER_*)
const (
	UserEmailRegistered  ErrorCode = "USER_001"
	UserPasswordMismatch ErrorCode = "USER_002"
)

// System error codes (SYSTEM_*)
const (
	SystemInternalError      ErrorCode = "SYSTEM_001"
	SystemDatabaseError      ErrorCode = "SYSTEM_002"
	SystemServiceUnavailable ErrorCode = "SYSTEM_003"
	SystemRateLimitExceeded  ErrorCode = "SYSTEM_004"
)

// errorMessages maps error codes to their default human-readable messages
var errorMessages = map[ErrorCode]string{
	// Authentication errors
	AuthInvalidCredentials: "Invalid email or password.",
	AuthMissingToken:       "Authorization token is required",
	AuthExpiredToken:       "Authorization token has expired",
	AuthInvalidTokenFormat: "Invalid authorization token format",
	AuthNotAuthenticated:   "Not logged in or unable to retrieve user ID",

	// Validation errors
	ValidationGeneral:       "Validation failed",
	ValidationRequiredField: "Required field is missing",
	ValidationInvalidFormat: "Invalid field format",
	ValidationInvalidEmail:  "Invalid email address format",
	ValidationInvalidDate:   "Invalid date format",

	// Customer errors
	CustomerNotFound:    "Customer not found",
	CustomerInvalidID:   "Invalid customer ID format",
	CustomerEmailTaken:  "A customer with this email already exists",
	CustomerHasInvoices: "Customer still has invoices and cannot be deleted",

	// Invoice errors
	InvoiceNotFound:      "Invoice not found",
	InvoiceInvalidID:     "Invalid invoice ID format",
	InvoiceInvalidAmount: "Please enter an amount greater than $0.",
	InvoiceInvalidStatus: "Please select an invoice status.",

	// Upload errors
	UploadMissingFile: "No file uploaded",
	UploadNotAnImage:  "Only image files are allowed",
	UploadTooLarge:    "File size must be less than 1MB",

	// User errors
	UserEmailRegistered:  "This email has already been registered",
	UserPasswordMismatch: "The two passwords entered do not match",

	// System errors
	SystemInternalError:      "An unexpected error occurred. Please contact support with trace ID",
	SystemDatabaseError:      "Database error. Please try again later",
	SystemServiceUnavailable: "Service temporarily unavailable",
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
