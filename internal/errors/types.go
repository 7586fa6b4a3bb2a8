package errors

// ErrorResponse represents a standardized error response
type ErrorResponse struct {
	Error   string `json:"error"`             // error code (e.g., "not_found", "method_not_allowed")
	Message string `json:"message"`           // user-friendly message
	Details string `json:"details,omitempty"` // optional details (sanitized in production)
}

type ErrorInfo struct {
	category  string
	sanitized string
}
