package models

// APIError represents a standardized error response for the API
type APIError struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Error code constants
const (
	// General errors
	ErrBadRequest       = "BAD_REQUEST"
	ErrUnauthorized     = "UNAUTHORIZED"
	ErrForbidden        = "FORBIDDEN"
	ErrNotFound         = "NOT_FOUND"
	ErrConflict         = "CONFLICT"
	ErrInternalServer   = "INTERNAL_SERVER_ERROR"
	ErrValidationFailed = "VALIDATION_FAILED"

	// Domain errors
	ErrRestaurantNotFound              = "RESTAURANT_NOT_FOUND"
	ErrPizzaNotFound                   = "PIZZA_NOT_FOUND"
	ErrRestaurantPizzaNotFound         = "RESTAURANT_PIZZA_NOT_FOUND"
	ErrRestaurantNameTaken             = "RESTAURANT_NAME_TAKEN"
	ErrRestaurantPizzaInvalidReference = "RESTAURANT_PIZZA_INVALID_REFERENCE"

	// API client errors
	ErrClientNotFound = "CLIENT_NOT_FOUND"
)

// NewAPIError creates a new API error with the given code and message
func NewAPIError(code, message string, details ...map[string]interface{}) APIError {
	err := APIError{
		Code:    code,
		Message: message,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

// NewValidationAPIError turns a validation failure into the API error body
func NewValidationAPIError(v *ValidationError) APIError {
	return NewAPIError(ErrValidationFailed, v.Message, map[string]interface{}{
		"field": v.Field,
	})
}
