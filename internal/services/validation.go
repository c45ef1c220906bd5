package services

// ValidationError is a rejected write with a stable machine-readable reason.
// These never reach the store; handlers map them to 422 responses.
type ValidationError struct {
	Reason  string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

const (
	ReasonEmptyTitle     = "empty_title"
	ReasonDuplicateTitle = "duplicate_title"
	ReasonNoOptions      = "no_options"
	ReasonInvalidKind    = "invalid_kind"
	ReasonInvalidOption  = "invalid_option"
	ReasonInvalidInput   = "invalid_input"
)

func validationErr(reason, message string) *ValidationError {
	return &ValidationError{Reason: reason, Message: message}
}
