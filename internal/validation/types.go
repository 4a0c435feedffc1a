package validation

// ValidationErrorCode represents specific validation error types
type ValidationErrorCode int

const (
	ErrorNameRequired ValidationErrorCode = iota
	ErrorContactMethodRequired
	ErrorEmailRequired
	ErrorPhoneRequired
)

// ValidationError represents a specific validation error
type ValidationError struct {
	Field   string
	Code    ValidationErrorCode
	Message string
}

// ValidationResult represents the result of contact validation
type ValidationResult struct {
	IsValid bool
	Errors  []ValidationError
}

// FieldError returns the message for the first error on field, if any.
func (r ValidationResult) FieldError(field string) string {
	for _, err := range r.Errors {
		if err.Field == field {
			return err.Message
		}
	}
	return ""
}
