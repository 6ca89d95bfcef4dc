package models

// FieldError names one rejected input field together with a human-readable
// reason.
type FieldError struct {
	// Field is the JSON name of the offending field (e.g. "login", "code").
	Field string `json:"field"`

	// Message explains why the value was rejected.
	Message string `json:"message"`
}

// APIErrorResult is the 400 response body shared by every endpoint that
// rejects client input.
type APIErrorResult struct {
	ErrorsMessages []FieldError `json:"errorsMessages"`
}

// NewAPIErrorResult builds an [APIErrorResult] with a single field error.
func NewAPIErrorResult(field, message string) APIErrorResult {
	return APIErrorResult{
		ErrorsMessages: []FieldError{{Field: field, Message: message}},
	}
}
