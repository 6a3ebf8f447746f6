package domain

import "fmt"

// ErrorCode identifies a specific failure kind in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// Generation specific errors
	CodeUnknownTaskType     ErrorCode = "UNKNOWN_TASK_TYPE"
	CodeEmptyModelResponse  ErrorCode = "EMPTY_MODEL_RESPONSE"
	CodeUpstreamUnavailable ErrorCode = "UPSTREAM_UNAVAILABLE"
	CodeUnauthorized        ErrorCode = "UNAUTHORIZED"
	CodeRateLimited         ErrorCode = "RATE_LIMITED"
	CodeModelNotFound       ErrorCode = "MODEL_NOT_FOUND"
	CodeTimeout             ErrorCode = "TIMEOUT"

	// Export specific errors
	CodeExportFailed ErrorCode = "EXPORT_FAILED"
)

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode              `json:"code"`
	Message string                 `json:"message"`
	Cause   error                  `json:"-"`
	Context map[string]interface{} `json:"context,omitempty"`
}

func (e *DomainError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Cause
}

// WithContext attaches a key/value pair for the error response details
func (e *DomainError) WithContext(key string, value interface{}) *DomainError {
	if e.Context == nil {
		e.Context = make(map[string]interface{})
	}
	e.Context[key] = value
	return e
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, cause error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// Helper constructors for common failure kinds

func NewInvalidRequestError(message string) *DomainError {
	return NewError(CodeInvalidRequest, message, nil)
}

func NewInternalError(message string, cause error) *DomainError {
	return NewError(CodeInternal, message, cause)
}

func NewUnknownTaskTypeError(taskType string) *DomainError {
	return NewError(CodeUnknownTaskType, fmt.Sprintf("No generation profile for task type: %s", taskType), nil).
		WithContext("task_type", taskType)
}

func NewEmptyModelResponseError(model string) *DomainError {
	return NewError(CodeEmptyModelResponse, "Model returned an empty response", nil).
		WithContext("model", model)
}

func NewUpstreamUnavailableError(cause error) *DomainError {
	return NewError(CodeUpstreamUnavailable, "Upstream completion service is unavailable", cause)
}

func NewUnauthorizedError(cause error) *DomainError {
	return NewError(CodeUnauthorized, "Upstream rejected the configured credential", cause)
}

func NewRateLimitedError(cause error) *DomainError {
	return NewError(CodeRateLimited, "Upstream rate limit exceeded", cause)
}

func NewModelNotFoundError(model string, cause error) *DomainError {
	return NewError(CodeModelNotFound, fmt.Sprintf("Model not available upstream: %s", model), cause).
		WithContext("model", model)
}

func NewTimeoutError(cause error) *DomainError {
	return NewError(CodeTimeout, "Upstream completion call exceeded its deadline", cause)
}

func NewExportFailedError(cause error) *DomainError {
	return NewError(CodeExportFailed, "Failed to render document", cause)
}
