package domain

import "fmt"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError creates a new DomainError
func NewDomainError(code, message string) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     nil,
	}
}

// NewDomainErrorWithCause creates a new DomainError with an underlying cause
func NewDomainErrorWithCause(code, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common domain error codes
const (
	ErrCodeValidation       = "VALIDATION_ERROR"
	ErrCodeNotFound         = "NOT_FOUND"
	ErrCodeNoContent        = "NO_CONTENT"
	ErrCodeInvalidOutput    = "INVALID_OUTPUT"
	ErrCodeGenerationFailed = "GENERATION_FAILED"
	ErrCodeInternalError    = "INTERNAL_ERROR"
)

// Validation errors
var (
	ErrInvalidTopK         = NewDomainError(ErrCodeValidation, "k must be a positive integer")
	ErrUnsupportedFileType = NewDomainError(ErrCodeValidation, "unsupported file type")
	ErrEmptyDocument       = NewDomainError(ErrCodeValidation, "could not extract any text from the document")
	ErrInvalidDCFRates     = NewDomainError(ErrCodeValidation, "discount rate must be greater than terminal growth rate")
	ErrInvalidMemoLanguage = NewDomainError(ErrCodeValidation, "memo language must be 'en' or 'ar'")
)

// Not found errors. A missing document and a missing cached analysis are
// distinct conditions: the former fails analysis up front, the latter only
// fails retrieval of a prior result.
var (
	ErrDocumentNotFound = NewDomainError(ErrCodeNotFound, "document not found")
	ErrAnalysisNotFound = NewDomainError(ErrCodeNotFound, "analysis not found, run analysis first")
)

// Retrieval errors
var (
	ErrNoChunksRetrieved = NewDomainError(ErrCodeNoContent, "could not retrieve text chunks from the document")
)

// Generation errors
var (
	ErrInvalidModelOutput = NewDomainError(ErrCodeInvalidOutput, "model did not return valid JSON after retry")
)
