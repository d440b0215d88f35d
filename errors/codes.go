package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Stream and parse errors
const (
	// ErrCodeParseFailure indicates an incremental parser reached a failure state.
	ErrCodeParseFailure ErrorCode = "PARSE_FAILURE"
	// ErrCodeIncompleteInput indicates the input ended while a parse was still in progress.
	ErrCodeIncompleteInput ErrorCode = "INCOMPLETE_INPUT"
	// ErrCodeSourceError indicates an error raised while pulling from an underlying stream.
	ErrCodeSourceError ErrorCode = "SOURCE_ERROR"
	// ErrCodeStreamClosed indicates an operation on a closed stream or sink.
	ErrCodeStreamClosed ErrorCode = "STREAM_CLOSED"
)

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Internal errors
const (
	// ErrCodeTimeout indicates an operation timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeTimeout:     true,
	ErrCodeSourceError: true,
	ErrCodeInternal:    false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
