// Package errors provides unified error handling for the kit.
// It implements a structured error type with machine-readable codes and
// retryable detection.
package errors
