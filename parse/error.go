package parse

import (
	"errors"
	"fmt"
	"strings"
)

// Error is a structured parse failure. Contexts holds the parser's context
// labels from outermost to innermost. Incomplete marks failures caused by
// the input ending while the parser still needed more.
type Error struct {
	Contexts   []string
	Message    string
	Incomplete bool
}

func (e *Error) Error() string {
	if len(e.Contexts) > 0 {
		return fmt.Sprintf("parse error in %s: %s", strings.Join(e.Contexts, " > "), e.Message)
	}
	return fmt.Sprintf("parse error: %s", e.Message)
}

// IsIncomplete reports whether err is a parse failure caused by the input
// ending mid-parse.
func IsIncomplete(err error) bool {
	var pe *Error
	return errors.As(err, &pe) && pe.Incomplete
}

func incompleteError() *Error {
	return &Error{Message: "not enough input", Incomplete: true}
}
