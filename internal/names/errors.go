package names

import (
	"errors"
	"fmt"
)

// Grammar violations reported by strict splitting. Use errors.Is against
// an InvalidNameError to tell them apart.
var (
	ErrUnmatchedBrace    = errors.New("unmatched closing brace")
	ErrUnterminatedBrace = errors.New("unterminated opening brace")
	ErrTooManyCommas     = errors.New("too many commas")
	ErrTrailingComma     = errors.New("trailing comma")
)

// InvalidNameError reports a raw name that violates the BibTeX name-list
// grammar.
type InvalidNameError struct {
	Name   string
	Reason error
}

func (e *InvalidNameError) Error() string {
	return fmt.Sprintf("invalid name %q: %v", e.Name, e.Reason)
}

func (e *InvalidNameError) Unwrap() error {
	return e.Reason
}
