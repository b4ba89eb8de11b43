package matcher

import (
	"errors"
	"fmt"
)

// ErrMissingInput is matched by every MissingInputError.
var ErrMissingInput = errors.New("matcher input not found")

// MissingInputError reports an absent items directory or reference list.
type MissingInputError struct {
	// Label is the human-readable kind, e.g. "Items directory".
	Label string
	Path  string
}

func (e *MissingInputError) Error() string {
	return fmt.Sprintf("%s '%s' not found", e.Label, e.Path)
}

func (e *MissingInputError) Is(target error) bool {
	return target == ErrMissingInput
}
