package content

import (
	"errors"
	"fmt"
)

// ErrUnavailable marks a retrieval collaborator failure. Callers match it
// with errors.Is.
var ErrUnavailable = errors.New("content unavailable")

// UnavailableError wraps a retrieval failure with the subject being fetched.
type UnavailableError struct {
	Subject string
	Err     error
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("fetch content for subject %q: %v", e.Subject, e.Err)
}

func (e *UnavailableError) Unwrap() error { return ErrUnavailable }
