package assistant

import (
	"errors"
	"fmt"
)

// ErrArity is the error kind for commands called with the wrong number of arguments
var ErrArity = errors.New("wrong number of arguments")

// ArityError reports a command called with the wrong number of arguments
type ArityError struct {
	Command string
	Usage   string
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("Invalid command format. Usage: %s", e.Usage)
}

// Unwrap lets errors.Is(err, ErrArity) match
func (e *ArityError) Unwrap() error {
	return ErrArity
}
