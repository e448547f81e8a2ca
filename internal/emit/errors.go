package emit

import "errors"

// ErrIO matches every filesystem failure returned by the emitter.
var ErrIO = errors.New("emit: i/o failure")

// IOError wraps a filesystem error with the operation and path involved.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return "emit: " + e.Op + " " + e.Path + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error {
	return e.Err
}

func (e *IOError) Is(target error) bool {
	return target == ErrIO
}
