package application

import (
	"errors"
	"fmt"
)

// ErrInvalidEncoding is returned when the target file is not valid UTF-8 text.
var ErrInvalidEncoding = errors.New("stream did not contain valid UTF-8")

const (
	opReadFile    = "read file"
	opWriteOutput = "write output"
)

// IOError reports a failure reading the target file or writing results.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}
