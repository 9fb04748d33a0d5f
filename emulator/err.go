package emulator

import (
	"errors"

	"github.com/oct8vm/oct8/translate"
)

var f = translate.From

var (
	ErrImageByte     = errors.New(f("not an eight digit binary byte"))
	ErrImageTooLarge = errors.New(f("image larger than memory"))
)

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	LineNo int
	Err    error
}

func (err *ErrRuntime) Error() string {
	return f("line %d %v", err.LineNo, err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
