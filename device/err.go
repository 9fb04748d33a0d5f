package device

import (
	"errors"

	"github.com/oct8vm/oct8/translate"
)

var f = translate.From

var (
	ErrNoOutput = errors.New(f("no output attached"))
)
