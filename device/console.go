// Package device provides the I/O device models attached to the OCT-8.
package device

import (
	"fmt"
	"io"
	"iter"
	"maps"
)

// Sink is a line-oriented output device interface.
type Sink interface {
	// WriteValue emits a value in decimal, one value per line.
	WriteValue(value uint8) (err error)
	// WriteChar emits a value as a single ASCII character.
	WriteChar(value uint8) (err error)
}

// Console writes program output to an io.Writer.
type Console struct {
	Output io.Writer
}

var _ Sink = (*Console)(nil)

// Defines returns an iter of defines for the console.
func (cn *Console) Defines() iter.Seq2[string, string] {
	return maps.All(map[string]string{})
}

// WriteValue writes the decimal representation of value, followed by a newline.
func (cn *Console) WriteValue(value uint8) (err error) {
	if cn.Output == nil {
		return ErrNoOutput
	}

	_, err = fmt.Fprintf(cn.Output, "%d\n", value)
	return
}

// WriteChar writes value as a raw character.
func (cn *Console) WriteChar(value uint8) (err error) {
	if cn.Output == nil {
		return ErrNoOutput
	}

	_, err = cn.Output.Write([]byte{value})
	return
}
