// Package mem provides the flat byte-addressable memory of the OCT-8.
package mem

import (
	"fmt"
	"iter"
	"maps"
)

const (
	RAM_SIZE = 256 // Size of the address space, in bytes.
)

var _mem_defines = map[string]string{
	"RAM_SIZE": fmt.Sprintf("%#v", RAM_SIZE),
}

// Memory is the byte-addressable storage interface seen by the CPU.
// Addresses are 8 bits wide, so every address a caller can compute is
// valid by construction.
type Memory interface {
	Read(addr uint8) (value uint8)
	Write(addr uint8, value uint8)
}

// Ram is a flat 256-byte random access memory.
type Ram struct {
	Data [RAM_SIZE]uint8
}

var _ Memory = (*Ram)(nil)

// Defines returns an iter of defines for the memory.
func (rm *Ram) Defines() iter.Seq2[string, string] {
	return maps.All(_mem_defines)
}

// Read returns the byte at addr.
func (rm *Ram) Read(addr uint8) (value uint8) {
	return rm.Data[addr]
}

// Write stores value at addr.
func (rm *Ram) Write(addr uint8, value uint8) {
	rm.Data[addr] = value
}

// Reset clears the memory to zero.
func (rm *Ram) Reset() {
	clear(rm.Data[:])
}
