package vm

import (
	"iter"
)

// Opcode represents a line of assembled code with its source location
// and generated bytes.
type Opcode struct {
	LineNo    int
	Addr      int
	Words     []string
	Bytes     []uint8
	LinkLabel string
}

// Program is an assembled or loaded OCT-8 program listing.
type Program struct {
	Opcodes []Opcode
}

// Debug locates the source line for an address.
type Debug struct {
	*Opcode
	Index int
}

// Debug returns the opcode covering the given address, if any.
func (prog *Program) Debug(addr uint8) (dbg Debug) {
	for n, op := range prog.Opcodes {
		if int(addr) >= op.Addr && int(addr) < op.Addr+len(op.Bytes) {
			dbg = Debug{
				Opcode: &prog.Opcodes[n],
				Index:  int(addr) - op.Addr,
			}
			break
		}
	}

	return
}

// Binary flattens the program into a loadable memory image.
func (prog *Program) Binary() (image []uint8) {
	for _, data := range prog.Bytes() {
		image = append(image, data)
	}

	return
}

// Bytes iterates over the program's (address, byte) pairs.
func (prog *Program) Bytes() iter.Seq2[uint8, uint8] {
	return func(yield func(addr uint8, data uint8) bool) {
		for _, op := range prog.Opcodes {
			for n, data := range op.Bytes {
				if !yield(uint8(op.Addr+n), data) {
					return
				}
			}
		}
	}
}
