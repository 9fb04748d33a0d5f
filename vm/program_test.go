package vm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProgram() *Program {
	return &Program{
		Opcodes: []Opcode{
			{LineNo: 1, Addr: 0, Words: []string{"ldi", "r0", "5"},
				Bytes: []uint8{OP_LDI, 0, 5}},
			{LineNo: 2, Addr: 3, Words: []string{"prn", "r0"},
				Bytes: []uint8{OP_PRN, 0}},
			{LineNo: 3, Addr: 5, Words: []string{"hlt"},
				Bytes: []uint8{OP_HLT}},
		},
	}
}

func TestProgram_Debug(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(0, dbg.Index)

	// Operand bytes map back to their instruction's line.
	dbg = prog.Debug(2)
	assert.NotNil(dbg.Opcode)
	assert.Equal(1, dbg.Opcode.LineNo)
	assert.Equal(2, dbg.Index)

	dbg = prog.Debug(4)
	assert.NotNil(dbg.Opcode)
	assert.Equal(2, dbg.Opcode.LineNo)
	assert.Equal(1, dbg.Index)

	dbg = prog.Debug(5)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.Opcode.LineNo)
}

func TestProgram_Debug_NotFound(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	dbg := prog.Debug(10)
	assert.Nil(dbg.Opcode)
	assert.Equal(0, dbg.Index)
}

func TestProgram_Binary(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	assert.Equal([]uint8{OP_LDI, 0, 5, OP_PRN, 0, OP_HLT}, prog.Binary())
}

func TestProgram_Bytes(t *testing.T) {
	assert := assert.New(t)

	prog := testProgram()

	addrs := []uint8{}
	data := []uint8{}
	for addr, value := range prog.Bytes() {
		addrs = append(addrs, addr)
		data = append(data, value)
	}

	assert.Equal([]uint8{0, 1, 2, 3, 4, 5}, addrs)
	assert.Equal(prog.Binary(), data)
}
