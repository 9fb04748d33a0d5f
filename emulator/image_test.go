package emulator

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oct8vm/oct8/vm"
)

// print8 is the add-and-print program in the binary text format.
var print8 = []string{
	"# print8: compute 5 + 3 and print the result",
	"",
	"10000010 # LDI R0,5",
	"00000000",
	"00000101",
	"10000010 # LDI R1,3",
	"00000001",
	"00000011",
	"10100000 # ADD R0,R1",
	"00000000",
	"00000001",
	"01000111 # PRN R0",
	"00000000",
	"00000001 # HLT",
}

func TestParseImage(t *testing.T) {
	assert := assert.New(t)

	prog, err := ParseImage(strings.NewReader(strings.Join(print8, "\n")))
	assert.NoError(err)

	image := prog.Binary()
	assert.Equal(12, len(image))
	assert.Equal(uint8(vm.OP_LDI), image[0])
	assert.Equal(uint8(vm.OP_HLT), image[11])

	// Byte lines map back to their source line.
	dbg := prog.Debug(0)
	assert.NotNil(dbg.Opcode)
	assert.Equal(3, dbg.Opcode.LineNo)
}

func TestParseImage_BadByte(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name string
		line string
	}){
		{"short", "1010"},
		{"long", "101010101"},
		{"not_binary", "1010102x"},
	}

	for _, entry := range table {
		_, err := ParseImage(strings.NewReader(entry.line))
		assert.ErrorIs(err, ErrImageByte, entry.name)

		var es *vm.ErrSyntax
		assert.ErrorAs(err, &es, entry.name)
		assert.Equal(1, es.LineNo, entry.name)
	}
}

func TestParseImage_TooLarge(t *testing.T) {
	assert := assert.New(t)

	lines := []string{}
	for range 257 {
		lines = append(lines, "00000000")
	}

	_, err := ParseImage(strings.NewReader(strings.Join(lines, "\n")))
	assert.ErrorIs(err, ErrImageTooLarge)
}

func TestEmulatorRunImage(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	err := emu.LoadImage(strings.NewReader(strings.Join(print8, "\n")))
	assert.NoError(err)

	console_output := &bytes.Buffer{}
	emu.Console.Output = console_output

	err = emu.Reset()
	assert.NoError(err)

	err = emu.Run()
	assert.NoError(err)

	assert.Equal("8\n", console_output.String())
}

func TestSaveImageRoundTrip(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0 5",
		"prn r0",
		"hlt",
	}

	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	saved := &bytes.Buffer{}
	assert.NoError(emu.SaveImage(saved))

	want := emu.Program.Binary()

	other := NewEmulator()
	assert.NoError(other.LoadImage(saved))
	assert.Equal(want, other.Program.Binary())
}
