package emulator

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/oct8vm/oct8/mem"
	"github.com/oct8vm/oct8/vm"
)

// ParseImage parses the textual binary image format: the leading run
// of eight 0/1 digits on a line is one program byte, '#' starts a
// comment, and lines without a leading byte are ignored.
func ParseImage(input io.Reader) (prog *vm.Program, err error) {
	scanner := bufio.NewScanner(input)

	prog = &vm.Program{}

	var addr int
	var lineno int
	for scanner.Scan() {
		text := scanner.Text()
		lineno += 1

		text_comment := strings.Split(text, "#")
		line := strings.TrimSpace(text_comment[0])
		if len(line) == 0 {
			continue
		}

		bits := strings.Fields(line)[0]
		if len(bits) != 8 || strings.Trim(bits, "01") != "" {
			err = &vm.ErrSyntax{LineNo: lineno, Line: line, Err: ErrImageByte}
			prog = nil
			return
		}

		value, _ := strconv.ParseUint(bits, 2, 8)

		if addr >= mem.RAM_SIZE {
			err = &vm.ErrSyntax{LineNo: lineno, Line: line, Err: ErrImageTooLarge}
			prog = nil
			return
		}

		prog.Opcodes = append(prog.Opcodes, vm.Opcode{
			LineNo: lineno,
			Addr:   addr,
			Words:  []string{bits},
			Bytes:  []uint8{uint8(value)},
		})
		addr += 1
	}

	return
}

// LoadImage installs a raw binary text image as the emulator's program.
func (emu *Emulator) LoadImage(input io.Reader) (err error) {
	prog, err := ParseImage(input)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// SaveImage writes the current program as a binary text image.
func (emu *Emulator) SaveImage(output io.Writer) (err error) {
	for _, op := range emu.Program.Opcodes {
		for _, data := range op.Bytes {
			_, err = fmt.Fprintf(output, "%08b # %v\n", data, strings.Join(op.Words, " "))
			if err != nil {
				return
			}
		}
	}

	return
}
