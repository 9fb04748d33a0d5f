// Copyright 2025, The oct8 authors

package emulator

import (
	"errors"
	"fmt"
	"io"
	"iter"
	"maps"

	"github.com/oct8vm/oct8/device"
	"github.com/oct8vm/oct8/internal"
	"github.com/oct8vm/oct8/mem"
	"github.com/oct8vm/oct8/vm"
)

const (
	LOAD_ADDR = 0 // Programs are loaded at the bottom of memory.
)

var _emulator_defines = map[string]string{
	"LOAD_ADDR": fmt.Sprintf("%#v", LOAD_ADDR),
}

// Emulator state. CPU + RAM + console.
type Emulator struct {
	Verbose bool        // If set, enables verbose logging.
	*vm.Cpu             // Reference to the CPU simulation.
	Program *vm.Program // Reference to the currently loaded program listing.

	Ram     *mem.Ram       // Main memory.
	Console device.Console // Console output device for PRN/PRA.
}

// NewEmulator creates a new emulator.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Ram:     &mem.Ram{},
		Program: &vm.Program{},
	}
	emu.Cpu = vm.NewCpu(emu.Ram)
	emu.Cpu.Out = &emu.Console

	return
}

// Defines returns an iterator over all of the defines
func (emu *Emulator) Defines() iter.Seq2[string, string] {
	return internal.IterSeq2Concat(maps.All(_emulator_defines),
		emu.Cpu.Defines(),
		emu.Ram.Defines(),
		emu.Console.Defines(),
	)
}

// Assemble parses assembly source into the emulator's program, with
// the machine constants predefined as equates.
func (emu *Emulator) Assemble(input io.Reader) (err error) {
	asm := &vm.Assembler{}
	asm.Verbose = emu.Verbose
	for key, val := range emu.Defines() {
		asm.Predefine(key, val)
	}

	prog, err := asm.Parse(input)
	if err != nil {
		return
	}

	emu.Program = prog

	return
}

// Reset the emulator state and load the program image at LOAD_ADDR.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	emu.Ram.Reset()
	emu.Cpu.Reset()

	for addr, value := range emu.Program.Bytes() {
		emu.Cpu.Poke(addr, value)
	}

	return
}

// Addr returns the current program counter.
func (emu *Emulator) Addr() int {
	return int(emu.Cpu.Pc)
}

// LineNo returns the current line number for the executing opcode.
func (emu *Emulator) LineNo() int {
	dbg := emu.Program.Debug(emu.Cpu.Pc)
	if dbg.Opcode == nil {
		return 0
	}

	return dbg.Opcode.LineNo
}

// Ticks returns the total instruction cycles since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Tick performs a single tick of the emulator. A clean HLT reports
// done; all other failures carry the source line of the faulting
// instruction.
func (emu *Emulator) Tick() (done bool, err error) {
	// Set CPU verbosity
	emu.Cpu.Verbose = emu.Verbose

	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, vm.ErrHalt) {
		err = nil
		done = true
	}

	return
}

// Run ticks the emulator until the program halts or fails.
func (emu *Emulator) Run() (err error) {
	var done bool
	for !done {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
