package emulator

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/oct8vm/oct8/vm"
)

func TestEmulator(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	assert.False(emu.Verbose)
	assert.NotNil(emu.Cpu)
	assert.NotNil(emu.Ram)
	assert.NotNil(emu.Program)
}

func doRun(emu *Emulator, program []string, t *testing.T) (output string) {
	t.Helper()
	assert := assert.New(t)

	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)
	if err != nil {
		t.Fatalf("%v", err)
	}

	console_output := &bytes.Buffer{}
	emu.Console.Output = console_output

	err = emu.Reset()
	assert.NoError(err)

	err = emu.Run()
	assert.NoError(err)
	if err != nil {
		t.Log(emu.Cpu.String())
		t.Fatalf("%v", err)
	}

	output = console_output.String()
	return
}

func TestEmulatorAddPrint(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0 5",
		"ldi r1 3",
		"add r0 r1",
		"prn r0",
		"hlt",
	}

	output := doRun(emu, program, t)

	assert.Equal("8\n", output)
	assert.Equal(uint8(8), emu.Cpu.Register[0])
	assert.False(emu.Cpu.Running)
}

func TestEmulatorCountLoop(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0 3",
		"ldi r1 1",
		"ldi r2 Loop",
		"ldi r3 0",
		"Loop:",
		"prn r0",
		"sub r0 r1",
		"cmp r0 r3",
		"jne r2",
		"hlt",
	}

	output := doRun(emu, program, t)

	assert.Equal("3\n2\n1\n", output)
	assert.Equal(uint8(0), emu.Cpu.Register[0])
}

func TestEmulatorCallRet(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0 Sub",
		"call r0",
		"prn r1",
		"hlt",
		"Sub:",
		"ldi r1 42",
		"ret",
	}

	output := doRun(emu, program, t)

	assert.Equal("42\n", output)
	assert.Equal(vm.STACK_TOP, emu.Cpu.Sp())
}

func TestEmulatorStack(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0 1",
		"ldi r1 2",
		"push r0",
		"push r1",
		"pop r4",
		"pop r5",
		"prn r4",
		"prn r5",
		"hlt",
	}

	output := doRun(emu, program, t)

	assert.Equal("2\n1\n", output)
	assert.Equal(vm.STACK_TOP, emu.Cpu.Sp())
}

func TestEmulatorHello(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0 'H'",
		"pra r0",
		"ldi r0 'i'",
		"pra r0",
		"ldi r0 '\\n'",
		"pra r0",
		"hlt",
	}

	output := doRun(emu, program, t)

	assert.Equal("Hi\n", output)
}

func TestEmulatorDefines(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	defines := map[string]string{}
	for key, val := range emu.Defines() {
		defines[key] = val
	}
	assert.Equal("0xf4", defines["STACK_TOP"])
	assert.Equal("256", defines["RAM_SIZE"])
	assert.Equal("r7", defines["SP"])

	// Machine constants are usable as equates.
	program := []string{
		"ldi r0 STACK_TOP",
		"prn r0",
		"hlt",
	}

	output := doRun(emu, program, t)

	assert.Equal("244\n", output)
}

func TestEmulatorLineNo(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0 1",
		"ldi r1 2",
		"hlt",
	}

	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	err = emu.Reset()
	assert.NoError(err)

	assert.Equal(1, emu.LineNo())
	assert.Equal(0, emu.Addr())

	done, err := emu.Tick()
	assert.NoError(err)
	assert.False(done)
	assert.Equal(2, emu.LineNo())
	assert.Equal(3, emu.Addr())
}

func TestEmulatorRuntimeError(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0 1",
		"ldi r1 0",
		"div r0 r1",
		"hlt",
	}

	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	emu.Console.Output = &bytes.Buffer{}
	err = emu.Reset()
	assert.NoError(err)

	err = emu.Run()
	assert.ErrorIs(err, vm.ErrDivideByZero)

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(3, rt.LineNo)
}

func TestEmulatorInvalidOpcode(t *testing.T) {
	assert := assert.New(t)

	emu := NewEmulator()

	program := []string{
		"ldi r0 1",
		".byte 0xff",
	}

	err := emu.Assemble(strings.NewReader(strings.Join(program, "\n")))
	assert.NoError(err)

	err = emu.Reset()
	assert.NoError(err)

	err = emu.Run()
	assert.ErrorIs(err, &vm.ErrOpcode{})

	var rt *ErrRuntime
	assert.True(errors.As(err, &rt))
	assert.Equal(2, rt.LineNo)

	// The engine stops at the offending byte.
	assert.Equal(3, emu.Addr())
	assert.False(emu.Cpu.Running)
}
