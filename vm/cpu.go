package vm

import (
	"fmt"
	"iter"
	"log"
	"maps"

	"github.com/oct8vm/oct8/device"
	"github.com/oct8vm/oct8/mem"
)

// Memory is the byte-addressable storage interface.
type Memory mem.Memory

// Sink is the line-oriented program output interface.
type Sink device.Sink

const (
	NUM_REGISTERS = 8           // Number of general-purpose registers.
	REG_SP        = 7           // r7 is reserved as the stack pointer.
	REG_MASK      = uint8(0x07) // Mask applied to register-index operands.
	STACK_TOP     = uint8(0xF4) // Initial stack pointer; the stack grows downward.
)

// Flag register bits, set by CMP and read by the conditional jumps.
const (
	FL_EQ = uint8(1 << 0) // Equal.
	FL_GT = uint8(1 << 1) // Greater-than.
	FL_LT = uint8(1 << 2) // Less-than.
)

var _cpu_defines = map[string]string{
	"NUM_REGISTERS": fmt.Sprintf("%#v", NUM_REGISTERS),
	"STACK_TOP":     fmt.Sprintf("%#v", STACK_TOP),
	"SP":            "r7",
}

// Cpu is the simulation context for the OCT-8 processor.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Mem Memory // Reference to the attached memory.
	Out Sink   // Program output sink for PRN/PRA.

	Register [NUM_REGISTERS]uint8 // General-purpose register bank.
	Pc       uint8                // Program counter.
	Ir       uint8                // Instruction register.
	Fl       uint8                // Flag register.

	Running bool // Cleared when the engine halts.
	Ticks   int  // Completed instruction cycles since reset.

	handler [256]Handler // Dispatch table, indexed by opcode byte.
}

// NewCpu creates a new CPU attached to the given memory.
func NewCpu(memory Memory) (cpu *Cpu) {
	cpu = &Cpu{
		Mem: memory,
	}
	cpu.install()
	cpu.Reset()

	return
}

// Defines for the cpu
func (cpu *Cpu) Defines() iter.Seq2[string, string] {
	return maps.All(_cpu_defines)
}

// Reset the CPU state.
// - Clears the registers and flags.
// - Sets the stack pointer to the empty-stack top.
// - Zeros the tick counter and restarts the engine.
func (cpu *Cpu) Reset() {
	if cpu.Verbose {
		log.Printf("cpu: reset")
	}

	clear(cpu.Register[:])
	cpu.Register[REG_SP] = STACK_TOP
	cpu.Pc = 0
	cpu.Ir = 0
	cpu.Fl = 0
	cpu.Ticks = 0
	cpu.Running = true
}

// Poke writes a byte through to memory, for use by program loaders.
func (cpu *Cpu) Poke(addr uint8, value uint8) {
	cpu.Mem.Write(addr, value)
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text = fmt.Sprintf("   pc: %02X\n   ir: %02X (%v)\n   fl: %03b\n",
		cpu.Pc, cpu.Ir, OpcodeName(cpu.Ir), cpu.Fl&(FL_EQ|FL_GT|FL_LT))
	for n, val := range cpu.Register {
		name := fmt.Sprintf("r%d", n)
		if n == REG_SP {
			name = "sp"
		}
		text += fmt.Sprintf("   %s: %02X\n", name, val)
	}

	return
}

// reg reads a general-purpose register named by a raw operand byte.
// Register-index operands are masked to the low 3 bits.
func (cpu *Cpu) reg(index uint8) uint8 {
	return cpu.Register[index&REG_MASK]
}

// setReg writes a general-purpose register named by a raw operand byte.
func (cpu *Cpu) setReg(index uint8, value uint8) {
	cpu.Register[index&REG_MASK] = value
}

// Tick executes a single instruction cycle: fetch, decode, dispatch,
// and program-counter update.
func (cpu *Cpu) Tick() (err error) {
	if !cpu.Running {
		return ErrHalt
	}

	// Fetch.
	cpu.Ir = cpu.Mem.Read(cpu.Pc)

	// Decode. A nil dispatch entry is a fatal invalid opcode.
	handler := cpu.handler[cpu.Ir]
	if handler == nil {
		cpu.Running = false
		log.Printf("cpu: invalid opcode 0x%02x at 0x%02x", cpu.Ir, cpu.Pc)
		return &ErrOpcode{Opcode: cpu.Ir, Addr: cpu.Pc}
	}

	// The two bytes after the opcode are always fetched as potential
	// operands; instructions that take fewer ignore the extras.
	a := cpu.Mem.Read(cpu.Pc + 1)
	b := cpu.Mem.Read(cpu.Pc + 2)

	if cpu.Verbose {
		log.Printf("%02x: %v a=%02x b=%02x", cpu.Pc, OpcodeName(cpu.Ir), a, b)
	}

	flow, err := handler(cpu, a, b)
	if err != nil {
		// The PC stays on the failing instruction.
		cpu.Running = false
		return
	}

	if flow.Jump {
		cpu.Pc = flow.Target
	} else {
		cpu.Pc += uint8(OperandCount(cpu.Ir)) + 1
	}

	cpu.Ticks++

	return
}
