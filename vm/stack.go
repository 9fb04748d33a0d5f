package vm

// The stack lives in main memory and grows downward from STACK_TOP.
// The stack pointer is an 8-bit register over a 256-byte address space,
// so moving past either end wraps rather than trapping.

// Push writes a value at the new top of the stack, decrementing the
// stack pointer first.
func (cpu *Cpu) Push(value uint8) {
	cpu.Register[REG_SP]--
	cpu.Mem.Write(cpu.Register[REG_SP], value)
}

// Pop reads the value at the top of the stack, incrementing the stack
// pointer afterward.
func (cpu *Cpu) Pop() (value uint8) {
	value = cpu.Mem.Read(cpu.Register[REG_SP])
	cpu.Register[REG_SP]++
	return
}

// Sp returns the current stack pointer.
func (cpu *Cpu) Sp() uint8 {
	return cpu.Register[REG_SP]
}
