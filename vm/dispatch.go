package vm

// Flow tells the engine how to update the program counter after a
// handler runs. The zero value continues to the next instruction.
type Flow struct {
	Jump   bool  // If set, the engine loads Target into the PC verbatim.
	Target uint8 // Jump destination address.
}

// Handler executes one instruction against the CPU state. The raw
// operand bytes a and b are interpreted per the handler's own calling
// convention.
type Handler func(cpu *Cpu, a, b uint8) (flow Flow, err error)

// jumpTo builds a Flow that overrides the program counter.
func jumpTo(target uint8) Flow {
	return Flow{Jump: true, Target: target}
}

// install builds the dispatch table. Unmapped opcodes stay nil so the
// engine can distinguish them from no-ops.
func (cpu *Cpu) install() {
	cpu.handler[OP_NOP] = handleNop
	cpu.handler[OP_HLT] = handleHlt
	cpu.handler[OP_RET] = handleRet
	cpu.handler[OP_PUSH] = handlePush
	cpu.handler[OP_POP] = handlePop
	cpu.handler[OP_PRN] = handlePrn
	cpu.handler[OP_PRA] = handlePra
	cpu.handler[OP_CALL] = handleCall
	cpu.handler[OP_JMP] = handleJmp
	cpu.handler[OP_JEQ] = flagJump(FL_EQ, true)
	cpu.handler[OP_JNE] = flagJump(FL_EQ, false)
	cpu.handler[OP_JGT] = flagJump(FL_GT, true)
	cpu.handler[OP_JLT] = flagJump(FL_LT, true)
	cpu.handler[OP_JLE] = flagJump(FL_LT|FL_EQ, true)
	cpu.handler[OP_JGE] = flagJump(FL_GT|FL_EQ, true)
	cpu.handler[OP_LDI] = handleLdi
	cpu.handler[OP_LD] = handleLd
	cpu.handler[OP_ST] = handleSt
	cpu.handler[OP_INC] = aluHandler(ALU_OP_INC)
	cpu.handler[OP_DEC] = aluHandler(ALU_OP_DEC)
	cpu.handler[OP_NOT] = aluHandler(ALU_OP_NOT)
	cpu.handler[OP_ADD] = aluHandler(ALU_OP_ADD)
	cpu.handler[OP_SUB] = aluHandler(ALU_OP_SUB)
	cpu.handler[OP_MUL] = aluHandler(ALU_OP_MUL)
	cpu.handler[OP_DIV] = aluHandler(ALU_OP_DIV)
	cpu.handler[OP_MOD] = aluHandler(ALU_OP_MOD)
	cpu.handler[OP_CMP] = aluHandler(ALU_OP_CMP)
	cpu.handler[OP_AND] = aluHandler(ALU_OP_AND)
	cpu.handler[OP_OR] = aluHandler(ALU_OP_OR)
	cpu.handler[OP_XOR] = aluHandler(ALU_OP_XOR)
	cpu.handler[OP_SHL] = aluHandler(ALU_OP_SHL)
	cpu.handler[OP_SHR] = aluHandler(ALU_OP_SHR)
}

func handleNop(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	return
}

func handleHlt(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	err = ErrHalt
	return
}

// handleLdi loads the immediate b into register a.
func handleLdi(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	cpu.setReg(a, b)
	return
}

// handleLd loads register a from the address held in register b.
func handleLd(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	cpu.setReg(a, cpu.Mem.Read(cpu.reg(b)))
	return
}

// handleSt stores register b at the address held in register a.
func handleSt(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	cpu.Mem.Write(cpu.reg(a), cpu.reg(b))
	return
}

func handlePrn(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	if cpu.Out == nil {
		err = ErrSinkInvalid
		return
	}

	err = cpu.Out.WriteValue(cpu.reg(a))
	return
}

func handlePra(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	if cpu.Out == nil {
		err = ErrSinkInvalid
		return
	}

	err = cpu.Out.WriteChar(cpu.reg(a))
	return
}

func handlePush(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	cpu.Push(cpu.reg(a))
	return
}

func handlePop(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	cpu.setReg(a, cpu.Pop())
	return
}

// handleCall pushes the address of the next instruction and jumps to
// the address held in register a.
func handleCall(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	cpu.Push(cpu.Pc + 2)
	flow = jumpTo(cpu.reg(a))
	return
}

// handleRet pops the return address into the PC.
func handleRet(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	flow = jumpTo(cpu.Pop())
	return
}

func handleJmp(cpu *Cpu, a, b uint8) (flow Flow, err error) {
	flow = jumpTo(cpu.reg(a))
	return
}

// flagJump builds a conditional-jump handler that jumps to the address
// held in register a when the masked flags match the wanted polarity,
// and falls through to the default PC advance otherwise.
func flagJump(mask uint8, want bool) Handler {
	return func(cpu *Cpu, a, b uint8) (flow Flow, err error) {
		if ((cpu.Fl & mask) != 0) == want {
			flow = jumpTo(cpu.reg(a))
		}
		return
	}
}

// aluHandler builds a handler that routes both operands to the ALU.
func aluHandler(op AluOp) Handler {
	return func(cpu *Cpu, a, b uint8) (flow Flow, err error) {
		err = cpu.Alu(op, a, b)
		return
	}
}
