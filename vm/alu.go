package vm

// AluOp is an ALU operation type.
type AluOp int

const (
	ALU_OP_ADD = AluOp(0)  // add
	ALU_OP_SUB = AluOp(1)  // sub
	ALU_OP_MUL = AluOp(2)  // mul
	ALU_OP_DIV = AluOp(3)  // div
	ALU_OP_MOD = AluOp(4)  // mod
	ALU_OP_INC = AluOp(5)  // inc
	ALU_OP_DEC = AluOp(6)  // dec
	ALU_OP_CMP = AluOp(7)  // cmp
	ALU_OP_AND = AluOp(8)  // and
	ALU_OP_NOT = AluOp(9)  // not
	ALU_OP_OR  = AluOp(10) // or
	ALU_OP_XOR = AluOp(11) // xor
	ALU_OP_SHL = AluOp(12) // shl
	ALU_OP_SHR = AluOp(13) // shr
)

// Alu performs a register-to-register operation. Arithmetic wraps at
// 8 bits. CMP writes only the flag register, setting exactly one of
// EQ/GT/LT and clearing the other two. An unrecognized operation is a
// silent no-op.
func (cpu *Cpu) Alu(op AluOp, regA, regB uint8) (err error) {
	va := cpu.reg(regA)
	vb := cpu.reg(regB)

	switch op {
	case ALU_OP_ADD:
		cpu.setReg(regA, va+vb)
	case ALU_OP_SUB:
		cpu.setReg(regA, va-vb)
	case ALU_OP_MUL:
		cpu.setReg(regA, va*vb)
	case ALU_OP_DIV:
		if vb == 0 {
			return ErrDivideByZero
		}
		cpu.setReg(regA, va/vb)
	case ALU_OP_MOD:
		if vb == 0 {
			return ErrDivideByZero
		}
		cpu.setReg(regA, va%vb)
	case ALU_OP_INC:
		cpu.setReg(regA, va+1)
	case ALU_OP_DEC:
		cpu.setReg(regA, va-1)
	case ALU_OP_CMP:
		switch {
		case va == vb:
			cpu.Fl = FL_EQ
		case va > vb:
			cpu.Fl = FL_GT
		default:
			cpu.Fl = FL_LT
		}
	case ALU_OP_AND:
		cpu.setReg(regA, va&vb)
	case ALU_OP_NOT:
		cpu.setReg(regA, ^va)
	case ALU_OP_OR:
		cpu.setReg(regA, va|vb)
	case ALU_OP_XOR:
		cpu.setReg(regA, va^vb)
	case ALU_OP_SHL:
		cpu.setReg(regA, va<<vb)
	case ALU_OP_SHR:
		cpu.setReg(regA, va>>vb)
	}

	return
}
