package vm

import (
	"fmt"
)

// Opcode byte layout:
//
//	ccaphhhh
//	||||++++- instruction ident
//	|||+----- sets the PC directly
//	||+------ ALU operation
//	++------- operand count (0-2)
const (
	OP_NOP  = uint8(0x00) // nop
	OP_HLT  = uint8(0x01) // hlt
	OP_RET  = uint8(0x11) // ret
	OP_PUSH = uint8(0x45) // push
	OP_POP  = uint8(0x46) // pop
	OP_PRN  = uint8(0x47) // prn
	OP_PRA  = uint8(0x48) // pra
	OP_CALL = uint8(0x50) // call
	OP_JMP  = uint8(0x54) // jmp
	OP_JEQ  = uint8(0x55) // jeq
	OP_JNE  = uint8(0x56) // jne
	OP_JGT  = uint8(0x57) // jgt
	OP_JLT  = uint8(0x58) // jlt
	OP_JLE  = uint8(0x59) // jle
	OP_JGE  = uint8(0x5A) // jge
	OP_INC  = uint8(0x65) // inc
	OP_DEC  = uint8(0x66) // dec
	OP_NOT  = uint8(0x69) // not
	OP_LDI  = uint8(0x82) // ldi
	OP_LD   = uint8(0x83) // ld
	OP_ST   = uint8(0x84) // st
	OP_ADD  = uint8(0xA0) // add
	OP_SUB  = uint8(0xA1) // sub
	OP_MUL  = uint8(0xA2) // mul
	OP_DIV  = uint8(0xA3) // div
	OP_MOD  = uint8(0xA4) // mod
	OP_CMP  = uint8(0xA7) // cmp
	OP_AND  = uint8(0xA8) // and
	OP_OR   = uint8(0xAA) // or
	OP_XOR  = uint8(0xAB) // xor
	OP_SHL  = uint8(0xAC) // shl
	OP_SHR  = uint8(0xAD) // shr
)

// OperandCount returns the 2-bit operand count packed into the opcode's
// high bits.
func OperandCount(op uint8) int {
	return int(op >> 6)
}

// IsAlu returns true if the opcode is marked as an ALU operation.
func IsAlu(op uint8) bool {
	return (op & 0x20) != 0
}

// SetsPc returns true if the opcode is marked as setting the PC directly.
func SetsPc(op uint8) bool {
	return (op & 0x10) != 0
}

// opcodeName maps opcode bytes to their mnemonics.
var opcodeName = map[uint8]string{
	OP_NOP:  "nop",
	OP_HLT:  "hlt",
	OP_RET:  "ret",
	OP_PUSH: "push",
	OP_POP:  "pop",
	OP_PRN:  "prn",
	OP_PRA:  "pra",
	OP_CALL: "call",
	OP_JMP:  "jmp",
	OP_JEQ:  "jeq",
	OP_JNE:  "jne",
	OP_JGT:  "jgt",
	OP_JLT:  "jlt",
	OP_JLE:  "jle",
	OP_JGE:  "jge",
	OP_INC:  "inc",
	OP_DEC:  "dec",
	OP_NOT:  "not",
	OP_LDI:  "ldi",
	OP_LD:   "ld",
	OP_ST:   "st",
	OP_ADD:  "add",
	OP_SUB:  "sub",
	OP_MUL:  "mul",
	OP_DIV:  "div",
	OP_MOD:  "mod",
	OP_CMP:  "cmp",
	OP_AND:  "and",
	OP_OR:   "or",
	OP_XOR:  "xor",
	OP_SHL:  "shl",
	OP_SHR:  "shr",
}

// OpcodeName returns the mnemonic for an opcode byte, or its hex value
// if the opcode is not part of the instruction set.
func OpcodeName(op uint8) string {
	name, ok := opcodeName[op]
	if !ok {
		name = fmt.Sprintf("0x%02x", op)
	}

	return name
}
