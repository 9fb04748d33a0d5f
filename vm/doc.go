// Package vm implements the processor and assembler for the OCT-8 machine.
//
// The CPU consists of eight 8-bit general-purpose registers (r0-r7, with
// r7 reserved as the stack pointer), a program counter (PC), an instruction
// register (IR), a flag register (FL) holding the EQ/GT/LT compare flags,
// and an ALU. Instructions are one opcode byte followed by up to two
// operand bytes; the operand count is packed into the opcode's high bits.
//
// The assembler provides an assembly language for the OCT-8 instruction
// set, supporting macros, labels, equates, and compile-time expression
// evaluation.
package vm
