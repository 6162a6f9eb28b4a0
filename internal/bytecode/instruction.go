package bytecode

import (
	"fmt"
	"strings"
)

type Opcode int

const (
	OpPushValue Opcode = iota
	OpAdd
	OpJumpIfFalse
	OpJump
	OpPop
)

func (op Opcode) String() string {
	switch op {
	case OpPushValue:
		return "PushValue"
	case OpAdd:
		return "Add"
	case OpJumpIfFalse:
		return "JumpIfFalse"
	case OpJump:
		return "Jump"
	case OpPop:
		return "Pop"
	default:
		panic(fmt.Sprintf("Opcode.String(): received illegal opcode: %d", op))
	}
}

// Instruction is one stack machine instruction. Value is used by
// OpPushValue, Target by the jumps; Target is an absolute index into the
// instruction sequence.
type Instruction struct {
	Op     Opcode
	Value  Value
	Target int
}

func PushValue(v Value) Instruction { return Instruction{Op: OpPushValue, Value: v} }
func Add() Instruction              { return Instruction{Op: OpAdd} }
func JumpIfFalse(t int) Instruction { return Instruction{Op: OpJumpIfFalse, Target: t} }
func Jump(t int) Instruction        { return Instruction{Op: OpJump, Target: t} }
func Pop() Instruction              { return Instruction{Op: OpPop} }

func (ins Instruction) IsJump() bool {
	return ins.Op == OpJumpIfFalse || ins.Op == OpJump
}

func (ins Instruction) String() string {
	switch ins.Op {
	case OpPushValue:
		return fmt.Sprintf("%s(%s)", ins.Op, ins.Value)
	case OpJumpIfFalse, OpJump:
		return fmt.Sprintf("%s(%d)", ins.Op, ins.Target)
	default:
		return ins.Op.String()
	}
}

type Instructions []Instruction

// String disassembles the sequence, one numbered instruction per line.
func (ins Instructions) String() string {
	var out strings.Builder

	for i, instruction := range ins {
		fmt.Fprintf(&out, "%04d %s\n", i, instruction)
	}

	return out.String()
}
