package bytecode

import "testing"

func TestInstructionString(t *testing.T) {
	tests := []struct {
		ins      Instruction
		expected string
	}{
		{PushValue(Int(-1)), "PushValue(Int(-1))"},
		{PushValue(Float(2.5)), "PushValue(Float(2.5))"},
		{PushValue(Bool(true)), "PushValue(Bool(true))"},
		{Add(), "Add"},
		{JumpIfFalse(4), "JumpIfFalse(4)"},
		{Jump(5), "Jump(5)"},
		{Pop(), "Pop"},
	}

	for _, tt := range tests {
		if got := tt.ins.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
	}
}

func TestInstructionsString(t *testing.T) {
	code := Instructions{
		PushValue(Bool(false)),
		JumpIfFalse(3),
		Pop(),
	}

	expected := "0000 PushValue(Bool(false))\n0001 JumpIfFalse(3)\n0002 Pop\n"
	if got := code.String(); got != expected {
		t.Errorf("String() =\n%s\nexpected\n%s", got, expected)
	}
}

func TestAsFloat(t *testing.T) {
	if f, ok := Int(3).AsFloat(); !ok || f != 3 {
		t.Errorf("Int(3).AsFloat() = %v, %v", f, ok)
	}
	if f, ok := Float(0.25).AsFloat(); !ok || f != 0.25 {
		t.Errorf("Float(0.25).AsFloat() = %v, %v", f, ok)
	}
	if _, ok := Bool(true).AsFloat(); ok {
		t.Error("Bool(true).AsFloat() reported a numeric value")
	}
}
