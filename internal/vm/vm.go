package vm

import (
	"errors"
	"fmt"

	"github.com/kievzenit/tiny/internal/bytecode"
)

type RuntimeErrorKind int

const (
	StackUnderflow RuntimeErrorKind = iota
	InvalidJump
	InvalidOperation
)

type RuntimeError struct {
	Kind RuntimeErrorKind

	// Pc is the index of the faulting instruction.
	Pc     int
	Detail string
}

var (
	ErrStackUnderflow   = &RuntimeError{Kind: StackUnderflow}
	ErrInvalidJump      = &RuntimeError{Kind: InvalidJump}
	ErrInvalidOperation = &RuntimeError{Kind: InvalidOperation}
)

func (e *RuntimeError) GetMessage() string {
	switch e.Kind {
	case StackUnderflow:
		return "Stack Underflow: not enough values on the stack"
	case InvalidJump:
		return "Invalid Jump: jump target is out of bounds"
	case InvalidOperation:
		return fmt.Sprintf("Invalid Operation: %s", e.Detail)
	}

	panic("unreachable")
}

func (e *RuntimeError) Error() string {
	return e.GetMessage()
}

func (e *RuntimeError) Is(target error) bool {
	var other *RuntimeError
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

// VM executes an instruction sequence against an operand stack. It checks
// operand kinds itself and does not rely on a prior type check.
type VM struct {
	code  bytecode.Instructions
	stack []bytecode.Value
	pc    int

	lastPopped    bytecode.Value
	hasLastPopped bool
}

func NewVM(code bytecode.Instructions) *VM {
	return &VM{
		code:  code,
		stack: make([]bytecode.Value, 0),
		pc:    0,
	}
}

// Run is a shorthand for NewVM(code).Run().
func Run(code bytecode.Instructions) (*bytecode.Value, error) {
	return NewVM(code).Run()
}

// Run executes until the program counter reaches the end of the code. The
// result is the top of the stack, left in place, or nil for an empty
// stack. A fault stops execution with the stack as it was at the fault.
func (vm *VM) Run() (*bytecode.Value, error) {
	for vm.pc < len(vm.code) {
		ins := vm.code[vm.pc]

		switch ins.Op {
		case bytecode.OpPushValue:
			vm.push(ins.Value)
			vm.pc++

		case bytecode.OpAdd:
			if len(vm.stack) < 2 {
				return nil, vm.fault(StackUnderflow, "")
			}
			b := vm.pop()
			a := vm.pop()
			sum, err := vm.add(a, b)
			if err != nil {
				return nil, err
			}
			vm.push(sum)
			vm.pc++

		case bytecode.OpJumpIfFalse:
			if len(vm.stack) < 1 {
				return nil, vm.fault(StackUnderflow, "")
			}
			cond, err := vm.evaluateCondition(vm.pop())
			if err != nil {
				return nil, err
			}
			if cond {
				vm.pc++
				continue
			}
			if err := vm.jump(ins.Target); err != nil {
				return nil, err
			}

		case bytecode.OpJump:
			if err := vm.jump(ins.Target); err != nil {
				return nil, err
			}

		case bytecode.OpPop:
			if len(vm.stack) < 1 {
				return nil, vm.fault(StackUnderflow, "")
			}
			vm.lastPopped = vm.pop()
			vm.hasLastPopped = true
			vm.pc++

		default:
			return nil, vm.fault(InvalidOperation, fmt.Sprintf("unknown opcode %d", ins.Op))
		}
	}

	if len(vm.stack) == 0 {
		return nil, nil
	}

	top := vm.stack[len(vm.stack)-1]
	return &top, nil
}

// Stack returns a copy of the operand stack, bottom first.
func (vm *VM) Stack() []bytecode.Value {
	stack := make([]bytecode.Value, len(vm.stack))
	copy(stack, vm.stack)
	return stack
}

// LastPopped returns the value most recently discarded by a Pop
// instruction. Programs compiled in discard mode end with such a Pop.
func (vm *VM) LastPopped() (bytecode.Value, bool) {
	return vm.lastPopped, vm.hasLastPopped
}

func (vm *VM) add(a, b bytecode.Value) (bytecode.Value, error) {
	if a.Kind == bytecode.IntValue && b.Kind == bytecode.IntValue {
		return bytecode.Int(a.Int + b.Int), nil
	}

	left, leftOk := a.AsFloat()
	right, rightOk := b.AsFloat()
	if !leftOk || !rightOk {
		return bytecode.Value{}, vm.fault(
			InvalidOperation,
			fmt.Sprintf("Execute the Add operation for undefined type combinations. %s %s", a, b))
	}

	return bytecode.Float(left + right), nil
}

// evaluateCondition: an int is truthy when positive, a bool is itself, a
// float is never a valid condition.
func (vm *VM) evaluateCondition(v bytecode.Value) (bool, error) {
	switch v.Kind {
	case bytecode.IntValue:
		return v.Int > 0, nil
	case bytecode.BoolValue:
		return v.Bool, nil
	}

	return false, vm.fault(
		InvalidOperation,
		fmt.Sprintf("Float value can not be used as condition: %s", v))
}

// jump allows a target equal to the code length, which halts the program.
func (vm *VM) jump(target int) error {
	if target < 0 || target > len(vm.code) {
		return vm.fault(InvalidJump, "")
	}

	vm.pc = target
	return nil
}

func (vm *VM) fault(kind RuntimeErrorKind, detail string) *RuntimeError {
	return &RuntimeError{
		Kind:   kind,
		Pc:     vm.pc,
		Detail: detail,
	}
}

func (vm *VM) push(v bytecode.Value) {
	vm.stack = append(vm.stack, v)
}

func (vm *VM) pop() bytecode.Value {
	v := vm.stack[len(vm.stack)-1]
	vm.stack = vm.stack[:len(vm.stack)-1]
	return v
}
