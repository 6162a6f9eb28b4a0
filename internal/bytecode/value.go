package bytecode

import (
	"fmt"
	"strconv"
)

type ValueKind int

const (
	IntValue ValueKind = iota
	BoolValue
	FloatValue
)

func (k ValueKind) String() string {
	switch k {
	case IntValue:
		return "Int"
	case BoolValue:
		return "Bool"
	case FloatValue:
		return "Float"
	default:
		panic(fmt.Sprintf("ValueKind.String(): received illegal value kind: %d", k))
	}
}

// Value is a runtime value. It carries its own kind tag; only the field
// matching Kind is meaningful.
type Value struct {
	Kind ValueKind

	Int   int32
	Bool  bool
	Float float32
}

func Int(n int32) Value     { return Value{Kind: IntValue, Int: n} }
func Bool(b bool) Value     { return Value{Kind: BoolValue, Bool: b} }
func Float(f float32) Value { return Value{Kind: FloatValue, Float: f} }

// AsFloat widens an int to float. Bools have no numeric value.
func (v Value) AsFloat() (float32, bool) {
	switch v.Kind {
	case IntValue:
		return float32(v.Int), true
	case FloatValue:
		return v.Float, true
	}

	return 0, false
}

func (v Value) String() string {
	switch v.Kind {
	case IntValue:
		return fmt.Sprintf("Int(%d)", v.Int)
	case BoolValue:
		return fmt.Sprintf("Bool(%t)", v.Bool)
	case FloatValue:
		return fmt.Sprintf("Float(%s)", strconv.FormatFloat(float64(v.Float), 'g', -1, 32))
	}

	panic("unreachable")
}
