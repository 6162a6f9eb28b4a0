package types

// IntType is a 32-bit signed integer.
type IntType struct{}

func (*IntType) Type() string {
	return "int"
}

func (*IntType) SameAs(t Type) bool {
	_, ok := t.(*IntType)
	return ok
}

// CanBeImplicitlyCastedTo reports numeric promotion: an int widens to a
// float when mixed with one.
func (*IntType) CanBeImplicitlyCastedTo(t Type) bool {
	_, ok := t.(*FloatType)
	return ok
}
