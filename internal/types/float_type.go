package types

// FloatType is a 32-bit IEEE float.
type FloatType struct{}

func (*FloatType) Type() string {
	return "float"
}

func (*FloatType) SameAs(t Type) bool {
	_, ok := t.(*FloatType)
	return ok
}

func (*FloatType) CanBeImplicitlyCastedTo(t Type) bool {
	return false
}
