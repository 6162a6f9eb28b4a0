package types

// Type is a static type. Types exist only while type checking and are
// never carried into bytecode.
type Type interface {
	Type() string
	SameAs(t Type) bool
	CanBeImplicitlyCastedTo(t Type) bool
}

func IsNumeric(t Type) bool {
	switch t.(type) {
	case *IntType, *FloatType:
		return true
	}

	return false
}
