package types

type BoolType struct{}

func (*BoolType) Type() string {
	return "bool"
}

func (*BoolType) SameAs(t Type) bool {
	_, ok := t.(*BoolType)
	return ok
}

func (*BoolType) CanBeImplicitlyCastedTo(t Type) bool {
	return false
}
