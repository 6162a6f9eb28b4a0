package ast

type IntExpr struct {
	Value int32
}

type FloatExpr struct {
	Value float32
}

type BoolExpr struct {
	Value bool
}

// AddExpr exclusively owns both operands; a run of '+' is a left-leaning
// chain of AddExpr.
type AddExpr struct {
	Left  Expr
	Right Expr
}

type TernaryExpr struct {
	Cond Expr
	Then Expr
	Else Expr
}

func (IntExpr) AstNode()     {}
func (FloatExpr) AstNode()   {}
func (BoolExpr) AstNode()    {}
func (AddExpr) AstNode()     {}
func (TernaryExpr) AstNode() {}

func (IntExpr) ExprNode()     {}
func (FloatExpr) ExprNode()   {}
func (BoolExpr) ExprNode()    {}
func (AddExpr) ExprNode()     {}
func (TernaryExpr) ExprNode() {}
