package ast

// ExprStmt is the only statement form: a single top-level expression.
type ExprStmt struct {
	Expr Expr
}

func (e *ExprStmt) AstNode()  {}
func (e *ExprStmt) StmtNode() {}
