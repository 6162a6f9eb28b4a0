package semantic_analyzer

import (
	"errors"
	"fmt"

	"github.com/kievzenit/tiny/internal/ast"
	"github.com/kievzenit/tiny/internal/types"
)

type TypeCheckErrorKind int

const (
	CondMustBeBool TypeCheckErrorKind = iota
	TernaryReturnsTypeMustBeSame
	UndefinedOperation
	UnsupportedExpr
)

type TypeCheckError struct {
	Kind TypeCheckErrorKind

	// Types involved in the failing rule: the condition type, the two
	// branch types, or the two operand types. Empty on the sentinels.
	Types []types.Type

	Expr ast.Expr
}

var (
	ErrCondMustBeBool               = &TypeCheckError{Kind: CondMustBeBool}
	ErrTernaryReturnsTypeMustBeSame = &TypeCheckError{Kind: TernaryReturnsTypeMustBeSame}
	ErrUndefinedOperation           = &TypeCheckError{Kind: UndefinedOperation}
	ErrUnsupportedExpr              = &TypeCheckError{Kind: UnsupportedExpr}
)

func newTypeCheckError(kind TypeCheckErrorKind, involved ...types.Type) *TypeCheckError {
	return &TypeCheckError{
		Kind:  kind,
		Types: involved,
	}
}

func (e *TypeCheckError) GetMessage() string {
	switch e.Kind {
	case CondMustBeBool:
		if len(e.Types) < 1 {
			return "condition must be bool"
		}
		return fmt.Sprintf("condition must be bool, got %s", e.Types[0].Type())
	case TernaryReturnsTypeMustBeSame:
		if len(e.Types) < 2 {
			return "ternary branches must have the same type"
		}
		return fmt.Sprintf(
			"ternary branches must have the same type, got %s and %s",
			e.Types[0].Type(),
			e.Types[1].Type())
	case UndefinedOperation:
		if len(e.Types) < 2 {
			return "undefined operation"
		}
		return fmt.Sprintf(
			"undefined operation: %s + %s",
			e.Types[0].Type(),
			e.Types[1].Type())
	case UnsupportedExpr:
		if e.Expr == nil {
			return "unsupported expression encountered during type checking"
		}
		return fmt.Sprintf("unsupported expression encountered during type checking: %T", e.Expr)
	}

	panic("unreachable")
}

func (e *TypeCheckError) Error() string {
	return e.GetMessage()
}

func (e *TypeCheckError) Is(target error) bool {
	var other *TypeCheckError
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

type visitPhase int

const (
	enter visitPhase = iota
	afterCond
	exit
)

type visit struct {
	expr  ast.Expr
	phase visitPhase
}

// SemanticAnalyzer assigns a static type to a statement. It never looks at
// literal values, only at their kinds, and it does not modify the tree.
type SemanticAnalyzer struct {
	stmt ast.Stmt

	visits  []visit
	results []types.Type
}

func NewSemanticAnalyzer(stmt ast.Stmt) *SemanticAnalyzer {
	return &SemanticAnalyzer{
		stmt: stmt,
	}
}

// Typecheck is a shorthand for NewSemanticAnalyzer(stmt).Analyze().
func Typecheck(stmt ast.Stmt) (types.Type, error) {
	return NewSemanticAnalyzer(stmt).Analyze()
}

func (sa *SemanticAnalyzer) Analyze() (types.Type, error) {
	switch stmt := sa.stmt.(type) {
	case *ast.ExprStmt:
		return sa.analyzeExpr(stmt.Expr)
	default:
		panic(fmt.Sprintf("unexpected statement type: %T", stmt))
	}
}

// analyzeExpr walks the tree with an explicit work list. Children push
// their types onto results; parents pop them in the exit phase.
func (sa *SemanticAnalyzer) analyzeExpr(root ast.Expr) (types.Type, error) {
	sa.visits = append(sa.visits[:0], visit{expr: root})
	sa.results = sa.results[:0]

	for len(sa.visits) > 0 {
		v := sa.visits[len(sa.visits)-1]
		sa.visits = sa.visits[:len(sa.visits)-1]

		switch expr := v.expr.(type) {
		case *ast.IntExpr:
			sa.pushResult(&types.IntType{})

		case *ast.FloatExpr:
			sa.pushResult(&types.FloatType{})

		case *ast.BoolExpr:
			sa.pushResult(&types.BoolType{})

		case *ast.AddExpr:
			if v.phase == enter {
				sa.pushVisit(expr, exit)
				sa.pushVisit(expr.Right, enter)
				sa.pushVisit(expr.Left, enter)
				continue
			}

			right := sa.popResult()
			left := sa.popResult()
			resultType, err := AnalyzeAdd(left, right)
			if err != nil {
				return nil, err
			}
			sa.pushResult(resultType)

		case *ast.TernaryExpr:
			switch v.phase {
			case enter:
				sa.pushVisit(expr, afterCond)
				sa.pushVisit(expr.Cond, enter)

			case afterCond:
				condType := sa.popResult()
				if _, ok := condType.(*types.BoolType); !ok {
					return nil, newTypeCheckError(CondMustBeBool, condType)
				}
				sa.pushVisit(expr, exit)
				sa.pushVisit(expr.Else, enter)
				sa.pushVisit(expr.Then, enter)

			case exit:
				elseType := sa.popResult()
				thenType := sa.popResult()
				if !thenType.SameAs(elseType) {
					return nil, newTypeCheckError(TernaryReturnsTypeMustBeSame, thenType, elseType)
				}
				sa.pushResult(thenType)
			}

		default:
			return nil, &TypeCheckError{Kind: UnsupportedExpr, Expr: expr}
		}
	}

	return sa.popResult(), nil
}

// AnalyzeAdd applies numeric promotion: int+int is int, any float operand
// makes the result float, bool operands are rejected.
func AnalyzeAdd(left, right types.Type) (types.Type, error) {
	if !types.IsNumeric(left) || !types.IsNumeric(right) {
		return nil, newTypeCheckError(UndefinedOperation, left, right)
	}

	switch {
	case left.SameAs(right):
		return left, nil
	case left.CanBeImplicitlyCastedTo(right):
		return right, nil
	case right.CanBeImplicitlyCastedTo(left):
		return left, nil
	}

	return nil, newTypeCheckError(UndefinedOperation, left, right)
}

func (sa *SemanticAnalyzer) pushVisit(expr ast.Expr, phase visitPhase) {
	sa.visits = append(sa.visits, visit{expr: expr, phase: phase})
}

func (sa *SemanticAnalyzer) pushResult(t types.Type) {
	sa.results = append(sa.results, t)
}

func (sa *SemanticAnalyzer) popResult() types.Type {
	t := sa.results[len(sa.results)-1]
	sa.results = sa.results[:len(sa.results)-1]
	return t
}
