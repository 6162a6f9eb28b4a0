package compiler

import (
	"errors"
	"fmt"

	"github.com/kievzenit/tiny/internal/ast"
	"github.com/kievzenit/tiny/internal/bytecode"
)

type CompileErrorKind int

const (
	UnsupportedExpr CompileErrorKind = iota
)

type CompileError struct {
	Kind CompileErrorKind

	Expr ast.Expr
}

var ErrUnsupportedExpr = &CompileError{Kind: UnsupportedExpr}

func (e *CompileError) GetMessage() string {
	return "unsupported expression encountered during compilation"
}

func (e *CompileError) Error() string {
	return e.GetMessage()
}

func (e *CompileError) Is(target error) bool {
	var other *CompileError
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

// Mode selects what happens to the value of a top-level expression.
type Mode int

const (
	// Discard pops the value after evaluation, leaving the stack empty.
	Discard Mode = iota
	// Yield leaves the value on top of the stack as the program result.
	Yield
)

func (m Mode) String() string {
	switch m {
	case Discard:
		return "discard"
	case Yield:
		return "yield"
	default:
		panic(fmt.Sprintf("Mode.String(): received illegal mode: %d", m))
	}
}

func ParseMode(s string) (Mode, error) {
	switch s {
	case "discard":
		return Discard, nil
	case "yield":
		return Yield, nil
	}

	return 0, fmt.Errorf("unknown compilation mode: %q", s)
}

type taskKind int

const (
	compileExprTask taskKind = iota
	emitAddTask
	ternaryCondDoneTask
	ternaryThenDoneTask
	ternaryElseDoneTask
)

// ternaryPatch tracks the placeholder jumps of one ternary until both
// branch addresses are known.
type ternaryPatch struct {
	expr *ast.TernaryExpr

	jumpIfFalsePos int
	jumpPos        int
	elseStart      int
}

type task struct {
	kind  taskKind
	expr  ast.Expr
	patch *ternaryPatch
}

type Compiler struct {
	mode Mode

	code  bytecode.Instructions
	tasks []task
}

func NewCompiler(mode Mode) *Compiler {
	return &Compiler{
		mode: mode,
	}
}

// Compile is a shorthand for NewCompiler(mode).Compile(stmt).
func Compile(stmt ast.Stmt, mode Mode) (bytecode.Instructions, error) {
	return NewCompiler(mode).Compile(stmt)
}

// Compile lowers stmt into a fresh instruction sequence. Every jump target
// in the result lies in [0, len(result)].
func (c *Compiler) Compile(stmt ast.Stmt) (bytecode.Instructions, error) {
	c.code = make(bytecode.Instructions, 0)
	c.tasks = c.tasks[:0]

	switch stmt := stmt.(type) {
	case *ast.ExprStmt:
		if err := c.compileExpr(stmt.Expr); err != nil {
			return nil, err
		}
		if c.mode == Discard {
			c.emit(bytecode.Pop())
		}
	default:
		panic(fmt.Sprintf("unexpected statement type: %T", stmt))
	}

	return c.code, nil
}

// compileExpr is a depth-first traversal driven by an explicit task stack.
// Tasks are pushed in reverse of the order they must run.
func (c *Compiler) compileExpr(root ast.Expr) error {
	c.pushTask(task{kind: compileExprTask, expr: root})

	for len(c.tasks) > 0 {
		t := c.tasks[len(c.tasks)-1]
		c.tasks = c.tasks[:len(c.tasks)-1]

		switch t.kind {
		case compileExprTask:
			if err := c.scheduleExpr(t.expr); err != nil {
				return err
			}

		case emitAddTask:
			c.emit(bytecode.Add())

		case ternaryCondDoneTask:
			t.patch.jumpIfFalsePos = c.emit(bytecode.JumpIfFalse(0))
			c.pushTask(task{kind: ternaryThenDoneTask, patch: t.patch})
			c.pushTask(task{kind: compileExprTask, expr: t.patch.expr.Then})

		case ternaryThenDoneTask:
			t.patch.jumpPos = c.emit(bytecode.Jump(0))
			t.patch.elseStart = len(c.code)
			c.pushTask(task{kind: ternaryElseDoneTask, patch: t.patch})
			c.pushTask(task{kind: compileExprTask, expr: t.patch.expr.Else})

		case ternaryElseDoneTask:
			end := len(c.code)
			c.code[t.patch.jumpIfFalsePos] = bytecode.JumpIfFalse(t.patch.elseStart)
			c.code[t.patch.jumpPos] = bytecode.Jump(end)
		}
	}

	return nil
}

func (c *Compiler) scheduleExpr(expr ast.Expr) error {
	switch expr := expr.(type) {
	case *ast.IntExpr:
		c.emit(bytecode.PushValue(bytecode.Int(expr.Value)))

	case *ast.FloatExpr:
		c.emit(bytecode.PushValue(bytecode.Float(expr.Value)))

	case *ast.BoolExpr:
		c.emit(bytecode.PushValue(bytecode.Bool(expr.Value)))

	case *ast.AddExpr:
		c.pushTask(task{kind: emitAddTask})
		c.pushTask(task{kind: compileExprTask, expr: expr.Right})
		c.pushTask(task{kind: compileExprTask, expr: expr.Left})

	case *ast.TernaryExpr:
		c.pushTask(task{kind: ternaryCondDoneTask, patch: &ternaryPatch{expr: expr}})
		c.pushTask(task{kind: compileExprTask, expr: expr.Cond})

	default:
		return &CompileError{Kind: UnsupportedExpr, Expr: expr}
	}

	return nil
}

func (c *Compiler) pushTask(t task) {
	c.tasks = append(c.tasks, t)
}

// emit appends an instruction and returns its index.
func (c *Compiler) emit(ins bytecode.Instruction) int {
	c.code = append(c.code, ins)
	return len(c.code) - 1
}
