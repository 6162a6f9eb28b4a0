package emitter

import (
	"fmt"

	"github.com/kievzenit/tiny/internal/ast"
	"github.com/kievzenit/tiny/internal/semantic_analyzer"
	"github.com/kievzenit/tiny/internal/types"
	"tinygo.org/x/go-llvm"
)

// FuncName is the name of the function holding the emitted expression.
const FuncName = "eval"

// Emitter lowers a type-checked statement to LLVM IR: a module with a
// single function returning the value of the expression.
type Emitter struct {
	stmt ast.Stmt

	typesMap map[string]llvm.Type

	context llvm.Context
	module  llvm.Module
	builder llvm.Builder

	currentFunc llvm.Value
}

func NewEmitter(stmt ast.Stmt) *Emitter {
	context := llvm.NewContext()
	return &Emitter{
		stmt: stmt,

		typesMap: make(map[string]llvm.Type),

		context: context,
		module:  context.NewModule("main"),
		builder: context.NewBuilder(),
	}
}

// Dispose releases the LLVM context; the module returned by Emit is
// invalid afterwards.
func (e *Emitter) Dispose() {
	e.builder.Dispose()
	e.context.Dispose()
}

// Emit type checks the statement and returns the verified module. Inputs
// that fail type checking return the *semantic_analyzer.TypeCheckError.
func (e *Emitter) Emit() (llvm.Module, error) {
	resultType, err := semantic_analyzer.Typecheck(e.stmt)
	if err != nil {
		return llvm.Module{}, err
	}

	e.declareTypes()

	funcType := llvm.FunctionType(e.getLlvmTypeForType(resultType), nil, false)
	e.currentFunc = llvm.AddFunction(e.module, FuncName, funcType)
	entry := e.context.AddBasicBlock(e.currentFunc, "entry")
	e.builder.SetInsertPointAtEnd(entry)

	switch stmt := e.stmt.(type) {
	case *ast.ExprStmt:
		value, _, err := e.emitForExpr(stmt.Expr)
		if err != nil {
			return llvm.Module{}, err
		}
		e.builder.CreateRet(value)
	default:
		panic(fmt.Sprintf("unexpected statement type: %T", stmt))
	}

	if err := llvm.VerifyModule(e.module, llvm.ReturnStatusAction); err != nil {
		return llvm.Module{}, err
	}

	return e.module, nil
}

func (e *Emitter) declareTypes() {
	e.typesMap["bool"] = e.context.Int1Type()
	e.typesMap["int"] = e.context.Int32Type()
	e.typesMap["float"] = e.context.FloatType()
}

func (e *Emitter) getLlvmTypeForType(t types.Type) llvm.Type {
	if llvmType, ok := e.typesMap[t.Type()]; ok {
		return llvmType
	}

	panic("type not found")
}

func (e *Emitter) emitForExpr(expr ast.Expr) (llvm.Value, types.Type, error) {
	switch expr := expr.(type) {
	case *ast.IntExpr:
		intType := &types.IntType{}
		return llvm.ConstInt(e.getLlvmTypeForType(intType), uint64(int64(expr.Value)), true), intType, nil
	case *ast.FloatExpr:
		floatType := &types.FloatType{}
		return llvm.ConstFloat(e.getLlvmTypeForType(floatType), float64(expr.Value)), floatType, nil
	case *ast.BoolExpr:
		return e.emitForBoolExpr(expr)
	case *ast.AddExpr:
		return e.emitForAddExpr(expr)
	case *ast.TernaryExpr:
		return e.emitForTernaryExpr(expr)
	default:
		panic(fmt.Sprintf("unexpected expression type: %T", expr))
	}
}

func (e *Emitter) emitForBoolExpr(boolExpr *ast.BoolExpr) (llvm.Value, types.Type, error) {
	var intValue uint64
	if boolExpr.Value {
		intValue = 1
	} else {
		intValue = 0
	}

	boolType := &types.BoolType{}
	return llvm.ConstInt(e.getLlvmTypeForType(boolType), intValue, false), boolType, nil
}

func (e *Emitter) emitForAddExpr(addExpr *ast.AddExpr) (llvm.Value, types.Type, error) {
	leftValue, leftType, err := e.emitForExpr(addExpr.Left)
	if err != nil {
		return llvm.Value{}, nil, err
	}
	rightValue, rightType, err := e.emitForExpr(addExpr.Right)
	if err != nil {
		return llvm.Value{}, nil, err
	}

	resultType, err := semantic_analyzer.AnalyzeAdd(leftType, rightType)
	if err != nil {
		return llvm.Value{}, nil, err
	}

	// plain add wraps on overflow, the same as the vm
	if _, ok := resultType.(*types.IntType); ok {
		return e.builder.CreateAdd(leftValue, rightValue, "addtmp"), resultType, nil
	}

	leftValue = e.promote(leftValue, leftType, resultType)
	rightValue = e.promote(rightValue, rightType, resultType)
	return e.builder.CreateFAdd(leftValue, rightValue, "addtmp"), resultType, nil
}

func (e *Emitter) promote(value llvm.Value, from, to types.Type) llvm.Value {
	if from.SameAs(to) {
		return value
	}

	return e.builder.CreateSIToFP(value, e.getLlvmTypeForType(to), "promotetmp")
}

func (e *Emitter) emitForTernaryExpr(ternaryExpr *ast.TernaryExpr) (llvm.Value, types.Type, error) {
	condValue, _, err := e.emitForExpr(ternaryExpr.Cond)
	if err != nil {
		return llvm.Value{}, nil, err
	}

	thenBlock := e.context.AddBasicBlock(e.currentFunc, "ternthen")
	elseBlock := e.context.AddBasicBlock(e.currentFunc, "ternelse")
	mergeBlock := e.context.AddBasicBlock(e.currentFunc, "ternmerge")

	e.builder.CreateCondBr(condValue, thenBlock, elseBlock)

	e.builder.SetInsertPointAtEnd(thenBlock)
	thenValue, thenType, err := e.emitForExpr(ternaryExpr.Then)
	if err != nil {
		return llvm.Value{}, nil, err
	}
	lastBlockInThen := e.builder.GetInsertBlock()
	e.builder.CreateBr(mergeBlock)

	e.builder.SetInsertPointAtEnd(elseBlock)
	elseValue, _, err := e.emitForExpr(ternaryExpr.Else)
	if err != nil {
		return llvm.Value{}, nil, err
	}
	lastBlockInElse := e.builder.GetInsertBlock()
	e.builder.CreateBr(mergeBlock)

	e.builder.SetInsertPointAtEnd(mergeBlock)

	phi := e.builder.CreatePHI(e.getLlvmTypeForType(thenType), "ternphi")
	phi.AddIncoming([]llvm.Value{thenValue}, []llvm.BasicBlock{lastBlockInThen})
	phi.AddIncoming([]llvm.Value{elseValue}, []llvm.BasicBlock{lastBlockInElse})

	return phi, thenType, nil
}
