package parser

import (
	"errors"
	"fmt"

	"github.com/kievzenit/tiny/internal/ast"
	"github.com/kievzenit/tiny/internal/lexer"
)

type ParseErrorKind int

const (
	UnexpectedEOF ParseErrorKind = iota
	UnexpectedToken
)

type ParseError struct {
	Kind ParseErrorKind

	// Expected is nil when several tokens would have been acceptable.
	Expected *lexer.Token
	Actual   lexer.Token

	// sentinel marks the kind-only values used with errors.Is; they carry
	// no actual token.
	sentinel bool
}

var (
	ErrUnexpectedEOF   = &ParseError{Kind: UnexpectedEOF, sentinel: true}
	ErrUnexpectedToken = &ParseError{Kind: UnexpectedToken, sentinel: true}
)

func (e *ParseError) GetMessage() string {
	switch e.Kind {
	case UnexpectedEOF:
		return "unexpected end of input"
	case UnexpectedToken:
		if e.sentinel {
			return "[Unexpected Token]"
		}
		if e.Expected == nil {
			return fmt.Sprintf("[Unexpected Token] actual: %s", e.Actual.Source())
		}
		return fmt.Sprintf(
			"[Unexpected Token] expected: %s, actual: %s",
			e.Expected.Source(),
			e.Actual.Source())
	}

	panic("unreachable")
}

func (e *ParseError) Error() string {
	return e.GetMessage()
}

func (e *ParseError) Is(target error) bool {
	var other *ParseError
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

type Parser struct {
	scanner lexer.TokenScanner
}

func NewParser(scanner lexer.TokenScanner) *Parser {
	return &Parser{
		scanner: scanner,
	}
}

// Parse is a shorthand for parsing a complete token sequence.
func Parse(tokens []lexer.Token) (ast.Stmt, error) {
	return NewParser(lexer.NewTokenScanner(tokens)).Parse()
}

// Parse reads a single expression statement. Tokens left over after the
// expression are ignored.
func (p *Parser) Parse() (ast.Stmt, error) {
	expr, err := p.parseExpr()
	if err != nil {
		return nil, err
	}

	return &ast.ExprStmt{Expr: expr}, nil
}

type ternaryStage int

const (
	parsingThen ternaryStage = iota
	parsingElse
)

// ternaryFrame is a ternary whose branches are still being parsed.
type ternaryFrame struct {
	cond  ast.Expr
	then  ast.Expr
	stage ternaryStage
}

// parseExpr handles `add_expr ( "?" expr ":" expr )?` with an explicit
// frame stack instead of recursion, so nesting depth is bounded only by
// memory.
func (p *Parser) parseExpr() (ast.Expr, error) {
	frames := make([]*ternaryFrame, 0)

	for {
		expr, err := p.parseAddExpr()
		if err != nil {
			return nil, err
		}

		if p.isCurr(lexer.QMARK) {
			p.scanner.Read()
			frames = append(frames, &ternaryFrame{cond: expr, stage: parsingThen})
			continue
		}

		for {
			if len(frames) == 0 {
				return expr, nil
			}

			top := frames[len(frames)-1]
			if top.stage == parsingThen {
				if err := p.expect(lexer.COLON); err != nil {
					return nil, err
				}
				top.then = expr
				top.stage = parsingElse
				break
			}

			frames = frames[:len(frames)-1]
			expr = &ast.TernaryExpr{
				Cond: top.cond,
				Then: top.then,
				Else: expr,
			}
		}
	}
}

func (p *Parser) parseAddExpr() (ast.Expr, error) {
	left, err := p.parsePrimaryExpr()
	if err != nil {
		return nil, err
	}

	for p.isCurr(lexer.PLUS) {
		p.scanner.Read()

		right, err := p.parsePrimaryExpr()
		if err != nil {
			return nil, err
		}

		left = &ast.AddExpr{
			Left:  left,
			Right: right,
		}
	}

	return left, nil
}

func (p *Parser) parsePrimaryExpr() (ast.Expr, error) {
	token, ok := p.scanner.Read()
	if !ok {
		return nil, &ParseError{Kind: UnexpectedEOF}
	}

	switch token.Kind {
	case lexer.INT:
		return &ast.IntExpr{Value: token.Int}, nil
	case lexer.FLOAT:
		return &ast.FloatExpr{Value: token.Float}, nil
	case lexer.BOOL:
		return &ast.BoolExpr{Value: token.Bool}, nil
	}

	return nil, &ParseError{
		Kind:   UnexpectedToken,
		Actual: token,
	}
}

func (p *Parser) isCurr(kind lexer.TokenKind) bool {
	token, ok := p.scanner.Peek()
	return ok && token.Kind == kind
}

func (p *Parser) expect(kind lexer.TokenKind) error {
	token, ok := p.scanner.Read()
	if !ok {
		return &ParseError{Kind: UnexpectedEOF}
	}

	if token.Kind != kind {
		expected := lexer.KeywordToken(kind)
		return &ParseError{
			Kind:     UnexpectedToken,
			Expected: &expected,
			Actual:   token,
		}
	}

	return nil
}
