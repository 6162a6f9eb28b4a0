package lexer

import (
	"fmt"
	"strconv"
)

type TokenKind int

const (
	INT TokenKind = iota
	FLOAT
	BOOL

	PLUS  // +
	COLON // :
	QMARK // ?

	// reserved, never produced by the lexer
	LPAREN // (
	RPAREN // )
	CONST
)

func (tk TokenKind) String() string {
	switch tk {
	case INT:
		return "INT"
	case FLOAT:
		return "FLOAT"
	case BOOL:
		return "BOOL"
	case PLUS:
		return "PLUS"
	case COLON:
		return "COLON"
	case QMARK:
		return "QMARK"
	case LPAREN:
		return "LPAREN"
	case RPAREN:
		return "RPAREN"
	case CONST:
		return "CONST"
	default:
		panic(fmt.Sprintf("TokenKind.String(): received illegal token kind: %d", tk))
	}
}

// Token is compared by value; only the field matching Kind is meaningful.
type Token struct {
	Kind TokenKind

	Int   int32
	Float float32
	Bool  bool
}

func IntToken(n int32) Token         { return Token{Kind: INT, Int: n} }
func FloatToken(f float32) Token     { return Token{Kind: FLOAT, Float: f} }
func BoolToken(b bool) Token         { return Token{Kind: BOOL, Bool: b} }
func KeywordToken(k TokenKind) Token { return Token{Kind: k} }

func (t Token) IsLiteral() bool {
	switch t.Kind {
	case INT, FLOAT, BOOL:
		return true
	}

	return false
}

// Source renders the token the way it would appear in source text.
func (t Token) Source() string {
	switch t.Kind {
	case INT:
		return strconv.FormatInt(int64(t.Int), 10)
	case FLOAT:
		return strconv.FormatFloat(float64(t.Float), 'g', -1, 32)
	case BOOL:
		return strconv.FormatBool(t.Bool)
	case PLUS:
		return "+"
	case COLON:
		return ":"
	case QMARK:
		return "?"
	case LPAREN:
		return "("
	case RPAREN:
		return ")"
	case CONST:
		return "const"
	}

	panic("unreachable")
}

func (t Token) String() string {
	if !t.IsLiteral() {
		return fmt.Sprintf("%s()", t.Kind)
	}

	return fmt.Sprintf("%s(%s)", t.Kind, t.Source())
}
