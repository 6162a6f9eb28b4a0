package lexer

import (
	"errors"
	"fmt"
	"strconv"
	"unicode"
)

type TokenizeErrorKind int

const (
	ParseIntError TokenizeErrorKind = iota
	UnexpectedCharacter
	UnexpectedKeyword
)

type TokenizeError struct {
	Kind TokenizeErrorKind

	// Literal is the numeric text that failed to parse.
	Literal string
	Char    rune
	Keyword string
}

var (
	ErrParseInt            = &TokenizeError{Kind: ParseIntError}
	ErrUnexpectedCharacter = &TokenizeError{Kind: UnexpectedCharacter}
	ErrUnexpectedKeyword   = &TokenizeError{Kind: UnexpectedKeyword}
)

func newParseIntError(literal string) *TokenizeError {
	return &TokenizeError{Kind: ParseIntError, Literal: literal}
}

func newUnexpectedCharacterError(char rune) *TokenizeError {
	return &TokenizeError{Kind: UnexpectedCharacter, Char: char}
}

func newUnexpectedKeywordError(keyword string) *TokenizeError {
	return &TokenizeError{Kind: UnexpectedKeyword, Keyword: keyword}
}

func (e *TokenizeError) GetMessage() string {
	switch e.Kind {
	case ParseIntError:
		return "Failed to parse int"
	case UnexpectedCharacter:
		return fmt.Sprintf("Unexpected character: %c", e.Char)
	case UnexpectedKeyword:
		return fmt.Sprintf("Unexpected keyword: %s", e.Keyword)
	}

	panic("unreachable")
}

func (e *TokenizeError) Error() string {
	return e.GetMessage()
}

func (e *TokenizeError) Is(target error) bool {
	var other *TokenizeError
	if !errors.As(target, &other) {
		return false
	}

	return other.Kind == e.Kind
}

type Lexer struct {
	buf []rune
	pos int
}

func NewLexer(source string) *Lexer {
	return &Lexer{
		buf: []rune(source),
		pos: 0,
	}
}

// Tokenize is a shorthand for NewLexer(source).Tokenize().
func Tokenize(source string) ([]Token, error) {
	return NewLexer(source).Tokenize()
}

// Tokenize scans the whole input. The first lexical error aborts the scan
// and no tokens are returned with it.
func (l *Lexer) Tokenize() ([]Token, error) {
	tokens := make([]Token, 0)

	for l.hasChars() {
		switch {
		case l.read() == '+':
			tokens = append(tokens, KeywordToken(PLUS))
			l.advance()

		case l.read() == ':':
			tokens = append(tokens, KeywordToken(COLON))
			l.advance()

		case l.read() == '?':
			tokens = append(tokens, KeywordToken(QMARK))
			l.advance()

		case l.isCurrSkippable():
			l.advance()

		case l.isCurrDigit() || l.read() == '-':
			token, err := l.processNumber()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		case l.read() <= unicode.MaxASCII:
			token, err := l.processKeyword()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, token)

		default:
			return nil, newUnexpectedCharacterError(l.read())
		}
	}

	return tokens, nil
}

func (l *Lexer) isCurrDigit() bool {
	return l.read() >= '0' && l.read() <= '9'
}

func (l *Lexer) isCurrAlphanumeric() bool {
	c := l.read()
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

func (l *Lexer) isCurrSkippable() bool {
	return unicode.IsSpace(l.read())
}

func (l *Lexer) processNumber() (Token, error) {
	numberBuf := make([]rune, 0)
	numberBuf = append(numberBuf, l.read())
	l.advance()

	var isFloat bool
	for l.hasChars() {
		if l.read() == '.' {
			isFloat = true
		} else if !l.isCurrDigit() {
			break
		}

		numberBuf = append(numberBuf, l.read())
		l.advance()
	}
	literal := string(numberBuf)

	if isFloat {
		value, err := strconv.ParseFloat(literal, 32)
		if err != nil {
			return Token{}, newParseIntError(literal)
		}

		return FloatToken(float32(value)), nil
	}

	value, err := strconv.ParseInt(literal, 10, 32)
	if err != nil {
		return Token{}, newParseIntError(literal)
	}

	return IntToken(int32(value)), nil
}

func (l *Lexer) processKeyword() (Token, error) {
	keywordBuf := make([]rune, 0)
	keywordBuf = append(keywordBuf, l.read())
	l.advance()

	for l.hasChars() && l.isCurrAlphanumeric() {
		keywordBuf = append(keywordBuf, l.read())
		l.advance()
	}
	keyword := string(keywordBuf)

	switch keyword {
	case "true":
		return BoolToken(true), nil
	case "false":
		return BoolToken(false), nil
	}

	return Token{}, newUnexpectedKeywordError(keyword)
}

func (l *Lexer) hasChars() bool {
	return l.pos < len(l.buf)
}

func (l *Lexer) advance()   { l.pos++ }
func (l *Lexer) read() rune { return l.buf[l.pos] }
