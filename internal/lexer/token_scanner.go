package lexer

type TokenScanner interface {
	HasTokens() bool
	Peek() (Token, bool)
	Read() (Token, bool)
}

type SimpleTokenScanner struct {
	tokens []Token

	pos int
}

func NewTokenScanner(tokens []Token) TokenScanner {
	return &SimpleTokenScanner{
		tokens: tokens,
	}
}

func (s *SimpleTokenScanner) HasTokens() bool {
	return s.pos < len(s.tokens)
}

func (s *SimpleTokenScanner) Peek() (Token, bool) {
	if !s.HasTokens() {
		return Token{}, false
	}

	return s.tokens[s.pos], true
}

func (s *SimpleTokenScanner) Read() (Token, bool) {
	token, ok := s.Peek()
	if ok {
		s.pos++
	}

	return token, ok
}
