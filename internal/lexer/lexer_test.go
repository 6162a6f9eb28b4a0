package lexer

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/sanity-io/litter"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Token
	}{
		{
			name:     "Empty",
			input:    "",
			expected: []Token{},
		},
		{
			name:     "Only whitespace",
			input:    " \t\n ",
			expected: []Token{},
		},
		{
			name:  "Addition",
			input: "1 + 2",
			expected: []Token{
				IntToken(1),
				KeywordToken(PLUS),
				IntToken(2),
			},
		},
		{
			name:  "Ternary without spaces",
			input: "true?1:2",
			expected: []Token{
				BoolToken(true),
				KeywordToken(QMARK),
				IntToken(1),
				KeywordToken(COLON),
				IntToken(2),
			},
		},
		{
			name:     "Negative int",
			input:    "-42",
			expected: []Token{IntToken(-42)},
		},
		{
			name:     "Float",
			input:    "2.5",
			expected: []Token{FloatToken(2.5)},
		},
		{
			name:     "Negative float",
			input:    "-0.25",
			expected: []Token{FloatToken(-0.25)},
		},
		{
			name:  "Minus right after a number starts a new literal",
			input: "1-2",
			expected: []Token{
				IntToken(1),
				IntToken(-2),
			},
		},
		{
			name:  "Booleans",
			input: "  false + true",
			expected: []Token{
				BoolToken(false),
				KeywordToken(PLUS),
				BoolToken(true),
			},
		},
		{
			name:  "Int bounds",
			input: "2147483647 -2147483648",
			expected: []Token{
				IntToken(2147483647),
				IntToken(-2147483648),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err != nil {
				t.Fatalf("Tokenize(%q) returned error: %v", tt.input, err)
			}

			if !reflect.DeepEqual(tokens, tt.expected) {
				t.Errorf("Tokenize(%q) =\n%s\nexpected\n%s", tt.input, litter.Sdump(tokens), litter.Sdump(tt.expected))
			}
		})
	}
}

func TestTokenizeSingleLiteral(t *testing.T) {
	for _, input := range []string{"0", "7", "-1", "123456", "0.0", "3.14", "-10.5"} {
		tokens, err := Tokenize(input)
		if err != nil {
			t.Fatalf("Tokenize(%q) returned error: %v", input, err)
		}
		if len(tokens) != 1 {
			t.Fatalf("Tokenize(%q) returned %d tokens, expected 1", input, len(tokens))
		}

		expectedKind := INT
		if strings.Contains(input, ".") {
			expectedKind = FLOAT
		}
		if tokens[0].Kind != expectedKind {
			t.Errorf("Tokenize(%q) kind = %s, expected %s", input, tokens[0].Kind, expectedKind)
		}
	}
}

func TestTokenizeErrors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected *TokenizeError
	}{
		{
			name:     "Int overflow",
			input:    "2147483648",
			expected: &TokenizeError{Kind: ParseIntError, Literal: "2147483648"},
		},
		{
			name:     "Lone minus",
			input:    "1 + -",
			expected: &TokenizeError{Kind: ParseIntError, Literal: "-"},
		},
		{
			name:     "Two dots",
			input:    "1.2.3",
			expected: &TokenizeError{Kind: ParseIntError, Literal: "1.2.3"},
		},
		{
			name:     "Unknown word",
			input:    "1 + foo",
			expected: &TokenizeError{Kind: UnexpectedKeyword, Keyword: "foo"},
		},
		{
			name:     "Punctuation is a keyword candidate",
			input:    "(1)",
			expected: &TokenizeError{Kind: UnexpectedKeyword, Keyword: "(1"},
		},
		{
			name:     "Non ASCII character",
			input:    "1 + é",
			expected: &TokenizeError{Kind: UnexpectedCharacter, Char: 'é'},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			if err == nil {
				t.Fatalf("Tokenize(%q) = %v, expected error", tt.input, tokens)
			}
			if tokens != nil {
				t.Errorf("Tokenize(%q) returned partial tokens %v", tt.input, tokens)
			}

			var tokenizeErr *TokenizeError
			if !errors.As(err, &tokenizeErr) {
				t.Fatalf("expected *TokenizeError, got %T", err)
			}
			if !reflect.DeepEqual(tokenizeErr, tt.expected) {
				t.Errorf("got %#v, expected %#v", tokenizeErr, tt.expected)
			}
			if !errors.Is(err, &TokenizeError{Kind: tt.expected.Kind}) {
				t.Errorf("errors.Is did not match kind %d", tt.expected.Kind)
			}
		})
	}
}

func TestTokenizeErrorMessages(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"99999999999", "Failed to parse int"},
		{"nope", "Unexpected keyword: nope"},
		{"λ", "Unexpected character: λ"},
	}

	for _, tt := range tests {
		_, err := Tokenize(tt.input)
		if err == nil {
			t.Fatalf("Tokenize(%q) expected error", tt.input)
		}
		if err.Error() != tt.expected {
			t.Errorf("Tokenize(%q) error = %q, expected %q", tt.input, err.Error(), tt.expected)
		}
	}
}

func TestTokenizeIsRepeatable(t *testing.T) {
	const input = "true ? 1 + 2.5 : -3"

	first, err := Tokenize(input)
	if err != nil {
		t.Fatal(err)
	}
	second, err := Tokenize(input)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(first, second) {
		t.Errorf("tokenizing twice differs:\n%s\n%s", litter.Sdump(first), litter.Sdump(second))
	}
}

func TestTokenString(t *testing.T) {
	tests := []struct {
		token    Token
		expected string
		source   string
	}{
		{IntToken(-3), "INT(-3)", "-3"},
		{FloatToken(2.5), "FLOAT(2.5)", "2.5"},
		{BoolToken(true), "BOOL(true)", "true"},
		{KeywordToken(PLUS), "PLUS()", "+"},
		{KeywordToken(QMARK), "QMARK()", "?"},
		{KeywordToken(COLON), "COLON()", ":"},
	}

	for _, tt := range tests {
		if got := tt.token.String(); got != tt.expected {
			t.Errorf("String() = %q, expected %q", got, tt.expected)
		}
		if got := tt.token.Source(); got != tt.source {
			t.Errorf("Source() = %q, expected %q", got, tt.source)
		}
	}
}

func TestTokenScanner(t *testing.T) {
	scanner := NewTokenScanner([]Token{IntToken(1), KeywordToken(PLUS)})

	if token, ok := scanner.Peek(); !ok || token != IntToken(1) {
		t.Fatalf("Peek() = %v, %v", token, ok)
	}
	if token, ok := scanner.Read(); !ok || token != IntToken(1) {
		t.Fatalf("Read() = %v, %v", token, ok)
	}
	if token, ok := scanner.Read(); !ok || token != KeywordToken(PLUS) {
		t.Fatalf("Read() = %v, %v", token, ok)
	}
	if scanner.HasTokens() {
		t.Fatal("HasTokens() = true after reading everything")
	}
	if _, ok := scanner.Read(); ok {
		t.Fatal("Read() succeeded past the end")
	}
}
