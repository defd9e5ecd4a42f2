package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToken_String(t *testing.T) {
	tests := []struct {
		name     string
		token    Token
		expected string
	}{
		{
			name:     "identifier token",
			token:    Token{Type: TokenIdentifier, Lexeme: "foo", Line: 1},
			expected: "IDENTIFIER(foo) at line 1",
		},
		{
			name:     "int token",
			token:    Token{Type: TokenIntLiteral, Lexeme: "42", Line: 5},
			expected: "INT(42) at line 5",
		},
		{
			name:     "error token shows its message",
			token:    Token{Type: TokenError, Message: "Unexpected character.", Line: 3},
			expected: "ERROR(Unexpected character.) at line 3",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.token.String())
		})
	}
}

func TestToken_IsError(t *testing.T) {
	assert.True(t, Token{Type: TokenError}.IsError())
	assert.False(t, Token{Type: TokenEOF}.IsError())
}

func TestTokenType_String(t *testing.T) {
	tests := []struct {
		tt       TokenType
		expected string
	}{
		{TokenEOF, "EOF"},
		{TokenError, "ERROR"},
		{TokenIntLiteral, "INT"},
		{TokenFloatLiteral, "FLOAT"},
		{TokenStringLiteral, "STRINGLIT"},
		{TokenString, "STRING"},
		{TokenIdentifier, "IDENTIFIER"},
		{TokenI32, "I32"},
		{TokenFn, "FN"},
		{TokenPlus, "PLUS"},
		{TokenDotDot, "DOTDOT"},
		{TokenArrow, "ARROW"},
		{TokenLeftParen, "LPAREN"},
		{TokenType(9999), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.tt.String())
		})
	}
}

func TestTokenType_StringCoversEveryType(t *testing.T) {
	for tt := TokenEOF; tt <= TokenComma; tt++ {
		assert.NotEqual(t, "UNKNOWN", tt.String(), "token type %d has no name", int(tt))
	}
}

func TestTokenType_Categories(t *testing.T) {
	tests := []struct {
		name    string
		tt      TokenType
		keyword bool
		literal bool
	}{
		{"bool keyword", TokenBool, true, false},
		{"f64 keyword", TokenF64, true, false},
		{"if keyword", TokenIf, true, false},
		{"null keyword", TokenNull, true, false},
		{"identifier", TokenIdentifier, false, false},
		{"int literal", TokenIntLiteral, false, true},
		{"char literal", TokenCharLiteral, false, true},
		{"plus", TokenPlus, false, false},
		{"left paren", TokenLeftParen, false, false},
		{"EOF", TokenEOF, false, false},
		{"error", TokenError, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.keyword, tt.tt.IsKeyword(), "IsKeyword")
			assert.Equal(t, tt.literal, tt.tt.IsLiteral(), "IsLiteral")
		})
	}
}
