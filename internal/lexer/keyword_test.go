package lexer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		identifier string
		expected   TokenType
	}{
		{"for", TokenFor},
		{"fn", TokenFn},
		{"f32", TokenF32},
		{"i8", TokenI8},
		{"i32", TokenI32},
		{"u64", TokenU64},
		{"const", TokenConst},
		{"continue", TokenContinue},
		{"string", TokenString},
		{"null", TokenNull},

		// Exact length and content only.
		{"forest", TokenIdentifier},
		{"fo", TokenIdentifier},
		{"i32x", TokenIdentifier},
		{"i3", TokenIdentifier},
		{"i", TokenIdentifier},
		{"con", TokenIdentifier},
		{"cons", TokenIdentifier},
		{"constant", TokenIdentifier},
		{"contin", TokenIdentifier},
		{"If", TokenIdentifier},
		{"_if", TokenIdentifier},
		{"x", TokenIdentifier},
	}

	for _, tt := range tests {
		t.Run(tt.identifier, func(t *testing.T) {
			assert.Equal(t, tt.expected, LookupKeyword(tt.identifier))
		})
	}
}

func TestLookupKeyword_EveryKeyword(t *testing.T) {
	require.Len(t, keywords, 31)

	for word, kind := range keywords {
		assert.Equal(t, kind, LookupKeyword(word), word)
		assert.True(t, kind.IsKeyword(), word)
		assert.Equal(t, TokenIdentifier, LookupKeyword(word+"_"), word+"_")
		assert.Equal(t, TokenIdentifier, LookupKeyword(word[:len(word)-1]+"Z"), word)
	}
}

func TestScanner_KeywordsAndIdentifiers(t *testing.T) {
	source := "for forest i32 i32x i3 _tmp myVar123 fn"
	s := New(source, "test.lk")

	expected := []struct {
		typ    TokenType
		lexeme string
	}{
		{TokenFor, "for"},
		{TokenIdentifier, "forest"},
		{TokenI32, "i32"},
		{TokenIdentifier, "i32x"},
		{TokenIdentifier, "i3"},
		{TokenIdentifier, "_tmp"},
		{TokenIdentifier, "myVar123"},
		{TokenFn, "fn"},
		{TokenEOF, ""},
	}

	for i, want := range expected {
		tok := s.NextToken()
		assert.Equal(t, want.typ, tok.Type, "token %d", i)
		assert.Equal(t, want.lexeme, tok.Lexeme, "token %d", i)
	}
}
