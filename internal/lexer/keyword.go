package lexer

// keywords maps keyword strings to their token types.
//
// It is the single source of truth for the reserved words; the trie used at
// scan time is built from it once, at package initialization, and neither is
// modified afterwards. Both are safe to share between scanners without locks.
var keywords = map[string]TokenType{
	// Primitive types
	"bool":   TokenBool,
	"char":   TokenChar,
	"string": TokenString,
	"void":   TokenVoid,
	"i8":     TokenI8,
	"i16":    TokenI16,
	"i32":    TokenI32,
	"i64":    TokenI64,
	"u8":     TokenU8,
	"u16":    TokenU16,
	"u32":    TokenU32,
	"u64":    TokenU64,
	"f32":    TokenF32,
	"f64":    TokenF64,

	// Control flow
	"if":       TokenIf,
	"else":     TokenElse,
	"for":      TokenFor,
	"in":       TokenIn,
	"while":    TokenWhile,
	"do":       TokenDo,
	"loop":     TokenLoop,
	"match":    TokenMatch,
	"break":    TokenBreak,
	"continue": TokenContinue,
	"return":   TokenReturn,

	// Declarations
	"fn":    TokenFn,
	"const": TokenConst,
	"mut":   TokenMut,

	// Values
	"true":  TokenTrue,
	"false": TokenFalse,
	"null":  TokenNull,
}

// trieNode is one state of the keyword trie. kind is TokenIdentifier unless a
// keyword ends exactly at this node.
type trieNode struct {
	next map[byte]*trieNode
	kind TokenType
}

var keywordTrie = buildKeywordTrie(keywords)

// buildKeywordTrie builds a byte-keyed trie holding every keyword.
func buildKeywordTrie(words map[string]TokenType) *trieNode {
	root := &trieNode{kind: TokenIdentifier}
	for word, kind := range words {
		n := root
		for i := 0; i < len(word); i++ {
			child, ok := n.next[word[i]]
			if !ok {
				if n.next == nil {
					n.next = make(map[byte]*trieNode)
				}
				child = &trieNode{kind: TokenIdentifier}
				n.next[word[i]] = child
			}
			n = child
		}
		n.kind = kind
	}
	return root
}

// LookupKeyword checks if an identifier is actually a keyword.
// Returns the keyword token type if it is, or TokenIdentifier if not.
//
// The lexeme is walked through the trie one byte at a time. Only a walk that
// consumes the whole lexeme and stops on a keyword's final node matches, so
// "for" is a keyword while "fo", "forest" and "i32x" are identifiers.
func LookupKeyword(identifier string) TokenType {
	n := keywordTrie
	for i := 0; i < len(identifier); i++ {
		n = n.next[identifier[i]]
		if n == nil {
			return TokenIdentifier
		}
	}
	return n.kind
}

// scanIdentifier scans an identifier or keyword. The first byte (a letter or
// underscore) has already been consumed.
//
// RULES:
// - Starts with a letter or underscore
// - Continues with letters, digits, or underscores
// - Examples: foo, _bar, hello123, _
func (s *Scanner) scanIdentifier() Token {
	for isAlpha(s.peek()) || isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(LookupKeyword(s.source[s.start:s.current]))
}
