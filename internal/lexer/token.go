package lexer

// TokenType represents the type of a token.
//
// DESIGN CHOICE: An int-based enum (via iota) keeps comparisons cheap and lets
// the category predicates below work on ranges of the enumeration.
type TokenType int

// Token type enumeration.
//
// ORGANIZATION: Tokens are grouped logically:
// 1. Special tokens (EOF, Error)
// 2. Literals
// 3. Identifiers and keywords
// 4. Operators
// 5. Delimiters
//
// IsKeyword and IsLiteral depend on this ordering.
const (
	// Special tokens

	// TokenEOF marks the end of the input. Once returned, every later call to
	// NextToken returns it again.
	TokenEOF TokenType = iota

	// TokenError represents a lexical error. The diagnostic is stored in
	// Token.Message, never in Token.Lexeme.
	TokenError

	// Literals

	TokenIntLiteral    // 42
	TokenFloatLiteral  // 3.14
	TokenStringLiteral // "text", quotes included in the lexeme
	TokenCharLiteral   // 'c', quotes included in the lexeme

	// Identifiers and Keywords

	// TokenIdentifier represents a variable/function/type name.
	TokenIdentifier

	// Keywords - Primitive types
	TokenBool
	TokenChar
	TokenString
	TokenVoid
	TokenI8
	TokenI16
	TokenI32
	TokenI64
	TokenU8
	TokenU16
	TokenU32
	TokenU64
	TokenF32
	TokenF64

	// Keywords - Control flow
	TokenIf
	TokenElse
	TokenFor
	TokenIn
	TokenWhile
	TokenDo
	TokenLoop
	TokenMatch
	TokenBreak
	TokenContinue
	TokenReturn

	// Keywords - Declarations
	TokenFn
	TokenConst
	TokenMut

	// Keywords - Values
	TokenTrue
	TokenFalse
	TokenNull

	// Operators - Arithmetic
	TokenPlus    // +
	TokenMinus   // -
	TokenStar    // *
	TokenSlash   // /
	TokenPercent // %

	// Operators - Comparison
	TokenEqual        // ==
	TokenNotEqual     // !=
	TokenLess         // <
	TokenLessEqual    // <=
	TokenGreater      // >
	TokenGreaterEqual // >=

	// Operators - Logical
	TokenAnd // &&
	TokenOr  // ||
	TokenNot // !

	// Operators - Bitwise
	TokenBitAnd // &
	TokenBitOr  // |
	TokenBitXor // ^
	TokenBitNot // ~
	TokenShl    // <<
	TokenShr    // >>

	// Operators - Assignment
	TokenAssign    // =
	TokenPlusEq    // +=
	TokenMinusEq   // -=
	TokenStarEq    // *=
	TokenSlashEq   // /=
	TokenPercentEq // %=

	// Operators - Other
	TokenDot      // .
	TokenDotDot   // .. (range)
	TokenArrow    // ->
	TokenQuestion // ?
	TokenColon    // :

	// Delimiters
	TokenLeftParen    // (
	TokenRightParen   // )
	TokenLeftBrace    // {
	TokenRightBrace   // }
	TokenLeftBracket  // [
	TokenRightBracket // ]
	TokenSemicolon    // ;
	TokenComma        // ,
)

// Token represents a single lexical token.
//
// DESIGN CHOICE: Token is a value type (not pointer). Tokens are small, never
// mutated after creation, and the parser copies them freely.
type Token struct {
	// Type is the token type.
	Type TokenType

	// Lexeme is the source text covered by Span. It is a substring of the
	// source, so it shares memory with it and stays valid as long as the
	// token is referenced. Empty for TokenEOF and TokenError.
	Lexeme string

	// Message is the diagnostic of a TokenError. Empty for every other type.
	Message string

	// Span is the byte range [Start, End) of the source covered by the token.
	// For error tokens it covers the bytes consumed before the error was
	// detected.
	Span Span

	// Line is the 1-based line of the token's first byte. For error tokens it
	// is the line the scanner was on when the error was detected.
	Line int
}

// String returns a human-readable representation of the token.
// Format: "TYPE(lexeme) at line N"
// Example: "IDENTIFIER(foo) at line 42"
//
// Error tokens show their message instead of a lexeme.
func (t Token) String() string {
	text := t.Lexeme
	if t.Type == TokenError {
		text = t.Message
	}
	return t.Type.String() + "(" + text + ") at line " + itoa(t.Line)
}

// IsError reports whether the token signals a lexical error.
func (t Token) IsError() bool {
	return t.Type == TokenError
}

// String returns the string representation of a token type.
//
// DESIGN CHOICE: Implemented by hand rather than with stringer, so the names
// used in dumps and error messages are under our control.
func (tt TokenType) String() string {
	switch tt {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return "ERROR"
	case TokenIntLiteral:
		return "INT"
	case TokenFloatLiteral:
		return "FLOAT"
	case TokenStringLiteral:
		return "STRINGLIT"
	case TokenCharLiteral:
		return "CHARLIT"
	case TokenIdentifier:
		return "IDENTIFIER"
	case TokenBool:
		return "BOOL"
	case TokenChar:
		return "CHAR"
	case TokenString:
		return "STRING"
	case TokenVoid:
		return "VOID"
	case TokenI8:
		return "I8"
	case TokenI16:
		return "I16"
	case TokenI32:
		return "I32"
	case TokenI64:
		return "I64"
	case TokenU8:
		return "U8"
	case TokenU16:
		return "U16"
	case TokenU32:
		return "U32"
	case TokenU64:
		return "U64"
	case TokenF32:
		return "F32"
	case TokenF64:
		return "F64"
	case TokenIf:
		return "IF"
	case TokenElse:
		return "ELSE"
	case TokenFor:
		return "FOR"
	case TokenIn:
		return "IN"
	case TokenWhile:
		return "WHILE"
	case TokenDo:
		return "DO"
	case TokenLoop:
		return "LOOP"
	case TokenMatch:
		return "MATCH"
	case TokenBreak:
		return "BREAK"
	case TokenContinue:
		return "CONTINUE"
	case TokenReturn:
		return "RETURN"
	case TokenFn:
		return "FN"
	case TokenConst:
		return "CONST"
	case TokenMut:
		return "MUT"
	case TokenTrue:
		return "TRUE"
	case TokenFalse:
		return "FALSE"
	case TokenNull:
		return "NULL"
	case TokenPlus:
		return "PLUS"
	case TokenMinus:
		return "MINUS"
	case TokenStar:
		return "STAR"
	case TokenSlash:
		return "SLASH"
	case TokenPercent:
		return "PERCENT"
	case TokenEqual:
		return "EQUAL"
	case TokenNotEqual:
		return "NOTEQUAL"
	case TokenLess:
		return "LESS"
	case TokenLessEqual:
		return "LESSEQUAL"
	case TokenGreater:
		return "GREATER"
	case TokenGreaterEqual:
		return "GREATEREQUAL"
	case TokenAnd:
		return "AND"
	case TokenOr:
		return "OR"
	case TokenNot:
		return "NOT"
	case TokenBitAnd:
		return "BITAND"
	case TokenBitOr:
		return "BITOR"
	case TokenBitXor:
		return "BITXOR"
	case TokenBitNot:
		return "BITNOT"
	case TokenShl:
		return "SHL"
	case TokenShr:
		return "SHR"
	case TokenAssign:
		return "ASSIGN"
	case TokenPlusEq:
		return "PLUSEQ"
	case TokenMinusEq:
		return "MINUSEQ"
	case TokenStarEq:
		return "STAREQ"
	case TokenSlashEq:
		return "SLASHEQ"
	case TokenPercentEq:
		return "PERCENTEQ"
	case TokenDot:
		return "DOT"
	case TokenDotDot:
		return "DOTDOT"
	case TokenArrow:
		return "ARROW"
	case TokenQuestion:
		return "QUESTION"
	case TokenColon:
		return "COLON"
	case TokenLeftParen:
		return "LPAREN"
	case TokenRightParen:
		return "RPAREN"
	case TokenLeftBrace:
		return "LBRACE"
	case TokenRightBrace:
		return "RBRACE"
	case TokenLeftBracket:
		return "LBRACKET"
	case TokenRightBracket:
		return "RBRACKET"
	case TokenSemicolon:
		return "SEMICOLON"
	case TokenComma:
		return "COMMA"
	default:
		return "UNKNOWN"
	}
}

// IsKeyword returns true if the token is a keyword.
// This is useful for parser error recovery and syntax highlighting.
func (tt TokenType) IsKeyword() bool {
	return tt >= TokenBool && tt <= TokenNull
}

// IsLiteral returns true if the token is a literal value.
func (tt TokenType) IsLiteral() bool {
	return tt >= TokenIntLiteral && tt <= TokenCharLiteral
}
