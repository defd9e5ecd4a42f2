package lexer

// Scanner performs lexical analysis on one source buffer, handing out one
// token per call to NextToken.
//
// The scanner only borrows the source: it never modifies it, and tokens
// reference it through substrings and byte spans. A Scanner is not safe for
// concurrent use; lex independent files with independent scanners.
//
// DESIGN CHOICE: A struct with methods rather than package-level state, so any
// number of scanning sessions can coexist (tests, parallel files).
type Scanner struct {
	// source is the complete source code being lexed.
	source string

	// filename is used only to build Positions for diagnostics.
	filename string

	// start is the byte offset of the token currently being scanned.
	start int

	// current is the byte offset of the next unread byte.
	current int

	// line is the current line number (1-based). Maintained by advance.
	line int

	// startLine is the line at start; multi-line string literals report the
	// line they begin on.
	startLine int
}

// New creates a Scanner for source. filename is used for diagnostics only and
// may be empty.
func New(source, filename string) *Scanner {
	s := &Scanner{}
	s.Reset(source, filename)
	return s
}

// Reset rewinds the scanner onto a new source so it can be reused without
// allocating.
func (s *Scanner) Reset(source, filename string) {
	s.source = source
	s.filename = filename
	s.start = 0
	s.current = 0
	s.line = 1
	s.startLine = 1
}

// NextToken returns the next token from the source.
//
// It never fails: lexical errors come back as TokenError tokens, after at
// least one byte has been consumed, so calling NextToken until TokenEOF always
// terminates and collects every error along the way. After TokenEOF every call
// returns TokenEOF again.
func (s *Scanner) NextToken() Token {
	s.skipWhitespace()

	// Mark the start of this token
	s.start = s.current
	s.startLine = s.line

	if s.isAtEnd() {
		return s.makeToken(TokenEOF)
	}

	ch := s.advance()

	if isAlpha(ch) {
		return s.scanIdentifier()
	}
	if isDigit(ch) {
		return s.scanNumber()
	}

	switch ch {
	// Single-character tokens
	case '(':
		return s.makeToken(TokenLeftParen)
	case ')':
		return s.makeToken(TokenRightParen)
	case '{':
		return s.makeToken(TokenLeftBrace)
	case '}':
		return s.makeToken(TokenRightBrace)
	case '[':
		return s.makeToken(TokenLeftBracket)
	case ']':
		return s.makeToken(TokenRightBracket)
	case ',':
		return s.makeToken(TokenComma)
	case ':':
		return s.makeToken(TokenColon)
	case ';':
		return s.makeToken(TokenSemicolon)
	case '?':
		return s.makeToken(TokenQuestion)
	case '^':
		return s.makeToken(TokenBitXor)
	case '~':
		return s.makeToken(TokenBitNot)

	case '.':
		return s.makeToken(s.pick('.', TokenDotDot, TokenDot))

	// Operators that can be single or double characters.
	// The longest form is always tried first.
	case '+':
		return s.makeToken(s.pick('=', TokenPlusEq, TokenPlus))
	case '*':
		return s.makeToken(s.pick('=', TokenStarEq, TokenStar))
	case '/':
		// "//" never gets here: skipWhitespace consumed it as a comment.
		return s.makeToken(s.pick('=', TokenSlashEq, TokenSlash))
	case '%':
		return s.makeToken(s.pick('=', TokenPercentEq, TokenPercent))
	case '-':
		if s.match('>') {
			return s.makeToken(TokenArrow)
		}
		return s.makeToken(s.pick('=', TokenMinusEq, TokenMinus))
	case '=':
		return s.makeToken(s.pick('=', TokenEqual, TokenAssign))
	case '!':
		return s.makeToken(s.pick('=', TokenNotEqual, TokenNot))
	case '<':
		if s.match('<') {
			return s.makeToken(TokenShl)
		}
		return s.makeToken(s.pick('=', TokenLessEqual, TokenLess))
	case '>':
		if s.match('>') {
			return s.makeToken(TokenShr)
		}
		return s.makeToken(s.pick('=', TokenGreaterEqual, TokenGreater))
	case '&':
		return s.makeToken(s.pick('&', TokenAnd, TokenBitAnd))
	case '|':
		return s.makeToken(s.pick('|', TokenOr, TokenBitOr))

	// Literals
	case '"':
		return s.scanString()
	case '\'':
		return s.scanChar()
	}

	return s.errorToken(msgUnexpectedChar)
}

// pick returns long if the next byte is next (consuming it), short otherwise.
func (s *Scanner) pick(next byte, long, short TokenType) TokenType {
	if s.match(next) {
		return long
	}
	return short
}

// skipWhitespace skips spaces, tabs, carriage returns, newlines and "//"
// line comments. A single '/' is left for NextToken.
//
// Comments are skipped rather than tokenized: the parser has no use for them.
func (s *Scanner) skipWhitespace() {
	for {
		switch s.peek() {
		case ' ', '\t', '\r', '\n':
			s.advance()
		case '/':
			if s.peekNext() != '/' {
				return
			}
			// The newline is left for the next iteration.
			for !s.isAtEnd() && s.peek() != '\n' {
				s.advance()
			}
		default:
			return
		}
	}
}

// makeToken creates a token of the given type from start..current.
//
// All span and line bookkeeping for successful tokens happens here.
func (s *Scanner) makeToken(tokenType TokenType) Token {
	return Token{
		Type:   tokenType,
		Lexeme: s.source[s.start:s.current],
		Span:   Span{Start: s.start, End: s.current},
		Line:   s.startLine,
	}
}

// Position resolves a byte offset into a full Position (with column) for
// diagnostics. The line is recounted from the start of the source, so it is
// meant for error paths, not for every token.
func (s *Scanner) Position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > len(s.source) {
		offset = len(s.source)
	}
	line, lineStart := 1, 0
	for i := 0; i < offset; i++ {
		if s.source[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return Position{
		Filename: s.filename,
		Line:     line,
		Column:   offset - lineStart + 1,
		Offset:   offset,
	}
}

// Tokenize scans the whole source and returns every token, error tokens
// included, ending with exactly one TokenEOF.
func Tokenize(source string) []Token {
	s := New(source, "")
	var tokens []Token
	for {
		tok := s.NextToken()
		tokens = append(tokens, tok)
		if tok.Type == TokenEOF {
			return tokens
		}
	}
}
