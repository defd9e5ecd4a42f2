package lexer

// scanNumber scans an integer or float literal. The first digit has already
// been consumed.
//
// SUPPORTED FORMATS:
// - Integers: 0, 42, 007
// - Floats: 3.14, 0.5
//
// A '.' is only part of the number when a digit follows it: "3." and "3..5"
// leave the dots for the next token (DOT, DOTDOT).
func (s *Scanner) scanNumber() Token {
	for isDigit(s.peek()) {
		s.advance()
	}

	if s.peek() != '.' || !isDigit(s.peekNext()) {
		return s.makeToken(TokenIntLiteral)
	}

	s.advance() // consume '.'
	for isDigit(s.peek()) {
		s.advance()
	}
	return s.makeToken(TokenFloatLiteral)
}

// scanString scans a string literal. The opening quote has already been
// consumed; the lexeme keeps both quotes and the escapes undecoded.
//
// Strings may span lines. Escapes are validated here but decoded by the
// parser.
func (s *Scanner) scanString() Token {
	for !s.isAtEnd() && s.peek() != '"' {
		if s.peek() != '\\' {
			s.advance()
			continue
		}

		s.advance() // consume '\'
		if s.isAtEnd() {
			return s.errorToken(msgUnterminatedEscape)
		}
		if !s.scanEscape() {
			return s.errorToken(msgInvalidEscape)
		}
	}

	if s.isAtEnd() {
		return s.errorToken(msgUnterminatedString)
	}

	s.advance() // closing quote
	return s.makeToken(TokenStringLiteral)
}

// scanChar scans a character literal. The opening quote has already been
// consumed.
//
// EXAMPLES: 'a', '\n', '\''
func (s *Scanner) scanChar() Token {
	if s.peek() == '\'' {
		// Consume the closing quote too so "''" does not open a new literal.
		s.advance()
		return s.errorToken(msgEmptyChar)
	}

	if s.peek() == '\\' {
		s.advance()
		if !s.scanEscape() {
			return s.errorToken(msgInvalidCharEscape)
		}
	} else {
		s.advance()
	}

	if s.peek() != '\'' {
		return s.errorToken(msgCharTooLong)
	}

	s.advance() // closing quote
	return s.makeToken(TokenCharLiteral)
}

// scanEscape consumes the byte following a backslash and reports whether it
// forms a recognized escape sequence.
//
// The byte is consumed even when the escape is invalid, so the next call to
// NextToken resumes past it.
func (s *Scanner) scanEscape() bool {
	switch s.advance() {
	case '\'', '"', '\\', 'n', '{', '}', 't', 'r', '0':
		return true
	default:
		return false
	}
}
