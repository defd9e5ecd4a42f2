package lexer

// Cursor primitives. All of them are O(1), allocation free, and cannot fail:
// reading past the end yields the 0 sentinel instead of an error.

// advance consumes and returns the current byte. At the end of the source it
// returns 0 and leaves the cursor where it is.
//
// This is the only place that bumps the line counter, so line increases
// exactly once per consumed '\n' no matter which scanner consumed it.
func (s *Scanner) advance() byte {
	if s.isAtEnd() {
		return 0
	}
	ch := s.source[s.current]
	s.current++
	if ch == '\n' {
		s.line++
	}
	return ch
}

// peek returns the current byte without consuming it, or 0 at end.
func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

// peekNext returns the byte after the current one, or 0 if there is none.
func (s *Scanner) peekNext() byte {
	if s.current+1 >= len(s.source) {
		return 0
	}
	return s.source[s.current+1]
}

// isAtEnd reports whether the whole source has been consumed.
func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}

// match consumes the current byte only if it equals expected.
//
// Example: after seeing '+', match('=') decides between "+" and "+=".
func (s *Scanner) match(expected byte) bool {
	if s.isAtEnd() || s.source[s.current] != expected {
		return false
	}
	s.advance()
	return true
}

// Character classification. Identifiers and numbers are ASCII-only.

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

// isAlpha returns true for ASCII letters and underscore.
func isAlpha(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}
