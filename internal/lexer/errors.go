package lexer

// Diagnostics carried by error tokens.
const (
	msgUnexpectedChar     = "Unexpected character."
	msgUnterminatedString = "Unterminated string"
	msgUnterminatedEscape = "Unterminated string after escape."
	msgInvalidEscape      = "Invalid escape sequence."
	msgEmptyChar          = "Empty character literal."
	msgInvalidCharEscape  = "Invalid escape sequence in character literal."
	msgCharTooLong        = "Character literal must contain exactly one character."
)

// errorToken creates a TokenError carrying message.
//
// Lexical errors are reported as tokens, not Go errors: the scanning session
// stays valid and the parser can keep pulling tokens to find more errors in
// one pass. Every caller has consumed at least one byte by the time it gets
// here.
func (s *Scanner) errorToken(message string) Token {
	return Token{
		Type:    TokenError,
		Message: message,
		Span:    Span{Start: s.start, End: s.current},
		Line:    s.line,
	}
}

// Error is a lexical error in Go error form, for consumers that collect
// diagnostics as errors rather than tokens.
type Error struct {
	Pos     Position
	Message string
}

func (e *Error) Error() string {
	return e.Pos.String() + ": " + e.Message
}

// Err converts an error token into an *Error positioned at the token's first
// byte. It returns nil for any other token.
func (s *Scanner) Err(tok Token) error {
	if tok.Type != TokenError {
		return nil
	}
	pos := s.Position(tok.Span.Start)
	return &Error{Pos: pos, Message: tok.Message}
}

// Unterminated reports whether tok is the error for a string literal that
// ran into the end of the input. Interactive consumers use it to ask for
// more input instead of reporting the error.
func (t Token) Unterminated() bool {
	return t.Type == TokenError &&
		(t.Message == msgUnterminatedString || t.Message == msgUnterminatedEscape)
}
