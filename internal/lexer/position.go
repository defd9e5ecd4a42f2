// Package lexer provides lexical analysis (tokenization) for the lk language.
// It transforms the raw bytes of a source file into a stream of tokens that
// can be consumed by the parser.
package lexer

// Position represents a location in the source code.
//
// Tokens only carry a byte span and a line; a full Position (with column) is
// resolved on demand by Scanner.Position when a diagnostic needs one.
type Position struct {
	// Filename is the name of the source file.
	Filename string

	// Line is the 1-based line number. Zero means "no position".
	Line int

	// Column is the 1-based column number, counted in bytes. Identifiers are
	// ASCII-only, so bytes and characters agree for everything but the
	// contents of string literals and comments.
	Column int

	// Offset is the 0-based byte offset from the start of the file.
	Offset int
}

// String returns a human-readable representation of the position.
// Format: "filename:line:column"
// Example: "main.lk:42:15"
//
// DESIGN CHOICE: The GCC/Clang format is recognized by editors and CI systems,
// which turn it into clickable links.
func (p Position) String() string {
	return p.Filename + ":" + itoa(p.Line) + ":" + itoa(p.Column)
}

// itoa is a simple integer to ASCII conversion.
// It keeps the token and position formatting free of strconv/fmt.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	negative := false
	if n < 0 {
		negative = true
		n = -n
	}

	// Build the number in reverse
	buf := make([]byte, 0, 12)
	for n > 0 {
		buf = append(buf, byte('0'+n%10))
		n /= 10
	}

	if negative {
		buf = append(buf, '-')
	}

	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}

	return string(buf)
}

// Span is a half-open byte range [Start, End) into the source buffer.
//
// DESIGN CHOICE: Offsets rather than pointers or copies. The lexeme is a
// substring of the source anyway; the span is what lets a consumer check that
// tokens tile the buffer and underline exactly the right bytes.
type Span struct {
	Start int
	End   int
}
