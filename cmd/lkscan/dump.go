package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/hassan/lk/internal/lexer"
)

func red(s string) string   { return "\x1b[31m" + s + "\x1b[0m" }
func green(s string) string { return "\x1b[32m" + s + "\x1b[0m" }
func blue(s string) string  { return "\x1b[94m" + s + "\x1b[0m" }

// dump prints every token of scanner, one per line. The line number is printed
// only when it changes; following tokens on the same line get a "   | "
// gutter. It returns the lexical errors seen, positioned as file:line:col.
func dump(w io.Writer, scanner *lexer.Scanner, color bool) ([]error, error) {
	bw := bufio.NewWriter(w)
	var lexErrs []error
	line := -1

	for {
		tok := scanner.NextToken()

		if tok.Line != line {
			fmt.Fprintf(bw, "%4d ", tok.Line)
			line = tok.Line
		} else {
			fmt.Fprint(bw, "   | ")
		}

		if err := scanner.Err(tok); err != nil {
			lexErrs = append(lexErrs, err)
			msg := "Error: " + tok.Message
			if color {
				msg = red(msg)
			}
			fmt.Fprintln(bw, msg)
		} else {
			name := fmt.Sprintf("%-12s", tok.Type)
			if color {
				switch {
				case tok.Type.IsKeyword():
					name = green(name)
				case tok.Type.IsLiteral():
					name = blue(name)
				}
			}
			fmt.Fprintf(bw, "Token %s '%s'\n", name, tok.Lexeme)
		}

		if tok.Type == lexer.TokenEOF {
			break
		}
	}
	return lexErrs, bw.Flush()
}

// tokenOut is the JSON form of a token.
type tokenOut struct {
	Type    string `json:"type"`
	Lexeme  string `json:"lexeme,omitempty"`
	Message string `json:"message,omitempty"`
	Line    int    `json:"line"`
	Start   int    `json:"start"`
	End     int    `json:"end"`
}

// dumpJSON writes one minified JSON object per token, EOF included.
func dumpJSON(w io.Writer, scanner *lexer.Scanner) ([]error, error) {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)

	var lexErrs []error
	for {
		tok := scanner.NextToken()
		if err := scanner.Err(tok); err != nil {
			lexErrs = append(lexErrs, err)
		}
		out := tokenOut{
			Type:    tok.Type.String(),
			Lexeme:  tok.Lexeme,
			Message: tok.Message,
			Line:    tok.Line,
			Start:   tok.Span.Start,
			End:     tok.Span.End,
		}
		if err := enc.Encode(out); err != nil {
			return lexErrs, err
		}
		if tok.Type == lexer.TokenEOF {
			break
		}
	}
	return lexErrs, bw.Flush()
}
