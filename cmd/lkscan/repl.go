package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"github.com/hassan/lk/internal/lexer"
	"github.com/hassan/lk/internal/source"
)

const (
	historyFile = ".lkscan_history"
	promptMain  = "lk> "
	promptCont  = "... "
	banner      = "lkscan REPL\nCtrl+C cancels input, Ctrl+D exits. Type :quit to exit."
)

func runREPL(stdout, stderr io.Writer) int {
	fmt.Fprintln(stdout, banner)

	// History is skipped when there is no home directory to keep it in.
	histPath := ""
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	// Load history (best-effort)
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	for {
		code, ok := readInput(ln)
		if !ok {
			fmt.Fprintln(stdout)
			break
		}

		trimmed := strings.TrimSpace(code)
		if trimmed == "" {
			continue
		}
		if strings.HasPrefix(trimmed, ":") {
			if trimmed == ":quit" {
				break
			}
			fmt.Fprintln(stdout, "unknown command. Type :quit to exit.")
			continue
		}

		src := source.FromString("<repl>", code)
		if _, err := dump(stdout, lexer.New(src.Content, src.Name), true); err != nil {
			fmt.Fprintln(stderr, red(err.Error()))
		}
		ln.AppendHistory(strings.ReplaceAll(code, "\n", " "))
	}

	// Persist history (best-effort)
	if histPath != "" {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}
	return exitOK
}

// readInput reads one entry, prompting for continuation lines while the input
// ends inside a string literal.
func readInput(ln *liner.State) (string, bool) {
	var b strings.Builder

	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if errors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if !incomplete(src) {
			return src, true
		}
	}
}

// incomplete reports whether src stops inside an unterminated string literal,
// in which case the REPL keeps reading lines. Only the first error counts: an
// earlier error means the entry is already broken and more lines cannot fix it.
func incomplete(src string) bool {
	for _, tok := range lexer.Tokenize(src) {
		if tok.IsError() {
			return tok.Unterminated()
		}
	}
	return false
}
