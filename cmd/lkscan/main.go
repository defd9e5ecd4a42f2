// Package main provides lkscan, a token dump tool for lk source files.
//
// It is the lexer's reference consumer: it loads a file, pulls tokens until
// EOF and prints them, either grouped by line or as JSON lines. With -repl it
// tokenizes interactively typed input instead.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hassan/lk/internal/lexer"
	"github.com/hassan/lk/internal/source"
)

// Exit codes.
const (
	exitOK      = 0
	exitFailure = 1  // usage error or lexical errors found
	exitNoInput = 74 // input file could not be read (EX_IOERR)
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run parses args and executes lkscan, returning the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("lkscan", flag.ContinueOnError)
	fs.SetOutput(stderr)
	jsonFlag := fs.Bool("json", false, "print one JSON object per token")
	colorFlag := fs.Bool("color", false, "highlight errors with ANSI colors")
	replFlag := fs.Bool("repl", false, "tokenize interactively typed input")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [-json] [-color] <file.lk>\n       %s -repl\n",
			filepath.Base(os.Args[0]), filepath.Base(os.Args[0]))
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return exitFailure
	}

	if *replFlag {
		return runREPL(stdout, stderr)
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return exitFailure
	}

	file, err := source.Load(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitNoInput
	}

	scanner := lexer.New(file.Content, file.Name)

	var lexErrs []error
	if *jsonFlag {
		lexErrs, err = dumpJSON(stdout, scanner)
	} else {
		lexErrs, err = dump(stdout, scanner, *colorFlag)
	}
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return exitFailure
	}

	if len(lexErrs) > 0 {
		for _, lexErr := range lexErrs {
			fmt.Fprintln(stderr, lexErr)
		}
		fmt.Fprintf(stderr, "%s: %d lexical error(s)\n", file.Name, len(lexErrs))
		return exitFailure
	}
	return exitOK
}
