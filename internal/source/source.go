// Package source loads lk source files into memory for the lexer.
//
// The lexer's contract starts once a buffer exists; everything that can go
// wrong before that (missing file, unreadable file) is reported here.
package source

import (
	"fmt"
	"os"
)

// File is an immutable, fully loaded source file.
type File struct {
	// Name is the path the file was loaded from, or a label for in-memory
	// sources.
	Name string

	// Content is the whole file. It is never modified after loading.
	Content string
}

// Load reads the file at path.
func Load(path string) (*File, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("could not open file %q: %w", path, err)
	}
	if info.IsDir() {
		return nil, fmt.Errorf("could not read file %q: is a directory", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not read file %q: %w", path, err)
	}
	return &File{Name: path, Content: string(data)}, nil
}

// FromString wraps in-memory text as a File.
func FromString(name, text string) *File {
	return &File{Name: name, Content: text}
}
