package iojson

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// FileReader reads a JSON document named by a --file flag, falling back to
// stdin when the flag is empty.
type FileReader[T any] struct {
	fileFlagValue string

	// Decode replaces json.Unmarshal when set.
	Decode func([]byte) (T, error)
	// Stdin is read when no file is given; nil uses os.Stdin.
	Stdin io.Reader
}

// Flag returns the --file flag bound to the reader.
func (fr *FileReader[T]) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &fr.fileFlagValue,
	}
}

// SetFile overrides the flag value, e.g. from a positional argument.
func (fr *FileReader[T]) SetFile(path string) {
	fr.fileFlagValue = path
}

// Read decodes the document.
func (fr *FileReader[T]) Read() (T, error) {
	var input T

	reader, closeFn, err := fr.open()
	if err != nil {
		return input, err
	}
	defer closeFn()

	data, err := io.ReadAll(reader)
	if err != nil {
		return input, fmt.Errorf("read input: %w", err)
	}

	if fr.Decode != nil {
		return fr.Decode(data)
	}

	if err := json.Unmarshal(data, &input); err != nil {
		return input, fmt.Errorf("decode JSON: %w", err)
	}

	return input, nil
}

func (fr *FileReader[T]) open() (io.Reader, func(), error) {
	if fr.fileFlagValue != "" {
		f, err := os.Open(fr.fileFlagValue)
		if err != nil {
			return nil, nil, fmt.Errorf("open file: %w", err)
		}
		return f, func() { _ = f.Close() }, nil
	}

	if fr.Stdin != nil {
		return fr.Stdin, func() {}, nil
	}

	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil, nil, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
	}
	return os.Stdin, func() {}, nil
}
