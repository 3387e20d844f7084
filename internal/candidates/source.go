package candidates

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Stdin is the File value that makes a Source read standard input.
const Stdin = "-"

// Source describes where to read resume text from.
type Source struct {
	// Name is used in error messages to give more context about the resume.
	Name string
	// Value is inline resume text provided via configuration or flags.
	Value string
	// File points to a plain text file holding the resume, or "-" for stdin.
	// When set it takes precedence over Value.
	File string
	// Stdin overrides os.Stdin for File == "-".
	Stdin io.Reader
}

// Load returns the resume text of the provided source. Invalid UTF-8 sequences are
// dropped. Empty text is valid; an error is returned only when nothing is configured
// or the file cannot be read.
func Load(src Source) (string, error) {
	name := strings.TrimSpace(src.Name)
	if name == "" {
		name = "resume"
	}

	file := strings.TrimSpace(src.File)
	switch {
	case file == Stdin:
		in := src.Stdin
		if in == nil {
			in = os.Stdin
		}
		data, err := io.ReadAll(in)
		if err != nil {
			return "", fmt.Errorf("reading %s from stdin: %w", name, err)
		}
		return strings.ToValidUTF8(string(data), ""), nil
	case file != "":
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading %s from file %q: %w", name, file, err)
		}
		return strings.ToValidUTF8(string(data), ""), nil
	}

	if src.Value == "" {
		return "", fmt.Errorf("%s is not configured", name)
	}

	return strings.ToValidUTF8(src.Value, ""), nil
}

// FromFiles loads one candidate per plain text file, identified by its base name.
func FromFiles(paths []string) (*Candidates, error) {
	items := make([]*Candidate, 0, len(paths))
	for _, path := range paths {
		text, err := Load(Source{Name: "resume", File: path})
		if err != nil {
			return nil, err
		}
		id := filepath.Base(path)
		if strings.TrimSpace(path) == Stdin {
			id = "stdin"
		}
		items = append(items, &Candidate{ID: id, Text: text})
	}
	return New(items...), nil
}
