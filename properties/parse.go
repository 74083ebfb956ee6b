package properties

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Suffix identifies the files that describe a class's properties
const Suffix = ".properties"

// A Header is a class description line found inside a properties file
type Header struct {
	ClassName   string
	Description string
}

// Result is everything extracted from a single properties file
type Result struct {
	// Path of the parsed file
	Path string
	// ClassName is the file's base name, the class the file is expected
	// to describe
	ClassName  string
	Headers    []Header
	Properties *ClassProperties
}

// Mismatched reports whether a header names a class other than the one the
// file is named after
func (r *Result) Mismatched(h Header) bool {
	return h.ClassName != r.ClassName
}

// ClassDescriptor returns the part of the file's name before the first dot
// Ex: path/to/Sender.properties -> Sender
func ClassDescriptor(path string) string {
	name := filepath.Base(path)
	if ind := strings.IndexByte(name, '.'); ind >= 0 {
		return name[:ind]
	}
	return name
}

// ParseFile reads a properties file from r, which was opened from path.
// Lines that can't be tokenized are dropped, so the only errors returned
// come from reading.
func ParseFile(r io.Reader, path string) (*Result, error) {
	result := &Result{
		Path:       path,
		ClassName:  ClassDescriptor(path),
		Properties: NewClassProperties(),
	}

	lines := NewLineReader(r)
	for {
		logical, err := lines.Next()
		if errors.Is(err, io.EOF) {
			break
		} else if err != nil {
			return nil, fmt.Errorf("reading %s: %w", path, err)
		}

		line := ParseLine(logical)
		switch line.Kind {
		case ClassDescription:
			result.Headers = append(result.Headers, Header{
				ClassName:   line.ClassName,
				Description: line.Value,
			})
		case PropertyAttribute:
			result.Properties.Set(line.Property, line.Attribute, line.Value)
		}
	}

	return result, nil
}
