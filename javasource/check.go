package javasource

import (
	"context"
	"errors"
	"io/fs"

	"github.com/spf13/afero"
)

// Status is the outcome of looking for a class's Java source
type Status int

const (
	// NoSource means there is no Java file next to the properties file
	NoSource Status = iota
	// Declared means the Java file declares the class
	Declared
	// Undeclared means the Java file exists but doesn't declare the class
	Undeclared
)

func (s Status) String() string {
	switch s {
	case Declared:
		return "declared"
	case Undeclared:
		return "undeclared"
	}
	return "no source"
}

// Check looks for the Java source of className next to propertiesPath.
// The returned path is the Java file that was looked for.
func Check(ctx context.Context, fsys afero.Fs, propertiesPath, className string) (Status, string, error) {
	path := CompanionPath(propertiesPath, className)

	file, err := Load(ctx, fsys, path)
	if errors.Is(err, fs.ErrNotExist) {
		return NoSource, path, nil
	} else if err != nil {
		return NoSource, path, err
	}

	if file.Declares(className) {
		return Declared, path, nil
	}
	return Undeclared, path, nil
}
