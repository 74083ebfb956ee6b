// Package walker finds the properties files under a directory tree
package walker

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

const (
	// ExcludedDir is pruned, along with everything under it, wherever it appears
	ExcludedDir = "bin"
	// FilePattern is matched against each file's base name
	FilePattern = "*.properties"
	// Files with this anywhere in their name describe the build, not a class
	ExcludedNameFragment = "build"
)

// Matches reports whether a file's base name is a class properties file
func Matches(fileName string) bool {
	matched, err := doublestar.Match(FilePattern, fileName)
	if err != nil || !matched {
		return false
	}
	return !strings.Contains(fileName, ExcludedNameFragment)
}

// Walk calls fn, in lexical order, for every matching file under root. Any
// error from the filesystem or from fn stops the walk and is returned.
func Walk(fs afero.Fs, root string, fn func(path string) error) error {
	return afero.Walk(fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return fmt.Errorf("walking %s: %w", path, err)
		}

		if info.IsDir() {
			if path != root && info.Name() == ExcludedDir {
				log.WithField("dir", path).Debug("Skipping excluded directory")
				return filepath.SkipDir
			}
			return nil
		}

		if !Matches(info.Name()) {
			return nil
		}
		return fn(path)
	})
}

// Find collects every matching file under root
func Find(fs afero.Fs, root string) ([]string, error) {
	var paths []string
	err := Walk(fs, root, func(path string) error {
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
