package main

import (
	"context"
	"fmt"
	"io"
	"path/filepath"

	"github.com/NickyBoy89/propsummary/javasource"
	"github.com/NickyBoy89/propsummary/properties"
	"github.com/NickyBoy89/propsummary/report"
	"github.com/NickyBoy89/propsummary/walker"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
)

// Generator summarizes every properties file under a directory tree, one
// file at a time
type Generator struct {
	Fs  afero.Fs
	Out io.Writer
	Log *log.Logger
	// CheckSource looks for each class's Java file and warns when it
	// doesn't declare the class
	CheckSource bool
}

func NewGenerator(fs afero.Fs, out io.Writer, logger *log.Logger) *Generator {
	return &Generator{Fs: fs, Out: out, Log: logger, CheckSource: true}
}

// Run prints the report of every matching file under root, returning the
// number of files summarized. Any I/O error stops the run.
func (g *Generator) Run(ctx context.Context, root string) (int, error) {
	printer := report.NewPrinter(g.Out, g.Log)

	var summarized int
	err := walker.Walk(g.Fs, root, func(path string) error {
		path = filepath.Clean(path)

		result, err := g.parse(path)
		if err != nil {
			return err
		}
		g.Log.WithFields(log.Fields{
			"file":       path,
			"properties": result.Properties.Len(),
		}).Debug("Parsed properties file")

		if g.CheckSource {
			g.checkSource(ctx, result)
		}

		if err := printer.Print(result); err != nil {
			return fmt.Errorf("writing report for %s: %w", path, err)
		}
		summarized++
		return nil
	})
	return summarized, err
}

func (g *Generator) parse(path string) (*properties.Result, error) {
	file, err := g.Fs.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return properties.ParseFile(file, path)
}

func (g *Generator) checkSource(ctx context.Context, result *properties.Result) {
	status, javaPath, err := javasource.Check(ctx, g.Fs, result.Path, result.ClassName)
	fields := log.Fields{
		"file":   result.Path,
		"class":  result.ClassName,
		"source": javaPath,
	}
	switch {
	case err != nil:
		g.Log.WithFields(fields).WithError(err).Warn("Failed to read class source")
	case status == javasource.Undeclared:
		g.Log.WithFields(fields).Warn("Class source does not declare the class")
	case status == javasource.NoSource:
		g.Log.WithFields(fields).Debug("No class source next to properties file")
	}
}
