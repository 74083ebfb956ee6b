// Package report prints the human-readable summary of a parsed properties file
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/NickyBoy89/propsummary/properties"
	log "github.com/sirupsen/logrus"
)

// NoProperties is printed for a file that sets no property attributes
const NoProperties = "No properties for this class"

// Delineator separates the report of one file from the next
var Delineator = "\n+" + strings.Repeat("-", 129) + "+\n"

// Printer writes reports to Out. Incomplete property records are printed with
// empty placeholders for the missing attributes, and logged to Log.
type Printer struct {
	Out io.Writer
	Log log.FieldLogger
}

func NewPrinter(out io.Writer, logger log.FieldLogger) *Printer {
	return &Printer{Out: out, Log: logger}
}

// Print writes the full report for one file: any class name warnings and
// descriptions, then each property, then the delineator
func (p *Printer) Print(result *properties.Result) error {
	if err := p.PrintHeaders(result); err != nil {
		return err
	}
	if err := p.PrintProperties(result); err != nil {
		return err
	}
	_, err := fmt.Fprintln(p.Out, Delineator)
	return err
}

// PrintHeaders writes the class description lines found in the file, each
// one preceded by a warning if it names a different class than the file
func (p *Printer) PrintHeaders(result *properties.Result) error {
	for _, header := range result.Headers {
		if result.Mismatched(header) {
			if _, err := fmt.Fprintln(p.Out, Warning(header.ClassName, result.Path)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(p.Out, "%s\n%s\n", header.ClassName, header.Description); err != nil {
			return err
		}
	}
	return nil
}

// PrintProperties writes an entry for every property in first-seen order,
// and the extra notes of every property that has them
func (p *Printer) PrintProperties(result *properties.Result) error {
	if result.Properties == nil || result.Properties.Len() == 0 {
		_, err := fmt.Fprintln(p.Out, NoProperties)
		return err
	}

	for _, record := range result.Properties.Records() {
		if missing := record.Missing(); len(missing) > 0 && p.Log != nil {
			p.Log.WithFields(log.Fields{
				"file":     result.Path,
				"property": record.Name,
				"missing":  strings.Join(missing, ","),
			}).Warn("Incomplete property record")
		}

		if _, err := fmt.Fprintln(p.Out, Entry(record)); err != nil {
			return err
		}
		if extra, ok := record.Extra(); ok {
			if _, err := fmt.Fprintf(p.Out, "      %s\n", extra); err != nil {
				return err
			}
		}
	}
	return nil
}

// Warning is the advisory line for a class description that doesn't match
// the name of the file it was found in
func Warning(described, path string) string {
	return fmt.Sprintf("Warning: Class described in properties file (%s) does not match property file name %s", described, path)
}

// Entry is the two line summary of a single property
// Ex: "timeout\tTimeout value\n\t Type =int (default: 30)"
func Entry(record *properties.PropertyRecord) string {
	return fmt.Sprintf("%s\t%s\n\t Type =%s (default: %s)", record.Name, record.Description(), record.Type(), record.Default())
}
