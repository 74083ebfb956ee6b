package properties

import (
	"regexp"
	"strings"
)

// Namespace is the key prefix that marks a class description line
const Namespace = "com.ibm.uk.hursley."

// LineKind tags what a single logical line was recognized as
type LineKind int

const (
	Unrecognized LineKind = iota
	ClassDescription
	PropertyAttribute
)

func (k LineKind) String() string {
	switch k {
	case ClassDescription:
		return "ClassDescription"
	case PropertyAttribute:
		return "PropertyAttribute"
	}
	return "Unrecognized"
}

// A Line is the tokenized form of one logical line of a properties file.
// Which fields are set depends on the Kind:
//
//	ClassDescription:  ClassName, Value
//	PropertyAttribute: Property, Attribute, Value
type Line struct {
	Kind      LineKind
	ClassName string
	Property  string
	Attribute string
	Value     string
}

var (
	// `com.ibm.uk.hursley.<anything>.<Class>.desc[=<value>]`
	classDescPattern = regexp.MustCompile(`^` + regexp.QuoteMeta(Namespace) + `(?:[^=\s]*\.)?([^.=\s]+)\.desc\s*(?:=(.*))?$`)
	// Lazy matches stop the split from running into dotted keys that are
	// quoted inside a description
	keyValuePattern = regexp.MustCompile(`^(.+?)\.(.+?)=(.*)$`)
)

// ParseLine tokenizes a single logical line. Comments and anything that
// isn't a class description or a dotted key/value are Unrecognized.
func ParseLine(line string) Line {
	line = strings.TrimRight(line, "\r\n")

	trimmed := strings.TrimLeft(line, " \t\f")
	if trimmed == "" || trimmed[0] == '#' || trimmed[0] == '!' {
		return Line{Kind: Unrecognized}
	}

	if match := classDescPattern.FindStringSubmatch(line); match != nil {
		return Line{
			Kind:      ClassDescription,
			ClassName: match[1],
			Value:     match[2],
		}
	}

	if match := keyValuePattern.FindStringSubmatch(line); match != nil {
		return Line{
			Kind:      PropertyAttribute,
			Property:  strings.TrimRight(match[1], " \t"),
			Attribute: strings.TrimRight(match[2], " \t"),
			Value:     strings.TrimRight(match[3], "\\\r\n"),
		}
	}

	return Line{Kind: Unrecognized}
}
