package properties

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		name     string
		line     string
		expected Line
	}{
		{
			name: "class description",
			line: "com.ibm.uk.hursley.something.Widget.desc=A widget component",
			expected: Line{
				Kind:      ClassDescription,
				ClassName: "Widget",
				Value:     "A widget component",
			},
		},
		{
			name: "deep namespace",
			line: "com.ibm.uk.hursley.perfharness.jms.r11.Sender.desc=Sends messages.",
			expected: Line{
				Kind:      ClassDescription,
				ClassName: "Sender",
				Value:     "Sends messages.",
			},
		},
		{
			name:     "class description without value",
			line:     "com.ibm.uk.hursley.perfharness.Config.desc",
			expected: Line{Kind: ClassDescription, ClassName: "Config"},
		},
		{
			name: "class description quoting a key",
			line: "com.ibm.uk.hursley.perfharness.Config.desc=Set hq.dflt=2 for more",
			expected: Line{
				Kind:      ClassDescription,
				ClassName: "Config",
				Value:     "Set hq.dflt=2 for more",
			},
		},
		{
			name: "attribute",
			line: "timeout.dflt=30",
			expected: Line{
				Kind:      PropertyAttribute,
				Property:  "timeout",
				Attribute: "dflt",
				Value:     "30",
			},
		},
		{
			name: "description containing dots and equals",
			line: "mf.desc=Message factory, eg: mf.type=x.y.Z",
			expected: Line{
				Kind:      PropertyAttribute,
				Property:  "mf",
				Attribute: "desc",
				Value:     "Message factory, eg: mf.type=x.y.Z",
			},
		},
		{
			name: "trailing whitespace in key",
			line: "rt .type =int",
			expected: Line{
				Kind:      PropertyAttribute,
				Property:  "rt",
				Attribute: "type",
				Value:     "int",
			},
		},
		{
			name:     "empty value",
			line:     "nt.dflt=",
			expected: Line{Kind: PropertyAttribute, Property: "nt", Attribute: "dflt"},
		},
		{
			name:     "comment",
			line:     "# timeout.dflt=30",
			expected: Line{Kind: Unrecognized},
		},
		{
			name:     "no dot",
			line:     "timeout=30",
			expected: Line{Kind: Unrecognized},
		},
		{
			name:     "no equals",
			line:     "just some words.",
			expected: Line{Kind: Unrecognized},
		},
		{
			name:     "blank",
			line:     "   ",
			expected: Line{Kind: Unrecognized},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			assert.Equal(t, test.expected, ParseLine(test.line))
		})
	}
}

func TestLineKindString(t *testing.T) {
	assert.Equal(t, "ClassDescription", ClassDescription.String())
	assert.Equal(t, "PropertyAttribute", PropertyAttribute.String())
	assert.Equal(t, "Unrecognized", Unrecognized.String())
}
