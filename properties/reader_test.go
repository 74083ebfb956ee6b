package properties

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, input string) []string {
	t.Helper()

	var lines []string
	reader := NewLineReader(strings.NewReader(input))
	for {
		line, err := reader.Next()
		if errors.Is(err, io.EOF) {
			return lines
		}
		require.NoError(t, err)
		lines = append(lines, line)
	}
}

func TestLineReaderPlain(t *testing.T) {
	assert.Equal(t, []string{"a.desc=one", "", "a.type=int"}, readAll(t, "a.desc=one\n\na.type=int\n"))
}

func TestLineReaderNoTrailingNewline(t *testing.T) {
	assert.Equal(t, []string{"a.desc=one", "a.type=int"}, readAll(t, "a.desc=one\r\na.type=int"))
}

func TestLineReaderContinuation(t *testing.T) {
	split := "a.desc=first \\\n    second\\\n\tthird\na.type=int\n"
	single := "a.desc=first second third\na.type=int\n"

	assert.Equal(t, readAll(t, single), readAll(t, split))
	assert.Equal(t, ParseLine(readAll(t, single)[0]), ParseLine(readAll(t, split)[0]))
}

func TestLineReaderMarkerBeforeWhitespace(t *testing.T) {
	assert.Equal(t, []string{"a.desc=first second"}, readAll(t, "a.desc=first \\  \nsecond\n"))
}

func TestLineReaderDanglingMarker(t *testing.T) {
	assert.Equal(t, []string{"a.desc=last"}, readAll(t, "a.desc=last \\\n"))
}

func TestLineReaderLongLine(t *testing.T) {
	long := "a.desc=" + strings.Repeat("x", 128*1024)
	assert.Equal(t, []string{long}, readAll(t, long+"\n"))
}
