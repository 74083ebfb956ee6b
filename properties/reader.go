package properties

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// LineReader reads logical lines, joining any physical line whose trailing
// non-whitespace character is a backslash onto the line that follows it.
type LineReader struct {
	r *bufio.Reader
}

func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// Next returns the next logical line without its line terminator. It
// returns io.EOF once the input is exhausted.
func (lr *LineReader) Next() (string, error) {
	line, err := lr.readPhysical()
	if err != nil {
		return "", err
	}

	for continues(line) {
		line = strings.TrimSuffix(strings.TrimRight(line, " \t\f"), `\`)
		line = strings.TrimRight(line, " \t\f")

		next, err := lr.readPhysical()
		if errors.Is(err, io.EOF) {
			// A dangling marker on the last line just ends the value
			return line, nil
		} else if err != nil {
			return "", err
		}
		if next = strings.TrimLeft(next, " \t\f"); next != "" {
			line += " " + next
		}
	}

	return line, nil
}

// readPhysical has no line length limit, unlike bufio.Scanner
func (lr *LineReader) readPhysical() (string, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func continues(line string) bool {
	return strings.HasSuffix(strings.TrimRight(line, " \t\f"), `\`)
}
