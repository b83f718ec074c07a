package pardiff

import (
	"bufio"
	"io"
	"strings"
)

// lineReader yields input lines without their line terminator. Lines may be
// arbitrarily long.
type lineReader struct {
	r *bufio.Reader
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{
		r: bufio.NewReader(r),
	}
}

// next returns the next line and true, or false at end of input.
func (lr *lineReader) next() (string, bool, error) {
	line, err := lr.r.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", false, err
	}

	if line == "" && err == io.EOF {
		return "", false, nil
	}

	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")

	return line, true, nil
}
