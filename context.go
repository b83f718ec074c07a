package pardiff

import (
	"fmt"
	"io"
	"strings"

	"github.com/gopatchy/pardiff/internal/layout"
	"github.com/gopatchy/pardiff/internal/linebuf"
	"github.com/gopatchy/pardiff/pkg/log"
)

// Context diffs are detabbed before anything else looks at them.
const contextTabStop = 4

// Length of "\t" plus a 24-character ctime date, used to trim file header
// lines that carry no tab.
const headerDateSuffix = 25

// Context-format parser states
type contextState int

const (
	contextInitial    contextState = iota // before the first hunk separator
	contextHunkMarker                     // seen "***************", waiting for "*** "
	contextSide1                          // collecting side 1 of a hunk
	contextSide2                          // collecting side 2 of a hunk
)

func (s contextState) String() string {
	switch s {
	case contextInitial:
		return "Initial"
	case contextHunkMarker:
		return "InHunkMarker"
	case contextSide1:
		return "InSide1"
	case contextSide2:
		return "InSide2"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

type contextParser struct {
	out   *layout.Writer
	state contextState

	buf1 *linebuf.Buffer
	buf2 *linebuf.Buffer

	// Line number ranges from the "*** " and "--- " lines.
	range1 string
	range2 string

	// 1-based offset of the first "!" line on each side; 0 if none yet.
	change1 int
	change2 int

	lineNum int
	hunks   int
}

// RenderContext renders context diff output (diff -c / diff -C n) read from
// r. Each hunk is collected in full and written as one bordered block whose
// column widths fit that hunk.
//
// The first two lines must be the "*** file" and "--- file" headers;
// anything else returns an error wrapping [ErrFormat] before any output is
// written.
func RenderContext(w io.Writer, r io.Reader, width int) (*Result, error) {
	lr := newLineReader(r)

	file1, file2, err := readFileNames(lr)
	if err != nil {
		return nil, err
	}

	log.Debugf("context: comparing %q and %q", file1, file2)

	p := newContextParser(layout.NewWriter(w, width))

	for {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		p.feed(line)
	}

	p.flush()

	err = p.out.Flush()
	if err != nil {
		return nil, err
	}

	return &Result{
		Mode:  ModeContext,
		Width: width,
		Hunks: p.hunks,
		File1: file1,
		File2: file2,
	}, nil
}

func newContextParser(out *layout.Writer) *contextParser {
	return &contextParser{
		out:  out,
		buf1: linebuf.New(),
		buf2: linebuf.New(),
	}
}

func (p *contextParser) feed(line string) {
	line = layout.ExpandTabs(line, contextTabStop)
	p.lineNum++

	if strings.HasPrefix(line, "**********") {
		p.transition(contextHunkMarker)
	}

	switch p.state {
	case contextHunkMarker:
		rest, found := strings.CutPrefix(line, "*** ")
		if !found {
			return
		}

		p.flush()
		p.range1 = rangeToken(rest)
		p.lineNum = 0
		p.transition(contextSide1)

	case contextSide1:
		rest, found := strings.CutPrefix(line, "--- ")
		if found {
			p.range2 = rangeToken(rest)
			p.lineNum = 0
			p.transition(contextSide2)
			return
		}

		p.markChange(&p.change1, line)
		p.buf1.Append(line)

	case contextSide2:
		p.markChange(&p.change2, line)
		p.buf2.Append(line)
	}
}

func (p *contextParser) markChange(change *int, line string) {
	if *change == 0 && strings.HasPrefix(line, "!") {
		*change = p.lineNum
	}
}

// flush writes the buffered hunk, if any, and resets per-hunk state.
func (p *contextParser) flush() {
	if p.buf1.Len() > 0 || p.buf2.Len() > 0 {
		log.Debugf("context: hunk %s/%s, %d+%d lines, changes at %d/%d", p.range1, p.range2, p.buf1.Len(), p.buf2.Len(), p.change1, p.change2)
		p.out.Block(p.buf1, p.buf2, p.range1, p.range2, p.change1, p.change2)
		p.hunks++
	}

	p.buf1.Reset()
	p.buf2.Reset()
	p.range1 = ""
	p.range2 = ""
	p.change1 = 0
	p.change2 = 0
}

func (p *contextParser) transition(to contextState) {
	if p.state != to {
		log.Debugf("context: %s -> %s", p.state, to)
	}

	p.state = to
}

func readFileNames(lr *lineReader) (string, string, error) {
	line, ok, err := lr.next()
	if err != nil {
		return "", "", err
	}

	if !ok {
		return "", "", ErrEmptyInput
	}

	rest, found := strings.CutPrefix(line, "*** ")
	if !found {
		return "", "", fmt.Errorf("line 1: %w", ErrBadHeader)
	}

	file1 := headerFileName(rest)

	line, ok, err = lr.next()
	if err != nil {
		return "", "", err
	}

	if !ok {
		return "", "", fmt.Errorf("line 2 missing: %w", ErrBadHeader)
	}

	rest, found = strings.CutPrefix(line, "--- ")
	if !found {
		return "", "", fmt.Errorf("line 2: %w", ErrBadHeader)
	}

	return file1, headerFileName(rest), nil
}

func headerFileName(s string) string {
	if name, _, found := strings.Cut(s, "\t"); found {
		return name
	}

	if len(s) > headerDateSuffix {
		return s[:len(s)-headerDateSuffix]
	}

	return s
}

// rangeToken returns the text before the first space, e.g. "1,5" from
// "1,5 ****".
func rangeToken(s string) string {
	token, _, _ := strings.Cut(s, " ")
	return token
}
