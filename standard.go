package pardiff

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/gopatchy/pardiff/internal/layout"
	"github.com/gopatchy/pardiff/internal/linebuf"
	"github.com/gopatchy/pardiff/pkg/log"
)

// Standard-format parser states
type standardState int

const (
	stateUnknown          standardState = iota
	stateNeedCommand                    // looking for the next a, d or c command
	stateEchoingDeleted                 // copying d text
	stateEchoingAdded                   // copying a text
	stateSavingSide1                    // saving side 1 of c text
	stateChewingSeparator               // dropping the --- between the two sides of c text
	stateEchoingSaved                   // writing side 2 of c text next to the saved side 1
)

func (s standardState) String() string {
	switch s {
	case stateNeedCommand:
		return "NeedCommand"
	case stateEchoingDeleted:
		return "EchoingDeleted"
	case stateEchoingAdded:
		return "EchoingAdded"
	case stateSavingSide1:
		return "SavingSide1"
	case stateChewingSeparator:
		return "ChewingSeparator"
	case stateEchoingSaved:
		return "EchoingSaved"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// N1[,N2]{a|d|c}M1[,M2], with the same whitespace and sign tolerance as
// strtol. Anything after the second range is ignored.
var commandRE = regexp.MustCompile(`^\s*([+-]?\d+)(?:,\s*([+-]?\d+))?([acd])\s*([+-]?\d+)(?:,\s*([+-]?\d+))?`)

type standardParser struct {
	out   *layout.Writer
	state standardState

	// Lines still expected on each side of the current command.
	remain1 int
	remain2 int

	saved *linebuf.Buffer
	next  int
}

// RenderStandard renders normal-format diff output (the default output of
// diff) read from r.
//
// Lines outside of a command's body that do not parse as a command are
// dropped, so diff output can be pulled out of a stream that also carries
// other text.
func RenderStandard(w io.Writer, r io.Reader, width int) (*Result, error) {
	p := newStandardParser(layout.NewWriter(w, width))
	lr := newLineReader(r)

	for {
		line, ok, err := lr.next()
		if err != nil {
			return nil, err
		}

		if !ok {
			break
		}

		err = p.feed(line)
		if err != nil {
			// Keep whatever was already laid out.
			_ = p.out.Flush()
			return nil, err
		}
	}

	p.finish()

	err := p.out.Flush()
	if err != nil {
		return nil, err
	}

	return &Result{
		Mode:  ModeStandard,
		Width: width,
		Hunks: p.out.Headers(),
	}, nil
}

func newStandardParser(out *layout.Writer) *standardParser {
	return &standardParser{
		out:   out,
		state: stateNeedCommand,
		saved: linebuf.New(),
	}
}

func (p *standardParser) feed(line string) error {
	if p.state != stateNeedCommand && strings.HasPrefix(line, `\`) {
		// "\ No newline at end of file" annotates the line before it.
		log.Debugf("standard: skipping annotation %q", line)
		return nil
	}

	switch p.state {
	case stateNeedCommand:
		x, cmd, y, ok := parseCommand(line)
		if !ok {
			return nil
		}

		p.out.Header(x, y, cmd)

		p.remain1 = max(x.Count(), 1)
		p.remain2 = max(y.Count(), 1)

		switch cmd {
		case 'a':
			p.transition(stateEchoingAdded)
		case 'd':
			p.transition(stateEchoingDeleted)
		case 'c':
			p.saved.Reset()
			p.next = 0
			p.transition(stateSavingSide1)
		}

	case stateEchoingDeleted:
		p.out.Row(body(line), "")

		p.remain1--
		if p.remain1 == 0 {
			p.transition(stateNeedCommand)
		}

	case stateEchoingAdded:
		p.out.Row("", body(line))

		p.remain2--
		if p.remain2 == 0 {
			p.transition(stateNeedCommand)
		}

	case stateSavingSide1:
		p.saved.Append(body(line))

		p.remain1--
		if p.remain1 == 0 {
			p.transition(stateChewingSeparator)
		}

	case stateChewingSeparator:
		p.transition(stateEchoingSaved)

	case stateEchoingSaved:
		p.out.Row(p.nextSaved(), body(line))

		p.remain2--
		if p.remain2 == 0 {
			p.flushSaved()
			p.transition(stateNeedCommand)
		}

	default:
		return fmt.Errorf("in state %d: %w", int(p.state), ErrInternal)
	}

	return nil
}

// finish handles end of input. Side 1 text saved by a truncated c command
// is still written.
func (p *standardParser) finish() {
	switch p.state {
	case stateSavingSide1, stateChewingSeparator, stateEchoingSaved:
		log.Debugf("standard: input ended in state %s", p.state)
		p.flushSaved()
	}

	if p.out.Headers() > 0 {
		p.out.Footer()
	}
}

func (p *standardParser) nextSaved() string {
	line, ok := p.saved.At(p.next)
	if ok {
		p.next++
	}

	return line
}

func (p *standardParser) flushSaved() {
	for p.next < p.saved.Len() {
		p.out.Row(p.nextSaved(), "")
	}
}

func (p *standardParser) transition(to standardState) {
	log.Debugf("standard: %s -> %s", p.state, to)
	p.state = to
}

func parseCommand(line string) (layout.Range, byte, layout.Range, bool) {
	m := commandRE.FindStringSubmatch(line)
	if m == nil {
		return layout.Range{}, 0, layout.Range{}, false
	}

	x, ok := parseRange(m[1], m[2])
	if !ok {
		return layout.Range{}, 0, layout.Range{}, false
	}

	y, ok := parseRange(m[4], m[5])
	if !ok {
		return layout.Range{}, 0, layout.Range{}, false
	}

	return x, m[3][0], y, true
}

func parseRange(start, end string) (layout.Range, bool) {
	n1, err := strconv.Atoi(start)
	if err != nil {
		return layout.Range{}, false
	}

	if end == "" {
		return layout.Range{Start: n1, End: n1}, true
	}

	n2, err := strconv.Atoi(end)
	if err != nil {
		return layout.Range{}, false
	}

	return layout.Range{Start: n1, End: n2}, true
}

// body strips the two-character "< " or "> " marker from a diff body line.
func body(line string) string {
	if len(line) < 2 {
		return ""
	}

	return line[2:]
}
