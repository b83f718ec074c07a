// Package pardiff converts diff output into a side-by-side, two-column
// rendering for a terminal of known width.
//
// Two input dialects are supported: the default "normal" diff format
// (ModeStandard) and context diffs produced by diff -c / -C (ModeContext).
// Input is read one line at a time and written as soon as it can be laid out.
package pardiff

import (
	"fmt"
	"io"
	"strings"
)

type Mode int

const (
	ModeStandard Mode = iota
	ModeContext
)

func (m Mode) String() string {
	switch m {
	case ModeStandard:
		return "standard"
	case ModeContext:
		return "context"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names returned by [Mode.String]. An empty string
// selects ModeStandard.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "standard", "normal":
		return ModeStandard, nil
	case "context":
		return ModeContext, nil
	default:
		return 0, fmt.Errorf("%s: %w", s, ErrUnknownMode)
	}
}

// Options controls a single rendering.
type Options struct {
	Mode Mode

	// Width is the total number of output columns, at most MaxWidth. Use
	// [OutputWidth] to pick one from the environment.
	Width int
}

// Result describes a completed rendering.
type Result struct {
	Mode  Mode
	Width int

	// Hunks is the number of commands (standard) or bordered blocks
	// (context) written.
	Hunks int

	// File names from the context diff header lines.
	File1 string
	File2 string
}

// Render reads diff output from r and writes the side-by-side form to w.
func Render(w io.Writer, r io.Reader, opts Options) (*Result, error) {
	if opts.Width > MaxWidth {
		return nil, CheckWidth(opts.Width)
	}

	switch opts.Mode {
	case ModeStandard:
		return RenderStandard(w, r, opts.Width)
	case ModeContext:
		return RenderContext(w, r, opts.Width)
	default:
		return nil, fmt.Errorf("%s: %w", opts.Mode, ErrUnknownMode)
	}
}
