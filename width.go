package pardiff

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/gopatchy/pardiff/internal/layout"
	"github.com/gopatchy/pardiff/pkg/log"
	"golang.org/x/term"
)

const (
	// DefaultWidth is used when nothing else supplies an output width.
	DefaultWidth = 80

	// MaxWidth is the widest output accepted.
	MaxWidth = layout.MaxWidth
)

// WidthEnvVars are consulted, in order, for the output width in context
// mode.
var WidthEnvVars = []string{"DIFFER_WIDTH", "DIFFER_COLS"}

// WidthResolver picks the output width from, in order: an explicit value,
// the environment (context mode only), a config file, the terminal, and
// DefaultWidth.
type WidthResolver struct {
	// Explicit is the -w value; 0 means unset.
	Explicit int

	Mode Mode

	// Config is the width from a config file; 0 means unset.
	Config int

	Getenv   func(string) string
	Terminal func() (int, bool)
}

func (wr WidthResolver) Resolve() int {
	if wr.Explicit > 0 {
		log.Debugf("width: %d from flag", wr.Explicit)
		return wr.Explicit
	}

	if wr.Mode == ModeContext && wr.Getenv != nil {
		for _, name := range WidthEnvVars {
			val := wr.Getenv(name)
			if val == "" {
				continue
			}

			width, err := ParseWidth(val)
			if err != nil {
				log.Debugf("width: ignoring %s: %v", name, err)
				continue
			}

			log.Debugf("width: %d from %s", width, name)
			return width
		}
	}

	if wr.Config > 0 && wr.Config <= MaxWidth {
		log.Debugf("width: %d from config", wr.Config)
		return wr.Config
	}

	if wr.Terminal != nil {
		if width, ok := wr.Terminal(); ok {
			log.Debugf("width: %d from terminal", width)
			return min(width, MaxWidth)
		}
	}

	log.Debugf("width: default %d", DefaultWidth)

	return DefaultWidth
}

// OutputWidth resolves the width using the process environment and the
// controlling terminal.
func OutputWidth(explicit int, mode Mode, configWidth int) int {
	return WidthResolver{
		Explicit: explicit,
		Mode:     mode,
		Config:   configWidth,
		Getenv:   os.Getenv,
		Terminal: TerminalWidth,
	}.Resolve()
}

// ParseWidth parses a column count between 1 and MaxWidth.
func ParseWidth(s string) (int, error) {
	width, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("%q: %w", s, ErrInvalidWidth)
	}

	err = CheckWidth(width)
	if err != nil {
		return 0, err
	}

	return width, nil
}

// CheckWidth returns an error wrapping [ErrInvalidWidth] unless width is
// between 1 and MaxWidth.
func CheckWidth(width int) error {
	if width <= 0 || width > MaxWidth {
		return fmt.Errorf("%d (must be 1 to %d): %w", width, MaxWidth, ErrInvalidWidth)
	}

	return nil
}

// TerminalWidth reports the column count of the controlling terminal, or of
// stdout when there is no /dev/tty.
func TerminalWidth() (int, bool) {
	tty, err := os.Open("/dev/tty")
	if err == nil {
		defer tty.Close()

		if width, ok := fileWidth(tty); ok {
			return width, true
		}
	}

	return fileWidth(os.Stdout)
}

func fileWidth(f *os.File) (int, bool) {
	fd := int(f.Fd())
	if !term.IsTerminal(fd) {
		return 0, false
	}

	width, _, err := term.GetSize(fd)
	if err != nil || width <= 0 {
		return 0, false
	}

	return width, true
}
