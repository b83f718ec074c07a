package wrapper

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/gopatchy/pardiff"
	"github.com/gopatchy/pardiff/pkg/log"
	"github.com/gopatchy/pardiff/pkg/version"
	"golang.org/x/exp/slices"
)

// WidthEnvVar overrides the output width of a wrapped command.
const WidthEnvVar = "PARDIFF_WIDTH"

// WrapOrDie runs cmd with the process arguments, renders its output side by
// side on stdout, and exits with cmd's exit status.
func WrapOrDie(cmd string) {
	version.PrintVersion(false)

	args := slices.Clone(os.Args[1:])
	mode := pardiff.ModeStandard
	if ContextMode(args) {
		mode = pardiff.ModeContext
	}

	width := pardiff.OutputWidth(0, mode, 0)
	if val := os.Getenv(WidthEnvVar); val != "" {
		w, err := pardiff.ParseWidth(val)
		if err != nil {
			fatal(fmt.Errorf("%s: %w", WidthEnvVar, err))
		}

		width = w
	}

	status, err := Run(context.Background(), cmd, args, os.Stdout, os.Stderr, pardiff.Options{Mode: mode, Width: width})
	if err != nil {
		fatal(err)
	}

	os.Exit(status)
}

// Run runs cmd with args and renders its standard output to w. It returns
// cmd's exit status.
func Run(ctx context.Context, cmd string, args []string, w, stderr io.Writer, opts pardiff.Options) (int, error) {
	cmdPath, err := exec.LookPath(cmd)
	if err != nil {
		return 0, err
	}

	log.Debugf("wrapper: %s %s", cmdPath, strings.Join(args, " "))

	c := exec.CommandContext(ctx, cmdPath, args...)
	c.Stderr = stderr

	stdout, err := c.StdoutPipe()
	if err != nil {
		return 0, err
	}

	err = c.Start()
	if err != nil {
		return 0, err
	}

	_, renderErr := pardiff.Render(w, stdout, opts)
	if renderErr != nil {
		// Let cmd finish writing so Wait doesn't block on a full pipe.
		_, _ = io.Copy(io.Discard, stdout)
	}

	status := 0

	err = c.Wait()
	if err != nil {
		exitErr := &exec.ExitError{}
		if !errors.As(err, &exitErr) {
			return 0, err
		}

		status = exitErr.ExitCode()
	}

	// Identical files produce no context header.
	if renderErr != nil && !(status == 0 && errors.Is(renderErr, pardiff.ErrEmptyInput)) {
		return status, renderErr
	}

	return status, nil
}

// ContextMode reports whether diff arguments select context output.
func ContextMode(args []string) bool {
	for _, arg := range args {
		if arg == "--" {
			return false
		}

		if arg == "-c" || arg == "--context" || strings.HasPrefix(arg, "--context=") {
			return true
		}

		if rest, found := strings.CutPrefix(arg, "-C"); found && isDigits(rest) {
			return true
		}
	}

	return false
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}

	return true
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s\n", err)
	os.Exit(2)
}
