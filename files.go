package pardiff

import (
	"errors"
	"fmt"
	"io"
	"io/fs"

	"github.com/gopatchy/pardiff/internal/fsys"
	"github.com/gopatchy/pardiff/internal/utils"
	"github.com/gopatchy/pardiff/pkg/log"
)

// RenderFiles renders each of paths to w in order. "-" (and an empty list)
// reads stdin. Paths are resolved against workingDir (the process working
// directory when empty) and opened from fx, which is rooted at rootPath.
//
// With more than one path, each file's output is preceded by a
// "file: <name>" or "stdin:" line and separated from the previous one by a
// blank line.
//
// A file that fails does not stop the others; all failures are returned
// joined. An error wrapping [ErrInternal] stops processing immediately.
func RenderFiles(fx fs.FS, paths []string, rootPath, workingDir string, stdin io.Reader, w io.Writer, opts Options) error {
	if len(paths) == 0 {
		paths = []string{"-"}
	}

	fileSystem := fsys.New(fx)
	multi := len(paths) > 1
	written := 0

	var errs []error

	for _, path := range paths {
		in, closeInput, err := openInput(fileSystem, path, rootPath, workingDir, stdin)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		if multi {
			if written > 0 {
				fmt.Fprintln(w)
			}

			fmt.Fprintln(w, banner(path))
		}

		written++

		log.Debugf("rendering %s as %s at width %d", path, opts.Mode, opts.Width)

		_, err = Render(w, in, opts)
		closeInput()

		if err != nil {
			err = fmt.Errorf("%s: %w", displayName(path), err)

			if errors.Is(err, ErrInternal) {
				return errors.Join(append(errs, err)...)
			}

			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

func openInput(fileSystem *fsys.FS, path, rootPath, workingDir string, stdin io.Reader) (io.Reader, func(), error) {
	if utils.IsStdin(path) {
		return stdin, func() {}, nil
	}

	resolved, err := utils.ResolvePath(path, rootPath, workingDir)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v (%w)", path, err, ErrOpenFile)
	}

	f, err := fileSystem.Open(resolved)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %v (%w)", path, err, ErrOpenFile)
	}

	return f, func() { f.Close() }, nil
}

func banner(path string) string {
	if utils.IsStdin(path) {
		return "stdin:"
	}

	return fmt.Sprintf("file: %s", path)
}

func displayName(path string) string {
	if utils.IsStdin(path) {
		return "stdin"
	}

	return path
}
