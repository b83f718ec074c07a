// Package fsys opens files named by absolute paths through an fs.FS.
package fsys

import (
	"io/fs"
	"strings"
)

// FS accepts paths with a leading "/" and strips it before delegating, so
// os.DirFS("/") can serve paths from the command line.
type FS struct {
	fsys fs.FS
}

func New(fsys fs.FS) *FS {
	return &FS{
		fsys: fsys,
	}
}

func (f *FS) Open(name string) (fs.File, error) {
	return f.fsys.Open(f.convertToFS(name))
}

func (f *FS) ReadFile(name string) ([]byte, error) {
	return fs.ReadFile(f.fsys, f.convertToFS(name))
}

func (f *FS) convertToFS(path string) string {
	result := strings.TrimPrefix(path, "/")
	if result == "" {
		return "."
	}
	return result
}
