package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Ext returns the file extension without its leading dot.
func Ext(path string) string {
	return strings.TrimPrefix(filepath.Ext(path), ".")
}

// IsStdin reports whether path names standard input.
func IsStdin(path string) bool {
	return path == "-"
}

// ResolvePath turns a command line path into a slash-separated path relative
// to rootPath, with a leading "/", suitable for an fs.FS rooted there.
// Relative paths are taken from workingDir, or the process working directory
// when workingDir is empty. "-" is returned unchanged.
func ResolvePath(path, rootPath, workingDir string) (string, error) {
	if IsStdin(path) {
		return path, nil
	}

	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		workingDir = wd
	}

	if rootPath == "" {
		rootPath = "/"
	}

	if !filepath.IsAbs(path) {
		path = filepath.Join(workingDir, path)
	}

	if !filepath.IsAbs(rootPath) {
		rootPath = filepath.Join(workingDir, rootPath)
	}

	rel, err := filepath.Rel(rootPath, path)
	if err != nil {
		return "", fmt.Errorf("%s outside root path %s: %w", path, rootPath, err)
	}

	if rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%s outside root path %s", path, rootPath)
	}

	return "/" + filepath.ToSlash(rel), nil
}
