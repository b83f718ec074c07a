// Package linebuf holds one side of a diff hunk until the hunk is complete.
package linebuf

import "iter"

// Buffer is an ordered, append-only sequence of lines. The zero value is
// ready to use.
type Buffer struct {
	lines []string
}

func New() *Buffer {
	return &Buffer{}
}

func (b *Buffer) Append(line string) {
	b.lines = append(b.lines, line)
}

func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}

	return len(b.lines)
}

// At returns the i'th line and true, or "" and false when i is out of range.
func (b *Buffer) At(i int) (string, bool) {
	if b == nil || i < 0 || i >= len(b.lines) {
		return "", false
	}

	return b.lines[i], true
}

// All iterates the buffer from the first line. It may be called any number
// of times between resets.
func (b *Buffer) All() iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		if b == nil {
			return
		}

		for i, line := range b.lines {
			if !yield(i, line) {
				return
			}
		}
	}
}

// MaxLen returns the length in bytes of the longest line, or 0 when empty.
func (b *Buffer) MaxLen() int {
	ret := 0

	for _, line := range b.All() {
		ret = max(ret, len(line))
	}

	return ret
}

// Reset discards all lines, keeping the allocated storage for the next hunk.
func (b *Buffer) Reset() {
	clear(b.lines)
	b.lines = b.lines[:0]
}
