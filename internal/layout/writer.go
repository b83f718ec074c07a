package layout

import (
	"bufio"
	"fmt"
	"io"

	"github.com/gopatchy/pardiff/internal/linebuf"
)

// Writer emits formatted output for one input stream. Write errors are
// sticky and reported by Flush.
type Writer struct {
	out         *bufio.Writer
	outputWidth int

	// Standard-format geometry, fixed for the whole stream.
	col        int
	leftFill   int
	centerFill int
	rightFill  int

	headers int
}

// NewWriter returns a Writer for outputWidth columns, clamped to MaxWidth.
func NewWriter(w io.Writer, outputWidth int) *Writer {
	outputWidth = min(outputWidth, MaxWidth)
	col := FixedColumnWidth(outputWidth)
	full := col*2 + Overhead

	// 11 columns per number pair, matching numberPair().
	left := col/2 - 5

	return &Writer{
		out:         bufio.NewWriter(w),
		outputWidth: outputWidth,
		col:         col,
		leftFill:    left,
		centerFill:  full - left - left - 22,
		rightFill:   left,
	}
}

// ColumnWidth is the width of each standard-format column.
func (w *Writer) ColumnWidth() int {
	return w.col
}

// Headers reports how many number lines have been written.
func (w *Writer) Headers() int {
	return w.headers
}

// Row writes "<left> | <right>". An empty side renders as blank fill.
func (w *Writer) Row(left, right string) {
	w.out.WriteString(RenderLine(left, w.col))
	w.out.WriteString(Separator)
	w.out.WriteString(RenderLine(right, w.col))
	w.out.WriteByte('\n')
}

// Header writes the number line that introduces a standard-format command.
func (w *Writer) Header(x, y Range, cmd byte) {
	w.headers++

	w.out.WriteString(repeat("-", w.leftFill))
	w.out.WriteString(numberPair(x))
	w.out.WriteString(repeat("-", w.centerFill/2))
	w.out.WriteByte(cmd)
	w.out.WriteString(repeat("-", w.centerFill/2))
	w.out.WriteString(numberPair(y))
	w.out.WriteString(repeat("-", w.rightFill))
	w.out.WriteByte('\n')
}

// Footer closes standard-format output with a full-width rule.
func (w *Writer) Footer() {
	w.out.WriteString(repeat("-", w.col*2+Overhead))
	w.out.WriteByte('\n')
}

// Block writes one bordered context-format hunk.
//
// change1 and change2 are the 1-based offsets of the first changed line on
// each side, or 0 when a side has none. When both are set, the side whose
// change comes earlier is padded with blank rows so the changes line up.
func (w *Writer) Block(b1, b2 *linebuf.Buffer, hdr1, hdr2 string, change1, change2 int) {
	if b1.Len() == 0 && b2.Len() == 0 {
		return
	}

	width1, width2 := ColumnWidths(b1.MaxLen(), b2.MaxLen(), w.outputWidth)

	pad1, pad2 := 0, 0
	if change1 > 0 && change2 > 0 {
		if change1 > change2 {
			pad2 = change1 - change2
		} else {
			pad1 = change2 - change1
		}
	}

	w.border(hdr1, width1, hdr2, width2)

	rows := max(b1.Len()+pad1, b2.Len()+pad2)
	for i := 0; i < rows; i++ {
		line1, _ := b1.At(i - pad1)
		line2, _ := b2.At(i - pad2)

		w.out.WriteByte('|')
		w.out.WriteString(Pad(line1, width1))
		w.out.WriteByte('|')
		w.out.WriteString(Pad(line2, width2))
		w.out.WriteString("|\n")
	}

	w.border("", width1, "", width2)
	w.out.WriteByte('\n')
}

func (w *Writer) Flush() error {
	return w.out.Flush()
}

func (w *Writer) border(hdr1 string, width1 int, hdr2 string, width2 int) {
	hdr1 = truncate(hdr1, width1)
	hdr2 = truncate(hdr2, width2)

	w.out.WriteByte('+')
	w.out.WriteString(hdr1)
	w.out.WriteString(repeat("-", width1-len(hdr1)))
	w.out.WriteByte('+')
	w.out.WriteString(hdr2)
	w.out.WriteString(repeat("-", width2-len(hdr2)))
	w.out.WriteString("+\n")
}

func numberPair(r Range) string {
	if r.Start == r.End {
		return fmt.Sprintf("---%5d---", r.Start)
	}

	return fmt.Sprintf("%5d,%-5d", r.Start, r.End)
}

func truncate(s string, n int) string {
	if len(s) > nonNegative(n) {
		return s[:nonNegative(n)]
	}

	return s
}
