// Package layout turns pairs of diff lines into fixed-width, two-column text.
//
// Widths are measured in bytes; no attempt is made to account for the
// display width of multi-byte characters.
package layout

import "strings"

const (
	// TabStop is used when a column is rendered from raw diff text.
	TabStop = 8

	// Overhead is the space a line needs beyond its own length: the
	// separator and one column of slack.
	Overhead = 3

	// Separator sits between the two columns of a standard-format row.
	Separator = " | "

	// MaxWidth bounds the output width. Wider requests are clamped.
	MaxWidth = 1 << 14
)

// Range is an inclusive span of line numbers from a diff command.
type Range struct {
	Start int
	End   int
}

// Count is the number of lines the range covers.
func (r Range) Count() int {
	return r.End - r.Start + 1
}

// ColumnWidths divides outputWidth between two columns whose longest lines
// are maxLen1 and maxLen2 bytes long.
//
// When both sides fit in half the width, or the two together cannot fit at
// all, the usable width is split evenly with any odd column going right.
// Otherwise the narrower side gets exactly its natural width and the wider
// side gets the rest.
func ColumnWidths(maxLen1, maxLen2, outputWidth int) (int, int) {
	outputWidth = min(outputWidth, MaxWidth)
	half := outputWidth / 2

	if (maxLen1+Overhead <= half && maxLen2+Overhead <= half) || maxLen1+maxLen2+4 > outputWidth {
		width1 := (outputWidth - Overhead) / 2
		return nonNegative(width1), nonNegative(outputWidth - Overhead - width1)
	}

	if maxLen1 < maxLen2 {
		return nonNegative(maxLen1), nonNegative(outputWidth - maxLen1 - 4)
	}

	return nonNegative(outputWidth - maxLen2 - 4), nonNegative(maxLen2)
}

// FixedColumnWidth is the width of both columns in standard-format output.
func FixedColumnWidth(outputWidth int) int {
	return nonNegative((min(outputWidth, MaxWidth) - Overhead) / 2)
}

// ExpandTabs replaces each tab with spaces up to the next multiple of
// tabStop, counting columns already produced by earlier tabs.
func ExpandTabs(s string, tabStop int) string {
	if tabStop <= 0 || !strings.Contains(s, "\t") {
		return s
	}

	var b strings.Builder
	col := 0

	for i := 0; i < len(s); i++ {
		if s[i] != '\t' {
			b.WriteByte(s[i])
			col++
			continue
		}

		n := tabStop - col%tabStop
		b.WriteString(strings.Repeat(" ", n))
		col += n
	}

	return b.String()
}

// RenderLine expands tabs at TabStop and fits the result to exactly width
// bytes.
func RenderLine(text string, width int) string {
	return Pad(ExpandTabs(text, TabStop), width)
}

// Pad truncates or space-pads text to exactly width bytes. A width of zero
// or less yields "".
func Pad(text string, width int) string {
	if width <= 0 {
		return ""
	}

	if len(text) >= width {
		return text[:width]
	}

	return text + strings.Repeat(" ", width-len(text))
}

func repeat(c string, n int) string {
	return strings.Repeat(c, nonNegative(n))
}

func nonNegative(v int) int {
	if v < 0 {
		return 0
	}

	return v
}
