package pardiff

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const contextHeader = "*** old.c\tMon Jan  1 00:00:00 2024\n--- new.c\tTue Jan  2 00:00:00 2024\n"

func renderContext(t *testing.T, input string, width int) (string, *Result) {
	t.Helper()

	out := &bytes.Buffer{}
	res, err := RenderContext(out, strings.NewReader(input), width)
	require.NoError(t, err)

	return out.String(), res
}

func TestHeaderFileName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "a.txt", headerFileName("a.txt\t2024-01-01 10:00:00.000000000 +0000"))
	require.Equal(t, "a.txt", headerFileName("a.txt Mon Jan  1 00:00:00 2024"))
	require.Equal(t, "short", headerFileName("short"))
	require.Equal(t, "", headerFileName("\tdate"))
}

func TestRangeToken(t *testing.T) {
	t.Parallel()

	require.Equal(t, "1,5", rangeToken("1,5 ****"))
	require.Equal(t, "10,12", rangeToken("10,12 ----"))
	require.Equal(t, "7", rangeToken("7"))
}

func TestContextFileNames(t *testing.T) {
	t.Parallel()

	_, res := renderContext(t, contextHeader, 80)
	require.Equal(t, "old.c", res.File1)
	require.Equal(t, "new.c", res.File2)
	require.Equal(t, 0, res.Hunks)
}

func TestContextHeaderErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		err   error
	}{
		{"", ErrEmptyInput},
		{"--- a\n*** b\n", ErrBadHeader},
		{"*** a\n", ErrBadHeader},
		{"*** a\n+++ b\n", ErrBadHeader},
		{"***a\n--- b\n", ErrBadHeader},
	}

	for _, tt := range tests {
		out := &bytes.Buffer{}
		_, err := RenderContext(out, strings.NewReader(tt.input), 80)
		require.ErrorIs(t, err, tt.err, "%q", tt.input)
		require.ErrorIs(t, err, ErrFormat, "%q", tt.input)
		require.Empty(t, out.String())
	}
}

func TestContextAlignment(t *testing.T) {
	t.Parallel()

	// First change is line 3 on side 1 and line 1 on side 2.
	out, _ := renderContext(t, contextHeader+"***************\n*** 1,4 ****\n  a\n  b\n! c\n  d\n--- 1,2 ----\n! C\n  d\n", 30)

	lines := strings.Split(out, "\n")
	require.Equal(t, "+1,4----------+1,2-----------+", lines[0])
	require.Equal(t, "|  a          |              |", lines[1])
	require.Equal(t, "|  b          |              |", lines[2])
	require.Equal(t, "|! c          |! C           |", lines[3])
	require.Equal(t, "|  d          |  d           |", lines[4])
	require.Equal(t, "+-------------+--------------+", lines[5])
	require.Equal(t, "", lines[6])
}

func TestContextAlignmentSide1Padded(t *testing.T) {
	t.Parallel()

	out, _ := renderContext(t, contextHeader+"***************\n*** 1 ****\n! x\n--- 1,3 ----\n+ p\n  q\n! X\n", 30)

	lines := strings.Split(out, "\n")
	require.Equal(t, "|             |+ p           |", lines[1])
	require.Equal(t, "|             |  q           |", lines[2])
	require.Equal(t, "|! x          |! X           |", lines[3])
	require.Equal(t, "+-------------+--------------+", lines[4])
}

func TestContextNoChangeOnOneSide(t *testing.T) {
	t.Parallel()

	// Only side 2 has a "!" line, so nothing is padded.
	out, _ := renderContext(t, contextHeader+"***************\n*** 1,2 ****\n- x\n  y\n--- 1,2 ----\n! z\n  y\n", 30)

	lines := strings.Split(out, "\n")
	require.Equal(t, "|- x          |! z           |", lines[1])
	require.Equal(t, "|  y          |  y           |", lines[2])
}

func TestContextIgnoresPreamble(t *testing.T) {
	t.Parallel()

	// Lines before the first separator are not part of any hunk.
	out, res := renderContext(t, contextHeader+"*** 1 ****\n! stray\n***************\n*** 2 ****\n! x\n--- 2 ----\n! y\n", 30)
	require.Equal(t, 1, res.Hunks)
	require.NotContains(t, out, "stray")
	require.True(t, strings.HasPrefix(out, "+2-"))
}

func TestContextStateString(t *testing.T) {
	t.Parallel()

	require.Equal(t, "InSide2", contextSide2.String())
	require.Equal(t, "Unknown(9)", contextState(9).String())
}
