package fsys_test

import (
	"io"
	"testing"
	"testing/fstest"

	"github.com/gopatchy/pardiff/internal/fsys"
	"github.com/stretchr/testify/require"
)

func TestOpenAbsolute(t *testing.T) {
	t.Parallel()

	fx := fsys.New(fstest.MapFS{
		"work/a.diff": &fstest.MapFile{Data: []byte("1d0\n< x\n")},
	})

	f, err := fx.Open("/work/a.diff")
	require.NoError(t, err)
	defer f.Close()

	data, err := io.ReadAll(f)
	require.NoError(t, err)
	require.Equal(t, "1d0\n< x\n", string(data))

	data, err = fx.ReadFile("work/a.diff")
	require.NoError(t, err)
	require.Equal(t, "1d0\n< x\n", string(data))

	_, err = fx.Open("/work/missing.diff")
	require.Error(t, err)
}
