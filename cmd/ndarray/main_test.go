package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/ndarray/ndarray"
)

func TestRunDemo(t *testing.T) {
	require.NoError(t, runDemo([]string{"-seed", "7"}))
}

func TestRunBench(t *testing.T) {
	require.NoError(t, runBench([]string{"-size", "8", "-duration", "50ms", "-workers", "2"}))
	require.NoError(t, runBench([]string{"-size", "4", "-duration", "20ms", "-dtype", "float32"}))

	err := runBench([]string{"-dtype", "uint64", "-duration", "10ms"})
	assert.ErrorIs(t, err, ndarray.ErrUnsupportedDtype)
}

func TestConvertInfoPrint(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "points.csv")
	out := filepath.Join(dir, "points.nda")
	require.NoError(t, os.WriteFile(in, []byte("2,3\n1 2 3\n4 5 6\n"), 0o600))

	require.NoError(t, runConvert([]string{"-dtype", "float32", in, out}))
	require.NoError(t, runInfo([]string{out}))
	require.NoError(t, runPrint([]string{out}))
	require.NoError(t, runPrint([]string{"-dtype", "uint64", in}))
	require.NoError(t, runPrint([]string{"-stats", out}))
	require.NoError(t, runPrint([]string{"-stats", "-dtype", "uint64", in}))

	archive, err := ndarray.OpenArchive(out)
	require.NoError(t, err)
	defer archive.Close()

	assert.Equal(t, []string{"points"}, archive.Names())
	a, err := archive.Load("points")
	require.NoError(t, err)
	assert.Equal(t, ndarray.Float32, a.DType())
	assert.Equal(t, []float32{1, 2, 3, 4, 5, 6}, a.AsFloat32())
	assert.Equal(t, "points.csv", archive.Metadata()["source"])
}

func TestCommandErrors(t *testing.T) {
	dir := t.TempDir()

	assert.ErrorIs(t, runInfo(nil), errUsage)
	assert.ErrorIs(t, runConvert([]string{"only-one"}), errUsage)
	assert.ErrorIs(t, runPrint(nil), errUsage)

	err := runPrint([]string{filepath.Join(dir, "missing.csv")})
	assert.ErrorIs(t, err, ndarray.ErrIO)

	err = runConvert([]string{"-dtype", "complex", "a.csv", "b.nda"})
	assert.ErrorIs(t, err, ndarray.ErrUnsupportedDtype)
}
