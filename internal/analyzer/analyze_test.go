package analyzer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"filestats/pkg/models"
)

func writeFile(t *testing.T, name, data string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))
	return path
}

func TestAnalyze(t *testing.T) {
	t.Run("counts", func(t *testing.T) {
		path := writeFile(t, "in.txt", "Hello hello WORLD\nworld world\n")

		res, err := Analyze(models.AnalysisConfig{InputPath: path})
		require.NoError(t, err)
		require.Equal(t, uint64(2), res.Lines)
		require.Equal(t, uint64(5), res.Words)
		require.Equal(t, uint64(30), res.Bytes)
		require.Equal(t, models.FrequencyTable{"hello": 2, "world": 3}, res.Freq)
	})

	t.Run("empty file", func(t *testing.T) {
		path := writeFile(t, "empty.txt", "")

		res, err := Analyze(models.AnalysisConfig{InputPath: path})
		require.NoError(t, err)
		require.Zero(t, res.Lines)
		require.Zero(t, res.Words)
		require.Zero(t, res.Bytes)
		require.Empty(t, res.Freq)
	})

	t.Run("bytes independent of line endings", func(t *testing.T) {
		for _, data := range []string{"a b\nc\n", "a b\r\nc\r\n", "a b\nc", "\n\n\n"} {
			path := writeFile(t, "in.txt", data)
			res, err := Analyze(models.AnalysisConfig{InputPath: path})
			require.NoError(t, err)
			require.Equal(t, uint64(len(data)), res.Bytes)
		}
	})

	t.Run("missing file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nope.txt")

		res, err := Analyze(models.AnalysisConfig{InputPath: path})
		require.Nil(t, res)
		require.True(t, errors.Is(err, ErrOpenInput))
		require.ErrorContains(t, err, path)
	})
}

func TestFileSize(t *testing.T) {
	t.Run("regular file", func(t *testing.T) {
		path := writeFile(t, "f.bin", "12345\n\x00\xff")
		n, err := FileSize(path)
		require.NoError(t, err)
		require.Equal(t, uint64(8), n)
	})

	t.Run("non-regular file counts bytes read", func(t *testing.T) {
		n, err := FileSize(os.DevNull)
		require.NoError(t, err)
		require.Zero(t, n)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := FileSize(filepath.Join(t.TempDir(), "missing"))
		require.ErrorIs(t, err, ErrFileSize)
	})
}

func TestCountBytes(t *testing.T) {
	tests := []string{
		"",
		"a\r\nb\r\n",
		"line\ntrailing bytes \x00\xff",
		strings.Repeat("x", 3*readChunk+17),
	}

	for _, data := range tests {
		path := writeFile(t, "data.bin", data)
		n, err := countBytes(path)
		require.NoError(t, err)
		require.Equal(t, uint64(len(data)), n)
	}

	_, err := countBytes(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
}
