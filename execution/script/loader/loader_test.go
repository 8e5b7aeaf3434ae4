package loader

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, l Loader) string {
	t.Helper()
	reader, err := l.GetReader()
	require.NoError(t, err)
	defer func() { assert.NoError(t, reader.Close()) }()

	content, err := io.ReadAll(reader)
	require.NoError(t, err)
	return string(content)
}

func TestNewFromString(t *testing.T) {
	t.Parallel()

	t.Run("valid content", func(t *testing.T) {
		t.Parallel()
		l, err := NewFromString("(+ 1 2)")
		require.NoError(t, err)
		assert.Equal(t, "(+ 1 2)", readAll(t, l))
	})

	t.Run("content is trimmed", func(t *testing.T) {
		t.Parallel()
		l, err := NewFromString("  (+ 1 2)\n")
		require.NoError(t, err)
		assert.Equal(t, "(+ 1 2)", readAll(t, l))
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewFromString("")
		assert.ErrorIs(t, err, ErrSourceNotAvailable)
	})

	t.Run("whitespace-only content is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewFromString("   \n\t ")
		assert.ErrorIs(t, err, ErrSourceNotAvailable)
	})

	t.Run("source URL is stable per content", func(t *testing.T) {
		t.Parallel()
		a, err := NewFromString("(+ 1 2)")
		require.NoError(t, err)
		b, err := NewFromString("(+ 1 2)")
		require.NoError(t, err)
		c, err := NewFromString("(+ 3 4)")
		require.NoError(t, err)

		require.NotNil(t, a.GetSourceURL())
		assert.Equal(t, "string", a.GetSourceURL().Scheme)
		assert.Equal(t, a.GetSourceURL().String(), b.GetSourceURL().String())
		assert.NotEqual(t, a.GetSourceURL().String(), c.GetSourceURL().String())
	})

	t.Run("reader can be taken repeatedly", func(t *testing.T) {
		t.Parallel()
		l, err := NewFromString("(+ 1 2)")
		require.NoError(t, err)
		assert.Equal(t, "(+ 1 2)", readAll(t, l))
		assert.Equal(t, "(+ 1 2)", readAll(t, l))
	})
}

func TestNewFromBytes(t *testing.T) {
	t.Parallel()

	t.Run("valid content", func(t *testing.T) {
		t.Parallel()
		l, err := NewFromBytes([]byte("(* 2 3)"))
		require.NoError(t, err)
		assert.Equal(t, "(* 2 3)", readAll(t, l))
		assert.Equal(t, "bytes", l.GetSourceURL().Scheme)
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewFromBytes(nil)
		assert.ErrorIs(t, err, ErrSourceNotAvailable)
	})

	t.Run("whitespace-only content is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewFromBytes([]byte(" \n\t "))
		assert.ErrorIs(t, err, ErrSourceNotAvailable)
	})
}

func TestNewFromDisk(t *testing.T) {
	t.Parallel()

	writeTemp := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "expr.lisp")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	t.Run("valid file", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "(+ 1 2)")
		l, err := NewFromDisk(path)
		require.NoError(t, err)
		assert.Equal(t, "(+ 1 2)", readAll(t, l))
		assert.Equal(t, "file", l.GetSourceURL().Scheme)
	})

	t.Run("file URL prefix is accepted", func(t *testing.T) {
		t.Parallel()
		path := writeTemp(t, "(+ 1 2)")
		l, err := NewFromDisk("file://" + path)
		require.NoError(t, err)
		assert.Equal(t, "(+ 1 2)", readAll(t, l))
	})

	t.Run("empty path is rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewFromDisk("")
		assert.ErrorIs(t, err, ErrSourceNotAvailable)
	})

	t.Run("relative paths are rejected", func(t *testing.T) {
		t.Parallel()
		_, err := NewFromDisk("relative/expr.lisp")
		assert.ErrorIs(t, err, ErrSourceNotAvailable)
	})

	t.Run("missing file fails at read time", func(t *testing.T) {
		t.Parallel()
		l, err := NewFromDisk(filepath.Join(t.TempDir(), "missing.lisp"))
		require.NoError(t, err, "construction only validates the path")

		_, err = l.GetReader()
		assert.Error(t, err)
	})
}
