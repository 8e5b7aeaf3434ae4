package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSHA256(t *testing.T) {
	t.Parallel()

	// Known digest of "hello".
	const helloSum = "2cf24dba5fb0a30e26e83b2ac5b9e29e1b161e5c1fa7425e73043362938b9824"

	t.Run("string input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, helloSum, SHA256("hello"))
	})

	t.Run("byte input matches string input", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, SHA256("hello"), SHA256Bytes([]byte("hello")))
	})

	t.Run("reader input matches string input", func(t *testing.T) {
		t.Parallel()
		sum, err := SHA256Reader(strings.NewReader("hello"))
		require.NoError(t, err)
		assert.Equal(t, helloSum, sum)
	})

	t.Run("different inputs differ", func(t *testing.T) {
		t.Parallel()
		assert.NotEqual(t, SHA256("a"), SHA256("b"))
	})
}
