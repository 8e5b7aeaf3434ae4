package helpers

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	t.Parallel()

	t.Run("nil handler gets a default", func(t *testing.T) {
		t.Parallel()
		handler, logger := SetupLogger(nil, "sexpr", "Evaluator")
		assert.NotNil(t, handler)
		assert.NotNil(t, logger)
	})

	t.Run("provided handler is kept", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		in := slog.NewTextHandler(&buf, nil)

		handler, logger := SetupLogger(in, "sexpr", "Evaluator")
		assert.Equal(t, in, handler)
		require.NotNil(t, logger)

		logger.Info("hello", "key", "value")
		assert.Contains(t, buf.String(), "hello")
		assert.Contains(t, buf.String(), "Evaluator.key=value", "attrs are grouped under the component name")
	})

	t.Run("empty group name skips grouping", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		in := slog.NewTextHandler(&buf, nil)

		_, logger := SetupLogger(in, "sexpr", "")
		logger.Info("hello", "key", "value")
		assert.Contains(t, buf.String(), "key=value")
	})
}
