package logging

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("verbose", func(t *testing.T) {
		var buf bytes.Buffer
		New(&buf, true).Debug("validated document", "kind", "types")

		assert.Contains(t, buf.String(), "level=DEBUG")
		assert.Contains(t, buf.String(), "kind=types")
	})

	t.Run("quiet", func(t *testing.T) {
		var buf bytes.Buffer
		logger := New(&buf, false)
		logger.Debug("hidden")
		logger.Info("hidden")
		logger.Warn("shown")

		assert.NotContains(t, buf.String(), "hidden")
		assert.Contains(t, buf.String(), "shown")
	})
}
