package logger

import (
	"bytes"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("Prefixes lines with the component name", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("ANIMATOR", "", &buf, "info")
		require.NoError(t, err)

		l.WithField("ticks", 3).Info("maze solved")
		out := buf.String()
		assert.Contains(t, out, "[ANIMATOR] ")
		assert.Contains(t, out, "maze solved")
		assert.Contains(t, out, "ticks=3")
	})

	t.Run("Colours the prefix", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "\033[32m", &buf, "info")
		require.NoError(t, err)

		l.Info("started")
		assert.Contains(t, buf.String(), "\033[32m[APP]\033[0m ")
	})

	t.Run("Respects the level", func(t *testing.T) {
		var buf bytes.Buffer
		l, err := New("APP", "", &buf, "warn")
		require.NoError(t, err)
		assert.Equal(t, logrus.WarnLevel, l.GetLevel())

		l.Info("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("Rejects unknown levels", func(t *testing.T) {
		_, err := New("APP", "", &bytes.Buffer{}, "loud")
		assert.Error(t, err)
	})
}
