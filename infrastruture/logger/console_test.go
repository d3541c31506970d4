package logger

import (
	"bytes"
	"testing"

	"github.com/beka-birhanu/maze-world-api/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("rejects empty prefix", func(t *testing.T) {
		_, err := New("", config.ColorGreen, &bytes.Buffer{})
		assert.Error(t, err)
	})

	t.Run("writes leveled lines with prefix", func(t *testing.T) {
		var out bytes.Buffer
		l, err := New("APP", config.ColorGreen, &out)
		require.NoError(t, err)

		l.Info("server up")
		assert.Contains(t, out.String(), "[APP] [INFO]")
		assert.Contains(t, out.String(), "server up")

		out.Reset()
		l.Warning("slow request")
		assert.Contains(t, out.String(), "[APP] [WARNING]")

		out.Reset()
		l.Error("boom")
		assert.Contains(t, out.String(), "[APP] [ERROR]")
	})
}
