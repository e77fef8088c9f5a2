package logger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"assistant/pkg/logger"
)

func TestNew(t *testing.T) {
	t.Run("builds a development logger for local", func(t *testing.T) {
		l, err := logger.New("local")

		require.NoError(t, err)
		assert.NotNil(t, l)
	})

	t.Run("builds a production logger otherwise", func(t *testing.T) {
		l, err := logger.New("production")

		require.NoError(t, err)
		assert.NotNil(t, l)
	})
}

func TestNOOPLogger(t *testing.T) {
	assert.NotNil(t, logger.NOOPLogger)
	// Must be safe to use without any setup.
	logger.NOOPLogger.Infow("ignored", "key", "value")
}
