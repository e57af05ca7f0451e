package log

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestInit(t *testing.T) {
	t.Cleanup(func() { log = nil })

	require.NoError(t, Init(true))
	assert.True(t, GetSugaredLogger().Desugar().Core().Enabled(zapcore.DebugLevel))

	require.NoError(t, Init(false))
	assert.False(t, GetSugaredLogger().Desugar().Core().Enabled(zapcore.DebugLevel))
	assert.True(t, GetSugaredLogger().Desugar().Core().Enabled(zapcore.InfoLevel))
	Sync()

	// Named loggers keep the tool name in every entry.
	assert.Equal(t, "curb", GetSugaredLogger().Desugar().Name())
}

func TestGetSugaredLoggerFallback(t *testing.T) {
	log = nil
	t.Cleanup(func() { log = nil })

	l := GetSugaredLogger()
	require.NotNil(t, l)
	assert.Same(t, l, GetSugaredLogger())
}

func TestGetSugaredLoggerUnbuildable(t *testing.T) {
	log = nil
	saved := outputPaths
	outputPaths = []string{"nosuchsink://curb"}
	t.Cleanup(func() {
		log = nil
		outputPaths = saved
	})

	require.Error(t, Init(false))
	l := GetSugaredLogger()
	require.NotNil(t, l)
	assert.False(t, l.Desugar().Core().Enabled(zapcore.ErrorLevel))
	l.Warnw("dropped", "key", "value")
}
