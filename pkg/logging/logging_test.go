package logging

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

type recorder struct {
	lines []string
}

func (r *recorder) funcs(level string) LogFunc {
	return func(format string, args ...interface{}) {
		r.lines = append(r.lines, level+" "+fmt.Sprintf(format, args...))
	}
}

func TestLogger_PrefixAndLevels(t *testing.T) {
	rec := &recorder{}
	logger := NewLogger("detector: ", LogFuncs{
		Debugf: rec.funcs("D"),
		Infof:  rec.funcs("I"),
		Warnf:  rec.funcs("W"),
		Errorf: rec.funcs("E"),
	})

	logger.Debugf("tick %d", 1)
	logger.Infof("unit %s", "web")
	logger.Warnf("slow")
	logger.Errorf("failed: %v", "boom")
	logger.LogLevelf(LogLevelInfo, "via level")

	assert.Equal(t, []string{
		"D detector: tick 1",
		"I detector: unit web",
		"W detector: slow",
		"E detector: failed: boom",
		"I detector: via level",
	}, rec.lines)
}

func TestLogger_ChildAndNop(t *testing.T) {
	rec := &recorder{}
	parent := NewLogger("sjwd: ", LogFuncs{Infof: rec.funcs("I")})
	child := NewChildLogger(parent, "dispatcher: ")

	child.Infof("start %s", "web")
	child.Debugf("dropped, parent has no debug func")
	NewNopLogger().Errorf("nothing happens")

	assert.Equal(t, []string{"I sjwd: dispatcher: start web"}, rec.lines)
}

func TestParseLogLevel(t *testing.T) {
	cases := map[string]int{
		"debug":   LogLevelDebug,
		"":        LogLevelInfo,
		"INFO":    LogLevelInfo,
		"warning": LogLevelWarn,
		"error":   LogLevelError,
	}
	for input, expected := range cases {
		level, err := ParseLogLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, expected, level, input)
	}

	_, err := ParseLogLevel("verbose")
	assert.Error(t, err)
}

func TestZapBackend_Observer(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	backend := NewZapBackendFromLogger(zap.New(core))

	logger := backend.Logger("registry: ")
	logger.Infof("unit %s changed", "web")
	logger.Errorf("query failed")

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, "registry: unit web changed", entries[0].Message)
	assert.Equal(t, zapcore.InfoLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.NoError(t, backend.Sync())
}

func TestCreateZapLogger_Validation(t *testing.T) {
	_, err := NewZapBackend(ZapConfig{Level: "loud"})
	assert.Error(t, err)

	_, err = NewZapBackend(ZapConfig{Level: "info", Format: "xml"})
	assert.Error(t, err)

	backend, err := NewZapBackend(ZapConfig{Level: "WARNING", Output: "stderr"})
	require.NoError(t, err)
	assert.NotNil(t, backend.Logger("x"))

	path := t.TempDir() + "/sjwd.log"
	backend, err = NewZapBackend(ZapConfig{Level: "debug", Format: "console", Output: path})
	require.NoError(t, err)
	backend.Logger("").Debugf("written to file")
	assert.FileExists(t, path)
}
