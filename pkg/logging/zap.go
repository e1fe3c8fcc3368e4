package logging

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapConfig is the logging section of the daemon configuration. Output is
// stdout, stderr or a file path.
type ZapConfig struct {
	Level      string `yaml:"level"`
	Format     string `yaml:"format"` // json or console
	Output     string `yaml:"output"`
	Caller     bool   `yaml:"caller"`
	Stacktrace bool   `yaml:"stacktrace"` // on error level and above
}

func DefaultZapConfig() ZapConfig {
	return ZapConfig{
		Level:      "info",
		Format:     "json",
		Output:     "stdout",
		Caller:     false,
		Stacktrace: true,
	}
}

// ZapBackend owns a zap logger and exposes it as LogFuncs, so neither the
// daemon nor hsu-core ever see zap types.
type ZapBackend struct {
	logger *zap.Logger
	sugar  *zap.SugaredLogger
}

func NewZapBackend(config ZapConfig) (*ZapBackend, error) {
	zapLogger, err := createZapLogger(config)
	if err != nil {
		return nil, err
	}
	return newZapBackend(zapLogger), nil
}

// NewZapBackendFromLogger wraps an existing zap logger; used by tests with
// zaptest/observer cores.
func NewZapBackendFromLogger(zapLogger *zap.Logger) *ZapBackend {
	return newZapBackend(zapLogger)
}

func newZapBackend(zapLogger *zap.Logger) *ZapBackend {
	// Skip the Logger/logger wrappers so caller info points at the call site
	zapLogger = zapLogger.WithOptions(zap.AddCallerSkip(3))
	return &ZapBackend{
		logger: zapLogger,
		sugar:  zapLogger.Sugar(),
	}
}

// LogFuncs returns the printf-style functions backed by zap.
func (z *ZapBackend) LogFuncs() LogFuncs {
	return LogFuncs{
		Debugf: z.sugar.Debugf,
		Infof:  z.sugar.Infof,
		Warnf:  z.sugar.Warnf,
		Errorf: z.sugar.Errorf,
	}
}

// Logger returns a prefixed Logger writing through this backend.
func (z *ZapBackend) Logger(prefix string) Logger {
	return NewLogger(prefix, z.LogFuncs())
}

// Named returns a backend for a named sub-logger ("logger" key in output).
func (z *ZapBackend) Named(name string) *ZapBackend {
	named := z.logger.Named(name)
	return &ZapBackend{
		logger: named,
		sugar:  named.Sugar(),
	}
}

func (z *ZapBackend) Sync() error {
	return z.logger.Sync()
}

var zapLevels = map[int]zapcore.Level{
	LogLevelDebug: zapcore.DebugLevel,
	LogLevelInfo:  zapcore.InfoLevel,
	LogLevelWarn:  zapcore.WarnLevel,
	LogLevelError: zapcore.ErrorLevel,
}

func createZapLogger(config ZapConfig) (*zap.Logger, error) {
	level, err := ParseLogLevel(config.Level)
	if err != nil {
		return nil, err
	}

	var encoder zapcore.Encoder
	switch config.Format {
	case "json", "":
		encoder = zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig())
	case "console":
		encoder = zapcore.NewConsoleEncoder(zap.NewDevelopmentEncoderConfig())
	default:
		return nil, fmt.Errorf("invalid log format: %s", config.Format)
	}

	output, err := openZapOutput(config.Output)
	if err != nil {
		return nil, err
	}

	var opts []zap.Option
	if config.Caller {
		opts = append(opts, zap.AddCaller())
	}
	if config.Stacktrace {
		opts = append(opts, zap.AddStacktrace(zapcore.ErrorLevel))
	}
	return zap.New(zapcore.NewCore(encoder, output, zapLevels[level]), opts...), nil
}

func openZapOutput(output string) (zapcore.WriteSyncer, error) {
	switch output {
	case "stdout", "":
		return zapcore.Lock(os.Stdout), nil
	case "stderr":
		return zapcore.Lock(os.Stderr), nil
	}
	file, err := os.OpenFile(output, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o640)
	if err != nil {
		return nil, fmt.Errorf("failed to open log output %s: %w", output, err)
	}
	return zapcore.Lock(file), nil
}
