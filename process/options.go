package process

import (
	"io"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tarantool/go-safeunwrap/internal/options"
)

// config is built for every failing unwrap; successful unwraps never touch it.
type config struct {
	logger *zap.Logger
	output io.Writer

	exit  func(code int)
	abort func()
}

func defaultConfig() config {
	return config{
		logger: nil,
		output: os.Stderr,
		exit:   os.Exit,
		abort:  abort,
	}
}

// Option configures how a failing unwrap reports the violation.
type Option = options.Option[config]

// WithLogger reports violations through logger instead of the default
// single-line stderr writer.
func WithLogger(logger *zap.Logger) Option {
	return func(cfg *config) {
		cfg.logger = logger
	}
}

// WithOutput writes the single-line report to w instead of stderr.
// A nil w keeps stderr. It has no effect when WithLogger is also given.
func WithOutput(w io.Writer) Option {
	return func(cfg *config) {
		cfg.output = w
	}
}

// reporter returns the logger that receives the violation report.
func (cfg config) reporter() *zap.Logger {
	if cfg.logger != nil {
		return cfg.logger
	}

	if cfg.output == nil {
		return newLineLogger(os.Stderr)
	}

	return newLineLogger(cfg.output)
}

// newLineLogger returns a logger writing bare messages, one per line, to w.
// Write errors are dropped.
func newLineLogger(w io.Writer) *zap.Logger {
	encoder := zapcore.NewConsoleEncoder(zapcore.EncoderConfig{ //nolint:exhaustruct
		MessageKey: "msg",
		LineEnding: zapcore.DefaultLineEnding,
	})
	core := zapcore.NewCore(encoder, zapcore.Lock(zapcore.AddSync(w)), zapcore.ErrorLevel)

	return zap.New(core, zap.ErrorOutput(zapcore.AddSync(io.Discard)))
}
