package process

import (
	"go.uber.org/zap"

	"github.com/tarantool/go-safeunwrap"
	"github.com/tarantool/go-safeunwrap/internal/options"
)

// exitCode is the only status UnwrapOrExit terminates with.
const exitCode = 1

// UnwrapOrAbort returns the payload of v.
// If v is empty, UnwrapOrAbort reports reason (debug builds only) and aborts
// the process. On unix systems the process dies by SIGABRT and nothing but
// the report reaches stderr. If SIGABRT is intercepted with signal.Notify, the
// process keeps running for up to 100ms and then exits with status 134.
func UnwrapOrAbort[T any](reason string, v safeunwrap.Value[T], opts ...Option) T {
	if val, ok := v.Get(); ok {
		return val
	}

	cfg := options.Apply(defaultConfig, opts)
	terminate(cfg, reason, v.Err(), cfg.abort)

	panic("process: abort returned")
}

// UnwrapOrExit returns the payload of v.
// If v is empty, UnwrapOrExit reports reason (debug builds only) and exits
// the process with status 1.
func UnwrapOrExit[T any](reason string, v safeunwrap.Value[T], opts ...Option) T {
	if val, ok := v.Get(); ok {
		return val
	}

	cfg := options.Apply(defaultConfig, opts)
	terminate(cfg, reason, v.Err(), func() { cfg.exit(exitCode) })

	panic("process: exit returned")
}

func terminate(cfg config, reason string, err error, stop func()) {
	if safeunwrap.Debug {
		report(cfg.reporter(), reason, err)
	}

	stop()
}

// report writes the violation in one log entry. It never fails.
func report(logger *zap.Logger, reason string, err error) {
	violation := safeunwrap.ViolationError{Reason: reason} //nolint:exhaustruct

	if err != nil {
		logger.Error(violation.Error(), zap.Error(err))
	} else {
		logger.Error(violation.Error())
	}

	_ = logger.Sync()
}
