//go:build unix

package process

import (
	"os"
	"runtime/debug"
	"time"

	"golang.org/x/sys/unix"
)

const (
	// abortGracePeriod bounds the wait for SIGABRT to be handled.
	abortGracePeriod = 100 * time.Millisecond
	// abortFallbackCode is what a shell reports for a SIGABRT death.
	abortFallbackCode = 128 + int(unix.SIGABRT)
)

// abort kills the process with SIGABRT.
//
// The Go runtime handles SIGABRT itself; with crash tracebacks enabled it
// re-raises the signal with the default disposition, so the process dies by
// the signal. The goroutine dump the runtime prints on the way is sent to
// /dev/null: stderr is redirected right before the signal is raised.
// If the signal is consumed elsewhere (for example by signal.Notify), the
// process exits with abortFallbackCode after abortGracePeriod.
func abort() {
	debug.SetTraceback("crash")
	silenceStderr()

	_ = unix.Kill(unix.Getpid(), unix.SIGABRT)

	time.Sleep(abortGracePeriod)
	os.Exit(abortFallbackCode)
}

// silenceStderr points fd 2 at /dev/null. Failures leave stderr as is.
func silenceStderr() {
	fd, err := unix.Open(os.DevNull, unix.O_WRONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return
	}

	_ = unix.Dup2(fd, unix.Stderr)
	_ = unix.Close(fd)
}
