// Package process provides unwraps that terminate the whole process instead of
// panicking.
//
// A panic can be recovered further up the stack. When a violated assumption
// means the process state can't be trusted anymore, use [UnwrapOrAbort] or
// [UnwrapOrExit]: in debug builds they report the reason on stderr first, then
// abort or exit with status 1. Deferred functions are not run.
//
// The package depends on operating system services. Code that must stay free
// of them should use [github.com/tarantool/go-safeunwrap] directly.
package process
