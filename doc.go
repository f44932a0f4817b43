// Package safeunwrap marks an unwrap as known to be safe and documents why.
//
// An unwrap that "can't" fail still deserves a reason. The reason is attached
// at the call site:
//
//	port := safeunwrap.From(strconv.Atoi("3301")).Unwrap("literal is numeric")
//
// In debug builds (the default) a violated assumption panics with
// "[BUG] violated: " followed by the reason. Building with the "release" tag,
// i.e. "go build -tags release", drops the reason from the failure and leaves
// a plain unwrap.
//
// The package never touches process-level services, so it can be used on
// targets without an operating system. Process termination variants live in
// [github.com/tarantool/go-safeunwrap/process].
package safeunwrap
