package testing

import (
	"testing"
)

// T is the subset of testing.TB the helpers in this package need.
type T interface {
	Helper()
	Logf(format string, args ...any)
	Fatalf(format string, args ...any)
}

var _ T = (testing.TB)(nil)
