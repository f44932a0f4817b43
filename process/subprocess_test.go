package process_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tarantool/go-safeunwrap"
	gsTesting "github.com/tarantool/go-safeunwrap/internal/testing"
	"github.com/tarantool/go-safeunwrap/process"
)

func TestUnwrapOrExit_Process(t *testing.T) {
	t.Parallel()

	if gsTesting.InSubprocess(t.Name()) {
		process.UnwrapOrExit("should fail", safeunwrap.Err[int](errors.New("boom")))

		return
	}

	sub := gsTesting.RunSubprocess(t, t.Name())

	assert.Equal(t, 1, sub.State.ExitCode())

	if safeunwrap.Debug {
		assert.Equal(t, "[BUG] violated: should fail\t{\"error\": \"boom\"}\n", sub.Stderr)
	} else {
		assert.Empty(t, sub.Stderr)
	}
}

func TestUnwrapOrExit_ProcessSuccess(t *testing.T) {
	t.Parallel()

	if gsTesting.InSubprocess(t.Name()) {
		if process.UnwrapOrExit("is constant value", safeunwrap.Some(42)) != 42 {
			t.Fatal("unexpected payload")
		}

		return
	}

	sub := gsTesting.RunSubprocess(t, t.Name())

	assert.True(t, sub.State.Success())
	assert.NotContains(t, sub.Stderr, "[BUG]")
}
