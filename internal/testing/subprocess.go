// Package testing contains helpers for tests that must terminate the process.
package testing

import (
	"bytes"
	"errors"
	"os"
	"os/exec"
	"regexp"
)

// subprocessEnv holds the name of the test a child process was started for.
const subprocessEnv = "GO_SAFEUNWRAP_SUBPROCESS"

// Subprocess is the outcome of a test run in a child process.
type Subprocess struct {
	State  *os.ProcessState
	Stdout string
	Stderr string
}

// InSubprocess reports whether the current process is the child started by
// RunSubprocess for the test with the given name.
func InSubprocess(name string) bool {
	return os.Getenv(subprocessEnv) == name
}

// RunSubprocess runs the top-level test name in a fresh copy of the current
// test binary and waits for it to finish. The child sees InSubprocess(name)
// report true.
//
// A child that fails to start is fatal for t; a non-zero exit is not.
func RunSubprocess(t T, name string) Subprocess {
	t.Helper()

	//nolint:gosec // The binary is the running test executable.
	cmd := exec.Command(os.Args[0], "-test.run=^"+regexp.QuoteMeta(name)+"$", "-test.count=1")
	cmd.Env = append(os.Environ(), subprocessEnv+"="+name)

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		t.Fatalf("failed to run subprocess for %s: %v", name, err)
	}

	t.Logf("subprocess %s finished: %s", name, cmd.ProcessState)

	return Subprocess{
		State:  cmd.ProcessState,
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
}
