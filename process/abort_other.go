//go:build !unix

package process

import (
	"os"
)

// abortExitCode matches the status of abort() in the Windows C runtime.
const abortExitCode = 3

func abort() {
	os.Exit(abortExitCode)
}
