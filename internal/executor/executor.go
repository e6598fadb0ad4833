// Package executor runs external compiler processes and captures their
// output streams and exit codes.
package executor

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
)

// ErrLaunch is returned when the operating system cannot start the child
// process at all (missing file, permission denied). A started process
// that exits nonzero is a normal Result, not an ErrLaunch.
var ErrLaunch = errors.New("failed to launch process")

// Result holds the outcome of one process invocation.
type Result struct {
	// ExitCode is the process exit status. Zero means success.
	ExitCode int

	// Stdout is the full captured standard output.
	Stdout string

	// Stderr is the full captured standard error.
	Stderr string
}

// Runner executes an external program and reports its result.
// Implementations must treat a nonzero exit as a valid Result.
type Runner interface {
	Run(executable string, args []string) (Result, error)
}

// ExecRunner runs programs as child processes with os/exec.
type ExecRunner struct{}

// New creates an ExecRunner.
func New() *ExecRunner {
	return &ExecRunner{}
}

// Run spawns the executable with the given arguments and no stdin, waits
// for it to finish, and captures both output streams in full.
func (r *ExecRunner) Run(executable string, args []string) (Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.Command(executable, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	res := Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("%w: %s: %v", ErrLaunch, executable, err)
	}

	return res, nil
}
