// Package proc starts child processes and classifies how they end.
package proc

import (
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"syscall"
)

// State classifies how a child reached its terminal state.
type State int

const (
	// Exited means the process terminated on its own with an exit code.
	Exited State = iota
	// Signaled means the process was terminated by a signal.
	Signaled
)

func (s State) String() string {
	switch s {
	case Exited:
		return "exited"
	case Signaled:
		return "signaled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Outcome is the terminal state of a child process. A stopped or suspended
// process has no Outcome; Wait keeps blocking for it.
type Outcome struct {
	State State
	// Code is the exit code when State is Exited.
	Code int
	// Signal is the terminating signal when State is Signaled.
	Signal syscall.Signal
}

func (o Outcome) String() string {
	if o.State == Signaled {
		return fmt.Sprintf("signal: %v", o.Signal)
	}
	return fmt.Sprintf("exit status %d", o.Code)
}

// SpawnConfig describes one child process. It follows the standard exec
// calling convention: Path is the resolved program location and Argv[0] is
// the command name as the user typed it.
type SpawnConfig struct {
	// Path is the path of the program to run. Bare names must be resolved
	// against the search path before Spawn, see exec.LookPath.
	Path string

	// Argv is the full argument vector including Argv[0].
	Argv []string

	// Dir is the working directory for the child. Empty means the child
	// inherits the parent's current directory.
	Dir string

	// Stdin, Stdout and Stderr are the child's standard streams. A nil
	// stream is connected to the null device.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer

	// ForegroundInterrupt keeps the child in the parent's process group so
	// a terminal interrupt reaches it directly; the disposition the child
	// runs with is the default because caught handlers reset across the
	// image replacement. When false the child starts in its own process
	// group and terminal interrupts never reach it.
	ForegroundInterrupt bool
}

// Handle is a started child process that has not been waited on yet.
type Handle struct {
	cmd *exec.Cmd
}

// Spawn starts the child described by cfg. Creation and image replacement
// failures both surface here; a non-nil Handle always refers to a live or
// already-terminal process that must be waited on.
func Spawn(cfg SpawnConfig) (*Handle, error) {
	if cfg.Path == "" || len(cfg.Argv) == 0 {
		return nil, os.ErrInvalid
	}

	cmd := &exec.Cmd{
		Path:   cfg.Path,
		Args:   cfg.Argv,
		Dir:    cfg.Dir,
		Stdin:  cfg.Stdin,
		Stdout: cfg.Stdout,
		Stderr: cfg.Stderr,
	}
	if !cfg.ForegroundInterrupt {
		cmd.SysProcAttr = &syscall.SysProcAttr{Setpgid: true}
	}

	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return &Handle{cmd: cmd}, nil
}

// PID returns the operating system process ID of the child.
func (h *Handle) PID() int {
	return h.cmd.Process.Pid
}

// Wait blocks until the child reaches a terminal state, either exiting on
// its own or killed by a signal, and reports which. Wait does not return
// for a child that is merely stopped.
func (h *Handle) Wait() (Outcome, error) {
	err := h.cmd.Wait()

	var exitErr *exec.ExitError
	switch {
	case err == nil:
		return Outcome{State: Exited, Code: 0}, nil

	case errors.As(err, &exitErr):
		status, ok := exitErr.Sys().(syscall.WaitStatus)
		if !ok {
			return Outcome{}, fmt.Errorf("wait: unexpected status type %T", exitErr.Sys())
		}
		if status.Signaled() {
			return Outcome{State: Signaled, Signal: status.Signal()}, nil
		}
		return Outcome{State: Exited, Code: status.ExitStatus()}, nil

	default:
		return Outcome{}, err
	}
}
