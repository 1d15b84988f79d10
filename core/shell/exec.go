package shell

import (
	"errors"
	"fmt"
	"os/exec"

	"github.com/seashell-sh/seashell/core/proc"
)

// execute dispatches cmd to a builtin or an external program and maps
// the result onto the loop Control.
func (s *Shell) execute(cmd *Command) Control {
	if builtin, ok := AllBuiltins[cmd.Name]; ok {
		return builtin.Main(s, cmd.Args())
	}
	return s.spawn(cmd)
}

// spawn runs cmd as a foreground child process and blocks until it
// reaches a terminal state. The child inherits the shell's streams and
// working directory; argv[0] is the name as typed.
func (s *Shell) spawn(cmd *Command) Control {
	path, err := exec.LookPath(cmd.Name)
	switch {
	case errors.Is(err, exec.ErrNotFound):
		fmt.Fprintf(s.errw, "seashell: %s: command not found\n", cmd.Name)
		s.log.Warn("command not found", "name", cmd.Name)
		return ContinueAfterError
	case err != nil:
		fmt.Fprintf(s.errw, "seashell: %s: %v\n", cmd.Name, err)
		s.log.Warn("command resolution failed", "name", cmd.Name, "error", err.Error())
		return ContinueAfterError
	}

	handle, err := proc.Spawn(proc.SpawnConfig{
		Path:                path,
		Argv:                cmd.Args(),
		Stdin:               s.in,
		Stdout:              s.out,
		Stderr:              s.errw,
		ForegroundInterrupt: true,
	})
	if err != nil {
		fmt.Fprintf(s.errw, "seashell: %v\n", err)
		s.log.Error("spawn failed", "name", cmd.Name, "error", err.Error())
		return ContinueAfterError
	}

	outcome, err := handle.Wait()
	if err != nil {
		fmt.Fprintf(s.errw, "seashell: wait: %v\n", err)
		s.log.Error("wait failed", "name", cmd.Name, "error", err.Error())
		return ContinueAfterError
	}

	s.log.Info("command finished", "argv", cmd.Args(), "outcome", outcome.String())
	return Continue
}
