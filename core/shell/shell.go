// Package shell implements the read-parse-execute loop: bounded line
// reading, whitespace tokenization, builtin dispatch and foreground
// child execution.
package shell

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"github.com/seashell-sh/seashell/core/config"
	"github.com/seashell-sh/seashell/core/proc"
)

// Control tells the loop driver what to do after one iteration.
type Control int

const (
	// Continue proceeds to the next prompt.
	Continue Control = iota
	// ContinueAfterError proceeds to the next prompt after a reported
	// failure.
	ContinueAfterError
	// Terminate ends the loop.
	Terminate
)

func (c Control) String() string {
	switch c {
	case Continue:
		return "continue"
	case ContinueAfterError:
		return "continue-after-error"
	case Terminate:
		return "terminate"
	default:
		return fmt.Sprintf("control(%d)", int(c))
	}
}

// Shell runs the read-parse-execute loop over one input stream.
type Shell struct {
	cfg  *config.Configuration
	in   io.Reader
	rd   *LineReader
	out  io.Writer
	errw io.Writer
	log  *slog.Logger

	// cmd is the one Command reused by every iteration.
	cmd        *Command
	isTerminal bool
}

// New builds a Shell reading from in and writing to out and errw. The
// reusable Command is allocated here, once.
func New(cfg *config.Configuration, in io.Reader, out, errw io.Writer, log *slog.Logger) *Shell {
	s := &Shell{
		cfg:  cfg,
		in:   in,
		rd:   NewLineReader(in),
		out:  out,
		errw: errw,
		log:  log,
		cmd:  NewCommand(),
	}
	if f, ok := out.(*os.File); ok {
		s.isTerminal = term.IsTerminal(int(f.Fd()))
	}
	return s
}

// Run drives Prompting, Reading, Parsing and Executing until end of
// input or the exit builtin. The shell's exit status is 0 no matter how
// the loop ends; child outcomes are never propagated.
func (s *Shell) Run() {
	guard := proc.IgnoreInterrupts()
	defer func() {
		s.log.Info("session ended", "interrupts", guard.Seen())
		guard.Close()
	}()
	defer s.cmd.Reset()

	s.log.Info("session started", "pid", os.Getpid())

	if s.cfg.Motd != "" {
		fmt.Fprintln(s.out, s.cfg.Motd)
	}

	for {
		fmt.Fprint(s.out, s.Prompt())

		line, err := s.rd.ReadLine()
		switch {
		case err == io.EOF:
			fmt.Fprintln(s.out, "EOF reached.")
			s.log.Info("input closed")
			return

		case errors.Is(err, ErrLineTooLong):
			fmt.Fprintln(s.errw, "seashell: line too long")
			s.log.Warn("line too long", "limit", MaxLineLen)
			continue

		case err != nil:
			// A failed read skips the iteration, it does not end the shell.
			fmt.Fprintf(s.errw, "seashell: read: %v\n", err)
			s.log.Error("read failed", "error", err.Error())
			continue
		}

		if s.Eval(line) == Terminate {
			return
		}
	}
}

// Eval parses and executes one line, reporting problems to the error
// stream. A blank line is a no-op.
func (s *Shell) Eval(line string) Control {
	switch err := ParseLine(line, s.cmd); {
	case errors.Is(err, ErrEmptyInput):
		return Continue

	case errors.Is(err, ErrTooManyArguments):
		fmt.Fprintln(s.errw, "seashell: too many arguments")
		s.log.Warn("argument vector overflow", "limit", MaxArgs)
		return ContinueAfterError

	case err != nil:
		fmt.Fprintf(s.errw, "seashell: parse: %v\n", err)
		return ContinueAfterError
	}

	return s.execute(s.cmd)
}
