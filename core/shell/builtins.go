package shell

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// AllBuiltins holds every registered shell builtin keyed by name.
var AllBuiltins = make(map[string]Builtin)

// Builtin is a command the shell runs inside its own process.
type Builtin interface {
	Main(s *Shell, args []string) Control
}

// BuiltinFunc adapts a plain function to the Builtin interface.
type BuiltinFunc func(s *Shell, args []string) Control

func (f BuiltinFunc) Main(s *Shell, args []string) Control {
	return f(s, args)
}

var _ Builtin = (BuiltinFunc)(nil)

// Exit ends the shell loop. Arguments are ignored.
func Exit(s *Shell, args []string) Control {
	return Terminate
}

// Cd changes the shell's working directory. It must run in the shell's
// own process; a child's directory change would not affect the parent.
func Cd(s *Shell, args []string) Control {
	switch len(args) {
	case 1:
		fmt.Fprintf(s.errw, "%s: missing argument\n", args[0])
		return ContinueAfterError
	case 2:
		if err := os.Chdir(args[1]); err != nil {
			fmt.Fprintf(s.errw, "%s: %v\n", args[0], err)
			return ContinueAfterError
		}
		return Continue
	default:
		fmt.Fprintf(s.errw, "%s: too many arguments\n", args[0])
		return ContinueAfterError
	}
}

// Pwd prints the shell's working directory.
func Pwd(s *Shell, args []string) Control {
	wd, err := os.Getwd()
	if err != nil {
		fmt.Fprintf(s.errw, "%s: %v\n", args[0], err)
		return ContinueAfterError
	}
	fmt.Fprintln(s.out, wd)
	return Continue
}

// Help lists the commands the shell handles itself.
func Help(s *Shell, args []string) Control {
	var names []string
	for k := range AllBuiltins {
		names = append(names, k)
	}
	sort.Strings(names)

	fmt.Fprintln(s.out, "seashell, a minimal shell")
	fmt.Fprintln(s.out, "These commands are handled by the shell itself:")
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, strings.Join(names, "\n"))
	fmt.Fprintln(s.out)
	fmt.Fprintln(s.out, "Everything else runs as an external command.")
	return Continue
}

func init() {
	AllBuiltins["cd"] = BuiltinFunc(Cd)
	AllBuiltins["exit"] = BuiltinFunc(Exit)
	AllBuiltins["help"] = BuiltinFunc(Help)
	AllBuiltins["pwd"] = BuiltinFunc(Pwd)
}
