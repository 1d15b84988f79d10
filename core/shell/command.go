package shell

// MaxArgs is the fixed capacity of a Command's argument vector.
const MaxArgs = 256

// Command is one parsed invocation: a program or builtin name plus its
// argument vector. A single instance is reused across loop iterations
// via Reset.
type Command struct {
	// Name is the program or builtin to run, an independent copy of the
	// first argument.
	Name string

	args []string
}

// NewCommand returns an empty Command with the argument backing array
// allocated up front.
func NewCommand() *Command {
	return &Command{args: make([]string, 0, MaxArgs)}
}

// Args returns the populated argument vector; Args()[0] equals Name.
func (c *Command) Args() []string {
	return c.args
}

// Len returns the number of populated arguments.
func (c *Command) Len() int {
	return len(c.args)
}

// Reset clears the Command for reuse. Every populated slot is emptied so
// strings from the previous iteration do not outlive it.
func (c *Command) Reset() {
	c.Name = ""
	for i := range c.args {
		c.args[i] = ""
	}
	c.args = c.args[:0]
}

// append adds one argument and reports whether the vector had room.
func (c *Command) append(arg string) bool {
	if len(c.args) == MaxArgs {
		return false
	}
	c.args = append(c.args, arg)
	return true
}
