package shell

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandReuse(t *testing.T) {
	cmd := NewCommand()

	// One instance must survive many loop iterations without growing
	// or leaking state between them.
	for i := 0; i < 1200; i++ {
		line := fmt.Sprintf("echo iteration %d and some words", i)
		if err := ParseLine(line, cmd); err != nil {
			t.Fatal(err)
		}
		assert.Equal(t, "echo", cmd.Name)
		assert.Equal(t, 6, cmd.Len())
		assert.Equal(t, fmt.Sprintf("%d", i), cmd.Args()[2])
		assert.Equal(t, MaxArgs, cap(cmd.Args()))
	}
}

func TestCommandResetClearsSlots(t *testing.T) {
	cmd := NewCommand()
	if err := ParseLine("one two three", cmd); err != nil {
		t.Fatal(err)
	}
	cmd.Reset()

	assert.Equal(t, "", cmd.Name)
	assert.Equal(t, 0, cmd.Len())

	backing := cmd.Args()[:cap(cmd.Args())]
	for i := 0; i < 3; i++ {
		assert.Equal(t, "", backing[i], "slot %d not cleared", i)
	}
}

func TestCommandShrinksBetweenLines(t *testing.T) {
	cmd := NewCommand()
	if err := ParseLine("a b c d e", cmd); err != nil {
		t.Fatal(err)
	}
	if err := ParseLine("ls", cmd); err != nil {
		t.Fatal(err)
	}

	assert.Equal(t, "ls", cmd.Name)
	assert.Equal(t, []string{"ls"}, cmd.Args())

	// No stale token from the longer line is reachable.
	backing := cmd.Args()[:cap(cmd.Args())]
	assert.Equal(t, "", backing[1])
}
