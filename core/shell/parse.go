package shell

import (
	"errors"
	"os"
	"strings"
)

// Delimiters are the token separators: space, tab, carriage return,
// newline and bell.
const Delimiters = " \t\r\n\a"

var (
	// ErrEmptyInput reports a line holding no tokens at all.
	ErrEmptyInput = errors.New("empty input")

	// ErrTooManyArguments reports a line with more tokens than a Command
	// can hold.
	ErrTooManyArguments = errors.New("too many arguments")
)

// ParseLine tokenizes line into cmd. Runs of delimiters separate tokens
// and never produce empty ones. Every token is cloned so the Command owns
// its strings and nothing pins line's backing storage.
//
// On ErrTooManyArguments the Command is reset; the caller must not
// execute it. The delimiters are single bytes, so the byte scan below is
// safe for UTF-8 content.
func ParseLine(line string, cmd *Command) error {
	if cmd == nil {
		return os.ErrInvalid
	}
	cmd.Reset()

	start := -1
	for i := 0; i <= len(line); i++ {
		atDelim := i == len(line) || strings.IndexByte(Delimiters, line[i]) >= 0
		if !atDelim {
			if start < 0 {
				start = i
			}
			continue
		}

		if start >= 0 {
			if !cmd.append(strings.Clone(line[start:i])) {
				cmd.Reset()
				return ErrTooManyArguments
			}
			start = -1
		}
	}

	if cmd.Len() == 0 {
		return ErrEmptyInput
	}

	cmd.Name = strings.Clone(cmd.args[0])
	return nil
}
