package shell

import (
	"bufio"
	"errors"
	"io"
)

// MaxLineLen is the line buffer capacity in bytes. Following the classic
// fgets convention, a logical line including its newline must fit in
// MaxLineLen-1 bytes.
const MaxLineLen = 1024

// ErrLineTooLong reports a logical line longer than the buffer. By the
// time it is returned the line's remainder has been drained, so the next
// read starts at the following line.
var ErrLineTooLong = errors.New("line too long")

// LineReader reads one bounded logical line at a time.
type LineReader struct {
	r   *bufio.Reader
	buf [MaxLineLen]byte
}

// NewLineReader wraps r.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{r: bufio.NewReader(r)}
}

// ReadLine returns the next logical line without its trailing newline.
// It returns io.EOF once the stream is exhausted and ErrLineTooLong for
// an oversized line; any other failure of the underlying reader is
// returned verbatim. A non-empty final line without a newline is
// returned as a normal line.
func (lr *LineReader) ReadLine() (string, error) {
	n := 0
	for {
		b, err := lr.r.ReadByte()
		switch {
		case err == io.EOF:
			if n == 0 {
				return "", io.EOF
			}
			return string(lr.buf[:n]), nil
		case err != nil:
			return "", err
		}

		lr.buf[n] = b
		n++

		if b == '\n' {
			return string(lr.buf[:n-1]), nil
		}
		if n == MaxLineLen-1 {
			lr.drain()
			return "", ErrLineTooLong
		}
	}
}

// drain discards the rest of the current logical line.
func (lr *LineReader) drain() {
	for {
		b, err := lr.r.ReadByte()
		if err != nil || b == '\n' {
			return
		}
	}
}
