package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var ErrInputClosed = errors.New("input closed")

const clearScreen = "\033[H\033[2J"

// Console is the line-oriented terminal the game talks through.
type Console struct {
	Out io.Writer
	In  *bufio.Reader
}

// ReadLine blocks for one line of input, without its line terminator.
func (c *Console) ReadLine() (string, error) {
	line, err := c.In.ReadString('\n')
	if err == io.EOF && line != "" {
		err = nil
	}
	if err != nil {
		if err == io.EOF {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

func (c *Console) WriteLine(format string, args ...interface{}) {
	fmt.Fprintf(c.Out, format+"\n", args...)
}

// Clear is best-effort; terminals that ignore ANSI escapes just see
// nothing.
func (c *Console) Clear() {
	io.WriteString(c.Out, clearScreen)
}

// Ask writes question and reads lines until accept returns true,
// writing complaint after each rejected line.
func (c *Console) Ask(question, complaint string, accept func(string) bool) (string, error) {
	for {
		c.WriteLine("%s", question)
		line, err := c.ReadLine()
		if err != nil {
			return "", err
		}
		if accept(line) {
			return line, nil
		}
		c.WriteLine("%s", complaint)
	}
}
