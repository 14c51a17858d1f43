package common

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/term"
)

// Prompt reads a line from in after writing the label to out.
func Prompt(in io.Reader, out io.Writer, label string) (string, error) {
	fmt.Fprint(out, label)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", errors.WithStack(err)
	}

	return strings.TrimSpace(line), nil
}

// PromptPassword reads a password without echo when stdin is a terminal.
func PromptPassword(out io.Writer, label string) (string, error) {
	fd := int(os.Stdin.Fd())

	if !term.IsTerminal(fd) {
		return Prompt(os.Stdin, out, label)
	}

	fmt.Fprint(out, label)

	password, err := term.ReadPassword(fd)
	fmt.Fprintln(out)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return string(password), nil
}

// Confirm asks a yes/no question, defaulting to no.
func Confirm(in io.Reader, out io.Writer, question string) (bool, error) {
	answer, err := Prompt(in, out, question+" [y/N] ")
	if err != nil {
		return false, errors.WithStack(err)
	}

	switch strings.ToLower(answer) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
