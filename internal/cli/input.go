package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/dmitrijs2005/authforms/internal/common"
)

// readPassword and isTerminal are test seams for the x/term calls.
// In tests you can replace them with stubs to avoid touching the terminal.
var (
	readPassword = term.ReadPassword
	isTerminal   = term.IsTerminal
)

// GetSimpleText prints a prompt to w and reads a single line from scanner.
// Only the line terminator is removed; surrounding whitespace is part of the
// value.
//
// Example prompt format:
//
//	Prompt text
//	> _
func GetSimpleText(scanner *bufio.Scanner, prompt string, w io.Writer) (string, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return "", err
	}
	return scanLine(scanner)
}

// GetPassword prints a prompt to w and reads a password without echo. When
// stdin is not a terminal the password is read as a plain line from scanner.
// A newline is printed after the read to keep the UI tidy.
//
// The returned byte slice should be wiped by the caller when no longer needed.
func GetPassword(scanner *bufio.Scanner, prompt string, w io.Writer) ([]byte, error) {
	if _, err := fmt.Fprint(w, prompt+"\n> "); err != nil {
		return nil, err
	}

	fd := int(os.Stdin.Fd())
	if !isTerminal(fd) {
		line, err := scanLine(scanner)
		if err != nil {
			return nil, err
		}
		return []byte(line), nil
	}

	pw, err := readPassword(fd)
	fmt.Fprintln(w)
	if err != nil {
		return nil, err
	}
	return pw, nil
}

func scanLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(scanner.Text(), "\r"), nil
}

// linePrompter reads fields line by line from the REPL's scanner. It does not
// validate while reading.
type linePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func newLinePrompter(scanner *bufio.Scanner, out io.Writer) *linePrompter {
	return &linePrompter{scanner: scanner, out: out}
}

func (p *linePrompter) Text(ctx context.Context, label string, _ Validator) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return GetSimpleText(p.scanner, label, p.out)
}

func (p *linePrompter) Password(ctx context.Context, label string, _ Validator) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	pw, err := GetPassword(p.scanner, label, p.out)
	if err != nil {
		return "", err
	}
	s := string(pw)
	common.WipeByteArray(pw)
	return s, nil
}
