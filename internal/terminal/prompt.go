// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// Prompter asks questions on out and reads answers from in.
type Prompter struct {
	in      *bufio.Reader
	out     io.Writer
	fd      int
	isTTY   bool
	readPwd func(fd int) ([]byte, error)

	// widths of prompts shown on a terminal, oldest first
	shown []int
}

// NewPrompter reads from stdin and writes to stdout. Secrets are read without
// echo when stdin is a terminal.
func NewPrompter() *Prompter {
	fd := int(os.Stdin.Fd())
	return &Prompter{
		in:      bufio.NewReader(os.Stdin),
		out:     os.Stdout,
		fd:      fd,
		isTTY:   term.IsTerminal(fd),
		readPwd: term.ReadPassword,
	}
}

// NewPrompterWith reads lines from in and writes to out; secrets are echoed.
func NewPrompterWith(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Line prints label and returns the trimmed answer. An empty answer is not an
// error; callers decide whether the field is required.
func (p *Prompter) Line(label string) (string, error) {
	s, err := p.readLine(label)
	if err != nil {
		return "", err
	}
	p.remember(len(label) + len(s))
	return strings.TrimSpace(s), nil
}

// Secret prints label and reads an answer without echo on a terminal.
// Only the line terminator is removed; surrounding spaces are part of the answer.
func (p *Prompter) Secret(label string) (string, error) {
	if !p.isTTY || p.readPwd == nil {
		return p.readLine(label)
	}
	fmt.Fprint(p.out, label)
	b, err := p.readPwd(p.fd)
	fmt.Fprintln(p.out)
	if err != nil {
		return "", fmt.Errorf("read secret: %w", err)
	}
	p.remember(len(label))
	return strings.TrimRight(string(b), "\r\n"), nil
}

// Tidy erases the prompts shown so far so credentials do not linger on
// screen. It does nothing when input is not a terminal.
func (p *Prompter) Tidy() {
	for i := len(p.shown) - 1; i >= 0; i-- {
		ClearPreviousLines(p.out, p.shown[i])
	}
	p.shown = nil
}

func (p *Prompter) remember(width int) {
	if p.isTTY {
		p.shown = append(p.shown, width)
	}
}

// readLine prints label and returns the answer without its line terminator.
func (p *Prompter) readLine(label string) (string, error) {
	fmt.Fprint(p.out, label)
	s, err := p.in.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && s != "") {
		if errors.Is(err, io.EOF) {
			return "", nil
		}
		return "", err
	}
	return strings.TrimRight(s, "\r\n"), nil
}
