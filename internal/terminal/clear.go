// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package terminal reads answers from the user and tidies up after prompts.
package terminal

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// linesUsed reports how many rows textLength characters occupy at width.
func linesUsed(textLength, width int) int {
	if width <= 0 {
		width = 80
	}
	n := (textLength + width - 1) / width
	if n < 1 {
		n = 1
	}
	return n
}

// ClearPreviousLines erases a prompt and its answer from w. The cursor is
// expected on the empty line below the input, where Enter left it.
func ClearPreviousLines(w io.Writer, textLength int) {
	width := 80
	if cols, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && cols > 0 {
		width = cols
	}

	rows := linesUsed(textLength, width) + 1
	for i := 0; i < rows; i++ {
		fmt.Fprint(w, "\r\x1b[2K")
		if i < rows-1 {
			fmt.Fprint(w, "\x1b[1A")
		}
	}
}
