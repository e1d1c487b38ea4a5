// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package terminal

import (
	"bytes"
	"strings"
	"testing"
)

func TestPrompterLine(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"two answers", "a@x.com\nsecret\n", []string{"a@x.com", "secret"}},
		{"trims spaces", "  a@x.com  \n", []string{"a@x.com"}},
		{"last line without newline", "a@x.com\nsecret", []string{"a@x.com", "secret"}},
		{"eof yields empty", "", []string{""}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := NewPrompterWith(strings.NewReader(tt.input), &out)

			for i, want := range tt.want {
				got, err := p.Line("Q: ")
				if err != nil {
					t.Fatalf("answer %d: unexpected error: %v", i, err)
				}
				if got != want {
					t.Errorf("answer %d = %q, want %q", i, got, want)
				}
			}
			if !strings.HasPrefix(out.String(), "Q: ") {
				t.Errorf("label not printed: %q", out.String())
			}
		})
	}
}

func TestPrompterSecretWithoutTerminalReadsLine(t *testing.T) {
	p := NewPrompterWith(strings.NewReader("hunter2\n"), &bytes.Buffer{})

	got, err := p.Secret("Password: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hunter2" {
		t.Errorf("Secret() = %q, want %q", got, "hunter2")
	}
}

func TestPrompterSecretKeepsSurroundingSpaces(t *testing.T) {
	p := NewPrompterWith(strings.NewReader("  pass word \r\n"), &bytes.Buffer{})

	got, err := p.Secret("Password: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "  pass word " {
		t.Errorf("Secret() = %q, want %q", got, "  pass word ")
	}
}

func TestPrompterTidy(t *testing.T) {
	t.Run("terminal clears every prompt", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompterWith(strings.NewReader("a@x.com\n"), &out)
		p.isTTY = true
		p.readPwd = func(int) ([]byte, error) { return []byte("pw"), nil }

		if _, err := p.Line("Email: "); err != nil {
			t.Fatal(err)
		}
		if _, err := p.Secret("Password: "); err != nil {
			t.Fatal(err)
		}
		out.Reset()
		p.Tidy()

		// two prompts, one row each plus the row below
		if n := strings.Count(out.String(), "\x1b[2K"); n != 4 {
			t.Errorf("cleared %d rows, want 4", n)
		}
		if len(p.shown) != 0 {
			t.Error("Tidy must forget cleared prompts")
		}
	})

	t.Run("piped input leaves output alone", func(t *testing.T) {
		var out bytes.Buffer
		p := NewPrompterWith(strings.NewReader("a@x.com\npw\n"), &out)
		_, _ = p.Line("Email: ")
		_, _ = p.Secret("Password: ")
		out.Reset()
		p.Tidy()

		if out.Len() != 0 {
			t.Errorf("unexpected output %q", out.String())
		}
	})
}

func TestPrompterSecretOnTerminal(t *testing.T) {
	var out bytes.Buffer
	p := NewPrompterWith(strings.NewReader(""), &out)
	p.isTTY = true
	p.readPwd = func(int) ([]byte, error) { return []byte("s3cret"), nil }

	got, err := p.Secret("Password: ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "s3cret" {
		t.Errorf("Secret() = %q, want %q", got, "s3cret")
	}
	if strings.Contains(out.String(), "s3cret") {
		t.Error("secret must not be echoed")
	}
}

func TestLinesUsed(t *testing.T) {
	tests := []struct {
		length, width, want int
	}{
		{0, 80, 1},
		{80, 80, 1},
		{81, 80, 2},
		{10, 0, 1},
	}
	for _, tt := range tests {
		if got := linesUsed(tt.length, tt.width); got != tt.want {
			t.Errorf("linesUsed(%d, %d) = %d, want %d", tt.length, tt.width, got, tt.want)
		}
	}
}

func TestClearPreviousLinesWritesEscapes(t *testing.T) {
	var out bytes.Buffer
	ClearPreviousLines(&out, 10)
	if !strings.Contains(out.String(), "\x1b[2K") || !strings.Contains(out.String(), "\x1b[1A") {
		t.Errorf("unexpected output %q", out.String())
	}
}
