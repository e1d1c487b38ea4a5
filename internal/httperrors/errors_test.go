// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"vagas/cli/internal/backend"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Reason
	}{
		{name: "nil", err: nil, want: ""},
		{name: "deadline", err: fmt.Errorf("get: %w", context.DeadlineExceeded), want: ReasonTimeout},
		{name: "client timeout text", err: errors.New("Client.Timeout exceeded while awaiting headers"), want: ReasonTimeout},
		{name: "dns", err: &net.DNSError{Err: "no such host", Name: "api.invalid"}, want: ReasonDNS},
		{
			name: "refused",
			err:  &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)},
			want: ReasonRefused,
		},
		{name: "tls", err: errors.New("x509: certificate signed by unknown authority"), want: ReasonTLS},
		{name: "server status", err: &backend.StatusError{Op: "list users", StatusCode: 503}, want: ReasonServer},
		{name: "client status", err: fmt.Errorf("wrap: %w", &backend.StatusError{Op: "update user", StatusCode: 404}), want: ReasonRejected},
		{name: "other", err: errors.New("unexpected EOF"), want: ReasonUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.err); got != tt.want {
				t.Errorf("Classify() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	if Describe(nil) != "" {
		t.Error("Describe(nil) should be empty")
	}
	if Describe(errors.New("weird")) == "" {
		t.Error("unknown errors still get a hint")
	}
}

func TestExtractHostFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"http://localhost:3000/api", "localhost:3000"},
		{"not a url", "server"},
		{"", "server"},
	}
	for _, tt := range tests {
		if got := ExtractHostFromURL(tt.in); got != tt.want {
			t.Errorf("ExtractHostFromURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestExplainNamesHost(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", syscall.ECONNREFUSED)}

	tests := []struct {
		name   string
		err    error
		prefix string
	}{
		{
			name:   "request url",
			err:    fmt.Errorf("list users: %w", &url.Error{Op: "Get", URL: "http://api.local:3000/api/usuarios", Err: refused}),
			prefix: "Could not reach api.local:3000. ",
		},
		{
			name: "status error has no url",
			err:  &backend.StatusError{Op: "update user", StatusCode: 500},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want := tt.prefix + Describe(tt.err)
			if got := Explain(tt.err); got != want {
				t.Errorf("Explain() = %q, want %q", got, want)
			}
		})
	}
}
