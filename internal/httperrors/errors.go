// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package httperrors turns HTTP/network failures into short, user-friendly reasons.
// The auth controller appends the reason to the connectivity notification so the
// user sees why the API could not be reached.
package httperrors

import (
	"errors"
	"fmt"
	"net"
	"net/url"
	"strings"
	"syscall"

	"vagas/cli/internal/backend"
)

// Reason is the category of a request failure.
type Reason string

const (
	ReasonTimeout  Reason = "timeout"
	ReasonDNS      Reason = "dns"
	ReasonRefused  Reason = "refused"
	ReasonTLS      Reason = "tls"
	ReasonServer   Reason = "server"
	ReasonRejected Reason = "rejected"
	ReasonUnknown  Reason = "unknown"
)

// Classify returns the Reason for err.
func Classify(err error) Reason {
	if err == nil {
		return ""
	}

	var se *backend.StatusError
	if errors.As(err, &se) {
		if se.StatusCode >= 500 {
			return ReasonServer
		}
		return ReasonRejected
	}

	switch {
	case isTimeoutError(err):
		return ReasonTimeout
	case isDNSError(err):
		return ReasonDNS
	case isConnectionRefusedError(err):
		return ReasonRefused
	case isSSLError(err):
		return ReasonTLS
	}
	return ReasonUnknown
}

// Describe returns a one-line hint for err suitable for a notification body.
func Describe(err error) string {
	switch Classify(err) {
	case ReasonTimeout:
		return "The server took too long to respond. Check your connection and try again."
	case ReasonDNS:
		return "The server address could not be resolved. Check the configured API URL."
	case ReasonRefused:
		return "The server is not accepting connections. Is the API running?"
	case ReasonTLS:
		return "A secure connection could not be established. Check your system clock and proxy."
	case ReasonServer:
		return "The server encountered an internal error. Try again in a few minutes."
	case ReasonRejected:
		return "The server rejected the request."
	case ReasonUnknown:
		return "Check your internet connection and the configured API URL."
	}
	return ""
}

// Explain is Describe prefixed with the host that could not be reached, when
// err carries the request URL.
func Explain(err error) string {
	hint := Describe(err)
	var ue *url.Error
	if errors.As(err, &ue) && ue.URL != "" {
		return fmt.Sprintf("Could not reach %s. %s", ExtractHostFromURL(ue.URL), hint)
	}
	return hint
}

// isTimeoutError checks if the error is a timeout error.
func isTimeoutError(err error) bool {
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return true
	}
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "timeout") ||
		strings.Contains(errStr, "deadline exceeded")
}

// isDNSError checks if the error is a DNS resolution error.
func isDNSError(err error) bool {
	var dnsErr *net.DNSError
	return errors.As(err, &dnsErr)
}

// isConnectionRefusedError checks if the error is a connection refused error.
func isConnectionRefusedError(err error) bool {
	if errors.Is(err, syscall.ECONNREFUSED) {
		return true
	}
	return strings.Contains(strings.ToLower(err.Error()), "connection refused")
}

// isSSLError checks if the error is an SSL/TLS error.
func isSSLError(err error) bool {
	errStr := strings.ToLower(err.Error())
	return strings.Contains(errStr, "tls") ||
		strings.Contains(errStr, "x509") ||
		strings.Contains(errStr, "certificate")
}

// ExtractHostFromURL extracts the hostname from a URL for error messages.
func ExtractHostFromURL(urlStr string) string {
	u, err := url.Parse(urlStr)
	if err != nil || u.Host == "" {
		return "server"
	}
	return u.Host
}
