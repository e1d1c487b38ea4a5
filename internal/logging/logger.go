// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

// Log is the process-wide diagnostics logger. It discards everything until Init
// is called so packages can log unconditionally, including from tests.
var Log = zerolog.Nop()

// Init configures Log. Unknown levels fall back to info; format "json" selects
// structured output, anything else the human console writer.
func Init(level, format string, w io.Writer) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var l zerolog.Logger
	if format == "json" {
		l = zerolog.New(w).With().Timestamp().Logger().Level(lvl)
	} else {
		l = zerolog.New(zerolog.ConsoleWriter{
			Out:        w,
			TimeFormat: time.RFC3339,
		}).With().Timestamp().Logger().Level(lvl)
	}

	Log = l
	zlog.Logger = l
}

// With returns a child of Log tagged with the given component name.
func With(component string) *zerolog.Logger {
	l := Log.With().Str("component", component).Logger()
	return &l
}
