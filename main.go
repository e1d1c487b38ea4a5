// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main is the entry point for the vagas account CLI.
package main

import (
	"vagas/cli/cmd"
)

func main() {
	cmd.Execute()
}
