// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"vagas/cli/internal/config"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or change CLI settings",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective settings and where they are stored",
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := config.Path()
		if err != nil {
			return err
		}
		data := pterm.TableData{
			{"Setting", "Value"},
			{"api-url", cfg.APIURL},
			{"timeout", cfg.Timeout.Std().String()},
			{"log-level", cfg.LogLevel},
			{"log-format", cfg.LogFormat},
		}
		if err := pterm.DefaultTable.WithHasHeader().WithData(data).Render(); err != nil {
			return err
		}
		pterm.Println(pterm.NewStyle(pterm.FgGray).Sprint("file: " + p))
		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Persist a setting (" + strings.Join(config.Keys, ", ") + ")",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		// Start from the file so env and flag overrides are not persisted.
		c, err := config.LoadFile()
		if err != nil {
			return err
		}
		if err := c.Set(args[0], args[1]); err != nil {
			return err
		}
		if err := config.Save(c); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		pterm.Success.Printf("%s saved\n", args[0])
		return nil
	},
}

func init() {
	configCmd.AddCommand(configShowCmd, configSetCmd)
	rootCmd.AddCommand(configCmd)
}
