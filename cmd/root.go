// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface of the vagas account client.
// It implements sign-in, sign-out, registration and profile editing against the
// users API using the Cobra CLI framework, plus a local development server.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"vagas/cli/internal/backend"
	"vagas/cli/internal/config"
	"vagas/cli/internal/logging"

	"github.com/spf13/cobra"
)

var (
	showVersion bool
	verbose     bool
	apiURL      string

	// cfg is loaded once per invocation before any command runs.
	cfg = config.Defaults()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "vagas",
	Short:         "Sign in, manage your account and profile on the vagas users API",
	Long:          `vagas is a command-line client for the vagas users API. It keeps your session in the OS keychain so you stay signed in between runs.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// The config commands must run on a broken configuration to repair it.
		repairing := underConfig(cmd)
		load := config.Load
		if repairing {
			load = config.Read
		}

		c, err := load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		if cmd.Flags().Changed("api-url") {
			if err := c.Set("api-url", apiURL); err != nil && !repairing {
				return err
			}
		}
		if verbose {
			c.LogLevel = "debug"
		}
		cfg = c
		logging.Init(cfg.LogLevel, cfg.LogFormat, os.Stderr)
		if repairing {
			if err := cfg.Validate(); err != nil {
				logging.With("cmd").Warn().Str("error", err.Error()).Msg("configuration is invalid")
			}
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			be := backend.New(cfg.APIURL, cfg.Timeout.Std())
			backendVersion, err := be.GetVersion(cmd.Context())
			if err != nil {
				logging.With("cmd").Debug().Str("error", logging.Mask(err.Error())).Msg("backend version unavailable")
				backendVersion = "unreachable"
			}
			fmt.Printf("vagas %s\nbackend %s\n", Version, backendVersion)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Interrupts cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		// Account operations have already shown a notification.
		if !notified(err) {
			fmt.Fprintln(os.Stderr, logging.PresentError("error", err))
		}
		stop()
		os.Exit(1)
	}
}

// underConfig reports whether cmd is the config command or one of its children.
func underConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c == configCmd {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI and backend version information")
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Users API base URL (overrides config and VAGAS_API_URL)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug diagnostics on stderr")
}
