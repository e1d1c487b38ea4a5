// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"vagas/cli/internal/auth"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var (
	registerName  string
	registerEmail string
)

// registerCmd creates a new account on the users API.
var registerCmd = &cobra.Command{
	Use:     "register",
	Aliases: []string{"signup"},
	Short:   "Create a new account",
	Long: `The register command creates an account with a name, email and password.
Registration fails when the email is already in use. It does not sign you in;
run 'vagas login' afterwards.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}

		name, email := registerName, registerEmail
		if name == "" {
			if name, err = a.prompt.Line("Name: "); err != nil {
				return err
			}
		}
		if email == "" {
			if email, err = a.prompt.Line("Email: "); err != nil {
				return err
			}
		}
		password, err := a.prompt.Secret("Password: ")
		if err != nil {
			return err
		}
		a.prompt.Tidy()

		var route auth.Route
		a.busy("Creating account", func() {
			route, err = a.ctrl.CreateUser(cmd.Context(), name, email, password)
		})
		if err != nil {
			return err
		}
		if route == auth.RouteLogin {
			pterm.Println("Run 'vagas login --email " + email + "' to sign in.")
		}
		return nil
	},
}

func init() {
	registerCmd.Flags().StringVar(&registerName, "name", "", "Full name (prompted when omitted)")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Account email (prompted when omitted)")
	rootCmd.AddCommand(registerCmd)
}
