// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"vagas/cli/internal/auth"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var loginEmail string

// loginCmd signs in with email and password and keeps the session in the keychain.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"signin"},
	Short:   "Sign in with your email and password",
	Long: `The login command asks for your email and password and checks them against
the users API. On success the account is stored in the OS keychain and you stay
signed in until you run 'vagas logout'.

If a session already exists, the command shows it and does nothing else.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}

		if a.ctrl.State() == auth.Authenticated {
			pterm.Println("Already logged in as " + a.ctrl.User().Email)
			return nil
		}

		email := loginEmail
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
		a.busy("Signing in", func() {
			route, err = a.ctrl.SignIn(cmd.Context(), email, password)
		})
		if err != nil {
			return err
		}
		if route == auth.RouteHome {
			printHome(a.ctrl.User())
		}
		return nil
	},
}

func init() {
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
	rootCmd.AddCommand(loginCmd)
}
