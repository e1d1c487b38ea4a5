// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"vagas/cli/internal/auth"
	"vagas/cli/internal/logging"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
)

var logoutYes bool

// logoutCmd discards the stored session after confirmation.
var logoutCmd = &cobra.Command{
	Use:     "logout",
	Aliases: []string{"signout"},
	Short:   "Sign out and remove the stored session",
	Long: `The logout command asks for confirmation and then removes the signed-in
account from memory and from the OS keychain. Use --yes to skip the question.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, logoutYes)
		if err != nil {
			return err
		}
		if a.ctrl.State() != auth.Authenticated {
			printSignedOut()
			return nil
		}

		route, err := a.ctrl.SignOut(cmd.Context())
		switch {
		case route == auth.RouteLogin && err != nil:
			pterm.Warning.Println(logging.PresentError("Signed out, but the stored session could not be removed", err))
		case route == auth.RouteLogin:
			pterm.Println("✅ Signed out. Run 'vagas login' to sign in again.")
		case err == nil:
			pterm.Println("Still signed in as " + a.ctrl.User().Email)
		}
		return err
	},
}

func init() {
	logoutCmd.Flags().BoolVarP(&logoutYes, "yes", "y", false, "Sign out without asking for confirmation")
	rootCmd.AddCommand(logoutCmd)
}
