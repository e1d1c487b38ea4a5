// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"vagas/cli/internal/auth"

	"github.com/spf13/cobra"
)

var (
	profileName     string
	profileEmail    string
	profilePassword bool
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Show or edit the signed-in profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		if a.ctrl.State() != auth.Authenticated {
			printSignedOut()
			return nil
		}
		printHome(a.ctrl.User())
		return nil
	},
}

// profileEditCmd updates the signed-in account. Fields that are not given keep
// their current value.
var profileEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Change your name, email or password",
	Long: `The profile edit command updates the signed-in account on the users API and
refreshes the stored session with the result. Only the fields you pass change;
use --password to be asked for a new password.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}
		if a.ctrl.State() != auth.Authenticated {
			printSignedOut()
			return nil
		}

		current := a.ctrl.User()
		name, email, password := current.Name, current.Email, current.Password
		if cmd.Flags().Changed("name") {
			name = profileName
		}
		if cmd.Flags().Changed("email") {
			email = profileEmail
		}
		if profilePassword {
			if password, err = a.prompt.Secret("New password: "); err != nil {
				return err
			}
		}

		a.busy("Saving profile", func() {
			_, err = a.ctrl.EditUser(cmd.Context(), current.ID, name, email, password)
		})
		if err != nil {
			return err
		}
		printHome(a.ctrl.User())
		return nil
	},
}

func init() {
	profileEditCmd.Flags().StringVar(&profileName, "name", "", "New full name")
	profileEditCmd.Flags().StringVar(&profileEmail, "email", "", "New email")
	profileEditCmd.Flags().BoolVar(&profilePassword, "password", false, "Prompt for a new password")
	profileCmd.AddCommand(profileEditCmd)
	rootCmd.AddCommand(profileCmd)
}
