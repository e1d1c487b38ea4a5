// Copyright (c) 2025 Vagas
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"encoding/json"
	"fmt"

	"vagas/cli/internal/auth"

	"github.com/spf13/cobra"
)

var whoamiJSON bool

// whoamiCmd shows the stored session without contacting the API.
var whoamiCmd = &cobra.Command{
	Use:     "whoami",
	Aliases: []string{"me"},
	Short:   "Show the signed-in account",
	Long: `The whoami command reads the session stored in the OS keychain and prints the
signed-in account. It works offline. With --json the account is printed as
JSON without the password.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := newApp(cmd, false)
		if err != nil {
			return err
		}

		snap := a.ctrl.Snapshot()
		if whoamiJSON {
			out := struct {
				State string `json:"state"`
				ID    int    `json:"id,omitempty"`
				Name  string `json:"nome,omitempty"`
				Email string `json:"email,omitempty"`
			}{State: snap.State.String()}
			if snap.User != nil {
				out.ID, out.Name, out.Email = snap.User.ID, snap.User.Name, snap.User.Email
			}
			b, err := json.MarshalIndent(out, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(b))
			return nil
		}

		if snap.State != auth.Authenticated {
			printSignedOut()
			return nil
		}
		fmt.Printf("👤 Current user: %s\n", snap.User)
		return nil
	},
}

func init() {
	whoamiCmd.Flags().BoolVar(&whoamiJSON, "json", false, "Print the session as JSON")
	rootCmd.AddCommand(whoamiCmd)
}
