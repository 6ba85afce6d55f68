package main

import (
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}

func runWhoami(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	user, err := newClient(cfg).Me(cmd.Context())
	if err != nil {
		return withLoginHint(err)
	}

	observability.NewPrinter(os.Stdout).PrintUser(user)
	return nil
}
