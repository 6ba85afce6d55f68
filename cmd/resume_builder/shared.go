package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var sharedCmd = &cobra.Command{
	Use:   "shared <id>",
	Short: "Load a publicly shared resume into the local session",
	RunE:  runShared,
	Args:  cobra.ExactArgs(1),
}

func init() {
	rootCmd.AddCommand(sharedCmd)
}

func runShared(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	rec, template, err := newClient(cfg).FetchShared(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	loaded, err := st.Replace(rec, template)
	if err != nil {
		return fmt.Errorf("failed to load shared resume: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintResume(loaded, template)
	return nil
}
