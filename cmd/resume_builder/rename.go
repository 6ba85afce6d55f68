package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var renameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a saved resume",
	Args:  cobra.ExactArgs(2),
	RunE:  runRename,
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func runRename(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	updated, err := newClient(cfg).RenameResume(cmd.Context(), args[0], args[1])
	if err != nil {
		return withLoginHint(err)
	}

	fmt.Printf("Renamed %s to %q\n", updated.ID, updated.Title)
	return nil
}
