package main

import (
	"fmt"

	"github.com/jonathan/resume-builder/internal/api"
	"github.com/spf13/cobra"
)

var saveCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current resume to your account",
	RunE:  runSave,
}

func init() {
	rootCmd.AddCommand(saveCmd)
}

func runSave(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	// The payload is fixed here; edits made while the request is in
	// flight do not leak into it.
	rec, template := st.Snapshot()
	payload := api.ToWire(rec, template)

	saved, err := newClient(cfg).SaveResume(cmd.Context(), payload)
	if err != nil {
		return withLoginHint(err)
	}

	fmt.Printf("Saved %q (id %s)\n", saved.Title, saved.ID)
	return nil
}
