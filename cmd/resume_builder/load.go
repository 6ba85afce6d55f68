package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/api"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var loadCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Load a saved resume into the local session",
	Args:  cobra.ExactArgs(1),
	RunE:  runLoad,
}

func init() {
	rootCmd.AddCommand(loadCmd)
}

func runLoad(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	resumes, err := newClient(cfg).ListResumes(cmd.Context())
	if err != nil {
		return withLoginHint(err)
	}

	var saved *api.SavedResume
	for i := range resumes {
		if resumes[i].ID == args[0] {
			saved = &resumes[i]
			break
		}
	}
	if saved == nil {
		return &api.NotFoundError{Resource: "resume", ID: args[0]}
	}

	rec, err := st.Replace(api.FromWire(saved.Payload()), saved.Template())
	if err != nil {
		return fmt.Errorf("failed to load resume: %w", err)
	}

	observability.NewPrinter(os.Stdout).PrintResume(rec, saved.Template())
	return nil
}
