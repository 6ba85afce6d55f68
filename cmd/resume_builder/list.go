package main

import (
	"os"

	"github.com/jonathan/resume-builder/internal/api"
	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the resumes saved to your account",
	RunE:  runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	var (
		user    *types.User
		resumes []api.SavedResume
	)
	g, ctx := errgroup.WithContext(cmd.Context())
	g.Go(func() error {
		var err error
		user, err = client.Me(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		resumes, err = client.ListResumes(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return withLoginHint(err)
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintUser(user)
	printer.PrintSavedResumes(resumes)
	return nil
}
