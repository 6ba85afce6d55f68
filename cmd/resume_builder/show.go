package main

import (
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/spf13/cobra"
)

var showBreakdown bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resume being edited",
	Long:  "Prints the in-progress resume, its completeness score, and any field warnings.",
	RunE:  runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showBreakdown, "breakdown", false, "Show the per-field score breakdown")
	rootCmd.AddCommand(showCmd)
}

func runShow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	rec, template := st.Snapshot()
	printer := observability.NewPrinter(os.Stdout)
	printer.PrintResume(rec, template)
	if showBreakdown {
		printer.PrintScoreBreakdown(rec)
	}
	printer.PrintAdvisories(rec.Advisories())
	return nil
}
