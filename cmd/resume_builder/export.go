package main

import (
	"fmt"
	"os"
	"time"

	"github.com/jonathan/resume-builder/internal/export"
	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var (
	exportOut      string
	exportTemplate string
	exportTimeout  time.Duration
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume to PDF",
	Long:  "Renders the resume preview and prints it to PDF through headless Chrome. Requires Chrome/Chromium to be installed.",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "resume.pdf", "Output PDF file")
	exportCmd.Flags().StringVarP(&exportTemplate, "template", "t", "", "Template override (defaults to the selected template)")
	exportCmd.Flags().DurationVar(&exportTimeout, "timeout", export.DefaultTimeout, "Browser render timeout")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	rec, template := st.Snapshot()
	if exportTemplate != "" {
		template, err = types.ParseTemplateID(exportTemplate)
		if err != nil {
			return err
		}
	}

	html, err := preview.Render(rec, template)
	if err != nil {
		return err
	}

	if err := export.ToPDF(cmd.Context(), html, exportOut, exportTimeout); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "PDF written to %s (%s template)\n", exportOut, template)
	return nil
}
