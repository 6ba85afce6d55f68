package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jonathan/resume-builder/internal/preview"
	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var (
	previewOut      string
	previewTemplate string
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the resume preview to an HTML file",
	RunE:  runPreview,
}

func init() {
	previewCmd.Flags().StringVarP(&previewOut, "out", "o", "resume.html", "Output HTML file")
	previewCmd.Flags().StringVarP(&previewTemplate, "template", "t", "", "Template override (defaults to the selected template)")
	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	rec, template := st.Snapshot()
	if previewTemplate != "" {
		template, err = types.ParseTemplateID(previewTemplate)
		if err != nil {
			return err
		}
	}

	html, err := preview.Render(rec, template)
	if err != nil {
		return err
	}

	if dir := filepath.Dir(previewOut); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(previewOut, []byte(html), 0o644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}

	fmt.Fprintf(os.Stdout, "Preview written to %s (%s template)\n", previewOut, template)
	return nil
}
