package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/observability"
	"github.com/jonathan/resume-builder/internal/record"
	"github.com/spf13/cobra"
)

var (
	editField   string
	editValue   string
	editSection string
	editIndex   int
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a single resume field",
	Long:  "Writes one field of the resume: a top-level field (name, email, phone, address, profession, skills) or, with --section, a field of an education or experience entry.",
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editField, "field", "f", "", "Field to write (required)")
	editCmd.Flags().StringVarP(&editValue, "value", "v", "", "New value")
	editCmd.Flags().StringVarP(&editSection, "section", "s", "", "Section for nested fields: education or experience")
	editCmd.Flags().IntVarP(&editIndex, "index", "i", 0, "Entry index within the section")

	if err := editCmd.MarkFlagRequired("field"); err != nil {
		panic(fmt.Sprintf("failed to mark field flag as required: %v", err))
	}

	rootCmd.AddCommand(editCmd)
}

func runEdit(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	var op record.EditOp
	if editSection == "" {
		op = record.TopLevelEdit{Field: editField, Value: editValue}
	} else {
		op = record.ListEntryEdit{
			Section: record.Section(editSection),
			Index:   editIndex,
			Field:   editField,
			Value:   editValue,
		}
	}

	rec, err := st.Edit(op)
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Updated %s (completeness: %d/100)\n", editField, rec.Score)
	observability.NewPrinter(os.Stdout).PrintAdvisories(rec.Advisories())
	return nil
}
