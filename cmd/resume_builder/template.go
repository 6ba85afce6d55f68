package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var templateCmd = &cobra.Command{
	Use:   "template <id>",
	Short: "Select the visual template",
	Long:  "Selects one of the visual templates: classic, modern, creative, or professional. Does not affect the resume's completeness score.",
	Args:  cobra.ExactArgs(1),
	RunE:  runTemplate,
}

var colorCmd = &cobra.Command{
	Use:   "color <hex>",
	Short: "Set the accent color",
	Long:  "Sets the accent color used by the templates, as #rrggbb. Does not affect the resume's completeness score.",
	Args:  cobra.ExactArgs(1),
	RunE:  runColor,
}

func init() {
	rootCmd.AddCommand(templateCmd)
	rootCmd.AddCommand(colorCmd)
}

func runTemplate(_ *cobra.Command, args []string) error {
	template, err := types.ParseTemplateID(args[0])
	if err != nil {
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := st.SetTemplate(template); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Template set to %s\n", template)
	return nil
}

func runColor(_ *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	st, err := openStore(cfg)
	if err != nil {
		return err
	}

	if err := st.SetColor(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Accent color set to %s\n", args[0])
	return nil
}
