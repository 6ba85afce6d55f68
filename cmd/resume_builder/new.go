package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var newTemplate string

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh resume",
	Long:  "Discards the in-progress resume and starts over with an all-empty record.",
	RunE:  runNew,
}

func init() {
	newCmd.Flags().StringVarP(&newTemplate, "template", "t", string(types.DefaultTemplate), "Template to start with (classic, modern, creative, professional)")
	rootCmd.AddCommand(newCmd)
}

func runNew(_ *cobra.Command, _ []string) error {
	template, err := types.ParseTemplateID(newTemplate)
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

	if _, err := st.Replace(types.NewResumeRecord(), template); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Started a new resume with the %s template\n", template)
	return nil
}
