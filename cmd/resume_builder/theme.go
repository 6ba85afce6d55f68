package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/store"
	"github.com/spf13/cobra"
)

var themeCmd = &cobra.Command{
	Use:   "theme <light|dark>",
	Short: "Set the display theme preference",
	Args:  cobra.ExactArgs(1),
	RunE:  runTheme,
}

func init() {
	rootCmd.AddCommand(themeCmd)
}

func runTheme(_ *cobra.Command, args []string) error {
	theme, err := store.ParseTheme(args[0])
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

	if err := st.SetTheme(theme); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "Theme set to %s\n", theme)
	return nil
}
