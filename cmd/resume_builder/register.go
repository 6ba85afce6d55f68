package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var (
	registerName     string
	registerEmail    string
	registerPassword string
)

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a backend account",
	RunE:  runRegister,
}

func init() {
	registerCmd.Flags().StringVarP(&registerName, "name", "n", "", "Display name (required)")
	registerCmd.Flags().StringVarP(&registerEmail, "email", "e", "", "Account email (required)")
	registerCmd.Flags().StringVarP(&registerPassword, "password", "p", "", "Account password (or set RESUME_PASSWORD)")

	for _, flag := range []string{"name", "email"} {
		if err := registerCmd.MarkFlagRequired(flag); err != nil {
			panic(fmt.Sprintf("failed to mark %s flag as required: %v", flag, err))
		}
	}

	rootCmd.AddCommand(registerCmd)
}

func runRegister(cmd *cobra.Command, _ []string) error {
	password := registerPassword
	if password == "" {
		password = os.Getenv("RESUME_PASSWORD")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	req := types.RegisterRequest{Name: registerName, Email: registerEmail, Password: password}
	if err := client.Register(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Registered and logged in as %s\n", registerEmail)
	return nil
}
