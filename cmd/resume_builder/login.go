package main

import (
	"fmt"
	"os"

	"github.com/jonathan/resume-builder/internal/types"
	"github.com/spf13/cobra"
)

var (
	loginEmail    string
	loginPassword string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to the backend",
	Long:  "Authenticates against the backend and stores the session token locally. The token is kept until logout or until the backend rejects it.",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().StringVarP(&loginEmail, "email", "e", "", "Account email (required)")
	loginCmd.Flags().StringVarP(&loginPassword, "password", "p", "", "Account password (or set RESUME_PASSWORD)")

	if err := loginCmd.MarkFlagRequired("email"); err != nil {
		panic(fmt.Sprintf("failed to mark email flag as required: %v", err))
	}

	rootCmd.AddCommand(loginCmd)
}

func runLogin(cmd *cobra.Command, _ []string) error {
	password := loginPassword
	if password == "" {
		password = os.Getenv("RESUME_PASSWORD")
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	client := newClient(cfg)

	req := types.LoginRequest{Email: loginEmail, Password: password}
	if err := client.Login(cmd.Context(), req); err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Logged in as %s\n", loginEmail)
	return nil
}
