// Package hashpw implements the `vitrine hashpw` command, which turns a
// password read from the terminal into a bcrypt hash suitable for the
// auth.admin_password config value.
package hashpw

import (
	"fmt"
	"os"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"vitrine/internal/infrastructure/auth"
)

var cost int

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hashpw",
		Short: "Hash an administrator password",
		Long:  `Read a password from the terminal without echo and print its bcrypt hash for use as auth.admin_password.`,
		RunE:  run,
	}

	cmd.Flags().IntVar(&cost, "cost", 12, "bcrypt cost factor")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	fmt.Fprint(os.Stderr, "Password: ")
	password, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read password: %w", err)
	}

	fmt.Fprint(os.Stderr, "Confirm:  ")
	confirm, err := term.ReadPassword(int(syscall.Stdin))
	fmt.Fprintln(os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to read confirmation: %w", err)
	}

	if string(password) != string(confirm) {
		return fmt.Errorf("passwords do not match")
	}
	if len(password) == 0 {
		return fmt.Errorf("password must not be empty")
	}

	hash, err := auth.HashPassword(string(password), cost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	fmt.Println(hash)
	return nil
}
