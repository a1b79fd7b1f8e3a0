package main

import (
	"os"

	"github.com/spf13/cobra"

	"vitrine/internal/interfaces/cli/hashpw"
	"vitrine/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "vitrine",
		Short: "Vitrine - portfolio content management API",
		Long:  `Vitrine is the backend API for a portfolio site: admin authentication, structured content storage and media uploads with signed URLs.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		hashpw.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
