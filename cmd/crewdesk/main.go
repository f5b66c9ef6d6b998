package main

import (
	"os"

	"github.com/spf13/cobra"

	"crewdesk/internal/interfaces/cli/migrate"
	"crewdesk/internal/interfaces/cli/server"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "crewdesk",
		Short: "Crewdesk - team workspaces with a built-in helpdesk",
		Long:  `Crewdesk runs multi-tenant team workspaces with role-based invitations and a support ticket desk.`,
	}

	rootCmd.AddCommand(
		server.NewCommand(),
		migrate.NewCommand(),
	)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
