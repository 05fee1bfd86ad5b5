package main

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/simpletodo/api/cmd/api/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "simpletodo",
		Short: "Simple Todo API server",
		Long:  `A minimal task-tracking web service with user accounts, password-hashed authentication, and per-user task CRUD over REST.`,
	}

	rootCmd.AddCommand(commands.NewServeCommand())
	rootCmd.AddCommand(commands.NewMigrateCommand())
	rootCmd.AddCommand(commands.NewUserCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	if err := rootCmd.Execute(); err != nil {
		log.Printf("Command execution failed: %v", err)
		os.Exit(1)
	}
}
