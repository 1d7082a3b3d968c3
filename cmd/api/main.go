package main

// @title           CourseHub Backend API
// @version         1.0
// @description     Course platform backend: accounts, catalog, subscriptions and statistics.

// @host      localhost:4000
// @BasePath  /

import (
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:          "coursehub",
		Short:        "CourseHub course platform backend",
		SilenceUsage: true,
	}
	rootCmd.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newSnapshotCommand(),
	)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
