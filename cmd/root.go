package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command for the analytics-mcp application
var rootCmd = &cobra.Command{
	Use:   "analytics-mcp",
	Short: "Read-only MCP server for Google Analytics",
	Long: `analytics-mcp exposes Google Analytics accounts, properties, and reports
as MCP (Model Context Protocol) tools for AI assistants.

All tools are read-only. Credentials come from Application Default
Credentials scoped to the Analytics readonly scope.`,
	SilenceUsage: true,
}

// version will be set by main
var version = "dev"

// SetVersion sets the version for the root command
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

// Execute is the main entry point for the CLI application
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "analytics-mcp version %s\n" .Version}}`)

	// If no subcommand is provided, run the serve command by default
	if len(os.Args) == 1 {
		os.Args = append(os.Args, "serve")
	}

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newVersionCmd())
}
