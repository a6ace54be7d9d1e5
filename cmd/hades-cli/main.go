// Package main is the entry point for the hades-cli application.
// It registers the date and field extraction commands and executes the
// command-line interface.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/mxjhurtado-web/Ecosistema-Maxi-sub001/cmd/hades-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "hades-cli",
		Short: "Identity document parsing CLI tool",
		Long: `hades-cli reads identity documents offline.
It disambiguates printed dates and extracts the identity number, names,
dates and document type from an already transcribed document.`,
		SilenceUsage: true,
	}

	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	if err := rootCmd.Execute(); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDateCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize date commands: %w", err)
	}

	if err := commands.InitFieldsCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize fields commands: %w", err)
	}

	return nil
}

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
