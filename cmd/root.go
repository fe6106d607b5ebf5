package cmd

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stackmap",
		Short: "Shelf-location display service for the library catalog",
		Long: `Stackmap renders shelf-location links and call-number display text for
catalog items, backed by a host-configured vocabulary table.

It serves the display endpoints the catalog front end embeds, and ships
tooling for importing legacy item dumps and maintaining the vocabulary
table.`,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load .env file if present (ignore errors)
			_ = godotenv.Load()
		},
	}

	// Add subcommands
	cmd.AddCommand(newServeCmd())
	cmd.AddCommand(newImportCmd())
	cmd.AddCommand(newVocabCmd())

	return cmd
}
