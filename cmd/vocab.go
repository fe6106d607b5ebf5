package cmd

import (
	"github.com/lehigh-university-libraries/stackmap/internal/vocabcmd"
	"github.com/spf13/cobra"
)

func newVocabCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vocab",
		Short: "Vocabulary table tools",
		Long: `Tools for maintaining the vocabulary table that backs display-text
lookups.

Supports inspecting the configured table, validating legacy dumps against
it, and suggesting display text for values the table does not cover yet.`,
	}

	// Add vocab subcommands
	cmd.AddCommand(vocabcmd.NewInspectCmd())
	cmd.AddCommand(vocabcmd.NewValidateCmd())
	cmd.AddCommand(vocabcmd.NewSuggestCmd())

	return cmd
}
