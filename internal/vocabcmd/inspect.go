package vocabcmd

import (
	"fmt"
	"sort"

	"github.com/lehigh-university-libraries/stackmap/internal/vocabulary"
	"github.com/spf13/cobra"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var vocabPath string
	var field string

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the configured vocabulary table",
		Long: `Print the vocabulary table loaded from a YAML file.

Useful for checking which coded values have display text configured before
pointing the serve command at a vocabulary file.`,
		Example: `  # Show all fields
  stackmap vocab inspect --vocab vocabularies.yaml

  # Show one field
  stackmap vocab inspect --vocab vocabularies.yaml --field item_medium`,
		RunE: func(cmd *cobra.Command, args []string) error {
			table, err := vocabulary.Load(vocabPath)
			if err != nil {
				return fmt.Errorf("failed to load vocabulary table: %w", err)
			}

			return executeInspect(cmd, table, field)
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "vocabularies.yaml", "Path to vocabulary YAML file")
	cmd.Flags().StringVar(&field, "field", "", "Limit output to one field")

	return cmd
}

func executeInspect(cmd *cobra.Command, table vocabulary.Table, field string) error {
	fields := table.Fields()
	sort.Strings(fields)

	if field != "" {
		if _, ok := table[field]; !ok {
			return fmt.Errorf("field %s not configured in vocabulary table", field)
		}
		fields = []string{field}
	}

	out := cmd.OutOrStdout()
	for _, f := range fields {
		fmt.Fprintf(out, "%s:\n", f)
		for _, entry := range table[f] {
			fmt.Fprintf(out, "  %-24s %s\n", entry.Value, entry.Text)
		}
	}

	return nil
}
