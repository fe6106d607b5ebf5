package cmd

import (
	"fmt"
	"log/slog"

	"github.com/lehigh-university-libraries/stackmap/internal/importer"
	"github.com/lehigh-university-libraries/stackmap/internal/storage"
	"github.com/lehigh-university-libraries/stackmap/internal/vocabulary"
	"github.com/spf13/cobra"
)

func newImportCmd() *cobra.Command {
	var dumpPath string
	var vocabPath string
	var reportsDir string
	var allowUpdates bool
	var strict bool

	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import a legacy item dump and write a run report",
		Long: `Import a legacy item dump (Parquet or JSONL), validating coded fields
against the vocabulary table.

Records with unknown vocabulary values, duplicates, or missing required
fields are skipped and listed in a YAML run report under the reports
directory.`,
		Example: `  # Import a Parquet dump
  stackmap import --dump items.parquet

  # Abort on the first unknown vocabulary value
  stackmap import --dump items.jsonl --strict`,
		RunE: func(cmd *cobra.Command, args []string) error {
			vocab, err := vocabulary.Load(vocabPath)
			if err != nil {
				return fmt.Errorf("failed to load vocabulary table: %w", err)
			}

			records, err := importer.NewLoader(dumpPath).Load()
			if err != nil {
				return fmt.Errorf("failed to load dump: %w", err)
			}

			store := storage.New()
			validator := vocabulary.NewValidator(vocabulary.TableFetcher{Table: vocab})
			imp := importer.New(store, validator, vocabulary.ItemDefinitions(), importer.Options{
				AllowUpdates:     allowUpdates,
				StrictVocabulary: strict,
			})

			report, runErr := imp.Run(cmd.Context(), dumpPath, records)

			// Write the report even when a strict run aborts, so the
			// offending records are on record.
			path, err := importer.SaveReport(report, reportsDir)
			if err != nil {
				return err
			}
			slog.Info("Import report written", "path", path)

			return runErr
		},
	}

	cmd.Flags().StringVar(&dumpPath, "dump", "", "Path to parquet or jsonl item dump (required)")
	cmd.Flags().StringVar(&vocabPath, "vocab", "vocabularies.yaml", "Path to vocabulary YAML file")
	cmd.Flags().StringVar(&reportsDir, "reports", "reports", "Directory for YAML run reports")
	cmd.Flags().BoolVar(&allowUpdates, "allow-updates", false, "Let dump rows overwrite already-imported items")
	cmd.Flags().BoolVar(&strict, "strict", false, "Abort on the first unknown vocabulary value")

	_ = cmd.MarkFlagRequired("dump")

	return cmd
}
