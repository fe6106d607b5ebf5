package vocabcmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/lehigh-university-libraries/stackmap/internal/importer"
	"github.com/lehigh-university-libraries/stackmap/internal/vocabulary"
	"github.com/spf13/cobra"
)

// NewValidateCmd creates the validate command
func NewValidateCmd() *cobra.Command {
	var vocabPath string
	var dumpPath string

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate a legacy dump against the vocabulary table",
		Long: `Validate the coded fields of a legacy item dump against the vocabulary
table, without importing anything.

Reports every record whose medium or status carries a value the table does
not know about.`,
		Example: `  # Validate a JSONL dump
  stackmap vocab validate --vocab vocabularies.yaml --dump items.jsonl

  # Validate a Parquet dump
  stackmap vocab validate --vocab vocabularies.yaml --dump items.parquet`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeValidate(ctx, cmd, vocabPath, dumpPath)
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "vocabularies.yaml", "Path to vocabulary YAML file")
	cmd.Flags().StringVar(&dumpPath, "dump", "", "Path to parquet or jsonl item dump (required)")

	_ = cmd.MarkFlagRequired("dump")

	return cmd
}

func executeValidate(ctx context.Context, cmd *cobra.Command, vocabPath, dumpPath string) error {
	table, err := vocabulary.Load(vocabPath)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary table: %w", err)
	}

	records, err := importer.NewLoader(dumpPath).Load()
	if err != nil {
		return fmt.Errorf("failed to load dump: %w", err)
	}

	slog.Info("Validating dump", "records", len(records), "vocab", vocabPath)

	validator := vocabulary.NewValidator(vocabulary.TableFetcher{Table: table})
	definitions := vocabulary.ItemDefinitions()

	out := cmd.OutOrStdout()
	invalid := 0
	for _, record := range records {
		fields := map[string]string{
			"medium": record.Medium,
			"status": record.Status,
		}
		if err := validator.Validate(ctx, definitions, fields); err != nil {
			invalid++
			fmt.Fprintf(out, "%s: %v\n", record.LegacyID, err)
		}
	}

	if invalid > 0 {
		return fmt.Errorf("%d of %d records carry unknown vocabulary values", invalid, len(records))
	}

	fmt.Fprintf(out, "All %d records validate against the vocabulary table\n", len(records))
	return nil
}
