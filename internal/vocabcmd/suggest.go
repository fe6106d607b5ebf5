package vocabcmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/lehigh-university-libraries/stackmap/internal/gemini"
	"github.com/lehigh-university-libraries/stackmap/internal/vocabulary"
	"github.com/spf13/cobra"
)

// NewSuggestCmd creates the suggest command
func NewSuggestCmd() *cobra.Command {
	var vocabPath string
	var field string
	var value string
	var model string
	var temperature float64

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest display text for an unconfigured vocabulary value",
		Long: `Ask Gemini for a human-readable display label for a coded value the
vocabulary table does not cover yet.

The suggestion is printed as a YAML entry ready to paste into the table.
Requires GEMINI_API_KEY.`,
		Example: `  # Suggest a label for an unmapped medium code
  stackmap vocab suggest --field item_medium --value VHS

  # Use a specific model
  stackmap vocab suggest --field item_status --value MISSING --model gemini-1.5-pro`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return executeSuggest(ctx, cmd, vocabPath, field, value, model, temperature)
		},
	}

	cmd.Flags().StringVar(&vocabPath, "vocab", "vocabularies.yaml", "Path to vocabulary YAML file")
	cmd.Flags().StringVar(&field, "field", "", "Vocabulary field name (required)")
	cmd.Flags().StringVar(&value, "value", "", "Coded value to suggest text for (required)")
	cmd.Flags().StringVar(&model, "model", "gemini-1.5-flash", "Gemini model to use")
	cmd.Flags().Float64Var(&temperature, "temperature", 0.2, "Sampling temperature")

	_ = cmd.MarkFlagRequired("field")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func executeSuggest(ctx context.Context, cmd *cobra.Command, vocabPath, field, value, model string, temperature float64) error {
	table, err := vocabulary.Load(vocabPath)
	if err != nil {
		return fmt.Errorf("failed to load vocabulary table: %w", err)
	}

	// Don't bother Gemini if the table already has an answer.
	if text, err := table.DisplayVal(field, value); err == nil {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is already configured as %q\n", value, text)
		return nil
	}

	suggester := gemini.New(model, temperature)
	text, err := suggester.SuggestDisplayText(ctx, field, value)
	if err != nil {
		return fmt.Errorf("failed to suggest display text: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s:\n", field)
	fmt.Fprintf(out, "  - value: %s\n", value)
	fmt.Fprintf(out, "    text: %s\n", text)

	return nil
}
