package importer

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/lehigh-university-libraries/stackmap/internal/storage"
	"github.com/lehigh-university-libraries/stackmap/internal/vocabulary"
)

// Options controls how an import run treats recoverable record errors.
type Options struct {
	// AllowUpdates lets a dump row overwrite an already-imported item
	// instead of being skipped as a duplicate.
	AllowUpdates bool
	// StrictVocabulary aborts the run on the first unknown coded value
	// instead of skipping the record.
	StrictVocabulary bool
}

// Failure records one dump row that could not be imported.
type Failure struct {
	LegacyID string `yaml:"legacy_id"`
	Error    string `yaml:"error"`
}

// Report summarizes an import run.
type Report struct {
	RunID     string        `yaml:"run_id"`
	Source    string        `yaml:"source"`
	Imported  int           `yaml:"imported"`
	Skipped   int           `yaml:"skipped"`
	Failures  []Failure     `yaml:"failures,omitempty"`
	StartedAt time.Time     `yaml:"started_at"`
	Duration  time.Duration `yaml:"duration"`
}

// Importer validates dump rows and loads them into the item store.
type Importer struct {
	store       *storage.ItemStore
	validator   *vocabulary.Validator
	definitions map[string]vocabulary.Definition
	opts        Options
}

// New creates an importer. The definitions map names the coded record
// fields and the vocabulary each is validated against.
func New(store *storage.ItemStore, validator *vocabulary.Validator, definitions map[string]vocabulary.Definition, opts Options) *Importer {
	return &Importer{
		store:       store,
		validator:   validator,
		definitions: definitions,
		opts:        opts,
	}
}

// Run imports the records, dispatching each error class the way the legacy
// migration did: log, count, and continue, unless the options say to abort.
func (imp *Importer) Run(ctx context.Context, source string, records []ItemRecord) (Report, error) {
	report := Report{
		RunID:     uuid.NewString(),
		Source:    source,
		StartedAt: time.Now(),
	}

	slog.Info("Starting import run", "run_id", report.RunID, "source", source, "records", len(records))

	for _, record := range records {
		if err := imp.importRecord(ctx, record); err != nil {
			var vocabErr *vocabulary.VocabularyError
			var dupErr *DuplicateError
			var recErr *RecordError

			switch {
			case errors.As(err, &vocabErr):
				slog.Warn("Unknown vocabulary value", "legacy_id", record.LegacyID,
					"vocabulary", vocabErr.Vocabulary, "value", vocabErr.Value)
				if imp.opts.StrictVocabulary {
					report.Duration = time.Since(report.StartedAt)
					return report, err
				}
				report.Skipped++
				report.Failures = append(report.Failures, Failure{LegacyID: record.LegacyID, Error: err.Error()})
			case errors.As(err, &dupErr):
				slog.Warn("Duplicate record", "legacy_id", record.LegacyID)
				report.Skipped++
				report.Failures = append(report.Failures, Failure{LegacyID: record.LegacyID, Error: err.Error()})
			case errors.As(err, &recErr):
				slog.Error("Malformed record", "legacy_id", record.LegacyID, "reason", recErr.Reason)
				report.Skipped++
				report.Failures = append(report.Failures, Failure{LegacyID: record.LegacyID, Error: err.Error()})
			default:
				// fetch failures and the like are not per-record problems
				report.Duration = time.Since(report.StartedAt)
				return report, err
			}
			continue
		}

		report.Imported++
	}

	report.Duration = time.Since(report.StartedAt)
	slog.Info("Import run finished", "run_id", report.RunID,
		"imported", report.Imported, "skipped", report.Skipped, "duration", report.Duration)

	return report, nil
}

func (imp *Importer) importRecord(ctx context.Context, record ItemRecord) error {
	if record.LegacyID == "" {
		return &RecordError{LegacyID: record.LegacyID, Reason: "missing legacy ID"}
	}
	if record.Title == "" {
		return &RecordError{LegacyID: record.LegacyID, Reason: "missing title"}
	}

	if _, exists := imp.store.Get(record.LegacyID); exists && !imp.opts.AllowUpdates {
		return &DuplicateError{LegacyID: record.LegacyID}
	}

	fields := map[string]string{
		"medium": record.Medium,
		"status": record.Status,
	}
	if err := imp.validator.Validate(ctx, imp.definitions, fields); err != nil {
		return err
	}

	imp.store.Set(record.LegacyID, record.Item())
	return nil
}
